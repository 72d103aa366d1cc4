package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/watchhook/watchhook/packages/http/auth"
	"github.com/watchhook/watchhook/packages/xcontent"
)

func TestRequest_EqualTreatsDefaultsAsSet(t *testing.T) {
	unset := NewBuilder("example.com", 80).Build()
	explicit := NewBuilder("example.com", 80).Scheme(SchemeHTTP).Method(MethodGet).Build()

	assert.True(t, unset.Equal(explicit))
	assert.Equal(t, unset.Hash(), explicit.Hash())
}

func TestRequest_EqualIgnoresMapOrder(t *testing.T) {
	a := NewBuilder("example.com", 80).SetParam("x", "1").SetParam("y", "2").Build()
	b := NewBuilder("example.com", 80).SetParam("y", "2").SetParam("x", "1").Build()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestRequest_NotEqual(t *testing.T) {
	base := NewBuilder("example.com", 80).Build()

	assert.False(t, base.Equal(NewBuilder("example.com", 81).Build()))
	assert.False(t, base.Equal(NewBuilder("other.com", 80).Build()))
	assert.False(t, base.Equal(NewBuilder("example.com", 80).Scheme(SchemeHTTPS).Build()))
	assert.False(t, base.Equal(NewBuilder("example.com", 80).Body("").Build()))
	assert.False(t, base.Equal(nil))

	withTimeout := NewBuilder("example.com", 80).ReadTimeout(time.Second).Build()
	assert.False(t, base.Equal(withTimeout))
}

func TestRequest_StringRedactsAuth(t *testing.T) {
	r := NewBuilder("example.com", 443).
		Auth(&auth.Basic{Username: "admin", Password: "s3cr3t-value"}).
		Build()

	display := r.String()
	assert.Contains(t, display, auth.Redacted)
	assert.NotContains(t, display, "s3cr3t-value")
	assert.NotContains(t, display, "admin")
}

func TestRequest_StringRedactsEverySchemeType(t *testing.T) {
	for _, a := range []auth.Auth{
		&auth.Basic{Username: "u", Password: "hunter2-basic"},
		&auth.Bearer{Token: "hunter2-bearer"},
		&auth.APIKey{Header: "X-Api-Key", Key: "hunter2-apikey"},
	} {
		r := NewBuilder("example.com", 443).Auth(a).Build()
		assert.NotContains(t, r.String(), "hunter2", "scheme %s", a.Type())
	}
}

func TestRequest_WriteToMinimal(t *testing.T) {
	r := NewBuilder("example.com", 9200).Build()

	w := xcontent.NewWriter()
	require.NoError(t, r.WriteTo(w))
	assert.Equal(t, `{"scheme":"http","host":"example.com","port":9200,"method":"get"}`, w.String())
}

func TestRequest_WriteToFull(t *testing.T) {
	r := NewBuilder("example.com", 443).
		Scheme(SchemeHTTPS).
		Method(MethodPost).
		Path("/v1/alert").
		SetParam("q", "1").
		SetHeader("Content-Type", "application/json").
		Body(`{"x":1}`).
		ConnectionTimeout(5 * time.Second).
		ReadTimeout(30 * time.Second).
		Build()

	w := xcontent.NewWriter()
	require.NoError(t, r.WriteTo(w))
	assert.Equal(t,
		`{"scheme":"https","host":"example.com","port":443,"method":"post",`+
			`"path":"/v1/alert","params":{"q":"1"},"headers":{"Content-Type":"application/json"},`+
			`"body":"{\"x\":1}","connection_timeout":"5s","read_timeout":"30s"}`,
		w.String())
}

func TestRequest_WriteRedactedToHidesSecrets(t *testing.T) {
	r := NewBuilder("example.com", 443).
		Auth(&auth.Bearer{Token: "top-secret-token"}).
		Build()

	w := xcontent.NewWriter()
	require.NoError(t, r.WriteRedactedTo(w))
	assert.NotContains(t, w.String(), "top-secret-token")
	assert.Contains(t, w.String(), auth.Redacted)

	// the unredacted form keeps the real value for round-tripping
	w = xcontent.NewWriter()
	require.NoError(t, r.WriteTo(w))
	assert.Contains(t, w.String(), "top-secret-token")
}

func TestRequest_HashDiffers(t *testing.T) {
	a := NewBuilder("example.com", 80).Build()
	b := NewBuilder("example.com", 81).Build()
	c := NewBuilder("example.com", 80).Body("x").Build()

	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}
