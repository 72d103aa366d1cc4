package http

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"time"

	"github.com/watchhook/watchhook/packages/http/auth"
	"github.com/watchhook/watchhook/packages/xcontent"
)

// Request is an immutable description of an outbound HTTP call. Values are
// produced by a Builder (programmatic construction) or a RequestParser
// (from a document) and are never mutated afterwards, so a Request is safe
// for unsynchronized concurrent reads.
type Request struct {
	host              string
	port              int
	scheme            Scheme
	method            Method
	path              string
	params            *xcontent.StringMap
	headers           *xcontent.StringMap
	auth              auth.Auth
	body              *string
	connectionTimeout *time.Duration
	readTimeout       *time.Duration
}

func (r *Request) Host() string {
	return r.host
}

func (r *Request) Port() int {
	return r.port
}

// Scheme returns the request scheme, defaulting to http when unset.
func (r *Request) Scheme() Scheme {
	if r.scheme == "" {
		return SchemeHTTP
	}
	return r.scheme
}

// Method returns the request method, defaulting to get when unset.
func (r *Request) Method() Method {
	if r.method == "" {
		return MethodGet
	}
	return r.method
}

func (r *Request) Path() string {
	return r.path
}

// Params returns the query parameters in first-insertion order. The
// returned map is part of the immutable request and must not be mutated.
func (r *Request) Params() *xcontent.StringMap {
	return r.params
}

// Headers returns the headers in first-insertion order. The returned map
// is part of the immutable request and must not be mutated.
func (r *Request) Headers() *xcontent.StringMap {
	return r.headers
}

func (r *Request) Auth() auth.Auth {
	return r.auth
}

func (r *Request) HasBody() bool {
	return r.body != nil
}

// Body returns the body string, or "" when no body is set; use HasBody to
// tell the two apart.
func (r *Request) Body() string {
	if r.body == nil {
		return ""
	}
	return *r.body
}

func (r *Request) ConnectionTimeout() (time.Duration, bool) {
	if r.connectionTimeout == nil {
		return 0, false
	}
	return *r.connectionTimeout, true
}

func (r *Request) ReadTimeout() (time.Duration, bool) {
	if r.readTimeout == nil {
		return 0, false
	}
	return *r.readTimeout, true
}

// Equal reports structural equality. Scheme and method compare through
// their defaults; map equality ignores insertion order.
func (r *Request) Equal(other *Request) bool {
	if other == nil {
		return false
	}
	if r.host != other.host || r.port != other.port {
		return false
	}
	if r.Scheme() != other.Scheme() || r.Method() != other.Method() {
		return false
	}
	if r.path != other.path {
		return false
	}
	if !r.params.Equal(other.params) || !r.headers.Equal(other.headers) {
		return false
	}
	if (r.auth == nil) != (other.auth == nil) {
		return false
	}
	if r.auth != nil && !r.auth.Equal(other.auth) {
		return false
	}
	if (r.body == nil) != (other.body == nil) {
		return false
	}
	if r.body != nil && *r.body != *other.body {
		return false
	}
	if !timeoutEqual(r.connectionTimeout, other.connectionTimeout) {
		return false
	}
	return timeoutEqual(r.readTimeout, other.readTimeout)
}

func timeoutEqual(a, b *time.Duration) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

// Hash returns a structural hash consistent with Equal: equal requests
// hash equally regardless of map insertion order.
func (r *Request) Hash() uint64 {
	h := fnv.New64a()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}
	write(r.host, strconv.Itoa(r.port), r.Scheme().String(), r.Method().String(), r.path)
	writeSorted := func(m *xcontent.StringMap) {
		keys := append([]string(nil), m.Keys()...)
		sort.Strings(keys)
		for _, k := range keys {
			v, _ := m.Get(k)
			write(k, v)
		}
		write("|")
	}
	writeSorted(r.params)
	writeSorted(r.headers)
	if r.auth != nil {
		w := xcontent.NewWriter()
		r.auth.WriteTo(w, false)
		write(w.String())
	}
	if r.body != nil {
		write("body", *r.body)
	}
	if r.connectionTimeout != nil {
		write(r.connectionTimeout.String())
	}
	if r.readTimeout != nil {
		write(r.readTimeout.String())
	}
	return h.Sum64()
}

// String renders the request for logs and error messages. The auth
// descriptor is always replaced with a fixed marker so credentials can
// never leak through stringification.
func (r *Request) String() string {
	authStr := "null"
	if r.auth != nil {
		authStr = auth.Redacted
	}
	body := "null"
	if r.body != nil {
		body = *r.body
	}
	return fmt.Sprintf("request{scheme=[%s], host=[%s], port=[%d], method=[%s], path=[%s], params=%s, headers=%s, auth=[%s], body=[%s], connection_timeout=[%s], read_timeout=[%s]}",
		r.Scheme(), r.host, r.port, r.Method(), r.path,
		stringMapDisplay(r.params), stringMapDisplay(r.headers),
		authStr, body,
		timeoutDisplay(r.connectionTimeout), timeoutDisplay(r.readTimeout))
}

func stringMapDisplay(m *xcontent.StringMap) string {
	out := "{"
	for i, k := range m.Keys() {
		if i > 0 {
			out += ", "
		}
		v, _ := m.Get(k)
		out += k + "=" + v
	}
	return out + "}"
}

func timeoutDisplay(d *time.Duration) string {
	if d == nil {
		return "null"
	}
	return d.String()
}

// WriteTo serializes the request as a document. Scheme, host, port and
// method are always emitted (even when they hold defaults); every other
// field only when present and non-empty.
func (r *Request) WriteTo(w *xcontent.Writer) error {
	return r.writeTo(w, false)
}

// WriteRedactedTo serializes the request with auth secrets replaced by the
// redaction marker. The output is for display, not for round-tripping.
func (r *Request) WriteRedactedTo(w *xcontent.Writer) error {
	return r.writeTo(w, true)
}

func (r *Request) writeTo(w *xcontent.Writer, redact bool) error {
	w.BeginObject()
	w.StringField("scheme", r.Scheme().String())
	w.StringField("host", r.host)
	w.IntField("port", r.port)
	w.StringField("method", r.Method().String())
	if r.path != "" {
		w.StringField("path", r.path)
	}
	if r.params.Len() > 0 {
		w.StringMapField("params", r.params)
	}
	if r.headers.Len() > 0 {
		w.StringMapField("headers", r.headers)
	}
	if r.auth != nil {
		w.Field("auth")
		if err := r.auth.WriteTo(w, redact); err != nil {
			return err
		}
	}
	if r.body != nil {
		w.StringField("body", *r.body)
	}
	if r.connectionTimeout != nil {
		w.StringField("connection_timeout", r.connectionTimeout.String())
	}
	if r.readTimeout != nil {
		w.StringField("read_timeout", r.readTimeout.String())
	}
	w.EndObject()
	return nil
}
