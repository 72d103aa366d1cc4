package http

import (
	"time"

	"github.com/watchhook/watchhook/packages/http/auth"
	"github.com/watchhook/watchhook/packages/xcontent"
)

// Builder accumulates request fields and freezes them into a Request.
// It performs no validation: Build happily produces a request with an
// empty host or the -1 port sentinel. The parser is the place that
// enforces required fields; callers constructing requests directly are
// expected to use NewBuilder with a real host and port.
//
// A Builder must be confined to a single goroutine.
type Builder struct {
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

// NewBuilder returns a builder pre-seeded with host and port.
func NewBuilder(host string, port int) *Builder {
	b := EmptyBuilder()
	b.host = host
	b.port = port
	return b
}

// EmptyBuilder returns a builder with no host and the -1 port sentinel.
// Used by the parser, which supplies host and port from the document.
func EmptyBuilder() *Builder {
	return &Builder{
		port:    -1,
		params:  xcontent.NewStringMap(),
		headers: xcontent.NewStringMap(),
	}
}

func (b *Builder) Scheme(s Scheme) *Builder {
	b.scheme = s
	return b
}

func (b *Builder) Method(m Method) *Builder {
	b.method = m
	return b
}

func (b *Builder) Path(path string) *Builder {
	b.path = path
	return b
}

// SetParam inserts or overwrites a single query parameter. A key keeps
// its first-insertion position when overwritten.
func (b *Builder) SetParam(key, value string) *Builder {
	b.params.Set(key, value)
	return b
}

// SetParams merges the given entries into the accumulated parameters.
// Existing keys not present in the argument are preserved.
func (b *Builder) SetParams(params *xcontent.StringMap) *Builder {
	for _, k := range params.Keys() {
		v, _ := params.Get(k)
		b.params.Set(k, v)
	}
	return b
}

// SetHeader inserts or overwrites a single header.
func (b *Builder) SetHeader(key, value string) *Builder {
	b.headers.Set(key, value)
	return b
}

// SetHeaders merges the given entries into the accumulated headers.
// Existing keys not present in the argument are preserved.
func (b *Builder) SetHeaders(headers *xcontent.StringMap) *Builder {
	for _, k := range headers.Keys() {
		v, _ := headers.Get(k)
		b.headers.Set(k, v)
	}
	return b
}

func (b *Builder) Auth(a auth.Auth) *Builder {
	b.auth = a
	return b
}

func (b *Builder) Body(body string) *Builder {
	b.body = &body
	return b
}

func (b *Builder) ConnectionTimeout(d time.Duration) *Builder {
	b.connectionTimeout = &d
	return b
}

func (b *Builder) ReadTimeout(d time.Duration) *Builder {
	b.readTimeout = &d
	return b
}

// Build snapshots the accumulated fields into an immutable Request. Maps
// are deep-copied so later builder mutation cannot reach into the built
// value. Unset scheme and method stay unset; the Request defaults them at
// read time.
func (b *Builder) Build() *Request {
	r := &Request{
		host:    b.host,
		port:    b.port,
		scheme:  b.scheme,
		method:  b.method,
		path:    b.path,
		params:  b.params.Clone(),
		headers: b.headers.Clone(),
		auth:    b.auth,
	}
	if b.body != nil {
		body := *b.body
		r.body = &body
	}
	if b.connectionTimeout != nil {
		d := *b.connectionTimeout
		r.connectionTimeout = &d
	}
	if b.readTimeout != nil {
		d := *b.readTimeout
		r.readTimeout = &d
	}
	return r
}
