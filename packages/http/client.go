package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultConnectTimeout is used when a request carries no
	// connection_timeout of its own.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout is used when a request carries no read_timeout
	// of its own.
	DefaultReadTimeout = 30 * time.Second
)

// Client executes built Requests. It is deliberately thin: timeouts come
// from the request (with client-level defaults), auth is applied through
// the request's descriptor, and nothing else is configurable here.
type Client struct {
	httpClient     *http.Client
	connectTimeout time.Duration
	readTimeout    time.Duration
}

type ClientOption func(*Client)

// WithConnectTimeout sets the default connection timeout.
func WithConnectTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.connectTimeout = d
	}
}

// WithReadTimeout sets the default read timeout.
func WithReadTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.readTimeout = d
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: c.connectTimeout}).DialContext,
		},
	}
	return c
}

// Do executes the request and reads the full response body. The request's
// read timeout bounds the whole exchange via the context deadline; its
// connection timeout bounds dialing.
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	readTimeout := c.readTimeout
	if d, ok := r.ReadTimeout(); ok {
		readTimeout = d
	}
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(r.Method().String()), c.url(r), strings.NewReader(r.Body()))
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s: %w", r, err)
	}
	for _, k := range r.Headers().Keys() {
		v, _ := r.Headers().Get(k)
		req.Header.Set(k, v)
	}
	if a := r.Auth(); a != nil {
		a.Apply(req)
	}

	client := c.httpClient
	if d, ok := r.ConnectionTimeout(); ok {
		client = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: d}).DialContext,
			},
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not execute %s: %w", r, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response for %s: %w", r, err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       string(body),
	}, nil
}

// url assembles the target URL from scheme, host, port, path and params.
func (c *Client) url(r *Request) string {
	u := neturl.URL{
		Scheme: r.Scheme().String(),
		Host:   net.JoinHostPort(r.Host(), strconv.Itoa(r.Port())),
		Path:   r.Path(),
	}
	if r.Params().Len() > 0 {
		q := neturl.Values{}
		for _, k := range r.Params().Keys() {
			v, _ := r.Params().Get(k)
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}
