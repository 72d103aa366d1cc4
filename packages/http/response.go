package http

import (
	"net/http"
	"strings"
)

// Response is the outcome of executing a Request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       string
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsJSON reports whether the response declares a JSON content type.
func (r *Response) IsJSON() bool {
	ct := r.Headers.Get("Content-Type")
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}
