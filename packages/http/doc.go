// Package http models outbound HTTP requests for watchhook definitions.
//
// A Request is an immutable value describing a call (host, port, scheme,
// method, path, params, headers, auth, body, timeouts). Requests are
// assembled through a Builder and reconstructed from definition documents
// by a RequestParser, which validates every field at the token level and
// produces field-scoped errors. A thin Client executes a built Request.
//
// Validation happens once, at parse time: a malformed request definition
// can never reach execution.
package http
