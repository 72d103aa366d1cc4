// Package input defines the inputs a watch can load its payload from.
//
// An input is declared in a definition document as a tagged object,
// {"<type>": {...}}, resolved through a Registry of input parsers. Two
// inputs are built in: "simple" returns its literal sub-document as the
// payload, "http" executes an HTTP request and builds the payload from the
// response body, optionally narrowed to a set of extract paths.
package input
