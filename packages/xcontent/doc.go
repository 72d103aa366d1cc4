// Package xcontent provides the structured document primitives the rest of
// watchhook is built on: a pull-based token stream over JSON documents, an
// ordered-field document writer, insertion-ordered maps, dotted-key
// flattening, and duration parsing for timeout fields.
//
// Definitions are parsed token by token rather than decoded into untyped
// maps so that malformed documents fail at the exact field and token that
// is wrong, with the field name attached to the error.
package xcontent
