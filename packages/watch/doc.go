// Package watch loads watch definitions: a named input plus an optional
// webhook request fired with the input's payload, declared in a JSON or
// YAML document. YAML documents are converted to JSON before parsing so a
// single token-level parser covers both; {{NAME}} placeholders are
// resolved from the environment before the document is parsed.
package watch
