// Package auth implements pluggable HTTP authentication schemes for
// request definitions. Schemes are registered in a Registry keyed on a
// type discriminator ("basic", "bearer", "apikey") and parse their own
// sub-document, so the request parser never branches on concrete scheme
// types.
//
// Credentials never appear in human-readable renderings: every scheme
// serializes its secret as the fixed Redacted marker when asked for a
// redacted document, and request display always uses the marker.
package auth
