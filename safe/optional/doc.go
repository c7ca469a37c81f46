// Package optional provides a generic present/absent container for operation results.
//
// An Optional either carries exactly one value ("present") or carries nothing
// ("absent"). The zero value is absent, so an Optional field or variable is safe
// to use without initialization.
//
// Use this package when absence is a normal, expected outcome rather than an
// error, so callers are forced by the type to handle both variants.
package optional
