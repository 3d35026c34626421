// Package coerce converts loosely-typed scalar values into canonical target
// representations: binary octet strings, booleans, base64 byte strings, dates,
// date-times, integers, numbers and strings. Every operation is pure and
// stateless, and returns a tagged Result carrying either the converted value
// or a descriptive error, never both.
package coerce
