// Package value renders arbitrary values into human-readable text for use in
// error messages.
package value
