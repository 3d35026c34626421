package coerce

import (
	"github.com/pkg/errors"
)

// Result is the tagged outcome of a coercion: exactly one of Value and Error
// is populated.
type Result struct {
	Value interface{} `json:"value,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Ok reports whether the coercion succeeded.
func (r Result) Ok() bool {
	return r.Error == ""
}

// Err exposes a failed result as an error; it returns nil on success.
func (r Result) Err() error {
	if r.Error == "" {
		return nil
	}
	return errors.New(r.Error)
}

func success(v interface{}) Result {
	return Result{Value: v}
}

func failure(err error) Result {
	return Result{Error: err.Error()}
}
