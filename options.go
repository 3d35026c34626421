package coerce

import "github.com/viant/coerce/format/value"

// Options contains coercion configuration.
type Options struct {
	// TimeLayouts lists additional layouts accepted by DateTime beyond the
	// built-in date-time and date-only patterns.
	TimeLayouts []string
	// DescribeLimit caps the rendered form of an offending value in error
	// messages.
	DescribeLimit int
}

// Option adjusts coercion options.
type Option func(o *Options)

// WithTimeLayout registers an additional date-time input layout.
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.TimeLayouts = append(o.TimeLayouts, layout)
	}
}

// WithDescribeLimit caps rendered values in error messages.
func WithDescribeLimit(limit int) Option {
	return func(o *Options) {
		o.DescribeLimit = limit
	}
}

func newOptions(opts []Option) Options {
	result := Options{DescribeLimit: value.DefaultLimit}
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
