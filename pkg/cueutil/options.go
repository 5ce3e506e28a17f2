// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize bounds the size of any CUE document read from disk.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

type (
	// Option customises a Decode call.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
	}
}

// WithFilename sets the filename reported in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithConcrete requires every value to be concrete after unification.
// Required fields (`name!:`) are only enforced in concrete mode.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}
