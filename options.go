// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

// Option configures an Encoder, Decoder or Codec.
type Option func(*options)

type options struct {
	resolver NamespaceResolver
	exts     *Extensions
	maxDepth int
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithResolver sets the registry symbols are resolved against when decoding.
// Without one every decoded symbol fails with ErrUnknownNamespace.
func WithResolver(r NamespaceResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithExtensions installs host defined tagged types.
func WithExtensions(x *Extensions) Option {
	return func(o *options) {
		o.exts = x
	}
}

// WithMaxDepth limits how deep values may nest. Zero, the default, means no limit.
// Cyclic values are never detected, with or without a limit they just fail differently.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}
