package structures

import "strconv"

// DefaultCapacity is the capacity of bounded containers created without WithCapacity.
const DefaultCapacity = 10

// Option is a container configuration option.
type Option interface {
	apply(*Options)
}

// Options is the resolved configuration of a bounded container.
type Options struct {
	Capacity int
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		Capacity: DefaultCapacity,
	}

	for _, opt := range opts {
		opt.apply(&o)
	}

	return o
}

// WithCapacity option configures a bounded container with specified capacity.
//
// The capacity must be positive.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *Options) {
		if capacity <= 0 {
			panic("structures: invalid capacity " + strconv.Itoa(capacity))
		}
		opts.Capacity = capacity
	})
}

type funcOption func(*Options)

func (o funcOption) apply(opts *Options) {
	o(opts)
}
