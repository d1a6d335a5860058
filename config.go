package jigsaw

import (
	"github.com/birdayz/jigsaw/kpiece"
	"github.com/go-logr/logr"
)

// DefaultName is the name of a composite created without WithName.
const DefaultName = "Composite"

// Option is a function that configures a Composite
type Option func(*config)

type config struct {
	name           string
	validateInputs bool
	log            logr.Logger

	// interceptors holds a []kpiece.Interceptor[V]; V is only known in New.
	interceptors any
}

// WithName sets the display name used in errors and logs
var WithName = func(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithValidateInputs makes Compute check, before invoking each component,
// that every input the component requires is present. Missing names are
// reported together in a kpiece.MissingInputError. Disabled by default, in
// which case a missing input fails inside the component at the point of use.
var WithValidateInputs = func(enabled bool) Option {
	return func(c *config) {
		c.validateInputs = enabled
	}
}

// WithLogr sets the logger. Construction is logged at V(1), each component
// computation at V(2).
var WithLogr = func(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithInterceptors wraps every component computation of the composite with
// the given interceptors. Option is not generic, so the value type is checked
// when the composite is built rather than at compile time: New returns
// ErrInvalidOption if V differs from the composite's value type.
func WithInterceptors[V any](interceptors ...kpiece.Interceptor[V]) Option {
	return func(c *config) {
		c.interceptors = interceptors
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		name: DefaultName,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
