package expand

import "github.com/Ni2M/dexpy/model"

// DefaultInterceptName names the column generated for the intercept term.
const DefaultInterceptName = "Intercept"

const panicInterceptNameEmpty = "expand: WithInterceptName: name must not be empty"

// Option configures ModelMatrix.
type Option func(*Options)

// Options holds the resolved expansion configuration.
type Options struct {
	alphabet      model.Alphabet
	positional    bool
	interceptName string
}

// WithAlphabet sets the alphabet used to name design columns and model terms.
func WithAlphabet(a model.Alphabet) Option {
	return func(o *Options) { o.alphabet = a }
}

// WithPositionalFactors binds variable id k to design column k, ignoring names.
func WithPositionalFactors() Option {
	return func(o *Options) { o.positional = true }
}

// WithNamedFactors binds variables to design columns by name (the default).
func WithNamedFactors() Option {
	return func(o *Options) { o.positional = false }
}

// WithInterceptName renames the intercept column. Panics on an empty name.
func WithInterceptName(name string) Option {
	if name == "" {
		panic(panicInterceptNameEmpty)
	}

	return func(o *Options) { o.interceptName = name }
}

func gatherOptions(opts ...Option) Options {
	o := Options{alphabet: model.DefaultAlphabet(), interceptName: DefaultInterceptName}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
