package model

// DefaultStrict leaves parsing lenient: an unreadable term segment becomes
// the intercept instead of an error.
const DefaultStrict = false

// Option configures a Parser.
type Option func(*Options)

// Options holds the resolved parser configuration.
type Options struct {
	alphabet Alphabet // zero value means DefaultAlphabet
	strict   bool     // DefaultStrict
}

// WithAlphabet injects the letter set used to decode and render factors.
func WithAlphabet(a Alphabet) Option {
	return func(o *Options) { o.alphabet = a }
}

// WithStrict rejects non-blank term segments with no coefficient and no
// factor with a *ParseError. Blank segments remain the intercept.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithLenient restores the default silent fallback to the intercept.
func WithLenient() Option {
	return func(o *Options) { o.strict = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{alphabet: defaultAlphabet, strict: DefaultStrict}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.alphabet = o.alphabet.orDefault()

	return o
}
