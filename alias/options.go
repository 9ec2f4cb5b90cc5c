package alias

import (
	"log/slog"
	"math"

	"github.com/Ni2M/dexpy/expand"
	"github.com/Ni2M/dexpy/model"
)

// Numeric policy defaults.
const (
	// DefaultAbsoluteTolerance is the float64 machine epsilon (2⁻⁵²).
	DefaultAbsoluteTolerance = 2.220446049250313e-16

	// DefaultRelativeTolerance adds nothing on top of the absolute tolerance.
	DefaultRelativeTolerance = 0.0

	// DefaultCoefficientDigits is the number of significant digits shown for
	// alias coefficients.
	DefaultCoefficientDigits = 12
)

const (
	panicToleranceInvalid = "alias: WithTolerance: tol must be finite, non-negative"
	panicRelativeInvalid  = "alias: WithRelativeTolerance: rel must be finite, non-negative"
	panicDigitsInvalid    = "alias: WithCoefficientDigits: digits must be positive or -1"
)

// Option configures an Analyzer.
type Option func(*Options)

// Options holds the resolved analyzer configuration.
type Options struct {
	tol        Tolerance
	digits     int
	logger     *slog.Logger
	parserOpts []model.Option
	expandOpts []expand.Option
}

// Tolerance is the numeric policy shared by the basis and coefficient tests.
//
//   - a column enters the basis when |U[j,j]| > Absolute + Relative·max|M|;
//   - a coefficient is zero when |c| < Absolute + Relative;
//   - a coefficient is one when |c−1| <= Absolute + Relative.
//
// Coefficients are ratios between columns, so the relative part is applied
// to them unscaled.
type Tolerance struct {
	Absolute float64
	Relative float64
}

// pivot returns the basis threshold for a model matrix whose largest
// absolute entry is scale.
func (t Tolerance) pivot(scale float64) float64 { return t.Absolute + t.Relative*scale }

// coefficient returns the threshold for the zero and one tests.
func (t Tolerance) coefficient() float64 { return t.Absolute + t.Relative }

// WithTolerance sets the absolute tolerance. Panics unless tol is finite and ≥ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol.Absolute = tol }
}

// WithRelativeTolerance sets the relative tolerance. Panics unless rel is
// finite and ≥ 0.
func WithRelativeTolerance(rel float64) Option {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		panic(panicRelativeInvalid)
	}

	return func(o *Options) { o.tol.Relative = rel }
}

// WithCoefficientDigits sets the significant digits used when rendering alias
// coefficients; -1 renders the shortest exact representation.
func WithCoefficientDigits(digits int) Option {
	if digits == 0 || digits < -1 {
		panic(panicDigitsInvalid)
	}

	return func(o *Options) { o.digits = digits }
}

// WithLogger sets the diagnostics logger. nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithParserOptions forwards options to model parsing in List.
func WithParserOptions(opts ...model.Option) Option {
	return func(o *Options) { o.parserOpts = append(o.parserOpts, opts...) }
}

// WithExpandOptions forwards options to model-matrix expansion in List.
func WithExpandOptions(opts ...expand.Option) Option {
	return func(o *Options) { o.expandOpts = append(o.expandOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:    Tolerance{Absolute: DefaultAbsoluteTolerance, Relative: DefaultRelativeTolerance},
		digits: DefaultCoefficientDigits,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
