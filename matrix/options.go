// SPDX-License-Identifier: MIT

// Package matrix - functional options shared by constructors and kernels.
//
// Three knobs exist, each with a Default* constant:
//   - eps: absolute tolerance of AllCloseWith.
//   - validateNaNInf: finite-only policy stamped on a Dense at creation.
//     Clone/CopyFrom/Move carry it; fresh kernel results inherit the policy of
//     their left operand.
//   - singularEps: |det| threshold of Inverse.
//
// WithX constructors panic on nonsensical values (negative or non-finite
// tolerances); that is a programmer error, not an input error.

package matrix

import "math"

// ---------- defaults ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllCloseWith.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	// Off by default: a Dense stores any float64, including values produced by
	// non-finite arithmetic.
	DefaultValidateNaNInf = false

	// DefaultSingularEpsilon is the |det| threshold below which Inverse reports
	// ErrSingular. Deliberately minuscule: only an algebraic zero or extreme
	// ill-conditioning trips it.
	DefaultSingularEpsilon = 1e-100

	// DefaultRows and DefaultCols are the shape produced by NewDefault.
	DefaultRows = 3
	DefaultCols = 3
)

// ---------- panic messages ----------

const (
	panicEpsilonInvalid         = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularEpsilonInvalid = "matrix: WithSingularEpsilon: eps must be finite, non-negative"
)

// Option is a functional setter applied on top of the defaults.
type Option func(*Options)

// Options is the resolved configuration. Read it through the getters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	singularEps    float64 // >= 0; DefaultSingularEpsilon
}

// Epsilon reports the resolved AllCloseWith tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// SingularEpsilon reports the resolved Inverse threshold.
func (o Options) SingularEpsilon() float64 { return o.singularEps }

// ---------- setters ----------

// WithEpsilon sets the absolute tolerance used by AllCloseWith.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables (true) or disables (false) strict finite-value
// validation on matrices created with this option.
//
// Behavior highlights:
//   - When enabled, Set/Apply/NewDenseFrom reject NaN and ±Inf with ErrNaNInf.
//   - Existing matrices keep their policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithSingularEpsilon overrides the |det| threshold used by Inverse.
// Panics when eps is negative, NaN or ±Inf.
//
// Notes:
//   - eps = 0 leaves only the unconditional guards in Inverse: an exact zero
//     or NaN determinant is always singular.
func WithSingularEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSingularEpsilonInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Exposed so callers can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the Default* values.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		singularEps:    DefaultSingularEpsilon,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order, so the last one for a field wins; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
