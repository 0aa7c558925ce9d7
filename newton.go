package ellipsedist

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultEpsilon is the default tolerance of [Quartic.Newton], used both
	// for |f(x)| and for the size of a step.
	DefaultEpsilon = 1e-10
	// DefaultMaxIterations is the default iteration budget of
	// [Quartic.Newton].
	DefaultMaxIterations = 100
)

// ErrZeroDerivative is reported by [NewtonResult.Err] when Newton's method
// stopped because the derivative was exactly zero.
var ErrZeroDerivative = errors.New("zero derivative")

// NewtonStatus describes how a run of Newton's method ended.
type NewtonStatus uint8

const (
	// Converged means that either |f(x)| or the last step fell below the
	// tolerance.
	Converged NewtonStatus = iota
	// Exhausted means that the iteration budget ran out. The result holds the
	// last iterate, which may or may not be close to a root.
	Exhausted
	// ZeroDerivative means that f'(x) was exactly zero and no step could be
	// taken. The result holds no root.
	ZeroDerivative
)

func (s NewtonStatus) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case ZeroDerivative:
		return "zero derivative"
	default:
		return fmt.Sprintf("NewtonStatus(%d)", uint8(s))
	}
}

// NewtonResult is the outcome of one run of Newton's method.
type NewtonResult struct {
	// Root is the final iterate. It is NaN if Status is ZeroDerivative.
	Root float64
	// Iterations is the number of iterations that were started.
	Iterations int
	Status     NewtonStatus
	// Trace contains every iterate, starting with the seed.
	Trace []float64
}

// Err returns ErrZeroDerivative if the run failed and nil otherwise. An
// exhausted run isn't an error.
func (r NewtonResult) Err() error {
	if r.Status == ZeroDerivative {
		return fmt.Errorf("newton from %g, iteration %d: %w", r.seed(), r.Iterations, ErrZeroDerivative)
	}
	return nil
}

func (r NewtonResult) seed() float64 {
	if len(r.Trace) == 0 {
		return math.NaN()
	}
	return r.Trace[0]
}

// Newton is like [Quartic.NewtonOpt] with [DefaultEpsilon] and
// [DefaultMaxIterations].
func (q Quartic) Newton(seed float64) NewtonResult {
	return q.NewtonOpt(seed, DefaultEpsilon, DefaultMaxIterations)
}

// NewtonOpt looks for a root of q using Newton-Raphson iteration, starting at
// seed.
//
// Each iteration first checks |f(x)| < epsilon and then takes the step
// x - f(x)/f'(x), stopping when the step is shorter than epsilon. A derivative
// of exactly zero ends the run with status [ZeroDerivative]; no other seed is
// tried. If neither check fires within maxIterations iterations, the last
// iterate is returned with status [Exhausted] and Iterations set to
// maxIterations.
//
// Convergence is only local: the root that is found, if any, depends on the
// seed.
func (q Quartic) NewtonOpt(seed, epsilon float64, maxIterations int) NewtonResult {
	x := seed
	trace := []float64{seed}
	for i := range maxIterations {
		f := q.Eval(x)
		if math.Abs(f) < epsilon {
			return NewtonResult{Root: x, Iterations: i + 1, Status: Converged, Trace: trace}
		}
		df := q.Deriv(x)
		if df == 0 {
			return NewtonResult{Root: math.NaN(), Iterations: i + 1, Status: ZeroDerivative, Trace: trace}
		}
		next := x - f/df
		trace = append(trace, next)
		if math.Abs(next-x) < epsilon {
			return NewtonResult{Root: next, Iterations: i + 1, Status: Converged, Trace: trace}
		}
		x = next
	}
	return NewtonResult{Root: x, Iterations: max(maxIterations, 0), Status: Exhausted, Trace: trace}
}
