package ellipsedist

import (
	"math"
	"runtime"
	"sync"
)

// RootTolerance is the absolute distance below which two roots found by
// [Quartic.Roots] are considered the same root.
const RootTolerance = 1e-8

// Root is a root of a polynomial, as found by Newton's method.
type Root struct {
	Value float64
	// Iterations is the number of iterations of the run that first found the
	// root.
	Iterations int
	// Status is either Converged or Exhausted.
	Status NewtonStatus
}

// Roots is like [Quartic.RootsOpt] with [DefaultEpsilon] and
// [DefaultMaxIterations].
func (q Quartic) Roots(seeds []float64) []Root {
	return q.RootsOpt(seeds, DefaultEpsilon, DefaultMaxIterations)
}

// RootsOpt runs Newton's method from each seed, in order, and collects the
// distinct roots.
//
// Runs that end with [ZeroDerivative], or with a non-finite value, don't
// contribute a root. A root that lies within [RootTolerance] of an already
// collected root is dropped, so the first seed to find a root wins. The
// result is in seed order, not sorted by value, and is empty if every run
// failed.
//
// Finding every real root depends entirely on the choice of seeds.
func (q Quartic) RootsOpt(seeds []float64, epsilon float64, maxIterations int) []Root {
	var roots []Root
	for _, seed := range seeds {
		roots = mergeRoot(roots, q.NewtonOpt(seed, epsilon, maxIterations))
	}
	return roots
}

// RootsConcurrent is like [Quartic.RootsConcurrentOpt] with [DefaultEpsilon]
// and [DefaultMaxIterations].
func (q Quartic) RootsConcurrent(seeds []float64, workers int) []Root {
	return q.RootsConcurrentOpt(seeds, DefaultEpsilon, DefaultMaxIterations, workers)
}

// RootsConcurrentOpt is like [Quartic.RootsOpt] but runs Newton's method for
// different seeds in parallel, on up to workers goroutines. If workers is not
// positive, runtime.GOMAXPROCS(0) is used.
//
// The result is identical to that of [Quartic.RootsOpt]: runs are merged in
// seed order once all of them have finished.
func (q Quartic) RootsConcurrentOpt(seeds []float64, epsilon float64, maxIterations, workers int) []Root {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(seeds))

	results := make([]NewtonResult, len(seeds))
	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				results[i] = q.NewtonOpt(seeds[i], epsilon, maxIterations)
			}
		}()
	}
	for i := range seeds {
		next <- i
	}
	close(next)
	wg.Wait()

	var roots []Root
	for _, res := range results {
		roots = mergeRoot(roots, res)
	}
	return roots
}

func mergeRoot(roots []Root, res NewtonResult) []Root {
	if res.Status == ZeroDerivative || math.IsNaN(res.Root) || math.IsInf(res.Root, 0) {
		return roots
	}
	for _, r := range roots {
		if math.Abs(r.Value-res.Root) < RootTolerance {
			return roots
		}
	}
	return append(roots, Root{
		Value:      res.Root,
		Iterations: res.Iterations,
		Status:     res.Status,
	})
}
