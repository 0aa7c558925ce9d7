package ellipsedist

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrDegenerateProjection is returned by [Project] when λ equals a² or b²,
	// which would divide by zero.
	ErrDegenerateProjection = errors.New("degenerate projection")
	// ErrNoRoots is returned by [Ellipse.Distance] when no seed led to a
	// usable root.
	ErrNoRoots = errors.New("no roots found")
)

// FootTolerance is the largest |[Ellipse.Level]| of a foot that
// [Ellipse.Nearest] accepts as computed by [Ellipse.Project].
const FootTolerance = 1e-9

// Ellipse is an axis-aligned ellipse centered on the origin, with semi-axis A
// along x and semi-axis B along y.
type Ellipse struct {
	A, B float64
}

// NewEllipse returns the ellipse with semi-axes a and b.
func NewEllipse(a, b float64) Ellipse {
	// Since the ellipse is symmetric about the x and y axes, using absolute values for the
	// radii results in the same ellipse.
	return Ellipse{A: math.Abs(a), B: math.Abs(b)}
}

// Radii returns the two semi-axes of the ellipse.
func (e Ellipse) Radii() Vec2 {
	return Vec(e.A, e.B)
}

func (e Ellipse) Center() Point {
	return Point{}
}

func (e Ellipse) Area() float64 {
	return math.Pi * e.A * e.B
}

func (e Ellipse) BoundingBox() Rect {
	return Rect{X0: -e.A, Y0: -e.B, X1: e.A, Y1: e.B}
}

// Level returns (x/a)² + (y/b)² - 1, which is negative inside the ellipse,
// zero on it and positive outside.
func (e Ellipse) Level(pt Point) float64 {
	return Vec2(pt).Div(e.A, e.B).Hypot2() - 1
}

// Winding returns 1 for points strictly inside the ellipse and 0 otherwise.
func (e Ellipse) Winding(pt Point) int {
	if e.Level(pt) < 0 {
		return 1
	} else {
		return 0
	}
}

func (e Ellipse) Contains(pt Point) bool {
	return e.Winding(pt) != 0
}

// Eval returns the point of the ellipse at angle th, in radians, of its
// parametrization (a cos θ, b sin θ).
func (e Ellipse) Eval(th float64) Point {
	return Point(VecFromAngle(th).Mul(e.A, e.B))
}

// Points returns n points evenly spaced in parameter space, going once around
// the ellipse counter-clockwise (in a y-up space) starting at (a, 0).
func (e Ellipse) Points(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range n {
			if !yield(e.Eval(2 * math.Pi * float64(i) / float64(n))) {
				return
			}
		}
	}
}

// Quartic returns the polynomial in λ whose real roots are the Lagrange
// multipliers of the points of the ellipse that are stationary in distance to
// pt.
//
// It is obtained by substituting the foot of the normal, x = x0 / (1 - λ/a²)
// and y = y0 / (1 - λ/b²), into the equation of the ellipse and clearing the
// denominators.
func (e Ellipse) Quartic(pt Point) Quartic {
	a2 := e.A * e.A
	b2 := e.B * e.B
	a4 := a2 * a2
	b4 := b2 * b2
	x2 := pt.X * pt.X
	y2 := pt.Y * pt.Y
	return Quartic{
		1,
		-2*a2 - 2*b2,
		-x2*a2 - y2*b2 + 4*a2*b2 + a4 + b4,
		-2*b2*a4 - 2*a2*b4 + 2*x2*a2*b2 + 2*y2*b2*a2,
		-x2*a2*b4 - y2*b2*a4 + a4*b4,
	}
}

// Projection is the foot of the normal from a point to an ellipse.
type Projection struct {
	// Lambda is the root of [Ellipse.Quartic] the projection was computed
	// from.
	Lambda float64
	// Foot is the point on the ellipse.
	Foot Point
	// SignedDistance is the distance between the point and Foot. It is
	// positive if the point lies outside the ellipse, negative if it lies
	// inside and zero if it lies on the ellipse.
	SignedDistance float64
}

// Project computes the foot of the normal from (x0, y0) to the ellipse with
// semi-axes a and b, given a root λ of the ellipse's quartic. See
// [Ellipse.Project].
func Project(lambda, x0, y0, a, b float64) (Projection, error) {
	return NewEllipse(a, b).Project(lambda, Pt(x0, y0))
}

// Project computes the foot of the normal from pt to the ellipse, given a
// root λ of [Ellipse.Quartic]. The foot is (x0 / (1 - λ/a²), y0 / (1 - λ/b²)).
//
// It returns ErrDegenerateProjection if either denominator is zero, which
// happens for λ = a², λ = b² and for ellipses with a zero semi-axis.
//
// Project doesn't check that λ is a root. For other values the foot doesn't
// lie on the ellipse.
func (e Ellipse) Project(lambda float64, pt Point) (Projection, error) {
	dx := 1 - lambda/(e.A*e.A)
	dy := 1 - lambda/(e.B*e.B)
	if dx == 0 || dy == 0 || math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return Projection{}, fmt.Errorf("λ = %g on ellipse with radii %v: %w", lambda, e.Radii(), ErrDegenerateProjection)
	}
	foot := Pt(pt.X/dx, pt.Y/dy)
	return Projection{
		Lambda:         lambda,
		Foot:           foot,
		SignedDistance: sign(e.Level(pt)) * pt.Distance(foot),
	}, nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// DefaultSeeds returns the seeds that [Ellipse.Distance] uses when it isn't
// given any.
//
// The first one is min(a², b²) - max(a, b)·|pt|, which lies left of the
// smallest real root. That root belongs to the foot in the same quadrant as
// pt, which is the nearest one, and Newton's method approaches it without
// overshooting because the quartic is convex and decreasing left of it. The
// second one is ½(x0² + y0² - a² - b²). The others lie below, between and
// above the poles of the foot equation at a² and b², so that the remaining
// roots are reachable.
func (e Ellipse) DefaultSeeds(pt Point) []float64 {
	a2 := e.A * e.A
	b2 := e.B * e.B
	return []float64{
		min(a2, b2) - max(e.A, e.B)*Vec2(pt).Hypot(),
		0.5 * (Vec2(pt).Hypot2() - a2 - b2),
		0,
		0.5 * min(a2, b2),
		0.5 * (a2 + b2),
		2 * max(a2, b2),
	}
}

// Distance returns the projection of pt onto the ellipse that is closest to
// pt.
//
// It finds the roots of [Ellipse.Quartic] from the given seeds, or from
// [Ellipse.DefaultSeeds] if none are given, and picks the closest projection
// with [Ellipse.Nearest].
func (e Ellipse) Distance(pt Point, seeds ...float64) (Projection, error) {
	if len(seeds) == 0 {
		seeds = e.DefaultSeeds(pt)
	}
	return e.Nearest(pt, e.Quartic(pt).Roots(seeds))
}

// Nearest projects pt using each of the roots of [Ellipse.Quartic] and returns
// the projection with the smallest absolute distance. If no root remains, the
// error wraps ErrNoRoots.
//
// Only feet on the ellipse are considered, so the result is never closer than
// the true distance. A foot whose level exceeds [FootTolerance] is moved onto
// the ellipse if its root converged and dropped otherwise. This happens for
// roots at or near the poles a² and b², where one coordinate of the foot is
// ill-conditioned. Points on an axis have such a root exactly at a pole.
func (e Ellipse) Nearest(pt Point, roots []Root) (Projection, error) {
	s := sign(e.Level(pt))
	var best Projection
	found := false
	for _, root := range roots {
		proj, err := e.Project(root.Value, pt)
		if err != nil || !e.onEllipse(proj.Foot) {
			if root.Status != Converged {
				continue
			}
			foot, ok := e.snap(root.Value, pt)
			if !ok {
				continue
			}
			proj = Projection{
				Lambda:         root.Value,
				Foot:           foot,
				SignedDistance: s * pt.Distance(foot),
			}
		}
		if !found || math.Abs(proj.SignedDistance) < math.Abs(best.SignedDistance) {
			best = proj
			found = true
		}
	}
	if !found {
		return Projection{}, fmt.Errorf("distance from %v to ellipse with radii %v: %w", pt, e.Radii(), ErrNoRoots)
	}
	return best, nil
}

func (e Ellipse) onEllipse(pt Point) bool {
	return math.Abs(e.Level(pt)) <= FootTolerance
}

// snap returns the point of the ellipse on the same side of both axes as pt
// whose better-conditioned coordinate matches the foot of lambda. That is x
// if 1 - λ/a² is farther from zero than 1 - λ/b², and y otherwise.
func (e Ellipse) snap(lambda float64, pt Point) (Point, bool) {
	if !(e.A > 0 && e.B > 0) {
		return Point{}, false
	}
	dx := 1 - lambda/(e.A*e.A)
	dy := 1 - lambda/(e.B*e.B)
	var foot Point
	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			// Both are zero, so a = b = √λ.
			return Point{}, false
		}
		x := max(-e.A, min(e.A, pt.X/dx))
		u := x / e.A
		foot = Pt(x, math.Copysign(e.B*math.Sqrt(1-u*u), pt.Y))
	} else {
		y := max(-e.B, min(e.B, pt.Y/dy))
		v := y / e.B
		foot = Pt(math.Copysign(e.A*math.Sqrt(1-v*v), pt.X), y)
	}
	if foot.IsNaN() || foot.IsInf() {
		return Point{}, false
	}
	return foot, true
}
