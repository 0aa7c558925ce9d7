// Package ellipsedist computes the signed distance from a point to an ellipse.
//
// # Method
//
// The closest point on an ellipse with semi-axes a and b to a point (x0, y0)
// is a stationary point of the squared distance under the constraint
// (x/a)² + (y/b)² = 1. With a Lagrange multiplier λ, such points are the feet
// of the normals through (x0, y0):
//
//	x = x0 / (1 - λ/a²)
//	y = y0 / (1 - λ/b²)
//
// Substituting them into the equation of the ellipse and clearing the
// denominators yields a quartic in λ (see [Ellipse.Quartic]). Every real root
// of the quartic gives one foot, and [Ellipse.Project] turns a root into that
// foot and the signed distance to it. [Ellipse.Distance] combines the steps
// and picks the closest foot. The smallest real root gives the foot in the
// point's quadrant, which is the closest one, and [Ellipse.DefaultSeeds]
// starts with a seed that leads to it.
//
// # Root finding
//
// Roots are found with Newton-Raphson iteration ([Quartic.Newton]) from
// seeds chosen by the caller. Convergence is local: a seed leads to at most
// one root, and no seed is guaranteed to lead to any. [Quartic.Roots] runs the
// method from several seeds and removes duplicates. A run reports whether it
// converged, ran out of iterations or hit a zero derivative (see
// [NewtonStatus]).
//
// Complex roots are never found and polynomials of other degrees are out of
// scope, except where leading coefficients are zero.
//
// # Coordinates
//
// Geometry uses a y-up coordinate system with the ellipse centered on the
// origin. The SVG output ([Figure.WriteSVG], [WriteQuarticSVG]) flips y so
// that drawings appear the way they would on paper.
package ellipsedist
