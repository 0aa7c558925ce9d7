package ellipsedist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCoefficientCount is returned by [NewQuartic] when it isn't given exactly
// five coefficients.
var ErrCoefficientCount = errors.New("quartic needs exactly 5 coefficients")

// Quartic is a polynomial of degree at most four, stored as the coefficients
// [a4, a3, a2, a1, a0] of a4 x⁴ + a3 x³ + a2 x² + a1 x + a0.
//
// The leading coefficient comes first, as the polynomial is usually written.
type Quartic [5]float64

// NewQuartic returns the quartic with the given coefficients, highest degree
// first.
func NewQuartic(coeffs []float64) (Quartic, error) {
	if len(coeffs) != len(Quartic{}) {
		return Quartic{}, fmt.Errorf("got %d coefficients: %w", len(coeffs), ErrCoefficientCount)
	}
	return Quartic(coeffs), nil
}

// Eval evaluates the polynomial at x.
//
// The powers are computed directly rather than with Horner's scheme, so that
// results match the closed-form expression term for term. Overflow propagates
// as infinities.
func (q Quartic) Eval(x float64) float64 {
	a4, a3, a2, a1, a0 := q[0], q[1], q[2], q[3], q[4]
	return a4*x*x*x*x + a3*x*x*x + a2*x*x + a1*x + a0
}

// Deriv evaluates the first derivative of the polynomial at x, 4a4 x³ + 3a3 x²
// + 2a2 x + a1.
func (q Quartic) Deriv(x float64) float64 {
	a4, a3, a2, a1 := q[0], q[1], q[2], q[3]
	return 4*a4*x*x*x + 3*a3*x*x + 2*a2*x + a1
}

// Derivative returns the coefficients of the first derivative. The result
// always has a zero leading coefficient.
func (q Quartic) Derivative() Quartic {
	return Quartic{0, 4 * q[0], 3 * q[1], 2 * q[2], q[3]}
}

// Degree returns the degree of the polynomial, ignoring zero leading
// coefficients. The zero polynomial has degree 0.
func (q Quartic) Degree() int {
	for i, c := range q {
		if c != 0 {
			return len(q) - 1 - i
		}
	}
	return 0
}

func (q Quartic) String() string {
	sb := &strings.Builder{}
	for i, c := range q {
		deg := len(q) - 1 - i
		if c == 0 && !(deg == 0 && sb.Len() == 0) {
			continue
		}
		switch {
		case sb.Len() == 0:
			if c < 0 {
				sb.WriteString("-")
			}
		case c < 0:
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 || deg == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch deg {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(deg))
		}
	}
	return sb.String()
}
