package ellipsedist_test

import (
	"fmt"

	"github.com/geomkit/ellipsedist"
)

func ExampleEllipse_Distance() {
	e := ellipsedist.NewEllipse(3, 2)
	proj, err := e.Distance(ellipsedist.Pt(2, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("foot: (%.6f, %.6f)\n", proj.Foot.X, proj.Foot.Y)
	fmt.Printf("signed distance: %.6f\n", proj.SignedDistance)
	// Output:
	// foot: (2.245510, 1.326262)
	// signed distance: -0.408316
}

func ExampleQuartic_Roots() {
	// (x² - 1)(x² - 4)
	q := ellipsedist.Quartic{1, 0, -5, 0, 4}
	for _, root := range q.Roots([]float64{0.9, 1.1, -3, 3, -1.2}) {
		fmt.Printf("%.6f %s\n", root.Value, root.Status)
	}
	// Output:
	// 1.000000 converged
	// -2.000000 converged
	// 2.000000 converged
	// -1.000000 converged
}

func ExampleQuartic_Newton() {
	// x³ - 2x + 2 has a root near -1.77, but Newton's method started at 0
	// cycles between 0 and 1.
	q := ellipsedist.Quartic{0, 1, 0, -2, 2}
	res := q.NewtonOpt(0, ellipsedist.DefaultEpsilon, 4)
	fmt.Println(res.Status, res.Iterations, res.Trace)

	res = q.Newton(-2)
	fmt.Printf("%s %.6f\n", res.Status, res.Root)
	// Output:
	// exhausted 4 [0 1 0 1 0]
	// converged -1.769292
}
