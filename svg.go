package ellipsedist

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG], [WriteSVG] and the
// functions that write whole SVG documents.
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of points to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Point], closed bool, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, closed, opts)
	return sb.String()
}

// WriteSVG converts a sequence of points to a string of SVG path commands and
// writes it to w. The first point starts the path, every other point adds a
// line to it. If closed is true, the path is closed.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[Point], closed bool, opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for pt := range seq {
		if err != nil {
			return err
		}
		if first {
			writef("M%s,%s", opts.format(pt.X), opts.format(pt.Y))
		} else {
			write(space)
			writef("L%s,%s", opts.format(pt.X), opts.format(pt.Y))
		}
		first = false
	}
	if closed && !first {
		write(space)
		write(z)
	}
	return err
}

// svgWriter writes SVG elements, remembering the first error.
type svgWriter struct {
	w    io.Writer
	opts SVGOptions
	err  error
}

func (sw *svgWriter) printf(s string, v ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, s, v...)
}

func (sw *svgWriter) open(viewBox Rect) {
	sw.printf(`<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="%s">`+"\n",
		sw.opts.format(viewBox.X0), sw.opts.format(viewBox.Y0),
		sw.opts.format(viewBox.Width()), sw.opts.format(viewBox.Height()),
		"xMidYMid meet")
}

func (sw *svgWriter) close() {
	sw.printf("</svg>\n")
}

func (sw *svgWriter) path(seq iter.Seq[Point], closed bool, stroke string) {
	if sw.err != nil {
		return
	}
	sw.printf(`<path d="`)
	if sw.err == nil {
		sw.err = WriteSVG(sw.w, seq, closed, sw.opts)
	}
	sw.printf(`" fill="none" stroke="%s" stroke-width="1" vector-effect="non-scaling-stroke" />`+"\n", stroke)
}

func (sw *svgWriter) dot(pt Point, r float64, fill string) {
	sw.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s" />`+"\n",
		sw.opts.format(pt.X), sw.opts.format(pt.Y), sw.opts.format(r), fill)
}

// points returns a sequence over pts with y flipped for SVG.
func points(pts ...Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, pt := range pts {
			if !yield(pt.FlipY()) {
				return
			}
		}
	}
}

func flipped(seq iter.Seq[Point]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for pt := range seq {
			if !yield(pt.FlipY()) {
				return
			}
		}
	}
}

// Figure is an ellipse, a point and the point's projection onto the ellipse.
type Figure struct {
	Ellipse Ellipse
	Point   Point
	Foot    Point
	// Samples is the number of points used to draw the ellipse. If it is
	// zero, 1000 points are used.
	Samples int
}

// WriteSVG writes the figure as a complete SVG document. Coordinates are in
// the figure's own units, with y pointing up. The drawing is surrounded by a
// margin of 20% of its larger half-extent.
func (f Figure) WriteSVG(w io.Writer, opts SVGOptions) error {
	n := f.Samples
	if n <= 0 {
		n = 1000
	}
	box := f.Ellipse.BoundingBox().UnionPoint(f.Point).UnionPoint(f.Foot)
	margin := 0.2 * max(f.Ellipse.A, f.Ellipse.B, box.Width()/2, box.Height()/2)
	box = box.Inflate(margin, margin)
	// Flip the box along with the geometry.
	view := NewRectFromPoints(Pt(box.X0, box.Y0).FlipY(), Pt(box.X1, box.Y1).FlipY())
	r := 0.01 * max(view.Width(), view.Height())

	sw := &svgWriter{w: w, opts: opts}
	sw.open(view)
	sw.path(flipped(f.Ellipse.Points(n)), true, "blue")
	sw.path(points(f.Point, f.Foot), false, "gray")
	sw.dot(f.Ellipse.Center().FlipY(), r, "red")
	sw.dot(f.Point.FlipY(), r, "green")
	sw.dot(f.Foot.FlipY(), r, "green")
	sw.close()
	return sw.err
}

// WriteQuarticSVG plots q over [x0, x1] as a complete SVG document, using the
// given number of samples, with a line along the x axis and a marker at each
// of the roots. The plot is scaled to fit, so x and y units differ.
func WriteQuarticSVG(w io.Writer, q Quartic, x0, x1 float64, samples int, roots []Root, opts SVGOptions) error {
	if samples < 2 {
		samples = 2
	}
	pts := make([]Point, samples)
	box := Rect{X0: x0, Y0: 0, X1: x1, Y1: 0}.Abs()
	for i := range pts {
		x := x0 + (x1-x0)*float64(i)/float64(samples-1)
		pts[i] = Pt(x, q.Eval(x))
		if !pts[i].IsInf() && !pts[i].IsNaN() {
			box = box.UnionPoint(pts[i])
		}
	}
	if box.Width() == 0 {
		box = box.Inflate(1, 0)
	}
	if box.Height() == 0 {
		box = box.Inflate(0, 1)
	}
	box = box.Inflate(0.05*box.Width(), 0.05*box.Height())

	// Normalize the plot to a unit-height box, keeping the aspect ratio of a
	// typical figure.
	sx := 1.6 / box.Width()
	sy := 1.0 / box.Height()
	scale := func(pt Point) Point {
		return Pt((pt.X-box.X0)*sx, (pt.Y-box.Y0)*sy)
	}
	view := NewRectFromPoints(scale(Pt(box.X0, box.Y0)).FlipY(), scale(Pt(box.X1, box.Y1)).FlipY())

	sw := &svgWriter{w: w, opts: opts}
	sw.open(view)
	sw.path(points(scale(Pt(box.X0, 0)), scale(Pt(box.X1, 0))), false, "red")
	sw.path(func(yield func(Point) bool) {
		for _, pt := range pts {
			if pt.IsInf() || pt.IsNaN() {
				continue
			}
			if !yield(scale(pt).FlipY()) {
				return
			}
		}
	}, false, "blue")
	for _, root := range roots {
		sw.dot(scale(Pt(root.Value, 0)).FlipY(), 0.01, "green")
	}
	sw.close()
	return sw.err
}
