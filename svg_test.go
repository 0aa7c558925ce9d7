package ellipsedist

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSVGPath(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	diff(t, "M0,0 L1,0 L1,1 Z", SVG(slices.Values(pts), true, SVGOptions{}))
	diff(t, "M0,0 L1,0 L1,1", SVG(slices.Values(pts), false, SVGOptions{}))
	diff(t, "", SVG(slices.Values([]Point(nil)), true, SVGOptions{}))
}

func TestSVGPrecision(t *testing.T) {
	pts := []Point{Pt(0.123456, 2.5), Pt(3, -0.0001)}
	diff(t, "M0.123,2.5 L3,0", SVG(slices.Values(pts), false, SVGOptions{MaxPrecision: 3}))
	diff(t, "M0.123456,2.5 L3,-0.0001", SVG(slices.Values(pts), false, SVGOptions{}))
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSVGWriteError(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0)}
	if err := WriteSVG(failingWriter{}, slices.Values(pts), true, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
	fig := Figure{Ellipse: NewEllipse(3, 2), Point: Pt(2, 1), Foot: Pt(2.2, 1.3)}
	if err := fig.WriteSVG(failingWriter{}, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestFigureSVG(t *testing.T) {
	e := NewEllipse(3, 2)
	proj, err := e.Distance(Pt(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	fig := Figure{Ellipse: e, Point: Pt(2, 1), Foot: proj.Foot, Samples: 100}
	buf := &bytes.Buffer{}
	if err := fig.WriteSVG(buf, SVGOptions{MaxPrecision: 4}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("not an SVG document:\n%s", out)
	}
	if n := strings.Count(out, "<path "); n != 2 {
		t.Errorf("got %d paths, want 2", n)
	}
	if n := strings.Count(out, "<circle "); n != 3 {
		t.Errorf("got %d circles, want 3", n)
	}
	// The ellipse starts at (3, 0) and y is flipped, so (0, 2) is drawn at
	// (0, -2).
	if !strings.Contains(out, `d="M3,0 L`) {
		t.Errorf("ellipse path doesn't start at (3, 0):\n%s", out)
	}
	if !strings.Contains(out, `cx="2" cy="-1"`) {
		t.Errorf("point isn't drawn at (2, -1):\n%s", out)
	}
}

func TestQuarticSVG(t *testing.T) {
	q := Quartic{1, 0, -5, 0, 4}
	roots := q.Roots([]float64{0.9, -3, 3, -1.2})
	buf := &bytes.Buffer{}
	if err := WriteQuarticSVG(buf, q, -3, 3, 200, roots, SVGOptions{MaxPrecision: 4}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<path "); n != 2 {
		t.Errorf("got %d paths, want 2", n)
	}
	if n := strings.Count(out, "<circle "); n != len(roots) {
		t.Errorf("got %d circles, want %d", n, len(roots))
	}
	if strings.Contains(out, "Inf") || strings.Contains(out, "NaN") {
		t.Errorf("output contains non-finite numbers:\n%s", out)
	}

	// A plot that overflows still produces finite output.
	buf.Reset()
	if err := WriteQuarticSVG(buf, Quartic{1, 0, 0, 0, 0}, -1e100, 1e100, 3, nil, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Inf") || strings.Contains(buf.String(), "NaN") {
		t.Errorf("output contains non-finite numbers:\n%s", buf.String())
	}

	// So does an empty range.
	for _, x := range []float64{0, 2} {
		buf.Reset()
		if err := WriteQuarticSVG(buf, q, x, x, 10, roots, SVGOptions{MaxPrecision: 4}); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "Inf") || strings.Contains(buf.String(), "NaN") {
			t.Errorf("range [%v, %v]: output contains non-finite numbers:\n%s", x, x, buf.String())
		}
	}
}
