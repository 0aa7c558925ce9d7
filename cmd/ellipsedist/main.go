// Command ellipsedist computes the signed distance from a point to an ellipse
// and draws the result.
//
// It prints the roots of the ellipse's quartic that Newton's method finds from
// the configured seeds, the value of the quartic at each root and the signed
// distance, then writes an SVG of the ellipse with the point and its
// projection and an SVG plot of the quartic.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/geomkit/ellipsedist"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ellipsedist: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config FILE] [flags]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nFlags override values from the configuration file.\n\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -a 3 -b 2 -x 5 -y 4 -seeds -4,2,3,4,5\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config ellipse.yaml -figure out.svg\n", os.Args[0])
	}
	configPath := flag.String("config", "", "YAML configuration `file`")
	a := flag.Float64("a", 0, "semi-axis along x")
	b := flag.Float64("b", 0, "semi-axis along y")
	x := flag.Float64("x", 0, "x coordinate of the point")
	y := flag.Float64("y", 0, "y coordinate of the point")
	seeds := flag.String("seeds", "", "comma-separated seeds for Newton's method")
	figure := flag.String("figure", "", "write the ellipse figure to this SVG `file`")
	poly := flag.String("poly", "", "write the plot of the quartic to this SVG `file`")
	workers := flag.Int("workers", -1, "number of goroutines running seeds, 0 for one per CPU")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Ellipse.A = *a
		case "b":
			cfg.Ellipse.B = *b
		case "x":
			cfg.Point.X = *x
		case "y":
			cfg.Point.Y = *y
		case "seeds":
			s, err := parseSeeds(*seeds)
			if err != nil {
				log.Fatal(err)
			}
			cfg.Seeds = s
		case "figure":
			cfg.Output.Figure = *figure
		case "poly":
			cfg.Output.Polynomial = *poly
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	w := bufio.NewWriter(os.Stdout)
	res, err := run(w, cfg)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatal(err)
	}

	if path := cfg.Output.Figure; path != "" {
		fig := ellipsedist.Figure{
			Ellipse: res.ellipse,
			Point:   res.point,
			Foot:    res.projection.Foot,
		}
		if err := writeFile(path, func(w io.Writer) error {
			return fig.WriteSVG(w, ellipsedist.SVGOptions{MaxPrecision: cfg.Output.Precision})
		}); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
	if path := cfg.Output.Polynomial; path != "" {
		r := cfg.Output.Range
		if err := writeFile(path, func(w io.Writer) error {
			return ellipsedist.WriteQuarticSVG(w, res.quartic, r[0], r[1], cfg.Output.Samples, res.roots,
				ellipsedist.SVGOptions{MaxPrecision: cfg.Output.Precision})
		}); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
}

type result struct {
	ellipse    ellipsedist.Ellipse
	point      ellipsedist.Point
	quartic    ellipsedist.Quartic
	roots      []ellipsedist.Root
	projection ellipsedist.Projection
}

// run finds the roots and the closest projection and reports them to w.
func run(w io.Writer, cfg Config) (result, error) {
	e := ellipsedist.NewEllipse(cfg.Ellipse.A, cfg.Ellipse.B)
	pt := ellipsedist.Pt(cfg.Point.X, cfg.Point.Y)
	q := e.Quartic(pt)
	seeds := cfg.Seeds
	if len(seeds) == 0 {
		seeds = e.DefaultSeeds(pt)
	}

	var roots []ellipsedist.Root
	if cfg.Workers == 1 {
		roots = q.RootsOpt(seeds, cfg.Epsilon, cfg.MaxIterations)
	} else {
		roots = q.RootsConcurrentOpt(seeds, cfg.Epsilon, cfg.MaxIterations, cfg.Workers)
	}

	fmt.Fprintf(w, "f(λ) = %v\n", q)
	fmt.Fprintf(w, "roots found:\n")
	for _, root := range roots {
		fmt.Fprintf(w, "λ = %.10f (%s in %d iterations)\n", root.Value, root.Status, root.Iterations)
		fmt.Fprintf(w, "f(λ) = %.15f\n", q.Eval(root.Value))
	}

	proj, err := e.Nearest(pt, roots)
	if err != nil {
		return result{}, err
	}
	fmt.Fprintf(w, "foot: %v\n", proj.Foot)
	fmt.Fprintf(w, "signed distance: %.10f\n", proj.SignedDistance)
	return result{
		ellipse:    e,
		point:      pt,
		quartic:    q,
		roots:      roots,
		projection: proj,
	}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
