package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geomkit/ellipsedist"
)

// Config describes one distance computation and where to draw it.
type Config struct {
	Ellipse struct {
		A float64 `yaml:"a"`
		B float64 `yaml:"b"`
	} `yaml:"ellipse"`
	Point struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"point"`
	// Seeds for Newton's method. If empty, the ellipse's default seeds are
	// used.
	Seeds         []float64 `yaml:"seeds,omitempty"`
	Epsilon       float64   `yaml:"epsilon,omitempty"`
	MaxIterations int       `yaml:"max_iterations,omitempty"`
	// Workers is the number of goroutines used to run seeds. 1 runs them
	// sequentially, 0 uses one per CPU.
	Workers int          `yaml:"workers,omitempty"`
	Output  OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	// Figure is the path of the SVG showing the ellipse, the point and its
	// projection. Empty disables it.
	Figure string `yaml:"figure,omitempty"`
	// Polynomial is the path of the SVG plot of the quartic. Empty disables
	// it.
	Polynomial string `yaml:"polynomial,omitempty"`
	// Range is the interval the quartic is plotted over.
	Range     [2]float64 `yaml:"range,omitempty"`
	Samples   int        `yaml:"samples,omitempty"`
	Precision int        `yaml:"precision,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given: the
// ellipse with semi-axes 3 and 2 and the point (2, 1).
func DefaultConfig() Config {
	var cfg Config
	cfg.Ellipse.A = 3
	cfg.Ellipse.B = 2
	cfg.Point.X = 2
	cfg.Point.Y = 1
	cfg.Workers = 1
	cfg.Output.Figure = "solution.svg"
	cfg.Output.Polynomial = "polynome.svg"
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Epsilon == 0 {
		cfg.Epsilon = ellipsedist.DefaultEpsilon
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = ellipsedist.DefaultMaxIterations
	}
	if cfg.Output.Range == [2]float64{} {
		cfg.Output.Range = [2]float64{-8, 8}
	}
	if cfg.Output.Samples == 0 {
		cfg.Output.Samples = 1000
	}
	if cfg.Output.Precision == 0 {
		cfg.Output.Precision = 6
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their values from [DefaultConfig], except for the output paths, which
// are only written when the file names them.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Output.Figure = ""
	cfg.Output.Polynomial = ""
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.Ellipse.A <= 0 || cfg.Ellipse.B <= 0 {
		errs = append(errs, fmt.Errorf("semi-axes must be positive, got a=%g, b=%g", cfg.Ellipse.A, cfg.Ellipse.B))
	}
	if cfg.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("epsilon must not be negative, got %g", cfg.Epsilon))
	}
	if cfg.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("max_iterations must not be negative, got %d", cfg.MaxIterations))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", cfg.Workers))
	}
	if r := cfg.Output.Range; r[0] >= r[1] {
		errs = append(errs, fmt.Errorf("plot range must be increasing, got %v", r))
	}
	if cfg.Output.Samples < 2 {
		errs = append(errs, fmt.Errorf("need at least 2 samples, got %d", cfg.Output.Samples))
	}
	return errors.Join(errs...)
}

// parseSeeds parses a comma-separated list of numbers.
func parseSeeds(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	seeds := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", f, err)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}
