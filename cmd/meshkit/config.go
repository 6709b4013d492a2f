package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Config is the YAML document read by --config. Flags given on the command
// line override it.
type Config struct {
	Shape  Shape   `yaml:"shape"`
	Scale  float64 `yaml:"scale"`
	Seed   int64   `yaml:"seed"`
	Jitter float64 `yaml:"jitter"`
	Refine Refine  `yaml:"refine"`
}

// Shape selects a builder fixture.
type Shape struct {
	Kind string `yaml:"kind"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
	N    int    `yaml:"n"`
}

// Refine drives the refine command.
type Refine struct {
	EdgeSplits     int     `yaml:"edge_splits"`
	TriangleSplits int     `yaml:"triangle_splits"`
	Parameter      float64 `yaml:"parameter"`
}

// DefaultConfig is used when no file is given.
func DefaultConfig() Config {
	return Config{
		Shape:  Shape{Kind: "icosahedron", Rows: 4, Cols: 4, N: 7},
		Scale:  1,
		Seed:   1,
		Refine: Refine{EdgeSplits: 10, TriangleSplits: 10, Parameter: mesh.Midpoint},
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

var solids = map[string]builder.PlatonicName{
	"tetrahedron":  builder.Tetrahedron,
	"cube":         builder.Cube,
	"octahedron":   builder.Octahedron,
	"dodecahedron": builder.Dodecahedron,
	"icosahedron":  builder.Icosahedron,
}

// constructor maps the shape section onto a builder constructor.
func (s Shape) constructor() (builder.Constructor, error) {
	kind := strings.ToLower(s.Kind)
	if name, ok := solids[kind]; ok {
		return builder.PlatonicSolid(name), nil
	}
	switch kind {
	case "grid":
		return builder.Grid(s.Rows, s.Cols), nil
	case "wheel":
		return builder.Wheel(s.N), nil
	case "triangle":
		return builder.Triangle(), nil
	case "diamond":
		return builder.Diamond(), nil
	}
	return nil, fmt.Errorf("unknown shape %q", s.Kind)
}

// buildMesh builds the configured fixture, logging through logger.
func (c Config) buildMesh(logger *slog.Logger) (*mesh.Mesh[mesh.Point], error) {
	cons, err := c.Shape.constructor()
	if err != nil {
		return nil, err
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 1) {
		return nil, fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if !(c.Jitter >= 0) {
		return nil, fmt.Errorf("jitter must be non-negative, got %g", c.Jitter)
	}
	opts := []builder.BuilderOption{
		builder.WithScale(c.Scale),
		builder.WithSeed(c.Seed),
		builder.WithLogger(logger),
	}
	if c.Jitter > 0 {
		opts = append(opts, builder.WithJitter(c.Jitter))
	}
	return builder.BuildMesh(opts, cons)
}

// newLogger returns a text logger on w at the named level (debug, info,
// warn or error).
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
