package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/dijkstra"
	"github.com/katalvlaran/lvmesh/mesh"
)

// app carries the state shared by every command.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	format     string
	shape      Shape

	cfg    Config
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "meshkit",
		Short:         "Build, refine and check half-edge triangle meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVarP(&a.format, "format", "o", "yaml", "output format: yaml or json")
	flags.StringVar(&a.shape.Kind, "shape", "", "fixture: tetrahedron, cube, octahedron, dodecahedron, icosahedron, grid, wheel, triangle or diamond")
	flags.IntVar(&a.shape.Rows, "rows", 0, "grid rows")
	flags.IntVar(&a.shape.Cols, "cols", 0, "grid columns")
	flags.IntVar(&a.shape.N, "n", 0, "wheel vertex count")

	rootCmd.AddCommand(
		a.statsCmd(),
		a.refineCmd(),
		a.exsectCmd(),
		a.checkCmd(),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Shape.Kind = a.shape.Kind
	}
	if flags.Changed("rows") {
		cfg.Shape.Rows = a.shape.Rows
	}
	if flags.Changed("cols") {
		cfg.Shape.Cols = a.shape.Cols
	}
	if flags.Changed("n") {
		cfg.Shape.N = a.shape.N
	}
	a.cfg = cfg

	if a.logger, err = newLogger(a.errOut, a.logLevel); err != nil {
		return err
	}
	a.logger.Debug("meshkit: configuration loaded",
		slog.String("config", a.configPath),
		slog.String("shape", cfg.Shape.Kind))
	return nil
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print counts and degree range of the fixture",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			m, err := a.cfg.buildMesh(a.logger)
			if err != nil {
				return err
			}
			s, err := collectStats(m)
			if err != nil {
				return err
			}
			return render(a.out, a.format, s)
		},
	}
}

func (a *app) refineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Apply random edge and triangle splits and validate the result",
		Args:  cobra.NoArgs,
	}
	var (
		edgeSplits, triangleSplits int
		parameter                  float64
		seed                       int64
	)
	cmd.Flags().IntVar(&edgeSplits, "edge-splits", 0, "number of edge splits")
	cmd.Flags().IntVar(&triangleSplits, "triangle-splits", 0, "number of triangle splits")
	cmd.Flags().Float64Var(&parameter, "parameter", mesh.Midpoint, "edge split parameter u")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for picking edges and triangles")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		r := a.cfg.Refine
		if cmd.Flags().Changed("edge-splits") {
			r.EdgeSplits = edgeSplits
		}
		if cmd.Flags().Changed("triangle-splits") {
			r.TriangleSplits = triangleSplits
		}
		if cmd.Flags().Changed("parameter") {
			r.Parameter = parameter
		}
		s := a.cfg.Seed
		if cmd.Flags().Changed("seed") {
			s = seed
		}

		m, err := a.cfg.buildMesh(a.logger)
		if err != nil {
			return err
		}
		var rep RefineReport
		if rep.Before, err = collectStats(m); err != nil {
			return err
		}
		if rep.Skipped, err = refine(m, r, rand.New(rand.NewSource(s)), a.logger); err != nil {
			return err
		}
		if err = m.Validate(); err != nil {
			return err
		}
		if rep.After, err = collectStats(m); err != nil {
			return err
		}
		return render(a.out, a.format, rep)
	}
	return cmd
}

// refine applies the requested splits. Edge splits that land on a boundary
// or on a pillow edge are skipped and counted.
func refine(m *mesh.Mesh[mesh.Point], r Refine, rng *rand.Rand, logger *slog.Logger) (int, error) {
	if r.EdgeSplits < 0 || r.TriangleSplits < 0 {
		return 0, fmt.Errorf("split counts must be non-negative, got %d and %d", r.EdgeSplits, r.TriangleSplits)
	}
	skipped := 0
	for i := 0; i < r.EdgeSplits; i++ {
		e := rng.Intn(m.HalfEdgeCount())
		_, err := m.SplitEdge(e, r.Parameter)
		switch {
		case errors.Is(err, mesh.ErrUnsupportedBoundarySplit), errors.Is(err, mesh.ErrNonManifold):
			logger.Debug("meshkit: edge split skipped", slog.Int("half_edge", e), slog.Any("error", err))
			skipped++
		case err != nil:
			return skipped, err
		}
	}
	for i := 0; i < r.TriangleSplits; i++ {
		if _, err := m.SplitTriangle(rng.Intn(m.TriangleCount()), mesh.Third, mesh.Third); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

func (a *app) exsectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exsect",
		Short: "Carve a vertex path into the mesh, splitting the spokes on one side",
		Long: `Exsect splits every spoke of each interior path vertex that is not part of
the path, so that the path is cut free from its neighborhood. The path is given
with --path or found as the shortest edge path between --from and --to,
measured in Euclidean length or, with --hops, in edge count.`,
		Args: cobra.NoArgs,
	}
	var (
		path     []int
		from, to int
		hops     bool
	)
	cmd.Flags().IntSliceVar(&path, "path", nil, "comma-separated vertex path")
	cmd.Flags().IntVar(&from, "from", mesh.NoIndex, "path start vertex")
	cmd.Flags().IntVar(&to, "to", mesh.NoIndex, "path end vertex")
	cmd.Flags().BoolVar(&hops, "hops", false, "find the path with the fewest edges instead of the shortest length")

	cmd.RunE = func(*cobra.Command, []string) error {
		m, err := a.cfg.buildMesh(a.logger)
		if err != nil {
			return err
		}
		if len(path) == 0 {
			if path, err = shortestPath(m, from, to, hops); err != nil {
				return err
			}
		}
		rep := ExsectReport{Path: path}
		if rep.Splits, err = m.Exsect(path); err != nil {
			return err
		}
		if err = m.Validate(); err != nil {
			return err
		}
		if rep.After, err = collectStats(m); err != nil {
			return err
		}
		return render(a.out, a.format, rep)
	}
	return cmd
}

// shortestPath returns the Euclidean shortest edge path from → to, or the
// path with the fewest edges when hops is set.
func shortestPath(m *mesh.Mesh[mesh.Point], from, to int, hops bool) ([]int, error) {
	if from == mesh.NoIndex || to == mesh.NoIndex {
		return nil, errors.New("either --path or both --from and --to are required")
	}
	if hops {
		res, err := bfs.BFS(m, from)
		if err != nil {
			return nil, err
		}
		return res.PathTo(to)
	}
	_, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	return dijkstra.Path(prev, from, to)
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every half-edge invariant of the fixture",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			m, err := a.cfg.buildMesh(a.logger)
			if err != nil {
				return err
			}
			rep := CheckReport{Valid: true}
			if err = m.Validate(); err != nil {
				a.logger.Error("meshkit: invalid mesh", slog.Any("error", err))
				rep.Valid = false
			}
			if rep.Stats, err = collectStats(m); err != nil {
				return err
			}
			if err = render(a.out, a.format, rep); err != nil {
				return err
			}
			if !rep.Valid {
				return mesh.ErrInvariant
			}
			return nil
		},
	}
}
