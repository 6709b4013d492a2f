package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/dfs"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Stats summarizes a mesh.
type Stats struct {
	Vertices      int  `yaml:"vertices" json:"vertices"`
	Triangles     int  `yaml:"triangles" json:"triangles"`
	HalfEdges     int  `yaml:"half_edges" json:"half_edges"`
	Edges         int  `yaml:"edges" json:"edges"`
	BoundaryEdges int  `yaml:"boundary_edges" json:"boundary_edges"`
	Euler         int  `yaml:"euler" json:"euler"`
	MinDegree     int  `yaml:"min_degree" json:"min_degree"`
	MaxDegree     int  `yaml:"max_degree" json:"max_degree"`
	Components    int  `yaml:"components" json:"components"`
	Closed        bool `yaml:"closed" json:"closed"`
}

// RefineReport is the output of the refine command.
type RefineReport struct {
	Before  Stats `yaml:"before" json:"before"`
	After   Stats `yaml:"after" json:"after"`
	Skipped int   `yaml:"skipped" json:"skipped"`
}

// ExsectReport is the output of the exsect command.
type ExsectReport struct {
	Path   []int `yaml:"path,flow" json:"path"`
	Splits int   `yaml:"splits" json:"splits"`
	After  Stats `yaml:"after" json:"after"`
}

// CheckReport is the output of the check command.
type CheckReport struct {
	Valid bool  `yaml:"valid" json:"valid"`
	Stats Stats `yaml:"stats" json:"stats"`
}

func collectStats(m *mesh.Mesh[mesh.Point]) (Stats, error) {
	s := Stats{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		HalfEdges: m.HalfEdgeCount(),
		Edges:     m.EdgeCount(),
		Euler:     m.EulerCharacteristic(),
	}
	err := m.VisitEdges(func(e int) error {
		h, err := m.HalfEdge(e)
		if err != nil {
			return err
		}
		if h.Boundary() {
			s.BoundaryEdges++
		}
		return nil
	})
	if err != nil {
		return s, err
	}
	s.Closed = s.BoundaryEdges == 0
	if _, s.Components, err = dfs.Components(m); err != nil {
		return s, err
	}

	first := true
	for v := 0; v < m.VertexCount(); v++ {
		d, err := m.Degree(v)
		if err != nil {
			return s, err
		}
		if first || d < s.MinDegree {
			s.MinDegree = d
		}
		if first || d > s.MaxDegree {
			s.MaxDegree = d
		}
		first = false
	}
	return s, nil
}

// render writes v as YAML or JSON.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q", format)
}
