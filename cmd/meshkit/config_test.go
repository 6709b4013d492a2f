package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "c.yaml")
	doc := "shape:\n  kind: grid\n  rows: 2\nrefine:\n  edge_splits: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "grid", cfg.Shape.Kind)
	assert.Equal(t, 2, cfg.Shape.Rows)
	assert.Equal(t, 4, cfg.Shape.Cols, "unset keys keep their defaults")
	assert.Equal(t, 3, cfg.Refine.EdgeSplits)

	require.NoError(t, os.WriteFile(path, []byte("shape: [1, 2"), 0o644))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestShapeConstructor(t *testing.T) {
	for _, kind := range []string{"Icosahedron", "cube", "grid", "wheel", "triangle", "diamond"} {
		c, err := Shape{Kind: kind, Rows: 1, Cols: 1, N: 4}.constructor()
		require.NoError(t, err, kind)
		assert.NotNil(t, c)
	}
	_, err := Shape{Kind: "klein"}.constructor()
	assert.Error(t, err)
}

func TestBuildMesh_Validation(t *testing.T) {
	logger, err := newLogger(&bytes.Buffer{}, "error")
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Scale = 0
	_, err = cfg.buildMesh(logger)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Scale = math.Inf(1)
	_, err = cfg.buildMesh(logger)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Jitter = math.NaN()
	_, err = cfg.buildMesh(logger)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Jitter = 0.01
	m, err := cfg.buildMesh(logger)
	require.NoError(t, err)
	assert.NoError(t, m.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "debug")
	require.NoError(t, err)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	_, err = newLogger(&buf, "chatty")
	assert.Error(t, err)
}
