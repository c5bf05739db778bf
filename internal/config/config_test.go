// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, config.KindStar, p.Network.Kind)
	assert.Equal(t, 5, p.Network.Vertices)
}

func TestParseOverridesDefaults(t *testing.T) {
	p, err := config.Parse([]byte(`
network:
  kind: lattice
  vertices: 6
  degree: 2
analysis:
  indices: [BC, PRP]
  walks: 3
log:
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, config.KindLattice, p.Network.Kind)
	assert.Equal(t, []string{"BC", "PRP"}, p.Analysis.Indices)
	assert.Equal(t, 3, p.Analysis.Walks)
	assert.Equal(t, "json", p.Log.Format)
	assert.Equal(t, "info", p.Log.Level, "untouched fields keep their default")
}

func TestParseEdges(t *testing.T) {
	p, err := config.Parse([]byte(`
network:
  kind: edges
  relations: [friends, advice]
  edges:
    - {from: 1, to: 2}
    - {from: 2, to: 3, weight: 2.5, directed: true}
    - {from: 3, to: 1, relation: 1, weight: 0}
`))
	require.NoError(t, err)
	require.Len(t, p.Network.Edges, 3)
	assert.Nil(t, p.Network.Edges[0].Weight)
	assert.Equal(t, 1.0, p.Network.Edges[0].EdgeWeight(), "absent weight defaults to 1")
	assert.Equal(t, 2.5, p.Network.Edges[1].EdgeWeight())
	require.NotNil(t, p.Network.Edges[2].Weight)
	assert.Zero(t, p.Network.Edges[2].EdgeWeight(), "explicit zero is kept")
	assert.True(t, p.Network.Edges[1].Directed)
	assert.Equal(t, 1, p.Network.Edges[2].Relation)
}

func TestValidationErrors(t *testing.T) {
	cases := map[string]string{
		"unknown kind":    "network: {kind: hypercube, vertices: 4}",
		"bad index":       "analysis: {indices: [XYZ]}",
		"probability":     "network: {kind: random, vertices: 4, probability: 2}",
		"odd degree":      "network: {kind: lattice, vertices: 6, degree: 3}",
		"no edges":        "network: {kind: edges}",
		"bad relation":    "network: {kind: edges, edges: [{from: 1, to: 2, relation: 1}]}",
		"bad log level":   "log: {level: loud}",
		"negative walks":  "analysis: {walks: -1}",
		"negative weight": "network: {kind: edges, edges: [{from: 1, to: 2, weight: -1}]}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidProfile)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := config.Parse([]byte("network: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidProfile)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	p, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), p)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "socnet.yaml"),
		[]byte("network: {kind: path, vertices: 7}\n"), 0o600))
	p, err = config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, config.KindPath, p.Network.Kind)
	assert.Equal(t, 7, p.Network.Vertices)

	_, err = config.Load(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}
