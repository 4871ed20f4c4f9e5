package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/ghostmap/internal/parser"
	"github.com/aretw0/ghostmap/internal/presentation/graph"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

func TestGenerateMermaid(t *testing.T) {
	puzzle, err := parser.Parse(sample)
	require.NoError(t, err)

	got := graph.GenerateMermaid(puzzle.Network, nil)

	tests := []struct {
		name     string
		contains []string
	}{
		{"Header", []string{"graph LR\n"}},
		{"Start Node Shape", []string{`nAAA(("AAA"))`}},
		{"Accepting Node Shape", []string{`nZZZ((("ZZZ")))`}},
		{"Default Node Shape", []string{`nBBB["BBB"]`}},
		{"Split Edges", []string{`nAAA -- "L" --> nBBB`, `nAAA -- "R" --> nCCC`}},
		{"Merged Edges", []string{`nDDD -- "L,R" --> nDDD`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
	assert.NotContains(t, got, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	puzzle, err := parser.Parse(sample)
	require.NoError(t, err)

	overlay := graph.WalkOverlay(puzzle.Network, puzzle.Instructions, domain.StartLabel, 100)
	require.NotNil(t, overlay.CurrentNode)
	assert.Equal(t, domain.EndLabel, *overlay.CurrentNode)
	assert.Equal(t, []domain.Label{domain.StartLabel, domain.MustLabel("CCC"), domain.EndLabel}, overlay.VisitedNodes)

	got := graph.GenerateMermaid(puzzle.Network, overlay)
	assert.Contains(t, got, "class nAAA visited;")
	assert.Contains(t, got, "class nCCC visited;")
	assert.Contains(t, got, "class nZZZ current;")
	assert.Equal(t, 1, strings.Count(got, "class nZZZ visited;"))
}

func TestWalkOverlay_StepLimit(t *testing.T) {
	puzzle, err := parser.Parse(sample)
	require.NoError(t, err)

	overlay := graph.WalkOverlay(puzzle.Network, puzzle.Instructions, domain.StartLabel, 1)
	require.NotNil(t, overlay.CurrentNode)
	assert.Equal(t, domain.MustLabel("CCC"), *overlay.CurrentNode)
	assert.Len(t, overlay.VisitedNodes, 2)
}
