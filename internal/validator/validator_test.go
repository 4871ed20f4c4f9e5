package validator

import (
	"testing"

	"github.com/aretw0/ghostmap/internal/parser"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNetwork(t *testing.T) {
	// Scenario A: every start reaches its terminal.
	puzzle, err := parser.Parse(`LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`)
	require.NoError(t, err)

	report, err := ValidateNetwork(puzzle.Network)
	require.NoError(t, err)
	assert.Equal(t, 8, report.Nodes)
	require.Len(t, report.Starts, 2)
	assert.Equal(t, domain.MustLabel("11A"), report.Starts[0].Start)
	assert.Equal(t, 4, report.Starts[0].Reachable)
	assert.Equal(t, []domain.Label{domain.MustLabel("11Z")}, report.Starts[0].Accepting)
	assert.Empty(t, report.Orphan)

	// Scenario B: AAA is a trap and one node is never reachable.
	puzzle, err = parser.Parse(`L

AAA = (AAA, AAA)
BBB = (ZZZ, ZZZ)
ZZZ = (ZZZ, ZZZ)
`)
	require.NoError(t, err)

	report, err = ValidateNetwork(puzzle.Network)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 errors")
	assert.Contains(t, err.Error(), "cannot reach 'ZZZ'")
	assert.Equal(t, []domain.Label{domain.MustLabel("BBB"), domain.EndLabel}, report.Orphan)
}

func TestValidateNetwork_NoStarts(t *testing.T) {
	puzzle, err := parser.Parse("R\n\nZZZ = (ZZZ, ZZZ)\n")
	require.NoError(t, err)

	_, err = ValidateNetwork(puzzle.Network)
	assert.ErrorContains(t, err, "no start nodes")
}
