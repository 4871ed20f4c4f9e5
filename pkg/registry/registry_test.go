package registry_test

import (
	"context"
	"testing"

	"github.com/aretw0/ghostmap/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPuzzle struct{ day int }

func (s stubPuzzle) Day() int { return s.day }

func (s stubPuzzle) Part1(ctx context.Context, input string) (string, error) {
	return "one:" + input, nil
}

func (s stubPuzzle) Part2(ctx context.Context, input string) (string, error) {
	return "two:" + input, nil
}

func TestRegistry(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(stubPuzzle{day: 8})
	r.Register(stubPuzzle{day: 3})

	assert.Equal(t, []int{3, 8}, r.Days())

	got, err := r.Solve(context.Background(), 8, 1, "x")
	require.NoError(t, err)
	assert.Equal(t, "one:x", got)

	got, err = r.Solve(context.Background(), 3, 2, "y")
	require.NoError(t, err)
	assert.Equal(t, "two:y", got)
}

func TestRegistry_Errors(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(stubPuzzle{day: 8})

	_, err := r.Solve(context.Background(), 9, 1, "")
	assert.ErrorIs(t, err, registry.ErrPuzzleNotFound)

	_, err = r.Solve(context.Background(), 8, 3, "")
	assert.ErrorIs(t, err, registry.ErrInvalidPart)
}
