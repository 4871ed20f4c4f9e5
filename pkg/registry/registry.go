package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrInvalidPart    = errors.New("part must be 1 or 2")
)

// Puzzle is one day's solution. Each part receives the raw input text and
// returns the answer in decimal.
type Puzzle interface {
	Day() int
	Part1(ctx context.Context, input string) (string, error)
	Part2(ctx context.Context, input string) (string, error)
}

// Registry manages the available puzzles.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[int]Puzzle
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[int]Puzzle),
	}
}

// Register adds a puzzle to the registry.
// If a puzzle for the same day exists, it is overwritten.
func (r *Registry) Register(p Puzzle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[p.Day()] = p
}

// Get returns the puzzle for day.
func (r *Registry) Get(day int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrPuzzleNotFound, day)
	}
	return p, nil
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]int, 0, len(r.puzzles))
	for d := range r.puzzles {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Solve looks up a puzzle by day and runs one part.
func (r *Registry) Solve(ctx context.Context, day, part int, input string) (string, error) {
	p, err := r.Get(day)
	if err != nil {
		return "", err
	}

	switch part {
	case 1:
		return p.Part1(ctx, input)
	case 2:
		return p.Part2(ctx, input)
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidPart, part)
	}
}
