package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/ghostmap/internal/presentation/tui"
	"github.com/aretw0/ghostmap/pkg/registry"
)

// Harness runs registered puzzles against input files named dayNN.txt.
// A failing part is printed and does not stop the other parts or days.
type Harness struct {
	Registry *registry.Registry
	InputDir string
	Printer  *tui.Printer
	Logger   *slog.Logger
}

// InputPath returns where the input for day is expected.
func (h *Harness) InputPath(day int) string {
	return filepath.Join(h.InputDir, fmt.Sprintf("day%02d.txt", day))
}

// Run executes the given days in order, or every registered day when none
// is given. Part 0 runs both parts. Only input loading errors are returned.
func (h *Harness) Run(ctx context.Context, days []int, part int) error {
	if len(days) == 0 {
		days = h.Registry.Days()
	}

	var errs []error
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.RunDay(ctx, day, part); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RunDay prints the header and the answer of each requested part.
func (h *Harness) RunDay(ctx context.Context, day, part int) error {
	h.Printer.Day(day)

	puzzle, err := h.Registry.Get(day)
	if err != nil {
		h.Printer.Missing(day)
		return nil
	}

	path := h.InputPath(day)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load input file for day %02d: %w", day, err)
	}
	input := string(data)

	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}
	for _, p := range parts {
		var (
			answer string
			err    error
		)
		switch p {
		case 1:
			answer, err = puzzle.Part1(ctx, input)
		case 2:
			answer, err = puzzle.Part2(ctx, input)
		default:
			err = fmt.Errorf("%w: got %d", registry.ErrInvalidPart, p)
		}

		if err != nil {
			h.Logger.Debug("Part failed", "day", day, "part", p, "err", err)
			h.Printer.Failure(p, err)
			continue
		}
		h.Printer.Answer(p, answer)
	}
	return nil
}
