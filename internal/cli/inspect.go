package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ghostmap/internal/parser"
	"github.com/aretw0/ghostmap/internal/presentation/graph"
	"github.com/aretw0/ghostmap/internal/validator"
	"github.com/aretw0/ghostmap/pkg/domain"
)

func loadPuzzle(path string) (*parser.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	puzzle, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return puzzle, nil
}

// ValidateFile prints the reachability report of a puzzle file.
func ValidateFile(path string, out io.Writer, asJSON bool) error {
	puzzle, err := loadPuzzle(path)
	if err != nil {
		return err
	}

	report, verr := validator.ValidateNetwork(puzzle.Network)
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		return verr
	}

	fmt.Fprintf(out, "%d nodes, %d instructions\n", report.Nodes, puzzle.Instructions.Len())
	for _, r := range report.Starts {
		fmt.Fprintf(out, "  %s reaches %d nodes, %d accepting\n", r.Start, r.Reachable, len(r.Accepting))
	}
	if len(report.Orphan) > 0 {
		fmt.Fprintf(out, "  %d nodes unreachable from any start\n", len(report.Orphan))
	}
	if verr != nil {
		return verr
	}
	fmt.Fprintln(out, "✓ Network is valid")
	return nil
}

// GraphOptions configures GraphFile.
type GraphOptions struct {
	Path string
	// Walk, when set, overlays the walk from this label.
	Walk  string
	Steps uint64
	Out   io.Writer
}

// GraphFile prints a Mermaid flowchart of the puzzle network.
func GraphFile(opts GraphOptions) error {
	puzzle, err := loadPuzzle(opts.Path)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if opts.Walk != "" {
		start, err := domain.ParseLabel(opts.Walk)
		if err != nil {
			return err
		}
		if !puzzle.Network.Contains(start) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownLabel, start)
		}
		overlay = graph.WalkOverlay(puzzle.Network, puzzle.Instructions, start, opts.Steps)
	}

	_, err = io.WriteString(opts.Out, graph.GenerateMermaid(puzzle.Network, overlay))
	return err
}
