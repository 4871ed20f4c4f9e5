package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/ghostmap"
	"github.com/aretw0/ghostmap/internal/presentation/tui"
)

// Output formats for SolveFile.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// SolveOptions configures SolveFile.
type SolveOptions struct {
	Path   string
	Part   int // 0 means both
	Format string
	// Render markdown with glamour; set when Out is a terminal.
	Render  bool
	Out     io.Writer
	Options []ghostmap.Option
}

// PartResult is one answered (or failed) part.
type PartResult struct {
	Part   int    `json:"part"`
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report is what SolveFile prints.
type Report struct {
	Path    string                    `json:"path"`
	Summary ghostmap.Summary          `json:"summary"`
	Parts   []PartResult              `json:"parts"`
	Ghosts  *ghostmap.Synchronization `json:"-"`
}

// SolveFile solves a single puzzle file and prints the report.
// Part failures are printed and also returned, joined.
func SolveFile(ctx context.Context, opts SolveOptions) error {
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	solver, err := ghostmap.FromInput(string(data), opts.Options...)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Path, err)
	}

	report := Report{Path: opts.Path, Summary: solver.Summary()}
	var errs []error

	if opts.Part == 0 || opts.Part == 1 {
		steps, err := solver.Steps(ctx)
		report.Parts = append(report.Parts, partResult(1, fmt.Sprint(steps), err))
		errs = append(errs, err)
	}
	if opts.Part == 0 || opts.Part == 2 {
		result, err := solver.Ghosts(ctx)
		report.Parts = append(report.Parts, partResult(2, result.String(), err))
		if err == nil {
			report.Ghosts = &result
		}
		errs = append(errs, err)
	}
	if len(report.Parts) == 0 {
		return fmt.Errorf("part must be 0, 1 or 2, got %d", opts.Part)
	}

	if err := writeReport(opts, report); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func partResult(part int, answer string, err error) PartResult {
	if err != nil {
		return PartResult{Part: part, Error: err.Error()}
	}
	return PartResult{Part: part, Answer: answer}
}

func writeReport(opts SolveOptions, report Report) error {
	switch opts.Format {
	case "", FormatText:
		for _, p := range report.Parts {
			if p.Error != "" {
				fmt.Fprintf(opts.Out, "Part %d: error: %s\n", p.Part, p.Error)
				continue
			}
			fmt.Fprintf(opts.Out, "Part %d: %s\n", p.Part, p.Answer)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatMarkdown:
		md := Markdown(report)
		if opts.Render {
			rendered, err := tui.NewRenderer()(md)
			if err == nil {
				md = rendered
			}
		}
		_, err := io.WriteString(opts.Out, md)
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// Markdown formats a report as a markdown document.
func Markdown(report Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", report.Path)
	fmt.Fprintf(&sb, "- Nodes: %d\n", report.Summary.Nodes)
	fmt.Fprintf(&sb, "- Instructions: %d\n", report.Summary.Instructions)
	fmt.Fprintf(&sb, "- Start nodes: %d\n", len(report.Summary.Starts))
	fmt.Fprintf(&sb, "- Fingerprint: `%s`\n\n", report.Summary.Fingerprint)

	sb.WriteString("| Part | Answer |\n|---|---|\n")
	for _, p := range report.Parts {
		answer := p.Answer
		if p.Error != "" {
			answer = "error: " + p.Error
		}
		fmt.Fprintf(&sb, "| %d | %s |\n", p.Part, answer)
	}

	if report.Ghosts != nil && len(report.Ghosts.Walks) > 0 {
		sb.WriteString("\n## Walkers\n\n| Start | Period |\n|---|---|\n")
		for _, w := range report.Ghosts.Walks {
			fmt.Fprintf(&sb, "| %s | %d |\n", w.Start, w.Period)
		}
	}
	return sb.String()
}
