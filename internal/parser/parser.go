// Package parser turns puzzle text into a network and an instruction sequence.
//
// The expected layout is the instruction line, a blank line, then one node per
// line:
//
//	RL
//
//	AAA = (BBB, CCC)
//	BBB = (DDD, EEE)
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/instructions"
	"github.com/aretw0/ghostmap/pkg/network"
)

// ErrSyntax is wrapped by every SyntaxError.
var ErrSyntax = errors.New("syntax error")

var nodeLine = regexp.MustCompile(`^(\w{3}) = \((\w{3}), (\w{3})\)$`)

// SyntaxError points at the offending input line (1-based).
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, ErrSyntax)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSyntax, e.Err}
	}
	return []error{ErrSyntax}
}

// Puzzle is a parsed input.
type Puzzle struct {
	Instructions instructions.Sequence
	Network      *network.Network
}

// Parse reads the whole input. Construction errors from the network and
// instruction packages are returned wrapped, so errors.Is still matches
// domain.ErrMalformedGraph and friends.
func Parse(text string) (*Puzzle, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	seq, err := instructions.Parse(lines[0])
	if err != nil {
		return nil, fmt.Errorf("instructions: %w", err)
	}

	defs, err := Definitions(lines[1:], 2)
	if err != nil {
		return nil, err
	}

	net, err := network.Build(defs)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	return &Puzzle{Instructions: seq, Network: net}, nil
}

// Definitions parses node lines; firstLine is the line number of lines[0].
// Blank lines are skipped.
func Definitions(lines []string, firstLine int) ([]domain.Definition, error) {
	var defs []domain.Definition
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		def, err := parseNode(line)
		if err != nil {
			return nil, &SyntaxError{Line: firstLine + i, Text: line, Err: err}
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseNode(line string) (domain.Definition, error) {
	m := nodeLine.FindStringSubmatch(line)
	if m == nil {
		return domain.Definition{}, ErrSyntax
	}

	var labels [3]domain.Label
	for i := range labels {
		l, err := domain.ParseLabel(m[i+1])
		if err != nil {
			return domain.Definition{}, err
		}
		labels[i] = l
	}
	return domain.Definition{
		Label: labels[0],
		Node:  domain.Node{Left: labels[1], Right: labels[2]},
	}, nil
}
