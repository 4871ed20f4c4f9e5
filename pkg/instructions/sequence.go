// Package instructions models the cyclic L/R instruction string.
package instructions

import (
	"fmt"
	"strings"

	"github.com/aretw0/ghostmap/pkg/domain"
)

// Sequence is a non-empty, immutable list of symbols consumed cyclically.
// It carries no cursor: At is a pure function of the step index, so one
// Sequence can drive any number of walkers.
type Sequence struct {
	symbols []domain.Symbol
}

// New copies the symbols into a Sequence.
func New(symbols []domain.Symbol) (Sequence, error) {
	if len(symbols) == 0 {
		return Sequence{}, domain.ErrEmptyInstructionSequence
	}
	own := make([]domain.Symbol, len(symbols))
	for i, s := range symbols {
		if s != domain.Left && s != domain.Right {
			return Sequence{}, fmt.Errorf("%w: %q at position %d", domain.ErrInvalidInstruction, byte(s), i)
		}
		own[i] = s
	}
	return Sequence{symbols: own}, nil
}

// Parse reads a string such as "LLR".
func Parse(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sequence{}, domain.ErrEmptyInstructionSequence
	}
	symbols := make([]domain.Symbol, 0, len(s))
	for i, r := range s {
		sym, err := domain.ParseSymbol(r)
		if err != nil {
			return Sequence{}, fmt.Errorf("position %d: %w", i, err)
		}
		symbols = append(symbols, sym)
	}
	return Sequence{symbols: symbols}, nil
}

// Len is the period P of the sequence.
func (s Sequence) Len() uint64 {
	return uint64(len(s.symbols))
}

// At returns the symbol used by step i, i.e. symbols[i mod P].
func (s Sequence) At(step uint64) domain.Symbol {
	return s.symbols[step%uint64(len(s.symbols))]
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.symbols))
	for _, sym := range s.symbols {
		sb.WriteByte(byte(sym))
	}
	return sb.String()
}
