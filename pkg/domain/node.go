package domain

import "fmt"

// Symbol is one instruction of the cyclic instruction sequence.
type Symbol byte

const (
	Left  Symbol = 'L'
	Right Symbol = 'R'
)

// ParseSymbol converts an 'L' or 'R' rune into a Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch r {
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInstruction, r)
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Node holds the two outgoing edges of a vertex.
// A node may point to itself on either side.
type Node struct {
	Left  Label `json:"left" yaml:"left"`
	Right Label `json:"right" yaml:"right"`
}

// Next returns the edge selected by the symbol.
func (n Node) Next(s Symbol) Label {
	if s == Left {
		return n.Left
	}
	return n.Right
}

// Definition is a parsed "AAA = (BBB, CCC)" line.
type Definition struct {
	Label Label
	Node  Node
}
