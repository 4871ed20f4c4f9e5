package domain

import "fmt"

// LabelWidth is the number of bytes in every node label.
const LabelWidth = 3

// Label identifies a node in the network.
// It is a value type: equality and map hashing are byte-for-byte.
type Label [LabelWidth]byte

var (
	// StartLabel is the origin of the single-path query.
	StartLabel = MustLabel("AAA")
	// EndLabel is the destination of the single-path query.
	EndLabel = MustLabel("ZZZ")
)

// ParseLabel converts a three character string into a Label.
// Only upper-case ASCII letters and digits are accepted.
func ParseLabel(s string) (Label, error) {
	var l Label
	if len(s) != LabelWidth {
		return l, fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidLabel, s, len(s), LabelWidth)
	}
	for i := 0; i < LabelWidth; i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return l, fmt.Errorf("%w: %q contains %q", ErrInvalidLabel, s, c)
		}
		l[i] = c
	}
	return l, nil
}

// MustLabel is like ParseLabel but panics on invalid input.
// Intended for constants and tests.
func MustLabel(s string) Label {
	l, err := ParseLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Label) String() string {
	return string(l[:])
}

// IsStart reports whether the label ends in 'A' (a ghost starting point).
func (l Label) IsStart() bool {
	return l[LabelWidth-1] == 'A'
}

// IsAccepting reports whether the label ends in 'Z'.
func (l Label) IsAccepting() bool {
	return l[LabelWidth-1] == 'Z'
}

// MarshalText implements encoding.TextMarshaler so labels render as strings in JSON.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Predicate classifies labels, e.g. "is a start node" or "is terminal".
type Predicate func(Label) bool

// Is returns a predicate matching exactly one label.
func Is(target Label) Predicate {
	return func(l Label) bool { return l == target }
}
