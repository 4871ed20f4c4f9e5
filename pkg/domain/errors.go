package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGraph is returned when the node table violates totality.
	ErrMalformedGraph = errors.New("malformed graph")

	// ErrDuplicateNode is returned when the same label is defined twice.
	ErrDuplicateNode = errors.New("duplicate node definition")

	// ErrInvalidLabel is returned for labels that are not three [0-9A-Z] bytes.
	ErrInvalidLabel = errors.New("invalid label")

	// ErrEmptyInstructionSequence is returned when no instructions are supplied.
	ErrEmptyInstructionSequence = errors.New("empty instruction sequence")

	// ErrInvalidInstruction is returned for symbols other than L and R.
	ErrInvalidInstruction = errors.New("invalid instruction")

	// ErrUnknownLabel is returned when a walk starts from a label absent from the network.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrStepBudgetExceeded is returned when a single walk never meets its terminal.
	ErrStepBudgetExceeded = errors.New("step budget exceeded")

	// ErrPeriodicityNotFound is returned when no accepting recurrence shows up in budget.
	ErrPeriodicityNotFound = errors.New("periodicity not found")

	// ErrNoStartNodes is returned when a multi walk has nothing to walk.
	ErrNoStartNodes = errors.New("no start nodes")

	// ErrOverflow is returned when the combined answer does not fit in 128 bits.
	ErrOverflow = errors.New("answer overflows 128 bits")

	// ErrNoSynchronization is returned when walkers can never be accepting together.
	ErrNoSynchronization = errors.New("walkers never synchronize")

	// ErrCacheMiss is returned by result caches for unknown keys.
	ErrCacheMiss = errors.New("cache miss")
)

// MalformedGraphError reports an edge whose target has no definition.
type MalformedGraphError struct {
	Node   Label
	Target Label
}

func (e *MalformedGraphError) Error() string {
	return fmt.Sprintf("%s: node %s points to undeclared node %s", ErrMalformedGraph, e.Node, e.Target)
}

func (e *MalformedGraphError) Unwrap() error {
	return ErrMalformedGraph
}

// BudgetError reports a walk that was stopped by the step safeguard.
// Err is either ErrStepBudgetExceeded or ErrPeriodicityNotFound.
type BudgetError struct {
	Start  Label
	Budget uint64
	Err    error
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("walk from %s: %v after %d steps", e.Start, e.Err, e.Budget)
}

func (e *BudgetError) Unwrap() error {
	return e.Err
}
