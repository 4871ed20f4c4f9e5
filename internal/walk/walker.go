package walk

import (
	"iter"

	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/instructions"
	"github.com/aretw0/ghostmap/pkg/network"
)

// Walker is the state of one walk. It is a plain value: copy it to fork a walk.
type Walker struct {
	Current domain.Label
	Step    uint64
}

// NewWalker places a walker on start at step zero.
func NewWalker(start domain.Label) Walker {
	return Walker{Current: start}
}

// Advance consumes the instruction for the current step, follows the edge
// and returns the node it lands on.
func (w *Walker) Advance(net *network.Network, seq instructions.Sequence) domain.Label {
	w.Current = net.Next(w.Current, seq.At(w.Step))
	w.Step++
	return w.Current
}

// Visits yields (step, node) for every advance from start, forever.
// Stop ranging to end the walk; ranging again restarts from step zero.
func Visits(net *network.Network, seq instructions.Sequence, start domain.Label) iter.Seq2[uint64, domain.Label] {
	return func(yield func(uint64, domain.Label) bool) {
		w := NewWalker(start)
		for {
			node := w.Advance(net, seq)
			if !yield(w.Step, node) {
				return
			}
		}
	}
}
