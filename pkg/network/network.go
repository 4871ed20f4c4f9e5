// Package network holds the immutable node table the walkers move over.
package network

import (
	"fmt"
	"slices"

	"github.com/aretw0/ghostmap/pkg/domain"
)

// Network maps every label to its pair of outgoing edges.
// It is read-only after Build and may be shared by any number of goroutines.
type Network struct {
	nodes  map[domain.Label]domain.Node
	labels []domain.Label
}

// Build validates the definitions and freezes them into a Network.
// Duplicate labels and undeclared edge targets are rejected here so that
// traversal never has to handle a missing node.
func Build(defs []domain.Definition) (*Network, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no node definitions", domain.ErrMalformedGraph)
	}

	n := &Network{
		nodes:  make(map[domain.Label]domain.Node, len(defs)),
		labels: make([]domain.Label, 0, len(defs)),
	}
	for _, d := range defs {
		if _, exists := n.nodes[d.Label]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateNode, d.Label)
		}
		n.nodes[d.Label] = d.Node
		n.labels = append(n.labels, d.Label)
	}

	// Totality: every edge target must be a key.
	for _, d := range defs {
		for _, target := range [2]domain.Label{d.Node.Left, d.Node.Right} {
			if _, ok := n.nodes[target]; !ok {
				return nil, &domain.MalformedGraphError{Node: d.Label, Target: target}
			}
		}
	}

	slices.SortFunc(n.labels, compareLabels)
	return n, nil
}

// Lookup returns the node for a label.
func (n *Network) Lookup(l domain.Label) (domain.Node, bool) {
	node, ok := n.nodes[l]
	return node, ok
}

// Contains reports whether the label is defined.
func (n *Network) Contains(l domain.Label) bool {
	_, ok := n.nodes[l]
	return ok
}

// Next follows one edge. The label must belong to the network; Build
// guarantees that every label reachable from a member is itself a member.
func (n *Network) Next(l domain.Label, s domain.Symbol) domain.Label {
	return n.nodes[l].Next(s)
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	return len(n.labels)
}

// Labels returns every label in ascending byte order.
func (n *Network) Labels() []domain.Label {
	return slices.Clone(n.labels)
}

// Select returns, in ascending order, the labels matching the predicate.
func (n *Network) Select(pred domain.Predicate) []domain.Label {
	var out []domain.Label
	for _, l := range n.labels {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

// Definitions returns the node table in ascending label order.
func (n *Network) Definitions() []domain.Definition {
	defs := make([]domain.Definition, 0, len(n.labels))
	for _, l := range n.labels {
		defs = append(defs, domain.Definition{Label: l, Node: n.nodes[l]})
	}
	return defs
}

func compareLabels(a, b domain.Label) int {
	for i := range a {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
