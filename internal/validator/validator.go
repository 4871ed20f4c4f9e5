package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/network"
)

// Reach summarises what a start node can reach through either edge.
type Reach struct {
	Start     domain.Label   `json:"start"`
	Reachable int            `json:"reachable"`
	Accepting []domain.Label `json:"accepting"`
	End       bool           `json:"end"`
}

// Report is the outcome of ValidateNetwork.
type Report struct {
	Nodes  int            `json:"nodes"`
	Starts []Reach        `json:"starts"`
	Orphan []domain.Label `json:"orphan,omitempty"`
}

// ValidateNetwork crawls the network from AAA and from every ..A node.
// Reachability ignores the instruction sequence, so a reachable terminal is
// necessary but not sufficient for a walk to finish.
//
// The returned error lists every start that cannot reach its terminal.
func ValidateNetwork(net *network.Network) (Report, error) {
	report := Report{Nodes: net.Len()}
	starts := net.Select(domain.Label.IsStart)

	var errors []string
	seen := make(map[domain.Label]bool, net.Len())
	for _, start := range starts {
		visited := crawl(net, start)
		r := Reach{Start: start, Reachable: len(visited)}
		for _, l := range net.Labels() {
			if !visited[l] {
				continue
			}
			seen[l] = true
			if l.IsAccepting() {
				r.Accepting = append(r.Accepting, l)
			}
			if l == domain.EndLabel {
				r.End = true
			}
		}
		report.Starts = append(report.Starts, r)

		if len(r.Accepting) == 0 {
			errors = append(errors, fmt.Sprintf("start '%s' cannot reach any ..Z node", start))
		}
		if start == domain.StartLabel && !r.End {
			errors = append(errors, fmt.Sprintf("start '%s' cannot reach '%s'", start, domain.EndLabel))
		}
	}

	for _, l := range net.Labels() {
		if !seen[l] {
			report.Orphan = append(report.Orphan, l)
		}
	}

	if len(starts) == 0 {
		errors = append(errors, "no start nodes (AAA or ..A)")
	}
	if len(errors) > 0 {
		return report, fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return report, nil
}

func crawl(net *network.Network, start domain.Label) map[domain.Label]bool {
	visited := make(map[domain.Label]bool)
	queue := []domain.Label{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		node, ok := net.Lookup(current)
		if !ok {
			continue
		}
		for _, target := range []domain.Label{node.Left, node.Right} {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}
