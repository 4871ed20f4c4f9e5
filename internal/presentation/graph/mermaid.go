package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ghostmap/internal/walk"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/instructions"
	"github.com/aretw0/ghostmap/pkg/network"
)

// GraphOverlay contains walk state to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.Label
	CurrentNode  *domain.Label
}

// WalkOverlay replays a walk from start for at most steps advances, stopping
// early at an accepting node. An unknown start yields an empty overlay.
func WalkOverlay(net *network.Network, seq instructions.Sequence, start domain.Label, steps uint64) *GraphOverlay {
	overlay := &GraphOverlay{}
	if !net.Contains(start) {
		return overlay
	}
	overlay.VisitedNodes = append(overlay.VisitedNodes, start)
	if steps == 0 {
		overlay.CurrentNode = &start
		return overlay
	}
	for step, l := range walk.Visits(net, seq, start) {
		overlay.VisitedNodes = append(overlay.VisitedNodes, l)
		if step >= steps || l.IsAccepting() {
			current := l
			overlay.CurrentNode = &current
			break
		}
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart for the network.
// It applies semantic styling:
// - Start (..A): ((Circle))
// - Accepting (..Z): (((Double circle)))
// - Default: [Rectangle]
// Edges are labelled with their instruction symbol, merged as "L,R" when both
// point to the same node.
func GenerateMermaid(net *network.Network, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, def := range net.Definitions() {
		id := mermaidID(def.Label)

		opener, closer := "[", "]"
		switch {
		case def.Label.IsStart():
			opener, closer = "((", "))"
		case def.Label.IsAccepting():
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, def.Label, closer)

		if def.Node.Left == def.Node.Right {
			fmt.Fprintf(&sb, "    %s -- \"L,R\" --> %s\n", id, mermaidID(def.Node.Left))
			continue
		}
		fmt.Fprintf(&sb, "    %s -- \"L\" --> %s\n", id, mermaidID(def.Node.Left))
		fmt.Fprintf(&sb, "    %s -- \"R\" --> %s\n", id, mermaidID(def.Node.Right))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[domain.Label]bool)
		for _, l := range overlay.VisitedNodes {
			if visited[l] || !net.Contains(l) {
				continue
			}
			visited[l] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", mermaidID(l))
		}
		if overlay.CurrentNode != nil {
			fmt.Fprintf(&sb, "    class %s current;\n", mermaidID(*overlay.CurrentNode))
		}
	}

	return sb.String()
}

// mermaidID prefixes labels so digit-leading names and keywords such as
// "END" stay valid identifiers.
func mermaidID(l domain.Label) string {
	return "n" + l.String()
}
