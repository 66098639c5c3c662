package controller

import (
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// verdictColors map verdicts to Graphviz fill colors. Scope nodes get
// no fill.
var verdictColors = map[m.Verdict]string{
	m.VerdictProtected:          "palegreen",
	m.VerdictInheritedProtected: "lightcyan",
	m.VerdictUnprotected:        "lightcoral",
	m.VerdictAmbiguous:          "khaki",
}

// WriteDOT emits one project's containment graph in Graphviz DOT form,
// route nodes colored by verdict.
func WriteDOT(w io.Writer, root m.Path, graph m.Graph) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", dotQuote(string(root))); err != nil {
		return err
	}

	fmt.Fprintf(w, "  rankdir=LR;\n")
	fmt.Fprintf(w, "  node [fontname=\"monospace\"];\n")

	for _, node := range graph.Nodes {
		attrs := []string{fmt.Sprintf("label=%s", dotQuote(node.Label))}

		switch node.Kind {
		case m.NodeScope:
			attrs = append(attrs, "shape=folder")
		case m.NodeRoute:
			attrs = append(attrs, "shape=box", "style=filled")
			if color, ok := verdictColors[node.Verdict]; ok {
				attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color))
			}
		}

		if _, err := fmt.Fprintf(w, "  %s [%s];\n", dotQuote(node.ID), strings.Join(attrs, ", ")); err != nil {
			return err
		}
	}

	for _, edge := range graph.Edges {
		if _, err := fmt.Fprintf(w, "  %s -> %s;\n", dotQuote(edge.From), dotQuote(edge.To)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "}\n")

	return err
}

func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
