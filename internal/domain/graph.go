package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// BuildGraph projects a scan result onto a containment graph: one node
// per scope, one node per route, edges from container to contained.
// The edge set mirrors the scope parent chain, so a normalized result
// always yields an acyclic graph.
func BuildGraph(result m.ScanResult) m.Graph {
	var graph m.Graph

	known := make(map[m.ScopeID]bool, len(result.Scopes))

	for _, scope := range result.Scopes {
		known[scope.ID] = true

		label := scope.Name
		if label == "" {
			label = scope.MountPrefix
		}

		if label == "" {
			label = string(scope.ID)
		}

		graph.Nodes = append(graph.Nodes, m.GraphNode{
			ID:    string(scope.ID),
			Kind:  m.NodeScope,
			Label: label,
		})
	}

	for _, scope := range result.Scopes {
		if scope.ParentID != "" && known[scope.ParentID] {
			graph.Edges = append(graph.Edges, m.GraphEdge{
				From: string(scope.ParentID),
				To:   string(scope.ID),
			})
		}
	}

	for i, route := range result.Routes {
		id := fmt.Sprintf("route-%d", i)

		graph.Nodes = append(graph.Nodes, m.GraphNode{
			ID:      id,
			Kind:    m.NodeRoute,
			Label:   fmt.Sprintf("%s %s", strings.Join(route.Methods, ","), route.FullPath),
			Verdict: route.Verdict,
		})

		if route.ScopeID != "" && known[route.ScopeID] {
			graph.Edges = append(graph.Edges, m.GraphEdge{
				From: string(route.ScopeID),
				To:   id,
			})
		}
	}

	return graph
}
