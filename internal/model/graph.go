package model

// NodeKind distinguishes graph node types for downstream renderers.
type NodeKind string

const (
	// NodeRoute is a leaf node carrying a classified route.
	NodeRoute NodeKind = "route"
	// NodeScope is a grouping node (router group, blueprint, namespace).
	NodeScope NodeKind = "scope"
)

// GraphNode is one vertex of the viz graph. Verdict is only set for
// route nodes and drives downstream color-coding.
type GraphNode struct {
	ID      string   `json:"id"`
	Kind    NodeKind `json:"kind"`
	Label   string   `json:"label"`
	Verdict Verdict  `json:"verdict,omitempty"`
}

// GraphEdge is a directed containment/mount edge from a scope to a
// nested scope or route.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the structured output of viz mode. It is guaranteed acyclic
// by the normalizer's scope cycle check.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
