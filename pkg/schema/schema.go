package schema

// Graph is a flat collection of typed nodes with outgoing cardinality-typed
// edges. The type parameter V is the caller's node-label type, typically an
// enum of schema entity names.
//
// Graphs are plain data: build one by struct literal and treat it as
// immutable afterwards. Nothing ties a target's type to an existing node —
// dangling edge endpoints are permitted and never detected. Referential
// integrity, like acyclicity, is the caller's business, not this package's.
type Graph[V any] struct {
	Nodes []Node[V] `json:"nodes" toml:"nodes"`
}

// Node is a graph vertex: a label plus its outgoing edges.
type Node[V any] struct {
	Type    V           `json:"type" toml:"type"`
	Targets []Target[V] `json:"targets,omitempty" toml:"targets"`
}

// Target is the head of one outgoing edge: the label it points at and the
// cardinality of the connection.
type Target[V any] struct {
	Type V            `json:"type" toml:"type"`
	Rel  Relationship `json:"rel" toml:"rel"`
}

// Link is a materialized directed edge derived from a (node, target) pair.
// Its fields point into the originating graph; a Link is a view, not a copy,
// and shares the graph's lifetime.
type Link[V any] struct {
	From *V
	To   *V
	Rel  *Relationship
}

// Links flattens the graph into one Link per (node, target) pair, in node
// order then target order. Dangling targets produce links like any other.
// The only allocation is the result slice.
func Links[V any](g *Graph[V]) []Link[V] {
	links := make([]Link[V], 0, TargetCount(g))
	for i := range g.Nodes {
		n := &g.Nodes[i]
		for j := range n.Targets {
			t := &n.Targets[j]
			links = append(links, Link[V]{From: &n.Type, To: &t.Type, Rel: &t.Rel})
		}
	}
	return links
}

// NodeCount returns the number of nodes in the graph.
func NodeCount[V any](g *Graph[V]) int { return len(g.Nodes) }

// TargetCount returns the total number of outgoing edges across all nodes,
// which is also the length of [Links].
func TargetCount[V any](g *Graph[V]) int {
	n := 0
	for i := range g.Nodes {
		n += len(g.Nodes[i].Targets)
	}
	return n
}
