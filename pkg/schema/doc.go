// Package schema models relational schemas as typed graphs whose edges carry
// cardinality relationships.
//
// # Overview
//
// A [Graph] is a flat list of labelled nodes; each node lists the labels it
// points at together with a [Relationship] (1:1, 1:N, N:1 or N:N). [Links]
// flattens the graph into directed (from, to, relationship) edges for
// reporting or rendering, and [Relationship.Invert] gives the cardinality of
// an edge traversed backward.
//
//	g := schema.Graph[string]{Nodes: []schema.Node[string]{
//	    {Type: "users", Targets: []schema.Target[string]{
//	        {Type: "orders", Rel: schema.OneToMany},
//	    }},
//	    {Type: "orders", Targets: []schema.Target[string]{
//	        {Type: "items", Rel: schema.ManyToMany},
//	    }},
//	}}
//	for _, l := range schema.Links(&g) {
//	    fmt.Printf("%s -> %s (%s)\n", *l.From, *l.To, *l.Rel)
//	}
//
// # Deliberate non-guarantees
//
// The package enforces no referential integrity: targets may name labels no
// node declares, and [Links] materializes them anyway. Graphs are not
// required to be acyclic and no cycle detection exists. Both are properties
// of the caller's data, not of this model.
//
// # Concurrency
//
// Graphs are plain immutable data after construction and safe to share.
// [Links] is a pure function and safe to call concurrently on the same graph.
package schema
