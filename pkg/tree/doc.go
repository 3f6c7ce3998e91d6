// Package tree provides a generic rooted tree with conditional breadth-first
// traversal and structural prefix matching.
//
// # Overview
//
// A [Tree] is an ordered hierarchy of values, typically labels from an
// application-specific type such as a schema entity enum. The package answers
// three questions about such hierarchies:
//
//   - Which nodes are reachable, in breadth-first order, under a predicate?
//   - What is the ancestor path of a visited node back to the root?
//   - Does one tree occur as a structural prefix of another?
//
// # Walking
//
// [Walk] visits every node level by level. [WalkWhere] restricts the walk
// with a barrier predicate: a failing node is skipped and its entire subtree
// is pruned, even if deeper descendants would individually pass. This is the
// natural semantics for visibility or permission filters on hierarchies,
// where a hidden branch hides everything beneath it:
//
//	t := tree.New("db",
//	    tree.New("users", tree.New("id")),
//	    tree.New("internal", tree.New("id")),
//	)
//	w := tree.WalkWhere(t, func(v string) bool { return v != "internal" })
//	for s := range w.All() {
//	    fmt.Println(s.Value()) // db, users, id — internal/id never visited
//	}
//
// Every visited node carries a [State] with the path back to the root,
// reconstructed by the walker itself; the tree stores no parent pointers.
//
// # Prefix matching
//
// [HasPrefix] checks whether a pattern tree occurs as a prefix of a candidate
// tree under an existential one-branch rule: at each level a single matching
// (candidate child, pattern child) pair suffices. See the function
// documentation for exactly what this does and does not promise.
//
// # Concurrency
//
// Trees are immutable after construction and safe to share. Walkers are
// single-pass and not safe for concurrent use; create one walker per
// goroutine.
package tree
