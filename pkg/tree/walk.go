package tree

import "iter"

// Predicate decides whether a walk may visit a node with the given value.
// Predicates should be pure functions of the value; the walker evaluates them
// more than once per node (see [Walker.Next]).
type Predicate[V any] func(V) bool

// State records one visited node of a walk. Besides the node itself it holds
// the chain of traversal parents, built incrementally as the walk proceeds.
// That chain belongs to the walker, not the tree: trees carry no parent
// pointers, so the path back to the root exists only for nodes the walk
// actually reached.
//
// States stay valid after the walker advances or is exhausted. Holding on to
// a state keeps its ancestor states reachable, nothing more.
type State[V any] struct {
	tree   *Tree[V]
	parent *State[V]
}

// Tree returns the visited node.
func (s *State[V]) Tree() *Tree[V] { return s.tree }

// Value returns the visited node's value.
func (s *State[V]) Value() V { return s.tree.Value }

// Parent returns the state that enqueued this one, or nil for the root.
func (s *State[V]) Parent() *State[V] { return s.parent }

// PathToRoot returns the visited node's ancestors, nearest parent first and
// root last. The node itself is excluded; for the root the path is empty.
// The walk is over the parent chain only, so a node at depth d yields exactly
// d ancestors regardless of where the walker has advanced to since.
func (s *State[V]) PathToRoot() []*Tree[V] {
	var path []*Tree[V]
	for cur := s.parent; cur != nil; cur = cur.parent {
		path = append(path, cur.tree)
	}
	return path
}

// Walker is a single-pass breadth-first iterator over a tree. Create one
// with [Walk] or [WalkWhere]; each call produces an independent walker.
type Walker[V any] struct {
	queue []*State[V]
	keep  Predicate[V]
}

// Walk returns a walker that visits every node of t in breadth-first order:
// all nodes at depth d are yielded before any node at depth d+1, siblings in
// child order.
func Walk[V any](t *Tree[V]) *Walker[V] {
	return WalkWhere(t, func(V) bool { return true })
}

// WalkWhere returns a walker restricted by keep. The predicate acts as a
// barrier: a node that fails keep is not yielded and none of its descendants
// are visited, even descendants that would individually pass. If the root
// itself fails, the walk is empty.
func WalkWhere[V any](t *Tree[V], keep Predicate[V]) *Walker[V] {
	w := &Walker[V]{keep: keep}
	if keep(t.Value) {
		w.queue = append(w.queue, &State[V]{tree: t})
	}
	return w
}

// Next yields the next visited node, or false when the walk is exhausted.
//
// Nodes are admitted to the queue unfiltered when their parent is yielded and
// checked against the predicate at dequeue time; a node that fails is
// discarded silently together with its entire pending subtree. The predicate
// therefore runs once at seed time for the root and once per dequeued node.
func (w *Walker[V]) Next() (*State[V], bool) {
	for len(w.queue) > 0 {
		node := w.queue[0]
		w.queue = w.queue[1:]

		if !w.keep(node.tree.Value) {
			continue
		}
		for _, child := range node.tree.Children {
			w.queue = append(w.queue, &State[V]{tree: child, parent: node})
		}
		return node, true
	}
	return nil, false
}

// All adapts the walker's remaining nodes to a range-over-func sequence.
// The sequence shares the walker's single pass: ranging consumes it.
func (w *Walker[V]) All() iter.Seq[*State[V]] {
	return func(yield func(*State[V]) bool) {
		for {
			s, ok := w.Next()
			if !ok {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}
