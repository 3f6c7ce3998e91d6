package tree

// Tree is a rooted, ordered tree. Every tree has exactly one value and zero or
// more child subtrees, which it owns outright; there are no parent pointers.
//
// Trees are built once (by struct literal or [New]) and treated as immutable
// afterwards. Nothing in this package mutates a tree. Finiteness is a
// construction obligation: the walker and [HasPrefix] assume the structure is
// acyclic and will not terminate on a tree that reaches itself.
//
// The zero value is a usable single-node tree holding V's zero value.
type Tree[V any] struct {
	Value    V
	Children []*Tree[V]
}

// New builds a tree node from a value and an ordered list of child subtrees.
// It is a convenience for literal construction; the two forms are equivalent.
func New[V any](value V, children ...*Tree[V]) *Tree[V] {
	return &Tree[V]{Value: value, Children: children}
}

// Size returns the total number of nodes in the tree, including the root.
func (t *Tree[V]) Size() int {
	n := 1
	for _, c := range t.Children {
		n += c.Size()
	}
	return n
}

// Depth returns the length of the longest root-to-leaf path, counted in
// edges. A single-node tree has depth 0.
func (t *Tree[V]) Depth() int {
	max := -1
	for _, c := range t.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}
