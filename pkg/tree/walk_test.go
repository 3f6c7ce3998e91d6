package tree

import (
	"slices"
	"testing"
)

// label is the test stand-in for an application schema-entity type.
type label string

const (
	lA label = "A"
	lB label = "B"
	lC label = "C"
	lD label = "D"
)

func collect(w *Walker[label]) []label {
	var out []label
	for s, ok := w.Next(); ok; s, ok = w.Next() {
		out = append(out, s.Value())
	}
	return out
}

func TestWalkOrder(t *testing.T) {
	tests := []struct {
		name string
		tree *Tree[label]
		want []label
	}{
		{
			name: "SingleNode",
			tree: New(lA),
			want: []label{lA},
		},
		{
			name: "BreadthBeforeDepth",
			tree: New(lA,
				New(lB, New(lC)),
				New(lB, New(lC)),
			),
			want: []label{lA, lB, lB, lC, lC},
		},
		{
			name: "SiblingsInChildOrder",
			tree: New(lA, New(lB), New(lC), New(lD)),
			want: []label{lA, lB, lC, lD},
		},
		{
			name: "UnbalancedLevels",
			tree: New(lA,
				New(lB, New(lD, New(lC))),
				New(lC),
			),
			want: []label{lA, lB, lC, lD, lC},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(Walk(tt.tree))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Walk order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	tr := New(lA,
		New(lB, New(lC), New(lD)),
		New(lB, New(lC, New(lD))),
	)
	got := collect(Walk(tr))
	if len(got) != tr.Size() {
		t.Fatalf("visited %d nodes, tree has %d", len(got), tr.Size())
	}
}

func TestWalkWhere(t *testing.T) {
	tests := []struct {
		name string
		tree *Tree[label]
		keep Predicate[label]
		want []label
	}{
		{
			name: "RootFailsYieldsNothing",
			tree: New(lA, New(lB)),
			keep: func(label) bool { return false },
			want: nil,
		},
		{
			name: "RootPassesSingle",
			tree: New(lA),
			keep: func(label) bool { return true },
			want: []label{lA},
		},
		{
			name: "LeavesPruned",
			tree: New(lA,
				New(lB, New(lC)),
				New(lB, New(lC)),
			),
			keep: func(v label) bool { return v == lA || v == lB },
			want: []label{lA, lB, lB},
		},
		{
			name: "BarrierHidesPassingDescendants",
			tree: New(lA,
				New(lB, New(lC)),
				New(lD, New(lB)),
			),
			keep: func(v label) bool { return v != lB },
			want: []label{lA, lD},
		},
		{
			name: "BothSubtreesPruned",
			tree: New(lA,
				New(lB, New(lC)),
				New(lB, New(lC)),
			),
			keep: func(v label) bool { return v != lB },
			want: []label{lA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(WalkWhere(tt.tree, tt.keep))
			if !slices.Equal(got, tt.want) {
				t.Errorf("WalkWhere = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkersAreIndependent(t *testing.T) {
	tr := New(lA, New(lB), New(lC))

	w1 := Walk(tr)
	w1.Next()

	// A fresh walker starts over regardless of w1's position.
	if got := collect(Walk(tr)); !slices.Equal(got, []label{lA, lB, lC}) {
		t.Errorf("fresh walker = %v, want full order", got)
	}
	if got := collect(w1); !slices.Equal(got, []label{lB, lC}) {
		t.Errorf("advanced walker remainder = %v, want [B C]", got)
	}
}

func TestWalkerExhaustion(t *testing.T) {
	w := Walk(New(lA))
	if _, ok := w.Next(); !ok {
		t.Fatal("first Next = false, want true")
	}
	for i := 0; i < 3; i++ {
		if s, ok := w.Next(); ok {
			t.Fatalf("Next after exhaustion = %v, want false", s.Value())
		}
	}
}

func TestPathToRoot(t *testing.T) {
	tr := New(lA,
		New(lB, New(lC)),
		New(lD),
	)

	tests := []struct {
		name string
		find label
		want []label
	}{
		{name: "Root", find: lA, want: nil},
		{name: "MidLevel", find: lB, want: []label{lA}},
		{name: "Leaf", find: lC, want: []label{lB, lA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *State[label]
			for s := range Walk(tr).All() {
				if s.Value() == tt.find {
					found = s
					break
				}
			}
			if found == nil {
				t.Fatalf("node %s not visited", tt.find)
			}

			var got []label
			for _, anc := range found.PathToRoot() {
				got = append(got, anc.Value)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("PathToRoot(%s) = %v, want %v", tt.find, got, tt.want)
			}
		})
	}
}

// Paths must survive the walker advancing past (and beyond) the node.
func TestPathToRootAfterExhaustion(t *testing.T) {
	tr := New(lA, New(lB, New(lC, New(lD))))

	var states []*State[label]
	for s := range Walk(tr).All() {
		states = append(states, s)
	}

	last := states[len(states)-1]
	if got := len(last.PathToRoot()); got != 3 {
		t.Errorf("deepest node has %d ancestors, want 3", got)
	}
	for i, s := range states {
		if got := len(s.PathToRoot()); got != i {
			t.Errorf("node %s at depth %d has %d ancestors", s.Value(), i, got)
		}
	}
}

func TestWalkDepthOrderProperty(t *testing.T) {
	// All nodes at depth d must precede all nodes at depth d+1.
	tr := New(lA,
		New(lB, New(lC), New(lC)),
		New(lB, New(lD)),
	)
	prev := -1
	for s := range Walk(tr).All() {
		d := len(s.PathToRoot())
		if d < prev {
			t.Fatalf("depth %d yielded after depth %d", d, prev)
		}
		prev = d
	}
}
