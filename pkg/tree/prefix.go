package tree

// HasPrefix reports whether pattern occurs as a structural prefix of
// candidate. The match is existential and recursive:
//
//  1. The root values must be equal, otherwise there is no match.
//  2. A childless pattern matches regardless of candidate's remaining
//     structure — the pattern is satisfied at this depth.
//  3. Otherwise it suffices for ANY one candidate child to match ANY one
//     pattern child; unmatched children on either side are ignored.
//
// This is a "the pattern occurs somewhere along some path" test, not a
// subtree-containment or isomorphism check. In particular it does not require
// every pattern child to be matched, and two pattern children may be satisfied
// by the same candidate child. Callers wanting all-children-must-match
// semantics need a different function; HasPrefix deliberately does not
// provide it.
//
// Worst-case cost is exponential in the shared branching of the two trees.
// For the schema-sized trees this package targets that is irrelevant.
func HasPrefix[V comparable](candidate, pattern *Tree[V]) bool {
	if candidate.Value != pattern.Value {
		return false
	}
	if len(pattern.Children) == 0 {
		return true
	}
	for _, c := range candidate.Children {
		for _, p := range pattern.Children {
			if HasPrefix(c, p) {
				return true
			}
		}
	}
	return false
}
