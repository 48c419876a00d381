package sdp

// Relation is the outcome of Classify: how a worklist term A relates to a
// previously seen path term B.
type Relation uint8

const (
	// Subset: A implies B; A contributes nothing new and is dropped.
	Subset Relation = iota
	// Disjoint: A and B share no satisfying assignment; A is kept.
	Disjoint
	// X1: A overlaps B only through links A does not constrain; A is narrowed.
	X1
	// SplitRecursive: a Down group of A straddles B's Up links; A is split.
	SplitRecursive
)

// String returns the relation name used in traces and metrics labels.
func (r Relation) String() string {
	switch r {
	case Subset:
		return "subset"
	case Disjoint:
		return "disjoint"
	case X1:
		return "x1"
	case SplitRecursive:
		return "split_recursive"
	default:
		return "unknown"
	}
}

// Classify decides how A relates to B. For SplitRecursive it also returns
// the split group u; otherwise the group is 0.
//
// Conditions are evaluated in strict precedence order:
//  1. 01-condition: some position has A=Down, B=Up. Then, for each group v in
//     1..MaxGroup(A), the split-condition(v) holds when group v has a position
//     with B=Up and another with B=DontCare. The first such v yields
//     (SplitRecursive, v); if none does, the result is Disjoint.
//  2. Otherwise, some position has A=DontCare, B=Up ⇒ X1.
//  3. Otherwise ⇒ Subset.
//
// The 01-condition must be checked before the X1 condition; swapping them
// breaks the disjoint decomposition.
//
// Complexity: O(n) time, O(MaxGroup(A)) space. Panics if len(A) != len(B).
func Classify(a, b Cube) (Relation, uint32) {
	mustSameLen(a, b)

	var has01, hasX1 bool
	for i := range a {
		if !b[i].IsUp() {
			continue
		}
		switch a[i].Symbol() {
		case Down:
			has01 = true
		case DontCare:
			hasX1 = true
		}
	}

	if has01 {
		if u := splitGroup(a, b); u != 0 {
			return SplitRecursive, u
		}
		return Disjoint, 0
	}
	if hasX1 {
		return X1, 0
	}

	return Subset, 0
}

// splitGroup returns the lowest group v ≥ 1 of A holding both a position
// with B=Up and a position with B=DontCare, or 0 if there is none.
func splitGroup(a, b Cube) uint32 {
	maxG := MaxGroup(a)
	if maxG == 0 {
		return 0
	}
	withUp := make([]bool, maxG+1)
	withX := make([]bool, maxG+1)
	var g uint32
	for i := range a {
		if g = a[i].Group(); g == 0 {
			continue
		}
		switch b[i].Symbol() {
		case Up:
			withUp[g] = true
		case DontCare:
			withX[g] = true
		}
	}
	for v := uint32(1); v <= maxG; v++ {
		if withUp[v] && withX[v] {
			return v
		}
	}

	return 0
}

// AreDisjoint reports whether no link-state assignment satisfies both a and b.
//
// With U the union of both cubes' Up positions, the cubes intersect exactly
// when every Down group (of either cube) keeps a member outside U; setting
// all links outside U down then satisfies both. Ungrouped Down(0) bits are
// singleton groups.
//
// Complexity: O(n) time, O(MaxGroup) space. Panics if len(a) != len(b).
func AreDisjoint(a, b Cube) bool {
	mustSameLen(a, b)

	up := make([]bool, len(a))
	for i := range a {
		up[i] = a[i].IsUp() || b[i].IsUp()
	}

	return forcedGroup(a, up) || forcedGroup(b, up)
}

// forcedGroup reports whether some Down group of c lies entirely inside up.
func forcedGroup(c Cube, up []bool) bool {
	maxG := MaxGroup(c)
	free := make([]bool, maxG+1) // group has a member outside up
	used := make([]bool, maxG+1)
	for i, bit := range c {
		if !bit.IsDown() {
			continue
		}
		g := bit.Group()
		if g == 0 {
			if up[i] {
				return true
			}
			continue
		}
		used[g] = true
		if !up[i] {
			free[g] = true
		}
	}
	for g := uint32(1); g <= maxG; g++ {
		if used[g] && !free[g] {
			return true
		}
	}

	return false
}
