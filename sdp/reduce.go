package sdp

// Counts tallies Classify outcomes observed by a Reducer.
type Counts struct {
	Subset         int
	Disjoint       int
	X1             int
	SplitRecursive int
}

// Add accumulates o into c.
func (c *Counts) Add(o Counts) {
	c.Subset += o.Subset
	c.Disjoint += o.Disjoint
	c.X1 += o.X1
	c.SplitRecursive += o.SplitRecursive
}

// Total returns the number of classifications.
func (c Counts) Total() int {
	return c.Subset + c.Disjoint + c.X1 + c.SplitRecursive
}

func (c *Counts) record(r Relation) {
	switch r {
	case Subset:
		c.Subset++
	case Disjoint:
		c.Disjoint++
	case X1:
		c.X1++
	case SplitRecursive:
		c.SplitRecursive++
	}
}

// Reducer applies the disjoint-products operator and keeps running Counts.
// The zero value is ready to use. A Reducer is not safe for concurrent use.
type Reducer struct {
	Counts Counts
}

// pending is one entry of the explicit work stack used by Reduce.
type pending struct {
	cube Cube
	emit bool // append as-is; already known disjoint from B
}

// Reduce rewrites worklist into terms that are disjoint from b, covering
// exactly the assignments of the worklist that b does not cover.
//
// For each term A, by Classify(A, b):
//   - Subset: A is dropped.
//   - Disjoint: A is kept unchanged.
//   - X1: A is replaced by a copy in which every A=DontCare∧B=Up position
//     becomes Down(MaxGroup(A)+1).
//   - SplitRecursive(u): A1 (positions A=Down(u)∧B=Up reset to Up) is reduced
//     against b and its results appended, then Ax (positions A=Down(u)∧B=DontCare
//     reset to DontCare) is appended.
//
// The split branch runs on an explicit stack, so deep splits cannot exhaust
// the goroutine stack; the output order matches the recursive formulation.
// If the input terms are pairwise disjoint, so are the outputs.
//
// Reduce takes ownership of the worklist cubes: kept terms are moved, not copied.
// Panics if a cube length differs from len(b).
func (r *Reducer) Reduce(worklist []Cube, b Cube) []Cube {
	out := make([]Cube, 0, len(worklist))
	stack := make([]pending, 0, 4)

	var (
		top pending
		rel Relation
		u   uint32
	)
	for _, a := range worklist {
		stack = append(stack[:0], pending{cube: a})
		for len(stack) > 0 {
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.emit {
				out = append(out, top.cube)
				continue
			}

			rel, u = Classify(top.cube, b)
			r.Counts.record(rel)
			switch rel {
			case Subset:
				// implied by b: contributes nothing
			case Disjoint:
				out = append(out, top.cube)
			case X1:
				out = append(out, narrow(top.cube, b))
			case SplitRecursive:
				a1, ax := split(top.cube, b, u)
				// LIFO: a1 and everything it spawns drain before ax.
				stack = append(stack, pending{cube: ax, emit: true}, pending{cube: a1})
			}
		}
	}

	return out
}

// Reduce is Reducer.Reduce without counting.
func Reduce(worklist []Cube, b Cube) []Cube {
	var r Reducer
	return r.Reduce(worklist, b)
}

// narrow builds C for the X1 case: a copy of a that excludes b.
func narrow(a, b Cube) Cube {
	c := a.Clone()
	g := MaxGroup(a) + 1
	for i := range c {
		if a[i].IsDontCare() && b[i].IsUp() {
			c[i] = DownBit(g)
		}
	}

	return c
}

// split builds A1 and Ax for group u. A is consumed: Ax reuses its storage.
func split(a, b Cube, u uint32) (a1, ax Cube) {
	a1 = a.Clone()
	ax = a
	for i := range a {
		if !a1[i].inGroup(u) {
			continue
		}
		switch b[i].Symbol() {
		case Up:
			a1[i] = UpBit()
		case DontCare:
			ax[i] = DontCareBit()
		}
	}

	return a1, ax
}
