package sdp

// Probability returns the probability of a single term given independent
// per-link up-probabilities:
//
//	Π r(i) over Up bits × Π over groups g ≥ 1 of (1 − Π r(i) over Down(g) bits)
//	× Π (1 − r(i)) over ungrouped Down(0) bits
//
// Empty products are 1. Groups within one cube cover disjoint link sets, so
// the factors are independent.
func Probability(c Cube, reliabilityOf func(link int) float64) float64 {
	p := 1.0
	maxG := MaxGroup(c)
	var groupUp []float64
	if maxG > 0 {
		groupUp = make([]float64, maxG+1)
		for g := range groupUp {
			groupUp[g] = 1
		}
	}
	used := make([]bool, maxG+1)

	var g uint32
	for i, b := range c {
		switch b.Symbol() {
		case Up:
			p *= reliabilityOf(i)
		case Down:
			if g = b.Group(); g == 0 {
				p *= 1 - reliabilityOf(i)
				continue
			}
			groupUp[g] *= reliabilityOf(i)
			used[g] = true
		}
	}
	for g = 1; g <= maxG; g++ {
		if used[g] {
			p *= 1 - groupUp[g]
		}
	}

	return p
}

// Evaluate sums Probability over terms. The sum is the exact probability of
// the union only when the terms are pairwise disjoint.
func Evaluate(terms []Cube, reliabilityOf func(link int) float64) float64 {
	var sum float64
	for _, c := range terms {
		sum += Probability(c, reliabilityOf)
	}

	return sum
}
