package smiles

// Ring maps between logical positions in a cycle of n items and render
// positions in the tripled sequence that is actually laid out on screen.
//
// Render index i shows item i mod n. The second copy, [n, 2n), is the middle
// copy: a carousel at rest always has its render index there so that it has a
// full copy of headroom on either side.
type Ring struct {
	n int
}

// NewRing returns a ring for n items. Negative sizes are treated as zero.
func NewRing(n int) Ring {
	return Ring{n: max(n, 0)}
}

// Len returns the number of logical items.
func (r Ring) Len() int {
	return r.n
}

// RenderLen returns the length of the tripled render sequence.
func (r Ring) RenderLen() int {
	return 3 * r.n
}

// Normalize folds any integer into [0, n).
func (r Ring) Normalize(logical int) int {
	if r.n == 0 {
		return 0
	}
	return ((logical % r.n) + r.n) % r.n
}

// Logical returns the logical position shown at the given render index.
func (r Ring) Logical(render int) int {
	return r.Normalize(render - r.n)
}

// Middle returns the render index of the logical item inside the middle copy.
func (r Ring) Middle(logical int) int {
	return r.n + r.Normalize(logical)
}

// InMiddle reports whether the render index lies in the middle copy.
func (r Ring) InMiddle(render int) bool {
	return render >= r.n && render < 2*r.n
}

// Step returns the logical position delta steps away from logical, wrapping
// in both directions.
func (r Ring) Step(logical, delta int) int {
	return r.Normalize(r.Normalize(logical) + delta)
}

// Candidates returns the three render indices that show the logical item,
// one per copy, in ascending order.
func (r Ring) Candidates(logical int) [3]int {
	l := r.Normalize(logical)
	return [3]int{l, l + r.n, l + 2*r.n}
}

// Nearest returns the candidate of logical that is closest to the render index
// current. Ties keep the earlier candidate.
func (r Ring) Nearest(current, logical int) int {
	candidates := r.Candidates(logical)
	best := candidates[0]
	bestDist := abs(best - current)
	for _, c := range candidates[1:] {
		if d := abs(c - current); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
