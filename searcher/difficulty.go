package searcher

// tier maps a difficulty ordinal to search parameters: look-ahead depth,
// how many top candidates survive into the deeper search, and the
// probability of deliberately playing a suboptimal move.
type tier struct {
	depth   int
	breadth int
	noise   float64
}

var tiers = map[int]tier{
	1: {depth: 0, breadth: 4, noise: 0.50},
	2: {depth: 0, breadth: 8, noise: 0.30},
	3: {depth: 1, breadth: 8, noise: 0.15},
	4: {depth: 1, breadth: 12, noise: 0.05},
	5: {depth: 2, breadth: 12, noise: 0.02},
	6: {depth: 3, breadth: 16, noise: 0},
}

func tierFor(difficulty int) tier {
	if t, ok := tiers[difficulty]; ok {
		return t
	}
	if difficulty < 1 {
		return tiers[1]
	}
	return tiers[6]
}
