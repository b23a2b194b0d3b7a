package game

// Evaluate scores a state between -1 and 1 from the given player's
// perspective (positive means favorable).
type Evaluate func(gs *GameState, player Player) float64

// EvaluateMaterial tallies each side's stones in hand and on the board.
func EvaluateMaterial(gs *GameState, player Player) float64 {
	return normalize(float64(gs.totalStones(player)), float64(gs.totalStones(player.Opponent())))
}

// EvaluatePatterns weighs locked patterns by how far they carry their
// owner toward a victory set, plus a smaller credit for lockable shapes
// still on the board.
func EvaluatePatterns(gs *GameState, player Player) float64 {
	return normalize(gs.patternProgress(player), gs.patternProgress(player.Opponent()))
}

// EvaluateThreats measures the opponent's proximity to an instant win:
// long unlocked runs and near-complete crosses.
func EvaluateThreats(gs *GameState, player Player) float64 {
	return -gs.instantWinProximity(player.Opponent())
}

// EvaluateBalanced is the default all-round heuristic.
func EvaluateBalanced(gs *GameState, player Player) float64 {
	if gs.Winner == player {
		return 1
	}
	if gs.Winner == player.Opponent() {
		return -1
	}
	material := EvaluateMaterial(gs, player)
	patterns := EvaluatePatterns(gs, player)
	threats := EvaluateThreats(gs, player)
	return (material + patterns + threats) / 3
}

// patternProgress sums victory-set weight of locked patterns and a
// fractional credit for available ones.
func (gs *GameState) patternProgress(player Player) float64 {
	progress := 0.0
	counts := make(map[PatternType]int)
	for _, p := range gs.LockedPatterns {
		if p.Owner == player {
			counts[p.Type]++
			progress += 1.0
		}
	}

	// Credit partial victory sets: each combination contributes its
	// satisfied fraction, so a player one pattern away scores higher.
	best := 0.0
	for _, req := range combinationRequirements {
		have, need := 0, 0
		for t, n := range req.needs {
			need += n
			c := counts[t]
			if c > n {
				c = n
			}
			have += c
		}
		if need > 0 {
			if fraction := float64(have) / float64(need); fraction > best {
				best = fraction
			}
		}
	}
	progress += 2 * best

	progress += 0.25 * float64(len(gs.AvailablePatterns(player)))
	return progress
}

// instantWinProximity returns a value in [0,1]: how close the player is
// to locking a Cross or a 5-run Line.
func (gs *GameState) instantWinProximity(player Player) float64 {
	proximity := 0.0
	for _, p := range gs.AvailablePatterns(player) {
		switch p.Type {
		case CrossPattern:
			return 1
		case LinePattern:
			if len(p.Positions) >= LongLineLength {
				return 1
			}
			if v := float64(len(p.Positions)) / float64(LongLineLength); v > proximity {
				proximity = v
			}
		}
	}
	return proximity
}

// normalize maps a pair of tallies to (a-b)/(a+b) in [-1,1].
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
