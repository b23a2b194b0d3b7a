package game

// VictorySetType enumerates the locked-pattern combinations that win the
// game. SingleCross and LongLine are instant wins triggered by locking one
// qualifying pattern; the rest are accumulated combinations, scanned in
// the fixed order below.
type VictorySetType int

const (
	NoVictorySet VictorySetType = iota
	SingleCross                 // instant: lock one Cross
	LongLine                    // instant: lock a Line of 5+
	TwoLines
	GateAndLine
	TwoHooks
	TwoBendsAndLine
	ThreeGates
	GateAndCross
)

func (v VictorySetType) String() string {
	switch v {
	case SingleCross:
		return "SingleCross"
	case LongLine:
		return "LongLine"
	case TwoLines:
		return "TwoLines"
	case GateAndLine:
		return "GateAndLine"
	case TwoHooks:
		return "TwoHooks"
	case TwoBendsAndLine:
		return "TwoBendsAndLine"
	case ThreeGates:
		return "ThreeGates"
	case GateAndCross:
		return "GateAndCross"
	default:
		return "None"
	}
}

// combinationRequirements drives the accumulation scan. Order matters:
// the first satisfied entry decides the winning set.
var combinationRequirements = []struct {
	set   VictorySetType
	needs map[PatternType]int
}{
	{TwoLines, map[PatternType]int{LinePattern: 2}},
	{GateAndLine, map[PatternType]int{GatePattern: 1, LinePattern: 1}},
	{TwoHooks, map[PatternType]int{HookPattern: 2}},
	{TwoBendsAndLine, map[PatternType]int{BendPattern: 2, LinePattern: 1}},
	{ThreeGates, map[PatternType]int{GatePattern: 3}},
	{GateAndCross, map[PatternType]int{GatePattern: 1, CrossPattern: 1}},
}

// checkVictory decides whether locking justLocked wins the game for its
// owner. Instant wins are checked first, then the fixed combination scan
// over all of the owner's locked patterns.
func (gs *GameState) checkVictory(justLocked Pattern) VictorySetType {
	if justLocked.Type == CrossPattern {
		return SingleCross
	}
	if justLocked.Type == LinePattern && len(justLocked.Positions) >= LongLineLength {
		return LongLine
	}

	counts := make(map[PatternType]int)
	for _, p := range gs.LockedPatterns {
		if p.Owner == justLocked.Owner {
			counts[p.Type]++
		}
	}
	for _, req := range combinationRequirements {
		satisfied := true
		for t, n := range req.needs {
			if counts[t] < n {
				satisfied = false
				break
			}
		}
		if satisfied {
			return req.set
		}
	}
	return NoVictorySet
}

// totalStones is a player's hand plus board count. River stones are lost
// until reclaimed and do not stave off elimination.
func (gs *GameState) totalStones(player Player) int {
	return gs.Hands[player] + gs.Board.StoneCount(player)
}

// checkElimination declares the opponent winner when a player's total
// stone count falls to or below the threshold. Called after any
// stone-count-reducing move.
func (gs *GameState) checkElimination() {
	if gs.Winner != NoPlayer {
		return
	}
	for _, player := range []Player{Light, Dark} {
		if gs.totalStones(player) <= EliminationThreshold {
			gs.Winner = player.Opponent()
			gs.VictorySet = NoVictorySet
			gs.Elimination = true
			return
		}
	}
}
