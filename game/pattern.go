package game

import "golang.org/x/exp/slices"

// PatternType tags the recognizable shapes.
type PatternType int

const (
	LinePattern PatternType = iota
	BendPattern
	GatePattern
	CrossPattern
	PodPattern
	HookPattern
)

func (t PatternType) String() string {
	switch t {
	case LinePattern:
		return "Line"
	case BendPattern:
		return "Bend"
	case GatePattern:
		return "Gate"
	case CrossPattern:
		return "Cross"
	case PodPattern:
		return "Pod"
	case HookPattern:
		return "Hook"
	default:
		return "Unknown"
	}
}

// MinStones returns the minimum stone count for the pattern type.
func (t PatternType) MinStones() int {
	switch t {
	case LinePattern, BendPattern, PodPattern:
		return 3
	case GatePattern, HookPattern:
		return 4
	case CrossPattern:
		return 5
	default:
		return 0
	}
}

// Pattern is a recognized shape on the board. Positions are kept sorted;
// ID is derived from the type and the sorted position set, so rotations
// and reflections covering identical cells collapse to one pattern.
type Pattern struct {
	Type      PatternType `json:"type"`
	Positions []Position  `json:"positions"`
	Owner     Player      `json:"owner"`
	Locked    bool        `json:"locked"`
	ID        string      `json:"id"`
}

func newPattern(t PatternType, owner Player, positions []Position) Pattern {
	sorted := slices.Clone(positions)
	sortPositions(sorted)
	return Pattern{
		Type:      t,
		Positions: sorted,
		Owner:     owner,
		ID:        t.String() + positionKey(sorted),
	}
}

// Shape templates as (dc,dr) offsets from an anchor cell.

var orthoDirs = []Position{{Col: 1, Row: 0}, {Col: 0, Row: 1}}

var lineDirs = []Position{
	{Col: 1, Row: 0},  // east
	{Col: 0, Row: 1},  // south
	{Col: 1, Row: 1},  // southeast
	{Col: 1, Row: -1}, // northeast
}

// bendShapes: an orthogonal right angle of 3 (corner stone plus one
// neighbor in each of two perpendicular orthogonal directions).
var bendShapes = [][]Position{
	{{0, 0}, {1, 0}, {0, 1}},
	{{0, 0}, {-1, 0}, {0, 1}},
	{{0, 0}, {1, 0}, {0, -1}},
	{{0, 0}, {-1, 0}, {0, -1}},
}

// podShapes: a diagonal V of 3 (point stone plus both diagonal neighbors
// on one side).
var podShapes = [][]Position{
	{{0, 0}, {-1, -1}, {1, -1}}, // opens up
	{{0, 0}, {-1, 1}, {1, 1}},   // opens down
	{{0, 0}, {-1, -1}, {-1, 1}}, // opens left
	{{0, 0}, {1, -1}, {1, 1}},   // opens right
}

// gateShape: a full 2x2 block.
var gateShape = []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// crossShape: a plus of 5.
var crossShape = []Position{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// hookShapes: an L of 4 (orthogonal run of 3 plus a perpendicular foot at
// one end). All 8 orientations; identical cell sets are deduplicated later.
var hookShapes = buildHookShapes()

func buildHookShapes() [][]Position {
	var shapes [][]Position
	for _, d := range orthoDirs {
		perp := Position{Col: d.Row, Row: d.Col}
		for _, sign := range []int{1, -1} {
			foot := Position{Col: perp.Col * sign, Row: perp.Row * sign}
			// Foot at the anchor end of the run
			shapes = append(shapes, []Position{
				{0, 0},
				{d.Col, d.Row},
				{d.Col * 2, d.Row * 2},
				{foot.Col, foot.Row},
			})
			// Foot at the far end of the run
			shapes = append(shapes, []Position{
				{0, 0},
				{d.Col, d.Row},
				{d.Col * 2, d.Row * 2},
				{d.Col*2 + foot.Col, d.Row*2 + foot.Row},
			})
		}
	}
	return shapes
}

// AvailablePatterns recomputes, from the live board, every lockable shape
// made of the player's unlocked stones. It carries no cached state.
func (gs *GameState) AvailablePatterns(player Player) []Pattern {
	seen := make(map[string]bool)
	var patterns []Pattern

	add := func(p Pattern) {
		if !seen[p.ID] {
			seen[p.ID] = true
			patterns = append(patterns, p)
		}
	}

	for _, p := range gs.detectLines(player) {
		add(p)
	}
	for _, shapes := range []struct {
		t         PatternType
		templates [][]Position
	}{
		{BendPattern, bendShapes},
		{PodPattern, podShapes},
		{GatePattern, [][]Position{gateShape}},
		{CrossPattern, [][]Position{crossShape}},
		{HookPattern, hookShapes},
	} {
		for _, p := range gs.detectTemplates(player, shapes.t, shapes.templates) {
			add(p)
		}
	}
	return patterns
}

// detectLines finds maximal straight runs of 3+ along the 4 line
// directions. Only the maximal run is reported, not its sub-runs.
func (gs *GameState) detectLines(player Player) []Pattern {
	var patterns []Pattern
	for _, d := range lineDirs {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				start := Position{Col: col, Row: row}
				if !gs.Board.ownedUnlocked(start, player) {
					continue
				}
				// Skip non-maximal starts
				prev := start.offset(-d.Col, -d.Row)
				if prev.Valid() && gs.Board.ownedUnlocked(prev, player) {
					continue
				}
				run := []Position{start}
				next := start.offset(d.Col, d.Row)
				for next.Valid() && gs.Board.ownedUnlocked(next, player) {
					run = append(run, next)
					next = next.offset(d.Col, d.Row)
				}
				if len(run) >= LinePattern.MinStones() {
					patterns = append(patterns, newPattern(LinePattern, player, run))
				}
			}
		}
	}
	return patterns
}

// detectTemplates matches fixed-shape templates anchored at every cell.
func (gs *GameState) detectTemplates(player Player, t PatternType, templates [][]Position) []Pattern {
	var patterns []Pattern
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			anchor := Position{Col: col, Row: row}
			for _, template := range templates {
				cells := make([]Position, 0, len(template))
				matched := true
				for _, off := range template {
					cell := anchor.offset(off.Col, off.Row)
					if !cell.Valid() || !gs.Board.ownedUnlocked(cell, player) {
						matched = false
						break
					}
					cells = append(cells, cell)
				}
				if matched {
					patterns = append(patterns, newPattern(t, player, cells))
				}
			}
		}
	}
	return patterns
}

// findAvailablePattern returns the detected pattern whose cells exactly
// match the given set, if any.
func (gs *GameState) findAvailablePattern(player Player, positions []Position) (Pattern, bool) {
	for _, p := range gs.AvailablePatterns(player) {
		if samePositionSet(p.Positions, positions) {
			return p, true
		}
	}
	return Pattern{}, false
}
