package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(gs *GameState, player Player, positions ...Position) {
	for _, p := range positions {
		gs.Board.Place(p, Stone{Owner: player})
	}
}

func patternsOfType(patterns []Pattern, t PatternType) []Pattern {
	var matched []Pattern
	for _, p := range patterns {
		if p.Type == t {
			matched = append(matched, p)
		}
	}
	return matched
}

func TestDetectLine(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{2, 2}, Position{3, 2}, Position{4, 2})

	lines := patternsOfType(gs.AvailablePatterns(Light), LinePattern)
	require.Len(t, lines, 1)
	require.Equal(t, []Position{{2, 2}, {3, 2}, {4, 2}}, lines[0].Positions)
	require.Equal(t, Light, lines[0].Owner)

	// Opponent sees nothing
	require.Empty(t, gs.AvailablePatterns(Dark))
}

func TestDetectLineMaximalOnly(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{1, 0}, Position{2, 0}, Position{3, 0}, Position{4, 0})

	lines := patternsOfType(gs.AvailablePatterns(Light), LinePattern)
	require.Len(t, lines, 1, "sub-runs of a maximal run must not be reported")
	require.Len(t, lines[0].Positions, 4)
}

func TestDetectDiagonalLine(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Dark, Position{1, 1}, Position{2, 2}, Position{3, 3})

	lines := patternsOfType(gs.AvailablePatterns(Dark), LinePattern)
	require.Len(t, lines, 1)
}

func TestDetectBend(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{1, 1}, Position{2, 1}, Position{1, 2})

	bends := patternsOfType(gs.AvailablePatterns(Light), BendPattern)
	require.Len(t, bends, 1)
	require.Equal(t, []Position{{1, 1}, {2, 1}, {1, 2}}, bends[0].Positions)
}

func TestDetectGateAndContainedShapes(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{2, 2}, Position{3, 2}, Position{2, 3}, Position{3, 3})

	patterns := gs.AvailablePatterns(Light)
	gates := patternsOfType(patterns, GatePattern)
	require.Len(t, gates, 1)
	require.Len(t, gates[0].Positions, 4)

	// The four corners of the block each anchor a bend; those are
	// distinct position sets and legitimately coexist with the gate.
	require.Len(t, patternsOfType(patterns, BendPattern), 4)
}

func TestDetectCross(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light,
		Position{2, 2}, Position{1, 2}, Position{3, 2}, Position{2, 1}, Position{2, 3})

	crosses := patternsOfType(gs.AvailablePatterns(Light), CrossPattern)
	require.Len(t, crosses, 1)
	require.Len(t, crosses[0].Positions, 5)
}

func TestDetectPod(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{2, 2}, Position{1, 1}, Position{3, 1})

	pods := patternsOfType(gs.AvailablePatterns(Light), PodPattern)
	require.Len(t, pods, 1)
	require.Equal(t, []Position{{1, 1}, {3, 1}, {2, 2}}, pods[0].Positions)
}

func TestDetectHook(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{1, 1}, Position{2, 1}, Position{3, 1}, Position{1, 2})

	hooks := patternsOfType(gs.AvailablePatterns(Light), HookPattern)
	require.Len(t, hooks, 1)
	require.Len(t, hooks[0].Positions, 4)
}

func TestLockedStonesDoNotFormPatterns(t *testing.T) {
	gs := NewGameState(1)
	place(gs, Light, Position{2, 2}, Position{3, 2}, Position{4, 2})
	gs.Board.setLocked(Position{3, 2}, true, "x")

	require.Empty(t, gs.AvailablePatterns(Light),
		"a locked stone cannot participate in a new pattern")
}

func TestNoDuplicatePatternsForIdenticalSets(t *testing.T) {
	gs := NewGameState(1)
	// A 3x2 block of stones gives hooks that several orientations cover
	// with identical cell sets.
	place(gs, Light,
		Position{1, 1}, Position{2, 1}, Position{3, 1},
		Position{1, 2}, Position{2, 2}, Position{3, 2})

	patterns := gs.AvailablePatterns(Light)
	seen := map[string]int{}
	for _, p := range patterns {
		seen[p.ID]++
		require.Equal(t, 1, seen[p.ID], "pattern %s reported twice", p.ID)
	}
}

func TestPatternMinimumStones(t *testing.T) {
	require.Equal(t, 3, LinePattern.MinStones())
	require.Equal(t, 3, BendPattern.MinStones())
	require.Equal(t, 3, PodPattern.MinStones())
	require.Equal(t, 4, GatePattern.MinStones())
	require.Equal(t, 4, HookPattern.MinStones())
	require.Equal(t, 5, CrossPattern.MinStones())
}
