package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstantWinCross(t *testing.T) {
	gs := NewGameState(1)
	cross := []Position{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}}
	place(gs, Light, cross...)
	gs.Hands[Light] = StartingStones - 5

	next := applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: cross})

	require.Equal(t, Light, next.Winner)
	require.Equal(t, SingleCross, next.VictorySet)
	require.False(t, next.Elimination)

	_, _, err := next.Apply(Move{Action: DropAction, Player: Dark, To: Position{5, 5}})
	requireRejected(t, err, ReasonGameOver)
}

func TestInstantWinLongLine(t *testing.T) {
	gs := NewGameState(1)
	line := []Position{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}}
	place(gs, Light, line...)
	gs.Hands[Light] = StartingStones - 5

	next := applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: line})

	require.Equal(t, Light, next.Winner)
	require.Equal(t, LongLine, next.VictorySet)
}

func TestShortLineIsNoInstantWin(t *testing.T) {
	gs := NewGameState(1)
	line := []Position{{0, 3}, {1, 3}, {2, 3}}
	place(gs, Light, line...)
	gs.Hands[Light] = StartingStones - 3

	next := applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: line})
	require.Equal(t, NoPlayer, next.Winner)
}

func TestCombinationWinTwoLines(t *testing.T) {
	gs := NewGameState(1)
	lineA := []Position{{0, 0}, {1, 0}, {2, 0}}
	lineB := []Position{{0, 2}, {1, 2}, {2, 2}}
	place(gs, Light, lineA...)
	place(gs, Light, lineB...)
	gs.Hands[Light] = StartingStones - 6

	gs = applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: lineA})
	require.Equal(t, NoPlayer, gs.Winner, "one line is not yet a victory set")

	gs = applyMove(t, gs, Move{Action: PassAction, Player: Dark})
	gs = applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: lineB})

	require.Equal(t, Light, gs.Winner)
	require.Equal(t, TwoLines, gs.VictorySet)
}

func TestCombinationScanOrder(t *testing.T) {
	// Unit-level: when several requirements are satisfied at once, the
	// fixed enumeration order decides.
	gs := NewGameState(1)
	lines := newPattern(LinePattern, Light, []Position{{0, 0}, {1, 0}, {2, 0}})
	lineB := newPattern(LinePattern, Light, []Position{{0, 2}, {1, 2}, {2, 2}})
	gate := newPattern(GatePattern, Light, []Position{{4, 4}, {5, 4}, {4, 5}, {5, 5}})
	gs.LockedPatterns = []Pattern{lines, lineB, gate}

	require.Equal(t, TwoLines, gs.checkVictory(lineB),
		"TwoLines precedes GateAndLine in the enumeration")
}

func TestCombinationWinGateAndLine(t *testing.T) {
	gs := NewGameState(1)
	gate := []Position{{4, 4}, {5, 4}, {4, 5}, {5, 5}}
	lineA := []Position{{0, 0}, {1, 0}, {2, 0}}
	lineB := []Position{{0, 2}, {1, 2}, {2, 2}}
	place(gs, Light, gate...)
	place(gs, Light, lineA...)
	place(gs, Light, lineB...)
	gs.Hands[Light] = StartingStones - 10

	gs = applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: lineA})
	gs = applyMove(t, gs, Move{Action: PassAction, Player: Dark})
	gs = applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: gate})
	require.Equal(t, Light, gs.Winner)
	require.Equal(t, GateAndLine, gs.VictorySet,
		"gate + line completes before a second line exists")
}

func TestOpponentPatternsDoNotMix(t *testing.T) {
	gs := NewGameState(1)
	lightLine := []Position{{0, 0}, {1, 0}, {2, 0}}
	darkLine := []Position{{0, 5}, {1, 5}, {2, 5}}
	place(gs, Light, lightLine...)
	place(gs, Dark, darkLine...)
	gs.Hands[Light] = StartingStones - 3
	gs.Hands[Dark] = StartingStones - 3

	gs = applyMove(t, gs, Move{Action: LockAction, Player: Light, Positions: lightLine})
	gs = applyMove(t, gs, Move{Action: LockAction, Player: Dark, Positions: darkLine})

	require.Equal(t, NoPlayer, gs.Winner,
		"one line per player must not count as TwoLines for either")
}
