package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rubicon/game"
	"rubicon/meta"
)

// midGameState builds a position with drops, shifts, locks, and a
// non-empty river all on the menu.
func midGameState(t *testing.T) *game.GameState {
	t.Helper()
	gs := game.NewGameState(3)
	for _, p := range []game.Position{{Col: 2, Row: 2}, {Col: 3, Row: 2}, {Col: 4, Row: 2}, {Col: 1, Row: 1}} {
		gs.Board.Place(p, game.Stone{Owner: game.Light})
	}
	for _, p := range []game.Position{{Col: 3, Row: 4}, {Col: 4, Row: 4}} {
		gs.Board.Place(p, game.Stone{Owner: game.Dark})
	}
	gs.Hands[game.Light] = game.StartingStones - 5
	gs.Hands[game.Dark] = game.StartingStones - 2
	gs.Rivers[game.Light] = []game.Stone{{Owner: game.Light}}
	return gs
}

func TestChooseMoveIsAlwaysLegal(t *testing.T) {
	for difficulty := meta.MIN_DIFFICULTY; difficulty <= meta.MAX_DIFFICULTY; difficulty++ {
		s := NewSearcher(difficulty, WithSeed(7))
		gs := midGameState(t)

		// Play several plies at this difficulty; every returned move must
		// pass the validator for the snapshot it was computed from.
		for ply := 0; ply < 6 && gs.Winner == game.NoPlayer; ply++ {
			move, err := s.ChooseMove(gs)
			require.NoError(t, err)
			require.NoError(t, gs.Validate(move),
				"difficulty %d returned an illegal move %+v", difficulty, move)

			next, _, err := gs.Apply(move)
			require.NoError(t, err)
			gs = next
		}
	}
}

func TestChooseMoveLegalAcrossPersonalities(t *testing.T) {
	personalities := []Personality{
		DefaultPersonality(),
		{Name: "raider", MaterialWeight: 1, PatternWeight: 1, ThreatWeight: 1, CaptureBonus: 0.5},
		{Name: "pacifist", MaterialWeight: 1, PatternWeight: 2, ThreatWeight: 1, AvoidBreak: true},
		{Name: "mimic", MaterialWeight: 1, PatternWeight: 1, ThreatWeight: 1, MirrorLast: true},
		{Name: "gatekeeper", MaterialWeight: 1, PatternWeight: 2, ThreatWeight: 1, FavoredPattern: "Gate"},
	}
	for _, p := range personalities {
		s := NewSearcher(4, WithSeed(11), WithPersonality(p))
		gs := midGameState(t)
		move, err := s.ChooseMove(gs)
		require.NoError(t, err, "personality %s", p.Name)
		require.NoError(t, gs.Validate(move), "personality %s", p.Name)
	}
}

func TestChooseMoveDeterministicForSeed(t *testing.T) {
	for _, difficulty := range []int{1, 3, 6} {
		a := NewSearcher(difficulty, WithSeed(99))
		b := NewSearcher(difficulty, WithSeed(99))
		gs := midGameState(t)

		moveA, err := a.ChooseMove(gs)
		require.NoError(t, err)
		moveB, err := b.ChooseMove(gs)
		require.NoError(t, err)
		require.Equal(t, moveA, moveB, "difficulty %d must be reproducible for a fixed seed", difficulty)
	}
}

func TestChooseMoveDoesNotMutateSnapshot(t *testing.T) {
	gs := midGameState(t)
	before := gs.Copy()

	s := NewSearcher(5, WithSeed(3))
	_, err := s.ChooseMove(gs)
	require.NoError(t, err)
	require.Equal(t, before, gs, "the searcher must only read its snapshot")
}

func TestAvoidBreakPersonalityNeverBreaks(t *testing.T) {
	// A state where breaking is legal and attractive.
	gs := game.NewGameState(3)
	lightLine := []game.Position{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}}
	darkLine := []game.Position{{Col: 0, Row: 5}, {Col: 1, Row: 5}, {Col: 2, Row: 5}}
	for _, p := range lightLine {
		gs.Board.Place(p, game.Stone{Owner: game.Light})
	}
	for _, p := range darkLine {
		gs.Board.Place(p, game.Stone{Owner: game.Dark})
	}
	gs.Hands[game.Light] = game.StartingStones - 3
	gs.Hands[game.Dark] = game.StartingStones - 3

	next, _, err := gs.Apply(game.Move{Action: game.LockAction, Player: game.Light, Positions: lightLine})
	require.NoError(t, err)
	next, _, err = next.Apply(game.Move{Action: game.LockAction, Player: game.Dark, Positions: darkLine})
	require.NoError(t, err)

	s := NewSearcher(2, WithSeed(5), WithPersonality(Personality{
		Name: "pacifist", MaterialWeight: 1, PatternWeight: 1, ThreatWeight: 1, AvoidBreak: true,
	}))
	for i := 0; i < 10; i++ {
		move, err := s.ChooseMove(next)
		require.NoError(t, err)
		require.NotEqual(t, game.BreakAction, move.Action)
	}
}

func TestWinningMoveIsTaken(t *testing.T) {
	// Light can lock a cross and win instantly; every serious difficulty
	// must find it.
	gs := game.NewGameState(6)
	cross := []game.Position{{Col: 2, Row: 2}, {Col: 1, Row: 2}, {Col: 3, Row: 2}, {Col: 2, Row: 1}, {Col: 2, Row: 3}}
	for _, p := range cross {
		gs.Board.Place(p, game.Stone{Owner: game.Light})
	}
	gs.Hands[game.Light] = game.StartingStones - 5

	s := NewSearcher(6, WithSeed(1))
	move, err := s.ChooseMove(gs)
	require.NoError(t, err)

	next, _, err := gs.Apply(move)
	require.NoError(t, err)
	require.Equal(t, game.Light, next.Winner, "difficulty 6 must take the instant win")
	require.Equal(t, game.SingleCross, next.VictorySet)
}
