package engine

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"rubicon/game"
	"rubicon/searcher"
)

// Controller owns the single authoritative GameState and serializes all
// mutations. Human input adapters and the AI feed moves through the same
// apply path; every other consumer gets snapshots or derived projections.
type Controller struct {
	mu         sync.Mutex
	state      *game.GameState
	selected   *game.Position
	updates    chan Update
	generation uint64
	aiPending  bool
}

func NewController(difficulty int) *Controller {
	return &Controller{
		state:   game.NewGameState(difficulty),
		updates: make(chan Update, 16),
	}
}

// Updates returns the notification channel for external collaborators.
// Slow consumers lose updates rather than stalling move intake.
func (c *Controller) Updates() <-chan Update {
	return c.updates
}

// Snapshot returns a read-only copy of the current state.
func (c *Controller) Snapshot() *game.GameState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Copy()
}

// Reset starts a fresh game. Any in-flight AI computation becomes stale
// and its result is discarded on completion.
func (c *Controller) Reset(difficulty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = game.NewGameState(difficulty)
	c.selected = nil
	c.generation++
	log.Info().Int("difficulty", difficulty).Msg("game reset")
}

// Selection returns the currently selected position, if any.
func (c *Controller) Selection() (game.Position, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return game.Position{}, false
	}
	return *c.selected, true
}

// ValidDestinations derives the legal shift targets for the selected
// stone. Empty when nothing is selected.
func (c *Controller) ValidDestinations() []game.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	var destinations []game.Position
	for _, m := range c.state.LegalMoves() {
		if m.Action == game.ShiftAction && m.From == *c.selected {
			destinations = append(destinations, m.To)
		}
	}
	return destinations
}

// AvailablePatterns derives the lockable patterns for the current player.
func (c *Controller) AvailablePatterns() []game.Pattern {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.AvailablePatterns(c.state.CurrentPlayer)
}

// SelectPosition is the drop-or-shift intent. Selecting one of the
// current player's unlocked stones marks it for a shift; a second call
// then shifts to the given destination. With nothing selected, an empty
// cell drops a hand stone. Returns the applied move, or nil when the
// call only changed the selection.
func (c *Controller) SelectPosition(p game.Position) (*game.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.acceptingIntents(); err != nil {
		return nil, err
	}

	mover := c.state.CurrentPlayer
	if s, ok := c.state.Board.At(p); ok && s.Owner == mover && !s.Locked {
		// Reselecting the same stone clears the selection.
		if c.selected != nil && *c.selected == p {
			c.selected = nil
			return nil, nil
		}
		c.selected = &p
		return nil, nil
	}

	var m game.Move
	if c.selected != nil {
		m = game.Move{Action: game.ShiftAction, Player: mover, From: *c.selected, To: p}
	} else {
		m = game.Move{Action: game.DropAction, Player: mover, To: p}
	}
	applied, err := c.apply(m)
	if err != nil {
		return nil, err
	}
	return &applied, nil
}

// PerformLock locks the pattern covering exactly the given positions.
func (c *Controller) PerformLock(positions []game.Position) (game.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.acceptingIntents(); err != nil {
		return game.Move{}, err
	}
	return c.apply(game.Move{
		Action:    game.LockAction,
		Player:    c.state.CurrentPlayer,
		Positions: positions,
	})
}

// PerformDrawFromRiver reclaims every stone in the mover's river at once.
func (c *Controller) PerformDrawFromRiver() (game.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.acceptingIntents(); err != nil {
		return game.Move{}, err
	}
	return c.apply(game.Move{Action: game.DrawAction, Player: c.state.CurrentPlayer})
}

// PerformPass forfeits the turn.
func (c *Controller) PerformPass() (game.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.acceptingIntents(); err != nil {
		return game.Move{}, err
	}
	return c.apply(game.Move{Action: game.PassAction, Player: c.state.CurrentPlayer})
}

// PerformBreak sacrifices two own locked stones to unlock and remove one
// opponent locked stone.
func (c *Controller) PerformBreak(sacrifices [2]game.Position, target game.Position) (game.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.acceptingIntents(); err != nil {
		return game.Move{}, err
	}
	return c.apply(game.Move{
		Action:     game.BreakAction,
		Player:     c.state.CurrentPlayer,
		Sacrifices: []game.Position{sacrifices[0], sacrifices[1]},
		To:         target,
	})
}

// StartAIMove kicks off the AI search for the current turn on a snapshot,
// off the intent path. The result comes back through the same apply path
// as human moves; a result that arrives after a reset or state change is
// discarded. At most one computation may be outstanding.
func (c *Controller) StartAIMove(s *searcher.Searcher) error {
	c.mu.Lock()
	if c.aiPending {
		c.mu.Unlock()
		return fmt.Errorf("AI move already in progress")
	}
	if c.state.Winner != game.NoPlayer {
		c.mu.Unlock()
		return game.Rejection{Reason: game.ReasonGameOver}
	}
	c.aiPending = true
	generation := c.generation
	snapshot := c.state.Copy()
	hash := snapshot.Hash()
	c.mu.Unlock()

	go func() {
		move, err := s.ChooseMove(snapshot)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.aiPending = false

		if c.generation != generation || c.state.Hash() != hash {
			log.Warn().Msg("discarding stale AI move")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("AI search failed")
			return
		}
		if _, err := c.apply(move); err != nil {
			// The state was unchanged since the snapshot, so this is a bug.
			panic(fmt.Sprintf("AI move rejected: %v", err))
		}
	}()
	return nil
}

// acceptingIntents gates human input: nothing is accepted while an AI
// computation for the current turn is outstanding.
func (c *Controller) acceptingIntents() error {
	if c.aiPending {
		return fmt.Errorf("AI move in progress")
	}
	return nil
}

// apply commits a move through the rules engine. Callers hold c.mu.
func (c *Controller) apply(m game.Move) (game.Move, error) {
	next, applied, err := c.state.Apply(m)
	if err != nil {
		log.Debug().Err(err).Str("action", m.Action.String()).Msg("move rejected")
		return game.Move{}, err
	}
	c.state = next
	c.selected = nil

	log.Info().
		Str("player", applied.Player.String()).
		Str("action", applied.Action.String()).
		Int("turn", next.Turn).
		Msg("move applied")
	if next.Winner != game.NoPlayer {
		log.Info().
			Str("winner", next.Winner.String()).
			Str("victorySet", next.VictorySet.String()).
			Bool("elimination", next.Elimination).
			Msg("game over")
	}

	select {
	case c.updates <- Update{Move: applied, State: next.Copy()}:
	default:
		log.Warn().Msg("dropping update for slow consumer")
	}
	return applied, nil
}
