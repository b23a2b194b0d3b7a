package engine

import "rubicon/game"

// Update is delivered to external collaborators (rendering, audio,
// bookkeeping) after every committed move. State is a private copy; the
// applied Move carries the captured/surrounded positions for cues.
type Update struct {
	Move  game.Move
	State *game.GameState
}
