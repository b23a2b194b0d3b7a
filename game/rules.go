package game

// Fixed rules of the game.
const (
	BoardSize            = 6
	StartingStones       = 12 // Stones in each player's hand at game start
	EliminationThreshold = 2  // Hand+board total at or below which a player is eliminated
	MaxPasses            = 3  // Passes allowed per player per game
	BreakSacrifices      = 2  // Own locked stones sacrificed by a break
	LongLineLength       = 5  // Line length that wins instantly when locked
)
