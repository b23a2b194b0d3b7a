package metrics

import "time"

// GameRecord summarizes one self-play game.
type GameRecord struct {
	ID          int
	Difficulty1 int
	Difficulty2 int
	Winner      string
	VictorySet  string
	Elimination bool
	Turns       int
	Duration    time.Duration
}

// MoveRecord summarizes one move within a game.
type MoveRecord struct {
	Game    int // GameRecord.ID
	Turn    int
	Player  string
	Action  string
	Elapsed time.Duration
}
