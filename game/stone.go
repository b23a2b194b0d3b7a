package game

// Player identifies one of the two sides. NoPlayer marks an empty cell
// and the absence of a winner.
type Player int

const (
	NoPlayer Player = iota
	Light
	Dark
)

func (p Player) String() string {
	switch p {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "None"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return NoPlayer
	}
}

// Stone is a single playing piece. A stone exists on the board, in a
// player's hand (counted, not individually tracked), or in a river.
type Stone struct {
	Owner     Player `json:"owner"`
	Locked    bool   `json:"locked,omitempty"`
	PatternID string `json:"patternId,omitempty"`
}
