package game

// ActionType discriminates the kinds of move a player can make.
type ActionType int

const (
	DropAction ActionType = iota
	ShiftAction
	LockAction
	DrawAction
	BreakAction
	PassAction
)

func (a ActionType) String() string {
	switch a {
	case DropAction:
		return "Drop"
	case ShiftAction:
		return "Shift"
	case LockAction:
		return "Lock"
	case DrawAction:
		return "Draw"
	case BreakAction:
		return "Break"
	case PassAction:
		return "Pass"
	default:
		return "Unknown"
	}
}

// Move is one player action. The effect fields (Captured, Surrounded) are
// filled in when the move is applied and recorded on the move itself so
// that history replays without re-deriving consequences from the board.
type Move struct {
	Action ActionType `json:"action"`
	Player Player     `json:"player"`

	From Position `json:"from,omitempty"` // Shift source
	To   Position `json:"to,omitempty"`   // Drop/Shift destination, Break target

	Positions  []Position `json:"positions,omitempty"`  // Lock pattern cells
	Sacrifices []Position `json:"sacrifices,omitempty"` // Break: exactly 2 own locked stones

	Timestamp int64 `json:"timestamp"` // Unix milliseconds

	Captured   []Position `json:"captured,omitempty"`
	Surrounded []Position `json:"surrounded,omitempty"`
}
