package game

import "fmt"

// RejectionReason classifies why a proposed move is illegal. Rejections
// are never fatal: the state is left unchanged and the caller may pick a
// different action.
type RejectionReason int

const (
	ReasonGameOver RejectionReason = iota
	ReasonNotYourTurn
	ReasonInvalidPosition
	ReasonOccupied
	ReasonEmptyHand
	ReasonNotYourStone
	ReasonStoneLocked
	ReasonNotAdjacent
	ReasonOwnStoneAtTarget
	ReasonPatternMismatch
	ReasonCooldown
	ReasonEmptyRiver
	ReasonBreakUsed
	ReasonNotEnoughLocked
	ReasonNoBreakTarget
	ReasonBadSacrifice
	ReasonPassLimit
)

func (r RejectionReason) String() string {
	switch r {
	case ReasonGameOver:
		return "game over"
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonInvalidPosition:
		return "invalid position"
	case ReasonOccupied:
		return "position occupied"
	case ReasonEmptyHand:
		return "no stones in hand"
	case ReasonNotYourStone:
		return "not your stone"
	case ReasonStoneLocked:
		return "stone is locked"
	case ReasonNotAdjacent:
		return "not adjacent"
	case ReasonOwnStoneAtTarget:
		return "own stone at target"
	case ReasonPatternMismatch:
		return "pattern mismatch"
	case ReasonCooldown:
		return "position under lock cooldown"
	case ReasonEmptyRiver:
		return "river is empty"
	case ReasonBreakUsed:
		return "break already used"
	case ReasonNotEnoughLocked:
		return "not enough locked stones"
	case ReasonNoBreakTarget:
		return "no valid break target"
	case ReasonBadSacrifice:
		return "invalid sacrifice"
	case ReasonPassLimit:
		return "pass limit reached"
	default:
		return "rejected"
	}
}

// Rejection is the error type for all illegal-move attempts.
type Rejection struct {
	Reason RejectionReason
	Detail string
}

func (r Rejection) Error() string {
	if r.Detail == "" {
		return fmt.Sprintf("illegal move: %s", r.Reason)
	}
	return fmt.Sprintf("illegal move: %s: %s", r.Reason, r.Detail)
}

func reject(reason RejectionReason, format string, args ...any) error {
	return Rejection{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Validate checks a proposed move against the current state. Pure: no
// side effects, and every violated precondition short-circuits with a
// specific reason.
func (gs *GameState) Validate(m Move) error {
	if gs.Winner != NoPlayer {
		return reject(ReasonGameOver, "%s has already won", gs.Winner)
	}
	if m.Player != gs.CurrentPlayer {
		return reject(ReasonNotYourTurn, "%s to move", gs.CurrentPlayer)
	}

	switch m.Action {
	case DropAction:
		return gs.validateDrop(m)
	case ShiftAction:
		return gs.validateShift(m)
	case LockAction:
		return gs.validateLock(m)
	case DrawAction:
		if len(gs.Rivers[m.Player]) == 0 {
			return reject(ReasonEmptyRiver, "%s's river is empty", m.Player)
		}
		return nil
	case BreakAction:
		return gs.validateBreak(m)
	case PassAction:
		if gs.PassCounts[m.Player] >= MaxPasses {
			return reject(ReasonPassLimit, "%s has passed %d times", m.Player, gs.PassCounts[m.Player])
		}
		return nil
	default:
		return reject(ReasonInvalidPosition, "unknown action %d", m.Action)
	}
}

func (gs *GameState) validateDrop(m Move) error {
	if gs.Hands[m.Player] == 0 {
		return reject(ReasonEmptyHand, "%s has no stones to drop", m.Player)
	}
	if !m.To.Valid() {
		return reject(ReasonInvalidPosition, "drop target %s off board", m.To)
	}
	if gs.Board.Occupied(m.To) {
		return reject(ReasonOccupied, "drop target %s", m.To)
	}
	return nil
}

func (gs *GameState) validateShift(m Move) error {
	stone, ok := gs.Board.At(m.From)
	if !ok || stone.Owner != m.Player {
		return reject(ReasonNotYourStone, "no %s stone at %s", m.Player, m.From)
	}
	if stone.Locked {
		return reject(ReasonStoneLocked, "stone at %s is locked", m.From)
	}
	if !m.To.Valid() {
		return reject(ReasonInvalidPosition, "shift target %s off board", m.To)
	}
	if !m.From.Adjacent(m.To) {
		return reject(ReasonNotAdjacent, "%s to %s", m.From, m.To)
	}
	if target, occupied := gs.Board.At(m.To); occupied {
		if target.Owner == m.Player {
			return reject(ReasonOwnStoneAtTarget, "own stone at %s", m.To)
		}
		// Locked stones are protected; only a break removes them.
		if target.Locked {
			return reject(ReasonStoneLocked, "stone at %s is locked", m.To)
		}
	}
	return nil
}

func (gs *GameState) validateLock(m Move) error {
	for _, p := range m.Positions {
		if !gs.Board.ownedUnlocked(p, m.Player) {
			return reject(ReasonNotYourStone, "no unlocked %s stone at %s", m.Player, p)
		}
		if gs.CooldownPlayer == m.Player && containsPosition(gs.Cooldown, p) {
			return reject(ReasonCooldown, "position %s", p)
		}
	}
	if _, ok := gs.findAvailablePattern(m.Player, m.Positions); !ok {
		return reject(ReasonPatternMismatch, "positions do not form a lockable pattern")
	}
	return nil
}

func (gs *GameState) validateBreak(m Move) error {
	if gs.BreakUsed[m.Player] {
		return reject(ReasonBreakUsed, "%s already broke once", m.Player)
	}
	if gs.Board.LockedCount(m.Player) < BreakSacrifices {
		return reject(ReasonNotEnoughLocked, "%s needs %d locked stones to sacrifice", m.Player, BreakSacrifices)
	}
	opponent := m.Player.Opponent()
	if gs.Board.LockedCount(opponent) < 1 {
		return reject(ReasonNoBreakTarget, "%s has no locked stones", opponent)
	}
	if len(m.Sacrifices) != BreakSacrifices {
		return reject(ReasonBadSacrifice, "need exactly %d sacrifice positions", BreakSacrifices)
	}
	if m.Sacrifices[0] == m.Sacrifices[1] {
		return reject(ReasonBadSacrifice, "duplicate sacrifice position %s", m.Sacrifices[0])
	}
	for _, p := range m.Sacrifices {
		s, ok := gs.Board.At(p)
		if !ok || s.Owner != m.Player || !s.Locked {
			return reject(ReasonBadSacrifice, "no locked %s stone at %s", m.Player, p)
		}
	}
	target, ok := gs.Board.At(m.To)
	if !ok || target.Owner != opponent || !target.Locked {
		return reject(ReasonNoBreakTarget, "no locked %s stone at %s", opponent, m.To)
	}
	return nil
}
