package game

import "golang.org/x/exp/slices"

// Capture resolution. Captured stones always flow to their own owner's
// river: a river holds the stones a player has lost, reclaimable later by
// that same player only.

// resolveShift moves the stone and, if the destination held an opponent
// stone, routes that stone to its owner's river. Returns the captured
// positions for the move record.
func (gs *GameState) resolveShift(m Move) []Position {
	var captured []Position
	if victim, ok := gs.Board.Remove(m.To); ok {
		gs.Rivers[victim.Owner] = append(gs.Rivers[victim.Owner], victim)
		captured = append(captured, m.To)
	}
	mover, _ := gs.Board.Remove(m.From)
	gs.Board.Place(m.To, mover)
	return captured
}

// resolveBreak removes the two sacrifices into the breaker's own river,
// unlocks and removes the target into its owner's river, marks the break
// as spent, and places the affected positions under a lock cooldown for
// the broken player.
func (gs *GameState) resolveBreak(m Move) []Position {
	captured := make([]Position, 0, BreakSacrifices+1)

	for _, p := range m.Sacrifices {
		stone, ok := gs.Board.Remove(p)
		if !ok {
			panic("validated sacrifice position is empty")
		}
		gs.removeLockedPattern(stone.PatternID, p)
		stone.Locked = false
		stone.PatternID = ""
		gs.Rivers[m.Player] = append(gs.Rivers[m.Player], stone)
		captured = append(captured, p)
	}

	target, ok := gs.Board.Remove(m.To)
	if !ok {
		panic("validated break target is empty")
	}
	broken := target.Owner
	affected := gs.removeLockedPattern(target.PatternID, m.To)
	target.Locked = false
	target.PatternID = ""
	gs.Rivers[broken] = append(gs.Rivers[broken], target)
	captured = append(captured, m.To)

	gs.BreakUsed[m.Player] = true

	// The broken player cannot re-lock the affected cells until they
	// complete their next turn.
	cooldown := append([]Position{m.To}, affected...)
	sortPositions(cooldown)
	gs.Cooldown = cooldown
	gs.CooldownPlayer = broken
	return captured
}

// removeLockedPattern drops the pattern that locked the stone at p from
// the permanent record, unlocks its surviving members on the board, and
// returns the surviving positions.
func (gs *GameState) removeLockedPattern(patternID string, p Position) []Position {
	for i, pattern := range gs.LockedPatterns {
		if pattern.ID != patternID {
			continue
		}
		var survivors []Position
		for _, member := range pattern.Positions {
			if member != p {
				gs.Board.setLocked(member, false, "")
				survivors = append(survivors, member)
			}
		}
		gs.LockedPatterns = append(slices.Clone(gs.LockedPatterns[:i]), gs.LockedPatterns[i+1:]...)
		return survivors
	}
	return nil
}
