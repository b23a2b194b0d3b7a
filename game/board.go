package game

// Board is the 6x6 grid. At most one stone per cell; an empty cell holds
// the zero Stone (Owner == NoPlayer). Accessors silently ignore invalid
// positions so that out-of-range lookups from input layers cannot corrupt
// state; rule-level code validates positions before mutating.
type Board struct {
	Cells [BoardSize * BoardSize]Stone `json:"cells"`
}

// At returns the stone at p and whether the cell is occupied.
func (b *Board) At(p Position) (Stone, bool) {
	if !p.Valid() {
		return Stone{}, false
	}
	s := b.Cells[p.Index()]
	return s, s.Owner != NoPlayer
}

// Occupied reports whether a stone sits at p.
func (b *Board) Occupied(p Position) bool {
	_, ok := b.At(p)
	return ok
}

// Place puts a stone at p, overwriting whatever was there.
func (b *Board) Place(p Position, s Stone) {
	if !p.Valid() {
		return
	}
	b.Cells[p.Index()] = s
}

// Remove clears the cell at p and returns the stone that was there.
func (b *Board) Remove(p Position) (Stone, bool) {
	s, ok := b.At(p)
	if !ok {
		return Stone{}, false
	}
	b.Cells[p.Index()] = Stone{}
	return s, true
}

// PlayerPositions returns all positions holding the player's stones,
// in board order.
func (b *Board) PlayerPositions(player Player) []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Position{Col: col, Row: row}
			if s, ok := b.At(p); ok && s.Owner == player {
				positions = append(positions, p)
			}
		}
	}
	return positions
}

// EmptyPositions returns all unoccupied positions in board order.
func (b *Board) EmptyPositions() []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Position{Col: col, Row: row}
			if !b.Occupied(p) {
				positions = append(positions, p)
			}
		}
	}
	return positions
}

// StoneCount tallies the player's stones on the board.
func (b *Board) StoneCount(player Player) int {
	count := 0
	for _, s := range b.Cells {
		if s.Owner == player {
			count++
		}
	}
	return count
}

// LockedCount tallies the player's locked stones on the board.
func (b *Board) LockedCount(player Player) int {
	count := 0
	for _, s := range b.Cells {
		if s.Owner == player && s.Locked {
			count++
		}
	}
	return count
}

// ownedUnlocked reports whether p holds an unlocked stone of the player.
func (b *Board) ownedUnlocked(p Position, player Player) bool {
	s, ok := b.At(p)
	return ok && s.Owner == player && !s.Locked
}

// setLocked flags or unflags the stone at p as locked under patternID.
func (b *Board) setLocked(p Position, locked bool, patternID string) {
	s, ok := b.At(p)
	if !ok {
		return
	}
	s.Locked = locked
	s.PatternID = patternID
	b.Cells[p.Index()] = s
}
