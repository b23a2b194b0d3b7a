package game

import (
	"encoding/binary"
	"hash/fnv"
	"time"

	"golang.org/x/exp/slices"
)

type StateHash uint64

// GameState is the aggregate root: everything that changes over a game.
// It is owned by the controller; every other component works on a copy.
// Apply returns a new state and never mutates the receiver.
type GameState struct {
	Board          Board              `json:"board"`
	CurrentPlayer  Player             `json:"currentPlayer"`
	Hands          map[Player]int     `json:"hands"`
	Rivers         map[Player][]Stone `json:"rivers"`
	BreakUsed      map[Player]bool    `json:"breakUsed"`
	PassCounts     map[Player]int     `json:"passCounts"`
	LockedPatterns []Pattern          `json:"lockedPatterns"`
	History        []Move             `json:"history"`
	Turn           int                `json:"turn"`
	Winner         Player             `json:"winner"`
	VictorySet     VictorySetType     `json:"victorySet"`
	Elimination    bool               `json:"elimination"`
	Difficulty     int                `json:"difficulty"`
	Cooldown       []Position         `json:"cooldown,omitempty"`
	CooldownPlayer Player             `json:"cooldownPlayer"`
}

// NewGameState creates the starting state: empty board, full hands,
// Light to move.
func NewGameState(difficulty int) *GameState {
	return &GameState{
		CurrentPlayer: Light,
		Hands:         map[Player]int{Light: StartingStones, Dark: StartingStones},
		Rivers:        map[Player][]Stone{Light: {}, Dark: {}},
		BreakUsed:     map[Player]bool{Light: false, Dark: false},
		PassCounts:    map[Player]int{Light: 0, Dark: 0},
		Turn:          1,
		Difficulty:    difficulty,
	}
}

// Copy returns a deep copy. The board is a value array so assignment
// copies it; maps and slices are cloned element by element.
func (gs *GameState) Copy() *GameState {
	rivers := make(map[Player][]Stone, len(gs.Rivers))
	for player, river := range gs.Rivers {
		rivers[player] = slices.Clone(river)
	}

	patterns := make([]Pattern, len(gs.LockedPatterns))
	for i, p := range gs.LockedPatterns {
		p.Positions = slices.Clone(p.Positions)
		patterns[i] = p
	}

	history := make([]Move, len(gs.History))
	for i, m := range gs.History {
		m.Positions = slices.Clone(m.Positions)
		m.Sacrifices = slices.Clone(m.Sacrifices)
		m.Captured = slices.Clone(m.Captured)
		m.Surrounded = slices.Clone(m.Surrounded)
		history[i] = m
	}

	hands := make(map[Player]int, len(gs.Hands))
	for player, n := range gs.Hands {
		hands[player] = n
	}
	breakUsed := make(map[Player]bool, len(gs.BreakUsed))
	for player, used := range gs.BreakUsed {
		breakUsed[player] = used
	}
	passCounts := make(map[Player]int, len(gs.PassCounts))
	for player, n := range gs.PassCounts {
		passCounts[player] = n
	}

	return &GameState{
		Board:          gs.Board,
		CurrentPlayer:  gs.CurrentPlayer,
		Hands:          hands,
		Rivers:         rivers,
		BreakUsed:      breakUsed,
		PassCounts:     passCounts,
		LockedPatterns: patterns,
		History:        history,
		Turn:           gs.Turn,
		Winner:         gs.Winner,
		VictorySet:     gs.VictorySet,
		Elimination:    gs.Elimination,
		Difficulty:     gs.Difficulty,
		Cooldown:       slices.Clone(gs.Cooldown),
		CooldownPlayer: gs.CooldownPlayer,
	}
}

// Hash folds the position-relevant fields into a 64-bit fingerprint.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	word := func(v int64) {
		binary.Write(hasher, binary.LittleEndian, v)
	}

	word(int64(gs.CurrentPlayer))
	word(int64(gs.Turn))
	for _, s := range gs.Board.Cells {
		cell := int64(s.Owner)
		if s.Locked {
			cell |= 4
		}
		word(cell)
	}
	for _, player := range []Player{Light, Dark} {
		word(int64(gs.Hands[player]))
		word(int64(len(gs.Rivers[player])))
		word(int64(gs.PassCounts[player]))
		if gs.BreakUsed[player] {
			word(1)
		} else {
			word(0)
		}
	}
	word(int64(len(gs.LockedPatterns)))
	return StateHash(hasher.Sum64())
}

// Apply validates the move, transforms a working copy, annotates the
// move with its consequences, and returns the new state. Either the whole
// transformation succeeds or the original state is untouched and a
// Rejection is returned.
func (gs *GameState) Apply(m Move) (*GameState, Move, error) {
	if err := gs.Validate(m); err != nil {
		return nil, Move{}, err
	}

	next := gs.Copy()
	if m.Timestamp == 0 {
		m.Timestamp = time.Now().UnixMilli()
	}

	switch m.Action {
	case DropAction:
		next.Hands[m.Player]--
		next.Board.Place(m.To, Stone{Owner: m.Player})

	case ShiftAction:
		m.Captured = next.resolveShift(m)

	case LockAction:
		pattern, ok := next.findAvailablePattern(m.Player, m.Positions)
		if !ok {
			panic("validated lock has no matching pattern")
		}
		pattern.Locked = true
		for _, p := range pattern.Positions {
			next.Board.setLocked(p, true, pattern.ID)
		}
		next.LockedPatterns = append(next.LockedPatterns, pattern)
		if set := next.checkVictory(pattern); set != NoVictorySet {
			next.Winner = m.Player
			next.VictorySet = set
		}

	case DrawAction:
		// Reclaim-all: every river stone returns to the hand at once.
		next.Hands[m.Player] += len(next.Rivers[m.Player])
		next.Rivers[m.Player] = next.Rivers[m.Player][:0]

	case BreakAction:
		m.Captured = next.resolveBreak(m)

	case PassAction:
		next.PassCounts[m.Player]++
	}

	next.checkElimination()
	next.History = append(next.History, m)

	// The cooldown lifts once the restricted player completes a turn.
	if next.CooldownPlayer == m.Player {
		next.Cooldown = nil
		next.CooldownPlayer = NoPlayer
	}

	if next.Winner == NoPlayer {
		next.CurrentPlayer = next.CurrentPlayer.Opponent()
		next.Turn++
	}
	return next, m, nil
}

// LegalMoves enumerates every move the current player could legally make.
// Each candidate passes Validate; the AI draws only from this set.
func (gs *GameState) LegalMoves() []Move {
	if gs.Winner != NoPlayer {
		return nil
	}
	player := gs.CurrentPlayer
	var moves []Move

	if gs.Hands[player] > 0 {
		for _, p := range gs.Board.EmptyPositions() {
			moves = append(moves, Move{Action: DropAction, Player: player, To: p})
		}
	}

	for _, from := range gs.Board.PlayerPositions(player) {
		s, _ := gs.Board.At(from)
		if s.Locked {
			continue
		}
		for _, to := range from.Neighbors() {
			if target, occupied := gs.Board.At(to); !occupied || (target.Owner != player && !target.Locked) {
				moves = append(moves, Move{Action: ShiftAction, Player: player, From: from, To: to})
			}
		}
	}

	for _, pattern := range gs.AvailablePatterns(player) {
		if gs.CooldownPlayer == player && gs.onCooldown(pattern.Positions) {
			continue
		}
		moves = append(moves, Move{Action: LockAction, Player: player, Positions: pattern.Positions})
	}

	if len(gs.Rivers[player]) > 0 {
		moves = append(moves, Move{Action: DrawAction, Player: player})
	}

	moves = append(moves, gs.breakMoves(player)...)

	if gs.PassCounts[player] < MaxPasses {
		moves = append(moves, Move{Action: PassAction, Player: player})
	}
	return moves
}

func (gs *GameState) onCooldown(positions []Position) bool {
	for _, p := range positions {
		if containsPosition(gs.Cooldown, p) {
			return true
		}
	}
	return false
}

func (gs *GameState) breakMoves(player Player) []Move {
	if gs.BreakUsed[player] {
		return nil
	}
	var ownLocked, oppLocked []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Position{Col: col, Row: row}
			s, ok := gs.Board.At(p)
			if !ok || !s.Locked {
				continue
			}
			if s.Owner == player {
				ownLocked = append(ownLocked, p)
			} else {
				oppLocked = append(oppLocked, p)
			}
		}
	}
	if len(ownLocked) < BreakSacrifices || len(oppLocked) == 0 {
		return nil
	}

	var moves []Move
	for i := 0; i < len(ownLocked); i++ {
		for j := i + 1; j < len(ownLocked); j++ {
			for _, target := range oppLocked {
				moves = append(moves, Move{
					Action:     BreakAction,
					Player:     player,
					Sacrifices: []Position{ownLocked[i], ownLocked[j]},
					To:         target,
				})
			}
		}
	}
	return moves
}
