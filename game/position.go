package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Position identifies a board cell by column and row, each in [0,BoardSize).
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Col >= 0 && p.Col < BoardSize && p.Row >= 0 && p.Row < BoardSize
}

// Index maps a valid position to a flat board offset.
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// Compare defines the total order used when naming locked patterns:
// row-major, then by column.
func (p Position) Compare(other Position) int {
	if p.Row != other.Row {
		return p.Row - other.Row
	}
	return p.Col - other.Col
}

// Adjacent reports whether the two positions are one step apart,
// orthogonally or diagonally.
func (p Position) Adjacent(other Position) bool {
	if p == other {
		return false
	}
	dc := p.Col - other.Col
	dr := p.Row - other.Row
	return dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1
}

func (p Position) offset(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// Neighbors returns the valid positions one step away in all 8 directions.
func (p Position) Neighbors() []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			n := p.offset(dc, dr)
			if n.Valid() {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// sortPositions orders a position set deterministically in place.
func sortPositions(positions []Position) {
	slices.SortFunc(positions, Position.Compare)
}

// positionKey serializes a sorted position set into a stable string,
// used for pattern identifiers and duplicate suppression.
func positionKey(positions []Position) string {
	sorted := slices.Clone(positions)
	sortPositions(sorted)
	key := ""
	for _, p := range sorted {
		key += p.String()
	}
	return key
}

func containsPosition(positions []Position, p Position) bool {
	return slices.Contains(positions, p)
}

// samePositionSet reports whether two sets cover identical positions,
// regardless of order.
func samePositionSet(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	return positionKey(a) == positionKey(b)
}
