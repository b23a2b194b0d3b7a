// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines used for parallel
// candidate scoring.
const GO_ROUTINES = 8

// MAX_TURNS caps self-play games that fail to produce a winner.
const MAX_TURNS = 300

// MIN_DIFFICULTY and MAX_DIFFICULTY bound the ordinal difficulty scale.
const (
	MIN_DIFFICULTY = 1
	MAX_DIFFICULTY = 6
)
