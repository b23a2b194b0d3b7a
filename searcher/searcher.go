package searcher

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"rubicon/game"
	"rubicon/meta"
)

type Option func(*Searcher)

// WithGoroutines sets the number of workers scoring root candidates.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithPersonality applies a heuristic profile.
func WithPersonality(p Personality) Option {
	return func(s *Searcher) {
		s.personality = p
	}
}

// WithSeed fixes the random source so move selection is reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.seed = seed
	}
}

// Searcher selects moves for the AI player. It only ever reads the state
// snapshot it is handed and draws candidates from LegalMoves, so it can
// never produce a move the validator rejects.
type Searcher struct {
	difficulty  int
	personality Personality
	goroutines  int
	seed        uint64
}

func NewSearcher(difficulty int, options ...Option) *Searcher {
	s := &Searcher{
		difficulty:  difficulty,
		personality: DefaultPersonality(),
		goroutines:  meta.GO_ROUTINES,
		seed:        1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

type candidate struct {
	move  game.Move
	next  *game.GameState
	score float64
}

// ChooseMove scores the legal moves for the snapshot's current player and
// returns the chosen one. Selection is deterministic for a fixed seed.
func (s *Searcher) ChooseMove(gs *game.GameState) (game.Move, error) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("no legal moves for %s", gs.CurrentPlayer)
	}
	player := gs.CurrentPlayer
	moves = s.personality.filter(moves)

	t := tierFor(s.difficulty)
	candidates := s.scoreRoot(gs, player, moves)

	// Deterministic order: by score, move key breaking ties.
	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		return compareMoves(a.move, b.move)
	})

	if t.breadth < len(candidates) {
		candidates = candidates[:t.breadth]
	}

	// Refine the surviving candidates with look-ahead.
	if t.depth > 0 {
		for i := range candidates {
			if candidates[i].next.Winner == player {
				continue // Immediate win needs no refinement
			}
			candidates[i].score += s.search(candidates[i].next, player, t.depth, beamWidth)
		}
		slices.SortFunc(candidates, func(a, b candidate) int {
			if a.score != b.score {
				if a.score > b.score {
					return -1
				}
				return 1
			}
			return compareMoves(a.move, b.move)
		})
	}

	chosen := candidates[0]

	// Lower tiers deliberately blunder with a fixed probability. The rng
	// is seeded from the configured seed and the state hash, so the same
	// snapshot always yields the same choice.
	rng := rand.New(rand.NewSource(s.seed ^ uint64(gs.Hash())))
	if t.noise > 0 && len(candidates) > 1 && rng.Float64() < t.noise {
		chosen = candidates[1+rng.Intn(len(candidates)-1)]
	}

	if err := gs.Validate(chosen.move); err != nil {
		// LegalMoves and Validate must agree; any mismatch is a bug.
		panic(fmt.Sprintf("searcher produced illegal move %+v: %v", chosen.move, err))
	}

	log.Debug().
		Str("player", player.String()).
		Str("action", chosen.move.Action.String()).
		Int("difficulty", s.difficulty).
		Int("candidates", len(moves)).
		Float64("score", chosen.score).
		Msg("move chosen")

	return chosen.move, nil
}

// scoreRoot applies and scores every candidate, fanning the work out over
// the configured goroutines.
func (s *Searcher) scoreRoot(gs *game.GameState, player game.Player, moves []game.Move) []candidate {
	candidates := make([]candidate, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	workers := s.goroutines
	if workers > len(moves) {
		workers = len(moves)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				move := moves[i]
				next, applied, err := gs.Apply(move)
				if err != nil {
					panic(fmt.Sprintf("legal move failed to apply: %v", err))
				}
				candidates[i] = candidate{
					move:  applied,
					next:  next,
					score: s.scoreMove(gs, next, applied, player),
				}
			}
		}()
	}
	wg.Wait()

	return candidates
}

// scoreMove combines the personality-weighted evaluation of the resulting
// state with move-specific bonuses.
func (s *Searcher) scoreMove(before, after *game.GameState, m game.Move, player game.Player) float64 {
	if after.Winner == player {
		return winScore
	}
	if after.Winner == player.Opponent() {
		return -winScore
	}

	score := s.weightedEval(after, player)

	p := s.personality
	if p.CaptureBonus != 0 && m.Action == game.ShiftAction {
		score += p.CaptureBonus * float64(len(m.Captured))
	}
	if favored, ok := p.favoredType(); ok && m.Action == game.LockAction {
		if pattern, found := matchLockedPattern(after, m); found && pattern.Type == favored {
			score += favoredLockBonus
		}
	}
	if p.MirrorLast && len(before.History) > 0 {
		last := before.History[len(before.History)-1]
		if last.Player != player && last.Action == m.Action {
			score += mirrorBonus
		}
	}
	return score
}

const (
	winScore         = 1000.0
	favoredLockBonus = 0.5
	mirrorBonus      = 0.25

	// beamWidth bounds the moves kept per ply inside look-ahead. Root
	// candidates still use the tier's breadth.
	beamWidth = 4
)

// search is a depth-limited minimax from the AI player's perspective,
// keeping only the top moves per ply by immediate evaluation.
func (s *Searcher) search(gs *game.GameState, player game.Player, depth, breadth int) float64 {
	if depth == 0 || gs.Winner != game.NoPlayer {
		return s.terminalValue(gs, player)
	}
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return s.weightedEval(gs, player)
	}

	mover := gs.CurrentPlayer
	plies := make([]candidate, 0, len(moves))
	for _, move := range moves {
		next, applied, err := gs.Apply(move)
		if err != nil {
			panic(fmt.Sprintf("legal move failed to apply: %v", err))
		}
		plies = append(plies, candidate{
			move:  applied,
			next:  next,
			score: s.weightedEval(next, mover),
		})
	}
	slices.SortFunc(plies, func(a, b candidate) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		return compareMoves(a.move, b.move)
	})
	if breadth < len(plies) {
		plies = plies[:breadth]
	}

	best := 0.0
	for i, ply := range plies {
		value := s.search(ply.next, player, depth-1, breadth)
		if i == 0 {
			best = value
			continue
		}
		if mover == player && value > best {
			best = value
		} else if mover != player && value < best {
			best = value
		}
	}
	return best
}

func (s *Searcher) terminalValue(gs *game.GameState, player game.Player) float64 {
	switch gs.Winner {
	case player:
		return winScore
	case player.Opponent():
		return -winScore
	default:
		return s.weightedEval(gs, player)
	}
}

// weightedEval is the personality-weighted heuristic.
func (s *Searcher) weightedEval(gs *game.GameState, player game.Player) float64 {
	p := s.personality
	material := game.EvaluateMaterial(gs, player)
	patterns := game.EvaluatePatterns(gs, player)
	threats := game.EvaluateThreats(gs, player)
	total := p.MaterialWeight + p.PatternWeight + p.ThreatWeight
	if total == 0 {
		return 0
	}
	return (p.MaterialWeight*material + p.PatternWeight*patterns + p.ThreatWeight*threats) / total
}

// filter removes moves the personality refuses to play, unless nothing
// else is legal.
func (p Personality) filter(moves []game.Move) []game.Move {
	if !p.AvoidBreak {
		return moves
	}
	kept := make([]game.Move, 0, len(moves))
	for _, m := range moves {
		if m.Action != game.BreakAction {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return moves
	}
	return kept
}

// matchLockedPattern finds the pattern record created by a lock move.
func matchLockedPattern(gs *game.GameState, m game.Move) (game.Pattern, bool) {
	for _, p := range gs.LockedPatterns {
		if p.Owner == m.Player && len(p.Positions) == len(m.Positions) {
			matched := true
			for i := range p.Positions {
				if p.Positions[i] != m.Positions[i] {
					matched = false
					break
				}
			}
			if matched {
				return p, true
			}
		}
	}
	return game.Pattern{}, false
}

// compareMoves defines a stable total order over moves for tie-breaking.
func compareMoves(a, b game.Move) int {
	if a.Action != b.Action {
		return int(a.Action) - int(b.Action)
	}
	if c := a.From.Compare(b.From); c != 0 {
		return c
	}
	if c := a.To.Compare(b.To); c != 0 {
		return c
	}
	if len(a.Positions) != len(b.Positions) {
		return len(a.Positions) - len(b.Positions)
	}
	for i := range a.Positions {
		if c := a.Positions[i].Compare(b.Positions[i]); c != 0 {
			return c
		}
	}
	for i := range a.Sacrifices {
		if i >= len(b.Sacrifices) {
			return 1
		}
		if c := a.Sacrifices[i].Compare(b.Sacrifices[i]); c != 0 {
			return c
		}
	}
	return len(a.Sacrifices) - len(b.Sacrifices)
}
