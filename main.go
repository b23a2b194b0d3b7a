package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rubicon/experiments/metrics"
	"rubicon/game"
	"rubicon/meta"
	"rubicon/searcher"
)

func main() {
	numGames := flag.Int("games", 10, "Number of self-play games")
	d1 := flag.Int("d1", 3, "Difficulty for Light (1-6)")
	d2 := flag.Int("d2", 3, "Difficulty for Dark (1-6)")
	seed := flag.Uint64("seed", 1, "Random seed for reproducible play")
	profiles := flag.String("profiles", "", "Optional YAML personality profiles file")
	profile1 := flag.String("p1", "", "Personality name for Light")
	profile2 := flag.String("p2", "", "Personality name for Dark")
	metricsDir := flag.String("metrics", "", "If set, write CSV metrics under this directory")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	for _, d := range []int{*d1, *d2} {
		if d < meta.MIN_DIFFICULTY || d > meta.MAX_DIFFICULTY {
			log.Fatal().Int("difficulty", d).Msg("difficulty must be between 1 and 6")
		}
	}

	personalities := map[string]searcher.Personality{}
	if *profiles != "" {
		loaded, err := searcher.LoadPersonalities(*profiles)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load personality profiles")
		}
		personalities = loaded
	}

	agents := map[game.Player]*searcher.Searcher{
		game.Light: buildSearcher(*d1, *seed, personalities, *profile1),
		game.Dark:  buildSearcher(*d2, *seed+1, personalities, *profile2),
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	fmt.Printf("Running %d self-play games (Light d%d vs Dark d%d)...\n", *numGames, *d1, *d2)
	for i := 1; i <= *numGames; i++ {
		record, moves := runGame(i, *d1, *d2, agents)
		gameRecords = append(gameRecords, record)
		moveRecords = append(moveRecords, moves...)
		fmt.Printf("Game %d over! Winner: %s (%s, %d turns)\n",
			i, record.Winner, record.VictorySet, record.Turns)
	}

	if *metricsDir != "" {
		writer, err := metrics.NewWriter(*metricsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create metrics writer")
		}
		if err := writer.WriteGameRecords(gameRecords); err != nil {
			log.Fatal().Err(err).Msg("failed to write game records")
		}
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			log.Fatal().Err(err).Msg("failed to write move records")
		}
	}
}

func buildSearcher(difficulty int, seed uint64, personalities map[string]searcher.Personality, name string) *searcher.Searcher {
	options := []searcher.Option{searcher.WithSeed(seed)}
	if name != "" {
		p, ok := personalities[name]
		if !ok {
			log.Fatal().Str("name", name).Msg("unknown personality profile")
		}
		options = append(options, searcher.WithPersonality(p))
	}
	return searcher.NewSearcher(difficulty, options...)
}

// runGame plays both sides through the same apply path until a winner or
// the turn cap.
func runGame(id, d1, d2 int, agents map[game.Player]*searcher.Searcher) (metrics.GameRecord, []metrics.MoveRecord) {
	state := game.NewGameState(d2)
	start := time.Now()
	var moves []metrics.MoveRecord

	for state.Winner == game.NoPlayer && state.Turn <= meta.MAX_TURNS {
		agent := agents[state.CurrentPlayer]
		moveStart := time.Now()
		move, err := agent.ChooseMove(state)
		if err != nil {
			log.Error().Err(err).Msg("no move available, ending game")
			break
		}
		next, applied, err := state.Apply(move)
		if err != nil {
			panic(fmt.Sprintf("AI move rejected: %v", err))
		}
		moves = append(moves, metrics.MoveRecord{
			Game:    id,
			Turn:    state.Turn,
			Player:  applied.Player.String(),
			Action:  applied.Action.String(),
			Elapsed: time.Since(moveStart),
		})
		state = next
	}

	return metrics.GameRecord{
		ID:          id,
		Difficulty1: d1,
		Difficulty2: d2,
		Winner:      state.Winner.String(),
		VictorySet:  state.VictorySet.String(),
		Elimination: state.Elimination,
		Turns:       state.Turn,
		Duration:    time.Since(start),
	}, moves
}
