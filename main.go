package main

import (
	"flag"
	"fmt"
	"gomoku/experiments"
	"gomoku/experiments/metrics"
	"gomoku/meta"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "strategy", "Experiment to run: strategy or depth")
	games := flag.Int("games", meta.NUM_GAMES, "Number of games per match up")
	workers := flag.Int("workers", meta.WORKERS, "Number of games played at the same time")
	depth := flag.Int("depth", meta.DEPTH, "Minimax search depth")
	radius := flag.Int("radius", meta.RADIUS, "Minimax candidate radius")
	iterations := flag.Int("iterations", meta.ITERATIONS, "MCTS iterations per move")
	maxTurns := flag.Int("turns", meta.MAX_TURNS, "Maximum number of decisions per game")
	seed := flag.Uint64("seed", 0, "Base seed for every agent, 0 for a random one")
	out := flag.String("out", "results", "Directory the experiment results are written to")
	verbose := flag.Bool("verbose", false, "Log every decision")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	settings := experiments.Settings{
		Root:     *out,
		Games:    *games,
		Workers:  *workers,
		MaxTurns: *maxTurns,
	}

	var dir string
	var err error
	switch *experiment {
	case "strategy":
		configs := experiments.DefaultConfigs(*seed)
		configs[0].Depth, configs[0].Radius = *depth, *radius
		configs[1].Iterations = *iterations
		dir, err = experiments.RunStrategyExperiment(settings, configs)
	case "depth":
		baseline := metrics.AgentConfig{ID: 1, Depth: 2, Radius: *radius, Seed: *seed}
		depths := []int{}
		for d := 1; d <= *depth; d++ {
			depths = append(depths, d)
		}
		dir, err = experiments.RunDepthExperiment(settings, baseline, depths)
	default:
		err = fmt.Errorf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results written to %s", dir)
}
