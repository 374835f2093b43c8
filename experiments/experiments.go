package experiments

import (
	"errors"
	"fmt"
	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/meta"
	"gomoku/player"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

const (
	Minimax = "minimax"
	MCTS    = "mcts"
	Random  = "random"
)

// Settings shared by every experiment run.
type Settings struct {
	Root     string // Output directory
	Games    int    // Per match up
	Workers  int    // Games running at the same time
	MaxTurns int    // Decisions per game, 0 for the engine default
}

// DefaultConfigs describes one agent per strategy with the default settings.
func DefaultConfigs(seed uint64) []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Strategy: Minimax, Depth: meta.DEPTH, Radius: meta.RADIUS, Seed: seed},
		{ID: 2, Strategy: MCTS, Radius: 1, Iterations: meta.ITERATIONS, Seed: seed},
		{ID: 3, Strategy: Random, Seed: seed},
	}
}

// RunStrategyExperiment pits every strategy against every other one, with
// each side of a pairing playing Black once.
func RunStrategyExperiment(settings Settings, configs []metrics.AgentConfig) (string, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for i, a := range configs {
		for j, b := range configs {
			if i != j {
				matchUps = append(matchUps, [2]metrics.AgentConfig{a, b})
			}
		}
	}
	return runExperiment("strategy", settings, configs, matchUps)
}

// RunDepthExperiment pairs minimax agents of increasing depth against a
// baseline of the given depth, which always plays Black.
func RunDepthExperiment(settings Settings, baseline metrics.AgentConfig, depths []int) (string, error) {
	baseline.Strategy = Minimax
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, depth := range depths {
		config := baseline
		config.ID = baseline.ID + i + 1
		config.Depth = depth
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth", settings, configs, matchUps)
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (string, error) {
	if settings.Games <= 0 || settings.Workers <= 0 {
		return "", fmt.Errorf("experiment %s needs positive games and workers, got %d and %d", name, settings.Games, settings.Workers)
	}
	for _, config := range configs {
		if _, err := NewPlayer(config, 0); err != nil {
			return "", err
		}
	}

	log.Info().Msgf("starting %s experiment with %d match ups of %d games...", name, len(matchUps), settings.Games)

	outcomes := make([]outcome, len(matchUps)*settings.Games)
	g := new(errgroup.Group)
	g.SetLimit(settings.Workers)
	for mi, matchUp := range matchUps {
		for i := 0; i < settings.Games; i++ {
			id := mi*settings.Games + i + 1
			g.Go(func() error {
				out, err := runGame(id, matchUp, settings.MaxTurns)
				if err != nil {
					return fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
				}
				outcomes[id-1] = out
				log.Info().Msgf("completed match up %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, out.game.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(outcomes))
	moveRecords := []metrics.MoveRecord{}
	for _, out := range outcomes {
		gameRecords = append(gameRecords, out.game)
		moveRecords = append(moveRecords, out.moves...)
	}
	return store(name, settings.Root, configs, gameRecords, moveRecords)
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one game between fresh players, so no search state leaks
// between games running concurrently.
func runGame(id int, matchUp [2]metrics.AgentConfig, maxTurns int) (outcome, error) {
	black, err := NewPlayer(matchUp[0], id)
	if err != nil {
		return outcome{}, err
	}
	white, err := NewPlayer(matchUp[1], id)
	if err != nil {
		return outcome{}, err
	}

	options := []engine.LocalOption{}
	if maxTurns > 0 {
		options = append(options, engine.WithMaxTurns(maxTurns))
	}
	_, gameMetric, moveMetrics, err := engine.LocalEngine(black, white, options...).Run()
	if err != nil {
		return outcome{}, err
	}

	out := outcome{
		game: metrics.GameRecord{
			ID:         id,
			Agent1:     matchUp[0].ID,
			Agent2:     matchUp[1].ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		out.moves = append(out.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return out, nil
}

// NewPlayer builds the agent described by config. Seeds are offset by game so
// repeated games differ; a zero seed stays random.
func NewPlayer(config metrics.AgentConfig, game int) (engine.Player, error) {
	seed := config.Seed
	if seed != 0 {
		seed += uint64(game)
	}
	name := fmt.Sprintf("%s#%d", config.Strategy, config.ID)

	switch config.Strategy {
	case Minimax:
		options := []searcher.MinimaxOption{searcher.WithMinimaxMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		if config.Radius > 0 {
			options = append(options, searcher.WithRadius(config.Radius))
		}
		if seed != 0 {
			options = append(options, searcher.WithZobristSeed(seed))
		}
		return engine.Player{Name: name, Decider: searcher.NewMinimax(options...)}, nil
	case MCTS:
		options := []searcher.MCTSOption{searcher.WithMCTSMetrics()}
		if config.Iterations > 0 {
			options = append(options, searcher.WithIterations(config.Iterations))
		}
		if config.Radius > 0 {
			options = append(options, searcher.WithCandidateRadius(config.Radius))
		}
		if seed != 0 {
			options = append(options, searcher.WithSeed(seed))
		}
		return engine.Player{Name: name, Decider: searcher.NewMCTS(options...)}, nil
	case Random:
		return engine.Player{Name: name, Decider: player.NewRandom(seed)}, nil
	}
	return engine.Player{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, config.Strategy)
}
