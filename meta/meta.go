// meta/meta.go
package meta

// DEPTH defines the default search depth for minimax.
const DEPTH = 4

// RADIUS defines how far from existing stones minimax looks for moves.
const RADIUS = 2

// ITERATIONS defines the number of iterations for MCTS.
const ITERATIONS = 100000

// MAX_TURNS caps the number of decisions in a single game.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 10

// WORKERS defines how many games run at the same time.
const WORKERS = 4
