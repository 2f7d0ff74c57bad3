// meta/meta.go
package meta

// ROWS and COLS define the default grid size.
const ROWS = 5
const COLS = 5

// DEPTH defines the default minimax depth for the pursuer.
const DEPTH = 3

// MAX_TURNS caps the plies of a single game.
const MAX_TURNS = 200

// GAMES defines the number of games per experiment.
const GAMES = 100
