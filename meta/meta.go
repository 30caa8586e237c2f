// meta/meta.go
package meta

// MAP_WIDTH and MAP_HEIGHT define the playable area.
const MAP_WIDTH = 16000
const MAP_HEIGHT = 9000

// PLAYER_STEP defines how far the player moves per turn.
const PLAYER_STEP = 1000

// PLAYER_RANGE defines the radius within which the player kills zombies.
const PLAYER_RANGE = 2000

// ZOMBIE_STEP defines how far a zombie moves per turn.
const ZOMBIE_STEP = 400

// SCORE_FACTOR scales the squared number of living humans on each kill.
const SCORE_FACTOR = 10

// SEARCH_DEPTH defines the number of turns the lookahead explores.
const SEARCH_DEPTH = 12

// GO_ROUTINES defines the number of goroutines evaluating first-level branches.
const GO_ROUTINES = 1

// MAX_TURNS bounds local self-play and policy rollouts.
const MAX_TURNS = 300
