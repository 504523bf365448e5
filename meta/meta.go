// meta/meta.go
package meta

import "time"

// SIZE defines the default board side length.
const SIZE = 7

// KOMI defines the default handicap in favour of the second player.
const KOMI = 1

// Batch defines the number of searches per Calculate call.
const Batch = 100

// MOVE_ITERATIONS defines the default number of searches per move.
const MOVE_ITERATIONS = 2000

// MOVE_TIME defines the default soft time limit per move.
const MOVE_TIME = time.Second
