// meta/meta.go
package meta

// HOLES_PER_SIDE defines the number of play holes each player owns.
const HOLES_PER_SIDE = 6

// STARTING_MARBLES defines the number of marbles put in every play hole at setup.
const STARTING_MARBLES = 4

// MAX_TURNS caps the number of applied moves in a game. 0 means no limit.
const MAX_TURNS = 0
