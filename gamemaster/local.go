package gamemaster

import (
	"errors"

	"mancala/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type Engine interface {
	Init() *game.Board
	Play(player game.Player, hole int) (game.Outcome, error)
	Winner() (game.Player, bool)
	Board() *game.Board
}

// localEngine owns the board of a single game and refuses moves once the
// game is decided.
type localEngine struct {
	rules    game.Rules
	board    *game.Board
	turns    int
	gameOver bool
	winner   game.Player
}

func NewLocalEngine(rules game.Rules) *localEngine {
	return &localEngine{rules: rules}
}

// Init sets up a fresh board and returns a copy of it.
func (e *localEngine) Init() *game.Board {
	e.board = game.NewBoard(e.rules)
	e.turns = 0
	e.gameOver = false
	e.winner = game.PlayerA
	return e.board.Copy()
}

func (e *localEngine) Play(player game.Player, hole int) (game.Outcome, error) {
	if e.board == nil {
		e.Init()
	}
	if e.gameOver {
		return game.Outcome{Next: player, Last: -1}, ErrGameOver
	}

	outcome, err := e.board.AttemptMove(player, hole)
	if err != nil {
		return outcome, err
	}
	e.turns++

	if winner, over := e.board.Winner(); over {
		e.gameOver = true
		e.winner = winner
	}
	return outcome, nil
}

func (e *localEngine) Winner() (game.Player, bool) {
	return e.winner, e.gameOver
}

// Board returns a copy of the current position.
func (e *localEngine) Board() *game.Board {
	if e.board == nil {
		e.Init()
	}
	return e.board.Copy()
}

// Turns returns the number of applied moves since Init.
func (e *localEngine) Turns() int {
	return e.turns
}
