package communication

import "mancala/game"

// Communicator is an interface that abstracts how the game talks to the players.
type Communicator interface {
	ShowBoard(board *game.Board)
	// RequestSelection returns one raw line typed by the player.
	RequestSelection(player game.Player) (string, error)
	ReportInvalidInput(input string)
	ReportRejectedMove(player game.Player, hole int, reason error)
	AnnounceWinner(winner game.Player, board *game.Board)
}
