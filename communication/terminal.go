package communication

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"mancala/game"
)

// Terminal talks to two players sharing one console.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (t *Terminal) ShowBoard(board *game.Board) {
	box := pterm.DefaultBox.WithTitle(pterm.LightCyan("MANCALA")).WithTitleTopCenter()
	fmt.Fprintln(t.out, box.Sprint(board.String()))
}

func (t *Terminal) RequestSelection(player game.Player) (string, error) {
	fmt.Fprint(t.out, pterm.Info.Sprintfln("Player %s, select a hole:", player))
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}

func (t *Terminal) ReportInvalidInput(input string) {
	fmt.Fprint(t.out, pterm.Warning.Sprintfln("%q is not a hole number", input))
}

func (t *Terminal) ReportRejectedMove(player game.Player, hole int, reason error) {
	msg := "You can only choose one of your holes"
	if errors.Is(reason, game.ErrEmptyHole) {
		msg = "You picked an empty hole. Pick again!"
	}
	fmt.Fprint(t.out, pterm.Error.Sprintfln("Player %s, hole %d: %s", player, hole, msg))
}

func (t *Terminal) AnnounceWinner(winner game.Player, board *game.Board) {
	t.ShowBoard(board)
	fmt.Fprint(t.out, pterm.Success.Sprintfln("Congratulations %s, you won!", winner))
}
