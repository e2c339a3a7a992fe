package gamemaster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"mancala/communication"
	"mancala/game"
	"mancala/meta"
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	ErrTurnLimit   = errors.New("turn limit reached without a winner")
)

type Option func(gm *GameMaster)

func WithStartingPlayer(p game.Player) Option {
	return func(gm *GameMaster) {
		gm.startingPlayer = p
	}
}

// WithMaxTurns caps the number of applied moves. 0 disables the cap.
func WithMaxTurns(turns int) Option {
	return func(gm *GameMaster) {
		if turns >= 0 {
			gm.maxTurns = turns
		}
	}
}

// GameMaster manages the game flow between the players and the engine.
type GameMaster struct {
	Communicator   communication.Communicator
	Engine         Engine
	startingPlayer game.Player
	maxTurns       int
}

// NewGameMaster initializes a new GameMaster playing on a local engine.
func NewGameMaster(comm communication.Communicator, rules game.Rules, options ...Option) *GameMaster {
	gm := &GameMaster{
		Communicator:   comm,
		Engine:         NewLocalEngine(rules),
		startingPlayer: game.PlayerA,
		maxTurns:       meta.MAX_TURNS,
	}
	for _, option := range options {
		option(gm)
	}
	return gm
}

// RunGame plays one game from a fresh board until there's a winner.
func (gm *GameMaster) RunGame() (game.Player, error) {
	board := gm.Engine.Init()
	current := gm.startingPlayer
	turns := 0

	log.Info().Msgf("player %s is starting", current)

	for {
		gm.Communicator.ShowBoard(board)

		line, err := gm.Communicator.RequestSelection(current)
		if err != nil {
			return current, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		hole, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Debug().Str("input", line).Msg("selection is not a number")
			gm.Communicator.ReportInvalidInput(line)
			continue
		}

		outcome, err := gm.Engine.Play(current, hole)
		if err != nil {
			if !errors.Is(err, game.ErrInvalidMove) {
				return current, err
			}
			log.Debug().Err(err).Stringer("player", current).Int("hole", hole).Msg("move rejected")
			gm.Communicator.ReportRejectedMove(current, hole, err)
			continue
		}
		turns++

		log.Debug().
			Stringer("player", current).
			Int("hole", hole).
			Int("last", outcome.Last).
			Int("sowings", outcome.Sowings).
			Stringer("next", outcome.Next).
			Msg("move applied")

		board = gm.Engine.Board()
		current = outcome.Next

		if winner, over := gm.Engine.Winner(); over {
			log.Info().Msgf("game over after %d turns, player %s wins", turns, winner)
			gm.Communicator.AnnounceWinner(winner, board)
			return winner, nil
		}

		if gm.maxTurns > 0 && turns >= gm.maxTurns {
			log.Warn().Msgf("stopped after %d turns (no winner yet)", turns)
			return current, ErrTurnLimit
		}
	}
}
