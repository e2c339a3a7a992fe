package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mancala/communication"
	"mancala/config"
	"mancala/gamemaster"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file")
	logLevel := flag.String("log-level", "", "Overrides the configured log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*configPath, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "mancala: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string) error {
	conf := config.MustLoad(configPath)
	if logLevel != "" {
		conf.LogLevel = logLevel
	}

	level, err := conf.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rules, err := conf.Rules()
	if err != nil {
		return err
	}
	first, err := conf.StartingPlayer()
	if err != nil {
		return err
	}

	fmt.Println("Setting up the game")
	terminal := communication.NewTerminal(os.Stdin, os.Stdout)
	gm := gamemaster.NewGameMaster(terminal, rules,
		gamemaster.WithStartingPlayer(first),
		gamemaster.WithMaxTurns(conf.MaxTurns),
	)

	winner, err := gm.RunGame()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	log.Info().Msgf("winner: player %s", winner)
	return nil
}
