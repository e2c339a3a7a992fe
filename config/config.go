package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"mancala/game"
)

type Config struct {
	LogLevel        string `yaml:"log-level" env:"MANCALA_LOG_LEVEL" env-default:"warn"`
	HolesPerSide    int    `yaml:"holes-per-side" env:"MANCALA_HOLES_PER_SIDE" env-default:"6"`
	StartingMarbles int    `yaml:"starting-marbles" env:"MANCALA_STARTING_MARBLES" env-default:"4"`
	FirstPlayer     string `yaml:"starting-player" env:"MANCALA_STARTING_PLAYER" env-default:"A"`
	MaxTurns        int    `yaml:"max-turns" env:"MANCALA_MAX_TURNS" env-default:"0"`
}

// Load reads the configuration from the yaml file at path, if any, and from
// the environment. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load the configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Rules() (*game.StandardRules, error) {
	return game.NewRules(that.HolesPerSide, that.StartingMarbles)
}

func (that *Config) StartingPlayer() (game.Player, error) {
	return game.ParsePlayer(that.FirstPlayer)
}

// Level parses LogLevel, falling back to warn for an empty value.
func (that *Config) Level() (zerolog.Level, error) {
	if that.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(that.LogLevel)
	if err != nil {
		return zerolog.WarnLevel, fmt.Errorf("invalid log level %q: %w", that.LogLevel, err)
	}
	return level, nil
}
