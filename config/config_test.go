package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mancala/game"
	"mancala/meta"
)

// chdir switches the working directory for the duration of the test so that
// Load does not pick up a .env file from the package directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	t.Run("defaults from the environment", func(t *testing.T) {
		chdir(t, t.TempDir())

		conf, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, meta.HOLES_PER_SIDE, conf.HolesPerSide)
		assert.Equal(t, meta.STARTING_MARBLES, conf.StartingMarbles)
		assert.Equal(t, "A", conf.FirstPlayer)
		assert.Equal(t, meta.MAX_TURNS, conf.MaxTurns)
	})

	t.Run("yaml file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		path := filepath.Join(dir, "config.yml")
		content := "log-level: debug\nholes-per-side: 3\nstarting-marbles: 2\nstarting-player: b\nmax-turns: 50\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 3, conf.HolesPerSide)
		assert.Equal(t, 2, conf.StartingMarbles)
		assert.Equal(t, 50, conf.MaxTurns)

		p, err := conf.StartingPlayer()
		require.NoError(t, err)
		assert.Equal(t, game.PlayerB, p)
	})

	t.Run("environment overrides", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("MANCALA_HOLES_PER_SIDE", "4")
		t.Setenv("MANCALA_LOG_LEVEL", "info")

		conf, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 4, conf.HolesPerSide)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MANCALA_STARTING_MARBLES=5\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("MANCALA_STARTING_MARBLES") })

		conf, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 5, conf.StartingMarbles)
	})

	t.Run("missing file", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yml")) })
	})
}

func TestConfigHelpers(t *testing.T) {
	t.Run("rules", func(t *testing.T) {
		conf := &Config{HolesPerSide: 6, StartingMarbles: 4}
		rules, err := conf.Rules()
		require.NoError(t, err)
		assert.Equal(t, 6, rules.HolesPerSide())

		conf.StartingMarbles = 0
		_, err = conf.Rules()
		assert.ErrorIs(t, err, game.ErrInvalidRules)
	})

	t.Run("level", func(t *testing.T) {
		level, err := (&Config{LogLevel: "debug"}).Level()
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, level)

		level, err = (&Config{}).Level()
		require.NoError(t, err)
		assert.Equal(t, zerolog.WarnLevel, level)

		_, err = (&Config{LogLevel: "loud"}).Level()
		assert.Error(t, err)
	})

	t.Run("starting player", func(t *testing.T) {
		_, err := (&Config{FirstPlayer: "C"}).StartingPlayer()
		assert.Error(t, err)
	})
}
