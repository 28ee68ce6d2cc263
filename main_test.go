package main

import (
	"errors"
	"testing"
	"time"

	"github.com/ratel-online/diamonds/consts"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(nil, env(nil))
		require.NoError(t, err)
		require.Equal(t, config{
			mode:     consts.ModeLocal,
			addr:     ":9999",
			wsAddr:   ":9998",
			opponent: consts.OpponentHighest,
			delay:    consts.RoundDelay,
		}, cfg)
	})

	t.Run("environment_overrides_defaults", func(t *testing.T) {
		cfg, err := loadConfig(nil, env(map[string]string{
			"DIAMONDS_MODE":     consts.ModeServe,
			"DIAMONDS_OPPONENT": consts.OpponentRandom,
			"DIAMONDS_DELAY":    "0s",
		}))
		require.NoError(t, err)
		require.Equal(t, consts.ModeServe, cfg.mode)
		require.Equal(t, consts.OpponentRandom, cfg.opponent)
		require.Zero(t, cfg.delay)
	})

	t.Run("flags_override_environment", func(t *testing.T) {
		cfg, err := loadConfig(
			[]string{"-mode", consts.ModeLocal, "-delay", "500ms", "-ws-addr", ""},
			env(map[string]string{"DIAMONDS_MODE": consts.ModeServe}),
		)
		require.NoError(t, err)
		require.Equal(t, consts.ModeLocal, cfg.mode)
		require.Equal(t, 500*time.Millisecond, cfg.delay)
		require.Empty(t, cfg.wsAddr)
	})

	scenarios := []struct {
		description string
		args        []string
		env         map[string]string
		expectedErr error
	}{
		{description: "unknown_mode", args: []string{"-mode", "cloud"}, expectedErr: consts.ErrorsModeInvalid},
		{description: "unknown_opponent", args: []string{"-opponent", "lowest"}, expectedErr: consts.ErrorsOpponentInvalid},
		{description: "bad_delay", env: map[string]string{"DIAMONDS_DELAY": "soon"}, expectedErr: consts.ErrorsInputInvalid},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := loadConfig(scenario.args, env(scenario.env))
			require.True(t, errors.Is(err, scenario.expectedErr))
		})
	}
}
