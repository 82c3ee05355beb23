package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-server/internal/util"
)

func TestInstance(t *testing.T) {
	unset1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer unset1()
	unset2 := util.SetEnv("BJ_GAME_BET_WINDOW_SECONDS", "5")
	defer unset2()

	a := assert.New(t)
	assert.NoError(t, Load())
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(5, cfg.Game.BetWindowSeconds)
	a.Equal(10, cfg.Game.TurnTimeoutSeconds)

	// ensure that it's only loaded once
	_ = os.Setenv("BJ_GAME_BET_WINDOW_SECONDS", "6")
	// ensure we aren't using a pointer
	cfg.Game.BetWindowSeconds = -1
	cfg = Instance()
	a.Equal(5, cfg.Game.BetWindowSeconds)
}

func TestDefaults(t *testing.T) {
	unset := util.SetEnv("BJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer unset()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, 20, cfg.Game.BetWindowSeconds)
	assert.Equal(t, 15, cfg.Game.TurnTimeoutSeconds)
	assert.Equal(t, 100, cfg.Game.StartingBalance)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
}
