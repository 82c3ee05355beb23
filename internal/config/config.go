package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-server/internal/util"
)

// Config provides configuration for the blackjack table server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr" default:":5000"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		BetWindowSeconds   int `yaml:"betWindowSeconds" envconfig:"bet_window_seconds" default:"20"`
		TurnTimeoutSeconds int `yaml:"turnTimeoutSeconds" envconfig:"turn_timeout_seconds" default:"15"`
		StartingBalance    int `yaml:"startingBalance" envconfig:"starting_balance" default:"100"`
		MaxPlayers         int `yaml:"maxPlayers" envconfig:"max_players" default:"4"`
	}
}

// BetWindow returns how long the betting window stays open
func (c Config) BetWindow() time.Duration {
	return time.Duration(c.Game.BetWindowSeconds) * time.Second
}

// TurnTimeout returns how long a player has to act on their turn
func (c Config) TurnTimeout() time.Duration {
	return time.Duration(c.Game.TurnTimeoutSeconds) * time.Second
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; defaults and environment variables still apply
func Load() error {
	config = Config{}

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
