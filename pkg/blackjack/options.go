package blackjack

import (
	"errors"
	"time"
)

// Options configures how blackjack is played
type Options struct {
	// BetWindow is how long the betting window stays open
	BetWindow time.Duration

	// TurnTimeout is how long a player has to act on their turn
	// A timeout is treated as a stand
	TurnTimeout time.Duration

	// StartingBalance is the balance each player is seated with
	StartingBalance int

	// MaxPlayers is the number of player seats, dealer excluded
	MaxPlayers int
}

// DefaultOptions returns the default options for blackjack
func DefaultOptions() Options {
	return Options{
		BetWindow:       time.Second * 20,
		TurnTimeout:     time.Second * 15,
		StartingBalance: 100,
		MaxPlayers:      4,
	}
}

func validateOptions(opts Options) error {
	if opts.BetWindow <= 0 {
		return errors.New("bet window must be positive")
	}

	if opts.TurnTimeout <= 0 {
		return errors.New("turn timeout must be positive")
	}

	if opts.StartingBalance <= 0 {
		return errors.New("starting balance must be positive")
	}

	if opts.MaxPlayers < 1 {
		return errors.New("there must be at least one player seat")
	}

	return nil
}
