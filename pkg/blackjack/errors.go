package blackjack

import (
	"errors"
	"fmt"
)

// ErrRoundInProgress is returned when a round is started while one is already active
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrNotEnoughPlayers is returned when a round is started at an empty table
var ErrNotEnoughPlayers = errors.New("there's nobody at the table")

// ErrNotBettingPhase is returned when a bet arrives outside the betting window
var ErrNotBettingPhase = errors.New("bets are not being accepted")

// ErrSeatNotFound is returned when an identity doesn't resolve to a seat
var ErrSeatNotFound = errors.New("player is not seated at the table")

// ErrInvalidWager is returned when a wager isn't a positive amount
var ErrInvalidWager = errors.New("wager must be a positive amount")

// ErrInsufficientBalance is returned when a wager exceeds the player's balance
var ErrInsufficientBalance = errors.New("wager exceeds balance")

// ErrNotPlayersTurn is returned when a hit or stand arrives for a seat that isn't on the clock
var ErrNotPlayersTurn = errors.New("it is not the player's turn")

// PlayerCountError is an error on the number of players at the table
type PlayerCountError struct {
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected 1–%d players, got %d", p.Max, p.Got)
}
