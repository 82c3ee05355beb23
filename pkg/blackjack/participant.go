package blackjack

import (
	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/deck"
)

// dealerSeat is the seat reserved for the dealer
const dealerSeat = 0

// dealerID is the pseudo player ID of the house
const dealerID int64 = 0

// GameName is the only game this table knows how to register players for
const GameName = "blackjack"

// SeatEntry is the raw identity data a player is registered from
type SeatEntry struct {
	PlayerID int64
	Name     string
}

// Outcome is the result of a seat's hand against the dealer
type Outcome string

// outcome constants
const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLose Outcome = "lose"
)

// Participant holds one seat's round-scoped state.
// The dealer occupies seat 0 and never carries a balance or wager.
type Participant struct {
	PlayerID int64
	Name     string

	balance   int
	wager     int
	hand      deck.Hand
	handValue int
	busted    bool
	skipRound bool
}

func newParticipant(entry SeatEntry, balance int) *Participant {
	return &Participant{
		PlayerID: entry.PlayerID,
		Name:     entry.Name,
		balance:  balance,
		hand:     make(deck.Hand, 0),
	}
}

func newDealer() *Participant {
	return &Participant{
		PlayerID: dealerID,
		Name:     "Dealer",
		hand:     make(deck.Hand, 0),
	}
}

// registerPlayers converts raw seat entries into a seated table, dealer at seat 0.
// An unrecognized game is a configuration gap: log it and register nobody.
func registerPlayers(logger logrus.FieldLogger, game string, entries []SeatEntry, startingBalance int) []*Participant {
	seats := []*Participant{newDealer()}

	switch game {
	case GameName:
		for _, entry := range entries {
			seats = append(seats, newParticipant(entry, startingBalance))
		}
	default:
		logger.WithField("game", game).Warn("unknown game, skipping player registration")
	}

	return seats
}

// addCard appends a card and immediately re-evaluates the hand.
// handValue and busted are never allowed to go stale.
func (p *Participant) addCard(card *deck.Card) {
	p.hand.AddCard(card)
	p.handValue, p.busted = evaluateHand(p.hand)
}

// resetHand clears the hand for a fresh deal
func (p *Participant) resetHand() {
	p.hand = make(deck.Hand, 0)
	p.handValue = 0
	p.busted = false
}

// applyOutcome settles the seat's wager.
// The wager was deducted at bet time, so a draw returns it, a win returns
// double, and a loss credits nothing.
func (p *Participant) applyOutcome(outcome Outcome) {
	switch outcome {
	case OutcomeWin:
		p.balance += p.wager * 2
	case OutcomeDraw:
		p.balance += p.wager
	case OutcomeLose:
	}
}

// Balance returns the player's balance
func (p *Participant) Balance() int {
	return p.balance
}

// Hand returns a copy of the participant's hand
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}
