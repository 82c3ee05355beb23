package blackjack

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"blackjack-server/pkg/deck"
)

func TestRegisterPlayers(t *testing.T) {
	a := assert.New(t)

	seats := registerPlayers(logrus.StandardLogger(), GameName, []SeatEntry{
		{PlayerID: 10, Name: "alice"},
		{PlayerID: 20, Name: "bob"},
	}, 100)

	a.Len(seats, 3)
	a.Equal(dealerID, seats[0].PlayerID)
	a.Equal("Dealer", seats[0].Name)
	a.Equal(0, seats[0].balance)

	a.Equal(int64(10), seats[1].PlayerID)
	a.Equal("alice", seats[1].Name)
	a.Equal(100, seats[1].balance)
	a.Equal(0, seats[1].handValue)
	a.Equal(0, seats[1].wager)
	a.False(seats[1].busted)
	a.False(seats[1].skipRound)
	a.Len(seats[1].hand, 0)
}

func TestRegisterPlayers_UnknownGame(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	seats := registerPlayers(logger, "go-fish", []SeatEntry{{PlayerID: 10, Name: "alice"}}, 100)

	// only the dealer is seated
	assert.Len(t, seats, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestParticipant_AddCard(t *testing.T) {
	a := assert.New(t)
	p := newParticipant(SeatEntry{PlayerID: 1, Name: "alice"}, 100)

	p.addCard(deck.CardFromString("10c"))
	a.Equal(10, p.handValue)
	a.False(p.busted)

	p.addCard(deck.CardFromString("9h"))
	a.Equal(19, p.handValue)
	a.False(p.busted)

	p.addCard(deck.CardFromString("5s"))
	a.Equal(24, p.handValue)
	a.True(p.busted)

	p.resetHand()
	a.Len(p.hand, 0)
	a.Equal(0, p.handValue)
	a.False(p.busted)
}

func TestParticipant_ApplyOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		balance int
	}{
		{"win credits double the wager", OutcomeWin, 125},
		{"draw returns the wager", OutcomeDraw, 100},
		{"lose credits nothing", OutcomeLose, 75},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := newParticipant(SeatEntry{PlayerID: 1, Name: "alice"}, 100)
			p.balance -= 25
			p.wager = 25

			p.applyOutcome(test.outcome)
			assert.Equal(t, test.balance, p.Balance())
		})
	}
}
