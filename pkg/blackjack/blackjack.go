package blackjack

import (
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable"
)

// Game is a blackjack table.
// The table outlives any single round: seats and balances persist, hands are
// reset at each deal. A single round runs betting → dealing → player turns →
// dealer turn → settlement and back to idle.
//
// Game is not safe for concurrent use. The hosting room must serialize all
// Action and Tick calls into a single goroutine.
type Game struct {
	options Options
	logger  logrus.FieldLogger
	clock   quartz.Clock

	deck  *deck.Deck
	seats []*Participant

	phase        Phase
	currentSeat  int
	betsAccepted int
	betDeadline  time.Time
	turnDeadline time.Time

	// lastResults holds the outcome per player ID from the most recent settlement
	lastResults map[int64]Outcome

	logChan chan []*playable.LogMessage
}

// NewGame returns a new blackjack table with the given players seated.
// The dealer always takes seat 0; players occupy seats 1..N in entry order.
func NewGame(logger logrus.FieldLogger, entries []SeatEntry, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(entries) < 1 || len(entries) > opts.MaxPlayers {
		return nil, PlayerCountError{
			Max: opts.MaxPlayers,
			Got: len(entries),
		}
	}

	g := &Game{
		options: opts,
		logger:  logger,
		clock:   quartz.NewReal(),
		seats:   registerPlayers(logger, GameName, entries, opts.StartingBalance),
		phase:   PhaseIdle,
		logChan: make(chan []*playable.LogMessage, 256),
	}

	return g, nil
}

// Name returns "blackjack"
func (g *Game) Name() string {
	return GameName
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Interval returns how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Action performs an action on behalf of a player
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (*playable.Response, bool, error) {
	if _, err := g.seatByPlayerID(playerID); err != nil {
		return nil, false, err
	}

	switch message.Action {
	case "start":
		if err := g.StartRound(); err != nil {
			return nil, false, err
		}
	case "bet":
		if err := g.placeBet(playerID, message.Amount); err != nil {
			return nil, false, err
		}
	case "hit":
		if err := g.hit(playerID); err != nil {
			return nil, false, err
		}
	case "stand":
		if err := g.stand(playerID); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	return playable.OK(message.Context), true, nil
}

// Tick advances the round past any elapsed deadline and through the
// dealer-driven phases. It is cheap to call when nothing is due.
func (g *Game) Tick() (bool, error) {
	switch g.phase {
	case PhaseBetting:
		if !g.clock.Now().After(g.betDeadline) {
			return false, nil
		}

		if g.betsAccepted == 0 {
			g.phase = PhaseIdle
			g.sendLogMessages(playable.SimpleLogMessageSlice(0, "no bets were placed, the round is called off"))
			return true, nil
		}

		g.dealNewRound()
		return true, nil
	case PhasePlayerTurns:
		if !g.clock.Now().After(g.turnDeadline) {
			return false, nil
		}

		seat := g.seats[g.currentSeat]
		g.sendLogMessages(playable.SimpleLogMessageSlice(seat.PlayerID, "{} ran out of time and stands"))
		g.advanceTurn()
		return true, nil
	case PhaseDealerTurn:
		g.dealerTurn()
		g.phase = PhaseSettlement
		return true, nil
	case PhaseSettlement:
		g.settle()
		g.phase = PhaseIdle
		return true, nil
	}

	return false, nil
}

// StartRound opens the betting window for a new round.
// It fails if a round is already under way or the table has no players.
func (g *Game) StartRound() error {
	if g.phase != PhaseIdle {
		return ErrRoundInProgress
	}

	if len(g.seats) < 2 {
		return ErrNotEnoughPlayers
	}

	// skipping is the default; a valid bet opts the seat back in
	for _, seat := range g.seats[1:] {
		seat.skipRound = true
		seat.wager = 0
	}

	// a fresh deck every round; a round never reshuffles
	g.deck = deck.New(deck.KindStandard)
	g.deck.Shuffle()

	g.betsAccepted = 0
	g.lastResults = nil
	g.betDeadline = g.clock.Now().Add(g.options.BetWindow)
	g.phase = PhaseBetting

	g.sendLogMessages(playable.SimpleLogMessageSlice(0, "place your bets for the upcoming round"))
	return nil
}

// Balance returns the balance for the given player
func (g *Game) Balance(playerID int64) (int, error) {
	seat, err := g.seatByPlayerID(playerID)
	if err != nil {
		return 0, err
	}

	return g.seats[seat].balance, nil
}

// seatByPlayerID linearly scans the player seats for the given identity.
// The dealer cannot be found this way.
func (g *Game) seatByPlayerID(playerID int64) (int, error) {
	for i, seat := range g.seats {
		if i == dealerSeat {
			continue
		}

		if seat.PlayerID == playerID {
			return i, nil
		}
	}

	return 0, ErrSeatNotFound
}

// placeBet accepts a player's wager for the round.
// Any failing condition leaves the seat untouched.
func (g *Game) placeBet(playerID int64, amount int) error {
	if g.phase != PhaseBetting {
		return ErrNotBettingPhase
	}

	index, err := g.seatByPlayerID(playerID)
	if err != nil {
		return err
	}

	if amount <= 0 {
		return ErrInvalidWager
	}

	seat := g.seats[index]
	if seat.balance < amount {
		return ErrInsufficientBalance
	}

	seat.balance -= amount
	seat.wager = amount
	seat.skipRound = false
	g.betsAccepted++

	g.sendLogMessages(playable.SimpleLogMessageSlice(playerID, "{} bet $%d", amount))
	return nil
}

// dealNewRound deals two cards to every live seat, dealer included.
// Seats that placed no bet sit the round out with an empty hand.
func (g *Game) dealNewRound() {
	g.phase = PhaseDealing

	for _, seat := range g.seats {
		seat.resetHand()
	}

	for i := 0; i < 2; i++ {
		for _, seat := range g.seats {
			if seat.skipRound {
				continue
			}

			g.dealCardTo(seat)
		}
	}

	g.sendLogMessages(playable.SimpleLogMessageSlice(0, "the cards are dealt"))
	g.startPlayerTurns()
}

// dealCardTo draws the top card into the seat's hand.
// An exhausted deck deals nothing; a single deck is never reshuffled mid-round.
func (g *Game) dealCardTo(seat *Participant) *deck.Card {
	card, err := g.deck.Draw()
	if err != nil {
		if errors.Is(err, deck.ErrEndOfDeck) {
			g.logger.WithField("seat", seat.Name).Warn("deck is exhausted, no card dealt")
			return nil
		}

		g.logger.WithError(err).Error("could not draw a card")
		return nil
	}

	seat.addCard(card)
	return card
}

func (g *Game) startPlayerTurns() {
	g.phase = PhasePlayerTurns
	g.currentSeat = dealerSeat
	g.advanceTurn()
}

// advanceTurn moves the action to the next seat that placed a bet.
// Once the seats are exhausted, the dealer is up.
func (g *Game) advanceTurn() {
	for g.currentSeat++; g.currentSeat < len(g.seats); g.currentSeat++ {
		seat := g.seats[g.currentSeat]
		if seat.skipRound {
			continue
		}

		g.turnDeadline = g.clock.Now().Add(g.options.TurnTimeout)
		g.sendLogMessages(playable.SimpleLogMessageSlice(seat.PlayerID, "{}: hit or stand?"))
		return
	}

	g.currentSeat = dealerSeat
	g.phase = PhaseDealerTurn
}

// hit draws one more card for the seat currently on the clock.
// A bust ends the turn immediately.
func (g *Game) hit(playerID int64) error {
	index, err := g.currentTurnSeat(playerID)
	if err != nil {
		return err
	}

	seat := g.seats[index]
	if card := g.dealCardTo(seat); card != nil {
		msg := playable.SimpleLogMessage(playerID, "{} drew the %s", card.Display())
		msg.Cards = []*deck.Card{card}
		g.sendLogMessages([]*playable.LogMessage{msg})
	}

	if seat.busted {
		g.sendLogMessages(playable.SimpleLogMessageSlice(playerID, "{} busts at %d", seat.handValue))
		g.advanceTurn()
	}

	return nil
}

// stand ends the turn for the seat currently on the clock
func (g *Game) stand(playerID int64) error {
	index, err := g.currentTurnSeat(playerID)
	if err != nil {
		return err
	}

	g.sendLogMessages(playable.SimpleLogMessageSlice(g.seats[index].PlayerID, "{} stands at %d", g.seats[index].handValue))
	g.advanceTurn()
	return nil
}

// currentTurnSeat resolves the identity and verifies it's that seat's turn
func (g *Game) currentTurnSeat(playerID int64) (int, error) {
	if g.phase != PhasePlayerTurns {
		return 0, ErrNotPlayersTurn
	}

	index, err := g.seatByPlayerID(playerID)
	if err != nil {
		return 0, err
	}

	if index != g.currentSeat || g.seats[index].skipRound {
		return 0, ErrNotPlayersTurn
	}

	return index, nil
}

// dealerTurn plays out the dealer's hand.
// The dealer keeps drawing while it trails the best live player hand and is
// under 17. The coupling to the table's best hand means the dealer may stop
// short of 17 when every player is already beaten, and keeps drawing past a
// losing 17+ player only when a live hand is still ahead.
func (g *Game) dealerTurn() {
	maxPlayerValue := 0
	for _, seat := range g.seats[1:] {
		if seat.skipRound || seat.busted {
			continue
		}

		if seat.handValue > maxPlayerValue {
			maxPlayerValue = seat.handValue
		}
	}

	dealer := g.seats[dealerSeat]
	for dealer.handValue < maxPlayerValue && dealer.handValue < 17 {
		if g.dealCardTo(dealer) == nil {
			break
		}
	}

	g.sendLogMessages(playable.SimpleLogMessageSlice(0, "the dealer finishes at %d", dealer.handValue))
}

// settle compares every live hand against the dealer and pays out.
// Losses need no ledger mutation; the wager was taken at bet time.
func (g *Game) settle() {
	dealer := g.seats[dealerSeat]
	results := make(map[int64]Outcome)
	messages := make([]*playable.LogMessage, 0)

	for _, seat := range g.seats[1:] {
		if seat.skipRound {
			continue
		}

		outcome := settleSeat(dealer, seat)
		seat.applyOutcome(outcome)
		results[seat.PlayerID] = outcome

		switch outcome {
		case OutcomeWin:
			messages = append(messages, playable.SimpleLogMessage(seat.PlayerID, "{} wins $%d", seat.wager*2))
		case OutcomeDraw:
			messages = append(messages, playable.SimpleLogMessage(seat.PlayerID, "{} pushes, the wager is returned"))
		case OutcomeLose:
			messages = append(messages, playable.SimpleLogMessage(seat.PlayerID, "{} loses $%d", seat.wager))
		}
	}

	g.lastResults = results
	g.sendLogMessages(messages)
}

// settleSeat decides a single seat's outcome against the dealer
func settleSeat(dealer, seat *Participant) Outcome {
	if dealer.busted && !seat.busted {
		return OutcomeWin
	}

	if !dealer.busted && !seat.busted {
		if seat.handValue > dealer.handValue {
			return OutcomeWin
		}

		if seat.handValue == dealer.handValue {
			return OutcomeDraw
		}
	}

	return OutcomeLose
}

// sendLogMessages delivers log messages without ever blocking the run loop
func (g *Game) sendLogMessages(messages []*playable.LogMessage) {
	select {
	case g.logChan <- messages:
	default:
	}
}
