package blackjack

import (
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable"
)

// GameState is the overall table state
// This is safe for all players to see
type GameState struct {
	Seats       []*SeatState       `json:"seats"`
	Phase       Phase              `json:"phase"`
	CurrentSeat int                `json:"currentSeat"`
	// Results is only populated after settlement, until the next round starts
	Results map[int64]Outcome `json:"results,omitempty"`
}

// SeatState is the visible state of an individual seat
type SeatState struct {
	Seat      int       `json:"seat"`
	PlayerID  int64     `json:"playerId"`
	Name      string    `json:"name"`
	IsDealer  bool      `json:"isDealer"`
	Balance   int       `json:"balance"`
	Wager     int       `json:"wager"`
	Hand      deck.Hand `json:"hand"`
	HandValue int       `json:"handValue"`
	Busted    bool      `json:"busted"`
	SkipRound bool      `json:"skipRound"`
	// HoleCardHidden is true while the dealer's first card is face down
	HoleCardHidden bool `json:"holeCardHidden,omitempty"`
}

// Response is the per-player response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	Balance   int        `json:"balance"`
	Hand      deck.Hand  `json:"hand"`
	// Actions are the actions the player may currently take
	Actions []string `json:"actions"`
}

// holeCardHidden reports whether the dealer's first card is still face down
func (g *Game) holeCardHidden() bool {
	return g.phase == PhaseDealing || g.phase == PhasePlayerTurns
}

func (g *Game) getGameState() *GameState {
	seats := make([]*SeatState, len(g.seats))
	for i, seat := range g.seats {
		state := &SeatState{
			Seat:      i,
			PlayerID:  seat.PlayerID,
			Name:      seat.Name,
			IsDealer:  i == dealerSeat,
			Balance:   seat.balance,
			Wager:     seat.wager,
			Hand:      seat.Hand(),
			HandValue: seat.handValue,
			Busted:    seat.busted,
			SkipRound: i != dealerSeat && seat.skipRound,
		}

		if i == dealerSeat && g.holeCardHidden() {
			// only the dealer's up-card shows until the dealer plays
			state.HoleCardHidden = true
			state.HandValue = 0
			state.Busted = false
			if len(seat.hand) > 1 {
				state.Hand = deck.Hand{seat.hand[1]}
			} else {
				state.Hand = deck.Hand{}
			}
		}

		seats[i] = state
	}

	return &GameState{
		Seats:       seats,
		Phase:       g.phase,
		CurrentSeat: g.currentSeat,
		Results:     g.lastResults,
	}
}

// GetPlayerState returns the state for the given player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	response := &Response{
		GameState: g.getGameState(),
		Actions:   g.actionsForPlayer(playerID),
	}

	if index, err := g.seatByPlayerID(playerID); err == nil {
		seat := g.seats[index]
		response.Balance = seat.balance
		response.Hand = seat.Hand()
	}

	return &playable.Response{
		Key:   "game",
		Value: GameName,
		Data:  response,
	}, nil
}

// actionsForPlayer returns the actions available to the player right now
func (g *Game) actionsForPlayer(playerID int64) []string {
	index, err := g.seatByPlayerID(playerID)
	if err != nil {
		return nil
	}

	switch g.phase {
	case PhaseIdle:
		return []string{"start"}
	case PhaseBetting:
		if g.seats[index].skipRound {
			return []string{"bet"}
		}
	case PhasePlayerTurns:
		if index == g.currentSeat {
			return []string{"hit", "stand"}
		}
	}

	return nil
}
