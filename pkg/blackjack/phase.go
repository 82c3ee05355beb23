package blackjack

import "encoding/json"

// Phase represents the phase of the current round
type Phase int

// phase constants
const (
	// PhaseIdle is when no round is active
	PhaseIdle Phase = iota
	// PhaseBetting is when players may place their wagers
	PhaseBetting
	// PhaseDealing is when the initial two cards are dealt to each live seat
	PhaseDealing
	// PhasePlayerTurns is when players act in ascending seat order
	PhasePlayerTurns
	// PhaseDealerTurn is when the dealer draws against the best live hand
	PhaseDealerTurn
	// PhaseSettlement is when each live hand is compared against the dealer
	PhaseSettlement
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurns:
		return "player-turns"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseSettlement:
		return "settlement"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
