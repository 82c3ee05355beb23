package blackjack

import "blackjack-server/pkg/deck"

// bust threshold
const maxHandValue = 21

// evaluateHand computes the blackjack value of a hand and whether it's a bust.
// Non-ace cards are summed first (face cards count 10, numerals their rank).
// Aces are then valued one at a time in hand order: 11 unless that would push
// the running total past 21, in which case 1. The per-ace decision is greedy,
// not a search over assignments, so a hand like A,A,10 counts 22 where an
// optimal assignment would find 12. That sequential policy is intentional.
func evaluateHand(hand deck.Hand) (value int, busted bool) {
	aces := 0
	for _, card := range hand {
		switch card.Rank {
		case deck.Ace:
			aces++
		case deck.Jack, deck.Queen, deck.King:
			value += 10
		default:
			value += card.Rank
		}
	}

	for i := 0; i < aces; i++ {
		if value+11 > maxHandValue {
			value++
		} else {
			value += 11
		}
	}

	return value, value > maxHandValue
}
