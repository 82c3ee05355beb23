package deck

import (
	"errors"
	"math/rand"

	"blackjack-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Kind identifies the composition of a deck
type Kind string

// KindStandard is a 52-card, French-suited deck
const KindStandard Kind = "standard"

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards for the given kind.
// Unrecognized kinds fall back to the standard deck; that is a policy, not an error.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(kind Kind) *Deck {
	d := &Deck{
		seed: -1,
	}

	switch kind {
	case KindStandard:
		d.buildStandardDeck()
	default:
		d.buildStandardDeck()
	}

	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildStandardDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards in place using the
// Durstenfeld variant of the Fisher–Yates algorithm.
// Shuffling an empty deck is a no-op.
func (d *Deck) Shuffle() {
	if d.seed < 0 {
		d.SetSeed(rng.Seed())
	}

	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw removes and returns the top (last) card of the deck.
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
