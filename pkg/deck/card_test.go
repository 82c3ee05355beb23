package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♠", CardFromString("14s").String())
	a.Equal("K♣", CardFromString("13c").String())
	a.Equal("Q♢", CardFromString("12d").String())
	a.Equal("J♡", CardFromString("11h").String())
	a.Equal("10♡", CardFromString("10h").String())
	a.Equal("2♣", CardFromString("2c").String())
}

func TestCard_Display(t *testing.T) {
	a := assert.New(t)
	a.Equal("ace of hearts", CardFromString("14h").Display())
	a.Equal("king of spades", CardFromString("13s").Display())
	a.Equal("queen of diamonds", CardFromString("12d").Display())
	a.Equal("jack of clubs", CardFromString("11c").Display())
	a.Equal("10 of hearts", CardFromString("10h").Display())
	a.Equal("2 of clubs", CardFromString("2c").Display())
}

func TestCard_Color(t *testing.T) {
	a := assert.New(t)
	a.Equal(Red, CardFromString("2h").Color())
	a.Equal(Red, CardFromString("2d").Color())
	a.Equal(Black, CardFromString("2c").Color())
	a.Equal(Black, CardFromString("2s").Color())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Nil(CardFromString(""))
	a.Equal(&Card{Rank: Ace, Suit: Spades}, CardFromString("14s"))
	a.Equal(&Card{Rank: 2, Suit: Clubs}, CardFromString("2C"))

	a.PanicsWithValue("could not parse card: bogus", func() {
		CardFromString("bogus")
	})
}

func TestCardsRoundTrip(t *testing.T) {
	const s = "2c,10h,14s"
	assert.Equal(t, s, CardsToString(CardsFromString(s)))
	assert.Empty(t, CardsFromString(""))
}
