package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)
	h := make(Hand, 0)

	h.AddCard(CardFromString("2c"))
	h.AddCard(CardFromString("14s"))

	a.Equal("2c,14s", h.String())
	a.True(h.HasCard(CardFromString("2c")))
	a.False(h.HasCard(CardFromString("3c")))
	a.Equal("14s", CardToString(h.LastCard()))
}

func TestHand_LastCardEmpty(t *testing.T) {
	h := make(Hand, 0)
	assert.Nil(t, h.LastCard())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)
	h := Hand(CardsFromString("2c,3c"))

	clone := h.Clone()
	a.Equal(h.String(), clone.String())

	clone.AddCard(CardFromString("4c"))
	a.Len(h, 2)
	a.Len(clone, 3)
}
