package blackjack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(rank string) Card {
	return Card{Rank: rank, Suit: "♠"}
}

func TestHand_Value(t *testing.T) {
	t.Run("Face cards count ten", func(t *testing.T) {
		// Given/When/Then
		assert.Equal(t, 20, Hand{card("K"), card("Q")}.Value())
	})

	t.Run("Ace counts eleven when it fits", func(t *testing.T) {
		// Given/When/Then
		assert.Equal(t, 21, Hand{card("A"), card("K")}.Value())
	})

	t.Run("Aces demote to one to avoid busting", func(t *testing.T) {
		// Given: A+A+9
		hand := Hand{card("A"), card("A"), card("9")}

		// When/Then: one ace is 11, the other 1
		assert.Equal(t, 21, hand.Value())
	})

	t.Run("All aces demote when needed", func(t *testing.T) {
		// Given: A+9+5
		hand := Hand{card("A"), card("9"), card("5")}

		// When/Then: the ace falls back to 1
		assert.Equal(t, 15, hand.Value())
	})
}

func TestHand_IsSoft17(t *testing.T) {
	t.Run("Ace plus six is soft seventeen", func(t *testing.T) {
		assert.True(t, Hand{card("A"), card("6")}.IsSoft17())
	})

	t.Run("Ten plus seven is hard seventeen", func(t *testing.T) {
		assert.False(t, Hand{card("10"), card("7")}.IsSoft17())
	})

	t.Run("Ace six ten is hard seventeen", func(t *testing.T) {
		assert.False(t, Hand{card("A"), card("6"), card("10")}.IsSoft17())
	})

	t.Run("Two aces and a five is soft seventeen", func(t *testing.T) {
		assert.True(t, Hand{card("A"), card("A"), card("5")}.IsSoft17())
	})
}

func TestNewShoe(t *testing.T) {
	// Given: a six-deck shoe
	shoe := NewShoe(6, rand.New(rand.NewSource(1)))

	// Then: it holds 312 cards and drawing shrinks it
	require.Equal(t, 312, shoe.Remaining())

	drawn := shoe.Draw()
	assert.Contains(t, Ranks, drawn.Rank)
	assert.Contains(t, Suits, drawn.Suit)
	assert.Equal(t, 311, shoe.Remaining())
}

func TestDealerShouldHit(t *testing.T) {
	t.Run("American dealer hits soft seventeen", func(t *testing.T) {
		assert.True(t, DealerShouldHit(VariantAmerican, Hand{card("A"), card("6")}))
	})

	t.Run("European dealer stands on soft seventeen", func(t *testing.T) {
		assert.False(t, DealerShouldHit(VariantEuropean, Hand{card("A"), card("6")}))
	})

	t.Run("American dealer hits a multi-ace soft seventeen", func(t *testing.T) {
		assert.True(t, DealerShouldHit(VariantAmerican, Hand{card("A"), card("A"), card("5")}))
	})

	t.Run("Both variants hit sixteen", func(t *testing.T) {
		hand := Hand{card("10"), card("6")}
		assert.True(t, DealerShouldHit(VariantAmerican, hand))
		assert.True(t, DealerShouldHit(VariantEuropean, hand))
	})

	t.Run("Both variants stand on hard eighteen", func(t *testing.T) {
		hand := Hand{card("10"), card("8")}
		assert.False(t, DealerShouldHit(VariantAmerican, hand))
		assert.False(t, DealerShouldHit(VariantEuropean, hand))
	})
}

func TestSettle(t *testing.T) {
	t.Run("Busted player loses the stake", func(t *testing.T) {
		assert.Equal(t, 0.0, Settle(22, 18, 10))
	})

	t.Run("Dealer bust pays double", func(t *testing.T) {
		assert.Equal(t, 20.0, Settle(18, 22, 10))
	})

	t.Run("Higher total pays double", func(t *testing.T) {
		assert.Equal(t, 20.0, Settle(20, 18, 10))
	})

	t.Run("Push returns the stake", func(t *testing.T) {
		assert.Equal(t, 10.0, Settle(19, 19, 10))
	})

	t.Run("Lower total loses the stake", func(t *testing.T) {
		assert.Equal(t, 0.0, Settle(17, 19, 10))
	})
}
