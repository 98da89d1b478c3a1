package roulette

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Befador/arcade/internal/apperror"
)

func TestColorOf(t *testing.T) {
	t.Run("Zero is green", func(t *testing.T) {
		assert.Equal(t, ColorGreen, ColorOf(0))
	})

	t.Run("Odd numbers are red", func(t *testing.T) {
		assert.Equal(t, ColorRed, ColorOf(1))
		assert.Equal(t, ColorRed, ColorOf(35))
	})

	t.Run("Even numbers are black", func(t *testing.T) {
		assert.Equal(t, ColorBlack, ColorOf(2))
		assert.Equal(t, ColorBlack, ColorOf(36))
	})
}

func TestSpin(t *testing.T) {
	// Given: a seeded source
	rng := rand.New(rand.NewSource(6))

	// When/Then: every spin stays on the wheel
	for i := 0; i < 500; i++ {
		result := Spin(rng)
		require.GreaterOrEqual(t, result, 0)
		require.Less(t, result, WheelSize)
	}
}

func TestSession_ValidateBet(t *testing.T) {
	session := NewSession(100, 10)

	t.Run("Accepts a valid bet", func(t *testing.T) {
		assert.NoError(t, session.ValidateBet(10, 17))
	})

	t.Run("Rejects a bet under the minimum", func(t *testing.T) {
		assert.ErrorIs(t, session.ValidateBet(5, 17), apperror.ErrInvalidMove)
	})

	t.Run("Rejects a bet over the balance", func(t *testing.T) {
		assert.ErrorIs(t, session.ValidateBet(200, 17), apperror.ErrInvalidMove)
	})

	t.Run("Rejects a number off the wheel", func(t *testing.T) {
		assert.ErrorIs(t, session.ValidateBet(10, 37), apperror.ErrInvalidMove)
	})
}

func TestSession_Settle(t *testing.T) {
	t.Run("Hit pays thirty-five to one", func(t *testing.T) {
		// Given: a session with 100 coins
		session := NewSession(100, 10)

		// When: a 10-coin straight bet hits
		delta := session.Settle(10, 17, 17)

		// Then: the payout is 350 on top of the kept stake
		assert.Equal(t, 350, delta)
		assert.Equal(t, 450, session.Balance)
	})

	t.Run("Miss loses the stake", func(t *testing.T) {
		// Given: a session with 100 coins
		session := NewSession(100, 10)

		// When: the bet misses
		delta := session.Settle(10, 17, 18)

		// Then: the stake is gone
		assert.Equal(t, -10, delta)
		assert.Equal(t, 90, session.Balance)
	})
}

func TestSession_Broke(t *testing.T) {
	// Given: a session right at the minimum
	session := NewSession(10, 10)
	assert.False(t, session.Broke())

	// When: a losing spin drains it below the minimum
	session.Settle(10, 1, 2)

	// Then: the session is broke until a rebuy
	assert.True(t, session.Broke())

	session.AddCoins(50)
	assert.False(t, session.Broke())
}
