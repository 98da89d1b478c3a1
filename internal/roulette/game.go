package roulette

import (
	"fmt"
	"math/rand"

	"github.com/Befador/arcade/internal/apperror"
)

const (
	// StraightPayout is the multiplier for a winning single-number bet.
	StraightPayout = 35

	WheelSize = 37 // numbers 0 through 36
)

const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorBlack = "black"
)

// ColorOf maps a wheel number to its color: 0 is green, odd numbers red,
// even numbers black.
func ColorOf(number int) string {
	switch {
	case number == 0:
		return ColorGreen
	case number%2 == 1:
		return ColorRed
	default:
		return ColorBlack
	}
}

// Spin picks the winning number uniformly.
func Spin(rng *rand.Rand) int {
	return rng.Intn(WheelSize)
}

// Session tracks the player's coins across rounds.
type Session struct {
	Balance int
	MinBet  int
}

func NewSession(balance, minBet int) *Session {
	return &Session{
		Balance: balance,
		MinBet:  minBet,
	}
}

// ValidateBet checks the stake and number before a spin.
func (that *Session) ValidateBet(amount, number int) error {
	if amount < that.MinBet {
		return fmt.Errorf("%w: minimum bet is %d coins", apperror.ErrInvalidMove, that.MinBet)
	}
	if amount > that.Balance {
		return fmt.Errorf("%w: not enough coins", apperror.ErrInvalidMove)
	}
	if number < 0 || number >= WheelSize {
		return fmt.Errorf("%w: choose a number between 0 and 36", apperror.ErrInvalidMove)
	}
	return nil
}

// Settle applies the outcome of a spin and returns the balance delta: a hit
// pays 35 to 1, a miss loses the stake.
func (that *Session) Settle(amount, number, result int) int {
	if number == result {
		winnings := amount * StraightPayout
		that.Balance += winnings
		return winnings
	}

	that.Balance -= amount
	return -amount
}

// AddCoins is the rebuy used when the balance falls under the minimum bet.
func (that *Session) AddCoins(amount int) {
	if amount > 0 {
		that.Balance += amount
	}
}

// Broke reports whether the player can still place a minimum bet.
func (that *Session) Broke() bool {
	return that.Balance < that.MinBet
}
