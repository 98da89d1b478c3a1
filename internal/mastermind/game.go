package mastermind

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/Befador/arcade/internal/apperror"
)

// GenerateCode builds a secret code of length digits, each between minDigit
// and maxDigit inclusive. Digits may repeat.
func GenerateCode(rng *rand.Rand, length, minDigit, maxDigit int) []int {
	code := make([]int, length)
	for i := range code {
		code[i] = minDigit + rng.Intn(maxDigit-minDigit+1)
	}

	return code
}

// Grade compares guess to secret and returns the exact-match count (right
// digit, right position) and the partial count (right digit, wrong
// position). Leftover digits are matched one-to-one so nothing is counted
// twice.
func Grade(secret, guess []int) (exact, partial int) {
	remSecret := make([]int, 0, len(secret))
	remGuess := make([]int, 0, len(guess))

	for i := range secret {
		if secret[i] == guess[i] {
			exact++
			continue
		}
		remSecret = append(remSecret, secret[i])
		remGuess = append(remGuess, guess[i])
	}

	for _, g := range remGuess {
		for j, s := range remSecret {
			if s == g {
				partial++
				remSecret = append(remSecret[:j], remSecret[j+1:]...)
				break
			}
		}
	}

	return exact, partial
}

// ParseGuess validates raw input: exactly length digits, each within range.
func ParseGuess(raw string, length, minDigit, maxDigit int) ([]int, error) {
	if len(raw) != length {
		return nil, fmt.Errorf("%w: need %d digits", apperror.ErrInvalidMove, length)
	}

	guess := make([]int, 0, length)
	for _, r := range raw {
		digit, err := strconv.Atoi(string(r))
		if err != nil || digit < minDigit || digit > maxDigit {
			return nil, fmt.Errorf("%w: digits must be between %d and %d", apperror.ErrInvalidMove, minDigit, maxDigit)
		}
		guess = append(guess, digit)
	}

	return guess, nil
}

// FormatCode renders a code the way the player typed it.
func FormatCode(code []int) string {
	out := ""
	for _, digit := range code {
		out += strconv.Itoa(digit)
	}
	return out
}
