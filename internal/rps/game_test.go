package rps

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name     string
		player   Choice
		computer Choice
		want     Outcome
	}{
		{"Rock crushes scissors", Rock, Scissors, PlayerWins},
		{"Scissors cut paper", Scissors, Paper, PlayerWins},
		{"Paper covers rock", Paper, Rock, PlayerWins},
		{"Scissors lose to rock", Scissors, Rock, ComputerWins},
		{"Paper loses to scissors", Paper, Scissors, ComputerWins},
		{"Rock loses to paper", Rock, Paper, ComputerWins},
		{"Same choice ties", Rock, Rock, Tie},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.player, tc.computer))
		})
	}
}

func TestRandomChoice(t *testing.T) {
	// Given: a seeded source
	rng := rand.New(rand.NewSource(2))

	// When: many choices are drawn
	seen := make(map[Choice]int)
	for i := 0; i < 300; i++ {
		choice := RandomChoice(rng)
		seen[choice]++

		// Then: every draw is a valid choice
		assert.Contains(t, Choices, choice)
	}

	// Then: all three choices occur
	assert.Len(t, seen, 3)
}
