package rps

import "math/rand"

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

type Outcome string

const (
	PlayerWins   Outcome = "player"
	ComputerWins Outcome = "computer"
	Tie          Outcome = "tie"
)

var Choices = []Choice{Rock, Paper, Scissors}

// beats maps each choice to the one it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Decide resolves one round from the player's perspective.
func Decide(player, computer Choice) Outcome {
	if player == computer {
		return Tie
	}
	if beats[player] == computer {
		return PlayerWins
	}
	return ComputerWins
}

// RandomChoice picks the computer's move uniformly.
func RandomChoice(rng *rand.Rand) Choice {
	return Choices[rng.Intn(len(Choices))]
}
