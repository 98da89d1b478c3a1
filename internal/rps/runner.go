package rps

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Befador/arcade/internal/terminal"
)

var banner = []string{
	"╔══════════════════════════════════════════════════════════╗",
	"║                                                          ║",
	"║  R  O  C  K     P  A  P  E  R    S  C  I  S  S  O  R  S  ║",
	"║                                                          ║",
	"╚══════════════════════════════════════════════════════════╝",
}

var art = map[Choice][]string{
	Rock: {
		"    _______",
		"---'   ____)",
		"      (_____)",
		"      (_____)",
		"      (____)",
		"---.__(___)",
	},
	Paper: {
		"     _______",
		"---'    ____)____",
		"           ______)",
		"          _______)",
		"         _______)",
		"---.__________)",
	},
	Scissors: {
		"    _______",
		"---'   ____)____",
		"          ______)",
		"       __________)",
		"      (____)",
		"---.__(___)",
	},
}

type Runner struct {
	logger *slog.Logger
	screen *terminal.Screen
	rng    *rand.Rand
	rounds int
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, rounds int) *Runner {
	return &Runner{
		logger: logger.With("component", "rps"),
		screen: screen,
		rng:    rng,
		rounds: rounds,
	}
}

func (that *Runner) Title() string {
	return "Rock Paper Scissors"
}

func (that *Runner) Run(ctx context.Context) error {
	that.screen.Clear()
	that.printBanner()

	name, err := that.screen.ReadLine(terminal.Magenta.Sprint("Enter your name: "))
	if err != nil {
		return err
	}
	if name == "" {
		name = "Player"
	}

	playerScore, computerScore := 0, 0
	needed := that.rounds/2 + 1

	for round := 1; round <= that.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.screen.Clear()
		that.printBanner()
		that.printScore(name, playerScore, computerScore)
		that.screen.Center(terminal.Warn.Sprintf("Round %d of %d", round, that.rounds))

		player, err := that.askChoice(name)
		if err != nil {
			return err
		}

		that.countdown()

		computer := RandomChoice(that.rng)

		that.screen.Clear()
		that.printBanner()
		that.printScore(name, playerScore, computerScore)
		that.screen.Center(terminal.Accent.Sprintf("%s chose: %s", name, player))
		that.printArt(player, terminal.Accent)
		that.screen.Center(terminal.Warn.Sprint("VERSUS"))
		that.screen.Center(terminal.Magenta.Sprintf("Computer chose: %s", computer))
		that.printArt(computer, terminal.Magenta)

		var message string
		var style = terminal.Warn
		switch Decide(player, computer) {
		case PlayerWins:
			message = "You win this round!"
			style = terminal.Title
			playerScore++
		case ComputerWins:
			message = "Computer wins this round!"
			style = terminal.Danger
			computerScore++
		case Tie:
			message = "It's a tie!"
		}

		that.screen.Center(style.Sprint(message))
		that.screen.Center(terminal.Magenta.Sprintf("Score  %s: %d   AI: %d", name, playerScore, computerScore))
		if err := that.screen.WaitEnter("Press enter to continue..."); err != nil {
			return err
		}

		if playerScore == needed || computerScore == needed {
			break
		}
	}

	that.logger.Info("match finished", "player", playerScore, "computer", computerScore)

	return that.showFinal(name, playerScore, computerScore)
}

func (that *Runner) askChoice(name string) (Choice, error) {
	for {
		answer, err := that.screen.ReadLine(fmt.Sprintf("%s, choose Rock (r), Paper (p) or Scissors (s): ", name))
		if err != nil {
			return "", err
		}

		switch answer {
		case "r", "R":
			return Rock, nil
		case "p", "P":
			return Paper, nil
		case "s", "S":
			return Scissors, nil
		}
	}
}

func (that *Runner) countdown() {
	for i := 3; i > 0; i-- {
		that.screen.Center(terminal.Warn.Sprintf("%d...", i))
		that.screen.Pause(time.Second)
	}
}

func (that *Runner) showFinal(name string, playerScore, computerScore int) error {
	that.screen.Clear()
	that.printBanner()
	that.printScore(name, playerScore, computerScore)

	switch {
	case playerScore > computerScore:
		that.screen.Center(terminal.Title.Sprint("CONGRATULATIONS! You won the match!"))
	case computerScore > playerScore:
		that.screen.Center(terminal.Danger.Sprint("SORRY! The computer won the match."))
	default:
		that.screen.Center(terminal.Warn.Sprint("IT'S A DRAW!"))
	}

	that.screen.Center(terminal.Magenta.Sprintf("Final Score  %s: %d   AI: %d", name, playerScore, computerScore))

	return that.screen.WaitEnter("Press enter to exit...")
}

func (that *Runner) printBanner() {
	for _, line := range banner {
		that.screen.Center(terminal.Title.Sprint(line))
	}
}

func (that *Runner) printScore(name string, playerScore, computerScore int) {
	that.screen.Center(terminal.Magenta.Sprintf("%s: %d   AI: %d", name, playerScore, computerScore))
}

func (that *Runner) printArt(choice Choice, style interface{ Sprint(...any) string }) {
	for _, line := range art[choice] {
		that.screen.Center(style.Sprint(line))
	}
}
