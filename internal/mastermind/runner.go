package mastermind

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Befador/arcade/internal/terminal"
)

var banner = []string{
	"╔════════════════════════════════════════╗",
	"║                                        ║",
	"║      M  A  S  T  E  R  M  I  N  D      ║",
	"║                                        ║",
	"╚════════════════════════════════════════╝",
}

type Runner struct {
	logger     *slog.Logger
	screen     *terminal.Screen
	rng        *rand.Rand
	codeLength int
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, codeLength int) *Runner {
	return &Runner{
		logger:     logger.With("component", "mastermind"),
		screen:     screen,
		rng:        rng,
		codeLength: codeLength,
	}
}

func (that *Runner) Title() string {
	return "Mastermind"
}

func (that *Runner) Run(ctx context.Context) error {
	player, err := that.askName()
	if err != nil {
		return err
	}

	minDigit, maxDigit, err := that.askRange()
	if err != nil {
		return err
	}

	maxTries, err := that.askDifficulty()
	if err != nil {
		return err
	}

	that.printHeader(player, 0, maxTries)
	that.screen.Println(terminal.Warn.Sprintf("I've chosen a %d-digit code, digits %d-%d.", that.codeLength, minDigit, maxDigit))
	that.screen.Println(terminal.Warn.Sprintf("You have %d attempts to crack it!", maxTries))
	if err := that.screen.WaitEnter("\nPress ENTER to begin..."); err != nil {
		return err
	}

	secret := GenerateCode(that.rng, that.codeLength, minDigit, maxDigit)
	that.logger.Debug("secret generated", "length", that.codeLength, "min", minDigit, "max", maxDigit)

	cracked := false
	for attempt := 1; attempt <= maxTries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.printHeader(player, attempt, maxTries)

		guess, err := that.askGuess(attempt, maxTries, minDigit, maxDigit)
		if err != nil {
			return err
		}

		exact, partial := Grade(secret, guess)
		if exact == that.codeLength {
			that.printHeader(player, attempt, maxTries)
			that.screen.Println(terminal.Title.Sprintf("\nCracked in %d %s! Code was %s.\n", attempt, tries(attempt), FormatCode(secret)))
			cracked = true
			break
		}

		that.screen.Println(terminal.Title.Sprintf("Exact matches   (correct digit & position): %d", exact))
		that.screen.Println(terminal.Warn.Sprintf("Partial matches (correct digit, wrong position): %d\n", partial))
		if err := that.screen.WaitEnter("Press ENTER for next round..."); err != nil {
			return err
		}
	}

	if !cracked {
		that.printHeader(player, maxTries, maxTries)
		that.screen.Println(terminal.Danger.Sprintf("\nOut of attempts! The code was %s.\n", FormatCode(secret)))
	}

	return that.screen.WaitEnter("Press ENTER to return to the main menu...")
}

func (that *Runner) askName() (string, error) {
	that.screen.Clear()
	that.printBanner()

	name, err := that.screen.ReadLine(terminal.Magenta.Sprint("Enter your name: "))
	if err != nil {
		return "", err
	}
	if name == "" {
		name = "Player"
	}

	return name, nil
}

func (that *Runner) askRange() (int, int, error) {
	that.screen.Clear()
	that.printBanner()
	that.screen.Println(terminal.Accent.Sprint("Select digit range:"))
	that.screen.Println("  1) 1-6")
	that.screen.Println("  2) 0-9")

	for {
		choice, err := that.screen.ReadLine(terminal.Magenta.Sprint("Enter 1 or 2: "))
		if err != nil {
			return 0, 0, err
		}

		switch choice {
		case "1":
			return 1, 6, nil
		case "2":
			return 0, 9, nil
		}

		that.screen.Println(terminal.Danger.Sprint("Invalid choice. Please enter 1 or 2."))
	}
}

func (that *Runner) askDifficulty() (int, error) {
	that.screen.Clear()
	that.printBanner()
	that.screen.Println(terminal.Accent.Sprint("Select difficulty:"))
	that.screen.Println("  1) Easy   (10 attempts)")
	that.screen.Println("  2) Hard   (6 attempts)")

	for {
		choice, err := that.screen.ReadLine(terminal.Magenta.Sprint("Enter 1 or 2: "))
		if err != nil {
			return 0, err
		}

		switch choice {
		case "1":
			return 10, nil
		case "2":
			return 6, nil
		}

		that.screen.Println(terminal.Danger.Sprint("Invalid choice. Please enter 1 or 2."))
	}
}

func (that *Runner) askGuess(attempt, maxTries, minDigit, maxDigit int) ([]int, error) {
	for {
		prompt := terminal.Accent.Sprintf("Attempt %d/%d, enter %d digits (%d-%d): ", attempt, maxTries, that.codeLength, minDigit, maxDigit)

		raw, err := that.screen.ReadLine(prompt)
		if err != nil {
			return nil, err
		}

		guess, err := ParseGuess(raw, that.codeLength, minDigit, maxDigit)
		if err != nil {
			that.screen.Println(terminal.Danger.Sprintf("Invalid: need %d digits between %d and %d.", that.codeLength, minDigit, maxDigit))
			continue
		}

		return guess, nil
	}
}

func (that *Runner) printHeader(player string, attempt, maxTries int) {
	that.screen.Clear()
	that.printBanner()
	status := fmt.Sprintf("%s   Round: %d/%d", terminal.Magenta.Sprint(player), attempt, maxTries)
	that.screen.Center(status)
	that.screen.Println()
}

func (that *Runner) printBanner() {
	for _, line := range banner {
		that.screen.Println(terminal.Title.Sprint(line))
	}
}

func tries(n int) string {
	if n == 1 {
		return "try"
	}
	return "tries"
}
