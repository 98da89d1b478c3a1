package hangman

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Befador/arcade/internal/terminal"
)

const pauseShort = time.Second

var banner = []string{
	"╔═══════════════════════════════════════╗",
	"║          H  A  N  G  M  A  N          ║",
	"╚═══════════════════════════════════════╝",
}

// Gallows art keyed by the number of wrong tries.
var gallows = []string{
	"",
	"  O  ",
	"  O  \n  |  ",
	"  O  \n /|  ",
	"  O  \n /|\\",
	"  O  \n /|\\\n /   ",
	"  O  \n /|\\\n / \\",
}

type Runner struct {
	logger   *slog.Logger
	screen   *terminal.Screen
	rng      *rand.Rand
	maxTries int
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, maxTries int) *Runner {
	return &Runner{
		logger:   logger.With("component", "hangman"),
		screen:   screen,
		rng:      rng,
		maxTries: maxTries,
	}
}

func (that *Runner) Title() string {
	return "Hangman"
}

func (that *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		language, err := that.askLanguage()
		if err != nil {
			return err
		}

		game, err := NewGame(language, that.maxTries, that.rng)
		if err != nil {
			return fmt.Errorf("failed to start round: %w", err)
		}

		if err := that.playRound(ctx, game); err != nil {
			return err
		}

		again, err := that.screen.Confirm("Play again? (y/n) / Rejouer ? (o/n)\n> ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (that *Runner) askLanguage() (string, error) {
	that.screen.Clear()
	that.printBanner()
	that.screen.Println()
	that.screen.Println(terminal.Strong.Sprint("Choose a language / Choisissez une langue:"))
	that.screen.Println("1. English")
	that.screen.Println("2. Français")

	for {
		choice, err := that.screen.ReadLine("> ")
		if err != nil {
			return "", err
		}

		switch choice {
		case "1":
			return "EN", nil
		case "2":
			return "FR", nil
		}
	}
}

func (that *Runner) playRound(ctx context.Context, game *Game) error {
	for !game.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.printStatus(game)

		guess, err := that.screen.ReadLine("> ")
		if err != nil {
			return err
		}

		if guess == "0" {
			if !game.UseHint() {
				that.screen.Println(terminal.Danger.Sprint("No hint available."))
				that.screen.Pause(pauseShort)
			}
			continue
		}

		game.Guess(guess)
	}

	that.printStatus(game)
	that.logger.Info("round finished", "word", game.Word, "won", game.Won(), "tries", game.Tries)

	that.screen.Println()
	if game.Won() {
		that.screen.Println(terminal.Title.Sprint("You win! / Gagné !"))
	} else {
		that.screen.Println(terminal.Danger.Sprint("You lose! / Perdu !"))
		that.screen.Printf("The word was: %s\n", terminal.Accent.Sprint(game.Word))
	}
	that.screen.Println()

	return nil
}

func (that *Runner) printStatus(game *Game) {
	that.screen.Clear()
	that.printBanner()
	that.screen.Println()
	that.screen.Println(terminal.Danger.Sprint(gallows[clampTries(game.Tries)]))
	that.screen.Println()
	that.screen.Println(game.Masked())
	that.screen.Println()
	that.screen.Println(terminal.Warn.Sprintf("Guessed: %s", strings.Join(game.GuessedLetters(), ", ")))
	that.screen.Println(terminal.Accent.Sprintf("Tries left: %d", game.MaxTries-game.Tries))
	that.screen.Println()
	if game.HintUsed {
		that.screen.Println(terminal.Accent.Sprintf("Hint: %s", game.Hint))
	}
	that.screen.Println(terminal.Accent.Sprint("(Press 0 to get a hint - costs 3 tries. Type 'esc' to quit to menu)"))
}

func (that *Runner) printBanner() {
	for _, line := range banner {
		that.screen.Println(terminal.Title.Sprint(line))
	}
}

func clampTries(tries int) int {
	if tries >= len(gallows) {
		return len(gallows) - 1
	}
	return tries
}
