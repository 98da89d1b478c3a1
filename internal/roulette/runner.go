package roulette

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/fatih/color"

	"github.com/Befador/arcade/internal/terminal"
)

type Runner struct {
	logger *slog.Logger
	screen *terminal.Screen
	rng    *rand.Rand
	minBet int
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, minBet int) *Runner {
	return &Runner{
		logger: logger.With("component", "roulette"),
		screen: screen,
		rng:    rng,
		minBet: minBet,
	}
}

func (that *Runner) Title() string {
	return "Roulette"
}

func (that *Runner) Run(ctx context.Context) error {
	that.screen.Clear()
	that.screen.Println(terminal.Title.Sprint("🎰 Welcome to Terminal Roulette!"))

	start, err := that.askInt("How many coins would you like to start with? ", that.minBet, 1_000_000)
	if err != nil {
		return err
	}

	session := NewSession(start, that.minBet)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if session.Broke() {
			quit, err := that.rebuy(session)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}

		amount, number, err := that.askBet(session)
		if err != nil {
			return err
		}

		result := Spin(that.rng)
		delta := session.Settle(amount, number, result)

		that.announce(result, delta)
		that.logger.Info("spin settled", "result", result, "bet", number, "delta", delta, "balance", session.Balance)

		that.screen.Printf("\nYour balance: %d coins\n", session.Balance)

		again, err := that.screen.Confirm("\nPlay again? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			that.screen.Println("Thanks for playing!")
			return nil
		}
	}
}

func (that *Runner) rebuy(session *Session) (quit bool, err error) {
	that.screen.Printf("\nYou have only %d coins.\n", session.Balance)

	buy, err := that.screen.Confirm("Would you like to buy more coins? (y/n): ")
	if err != nil {
		return false, err
	}
	if !buy {
		that.screen.Println("Thanks for playing!")
		return true, nil
	}

	amount, err := that.askInt("How many coins would you like to purchase? ", 1, 1_000_000)
	if err != nil {
		return false, err
	}

	session.AddCoins(amount)
	that.screen.Printf("New balance: %d coins.\n", session.Balance)

	return false, nil
}

func (that *Runner) askBet(session *Session) (amount, number int, err error) {
	for {
		amount, err = that.askInt("\nEnter your bet amount (min 10 coins): ", 0, 1_000_000)
		if err != nil {
			return 0, 0, err
		}

		number, err = that.askInt("Bet on a number (0-36): ", 0, 36)
		if err != nil {
			return 0, 0, err
		}

		if validateErr := session.ValidateBet(amount, number); validateErr != nil {
			that.screen.Println(terminal.Danger.Sprint(validateErr.Error()))
			continue
		}

		return amount, number, nil
	}
}

func (that *Runner) askInt(prompt string, min, max int) (int, error) {
	for {
		answer, err := that.screen.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(answer)
		if convErr != nil || value < min || value > max {
			that.screen.Println("Please enter a valid number.")
			continue
		}

		return value, nil
	}
}

func (that *Runner) announce(result, delta int) {
	style := colorStyle(ColorOf(result))

	that.screen.Println()
	that.screen.Println(style.Sprintf("The wheel lands on %d (%s)!", result, ColorOf(result)))

	if delta > 0 {
		that.screen.Println(terminal.Title.Sprintf("You won! Winnings: %d coins.", delta))
	} else {
		that.screen.Println(terminal.Danger.Sprintf("You lost %d coins.", -delta))
	}
}

func colorStyle(name string) *color.Color {
	switch name {
	case ColorGreen:
		return terminal.Title
	case ColorRed:
		return terminal.Danger
	default:
		return terminal.Strong
	}
}
