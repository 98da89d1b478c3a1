package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Befador/arcade/internal/apperror"
	"github.com/Befador/arcade/internal/terminal"
)

const (
	ModeSingle      = "single"
	ModePassAndPlay = "pass-and-play"

	botName  = "AI"
	botDelay = 500 * time.Millisecond
)

// Runner drives tic-tac-toe matches from the arcade menu or the CLI. Mode
// may be preset (CLI flags) or chosen interactively when empty.
type Runner struct {
	logger *slog.Logger
	screen *terminal.Screen
	rng    *rand.Rand
	noise  float64
	mode   string
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, noise float64, mode string) *Runner {
	return &Runner{
		logger: logger.With("component", "tictactoe"),
		screen: screen,
		rng:    rng,
		noise:  noise,
		mode:   mode,
	}
}

func (that *Runner) Title() string {
	return "Tic-Tac-Toe"
}

func (that *Runner) Run(ctx context.Context) error {
	if that.mode != "" {
		return that.runMatch(ctx, that.mode)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.screen.Clear()
		that.screen.Println(strings.Repeat("=", 50))
		that.screen.Center(terminal.Title.Sprint("TIC-TAC-TOE TERMINAL EDITION"))
		that.screen.Println(strings.Repeat("=", 50))
		that.screen.Println("1. Single Player")
		that.screen.Println("2. Pass & Play")
		that.screen.Println("3. Back to menu")

		choice, err := that.screen.ReadLine("Choice: ")
		if err != nil {
			return err
		}

		var mode string
		switch choice {
		case "1":
			mode = ModeSingle
		case "2":
			mode = ModePassAndPlay
		case "3":
			return nil
		default:
			continue
		}

		if err := that.runMatch(ctx, mode); err != nil {
			if errors.Is(err, apperror.ErrQuitToMenu) {
				continue
			}
			return err
		}
	}
}

// runMatch plays a best-of-N match: name entry, round count, then rounds
// with a running score.
func (that *Runner) runMatch(ctx context.Context, mode string) error {
	that.screen.Clear()

	players, err := that.askPlayers(mode)
	if err != nil {
		return err
	}

	showNumbers, err := that.screen.Confirm("Numbered grid? (y/n): ")
	if err != nil {
		return err
	}

	rounds, err := that.askRounds(players[0])
	if err != nil {
		return err
	}

	score := map[string]int{players[0]: 0, players[1]: 0}

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := that.playRound(ctx, players, mode, score, showNumbers); err != nil {
			return err
		}
	}

	return that.showFinalScore(players, score)
}

func (that *Runner) askPlayers(mode string) ([2]string, error) {
	if mode == ModeSingle {
		name, err := that.screen.ReadLine("Enter your name: ")
		if err != nil {
			return [2]string{}, err
		}
		if name == "" {
			name = "Player"
		}
		return [2]string{name, botName}, nil
	}

	first, err := that.screen.ReadLine("Player 1 name: ")
	if err != nil {
		return [2]string{}, err
	}
	if first == "" {
		first = "Player 1"
	}

	second, err := that.screen.ReadLine("Player 2 name: ")
	if err != nil {
		return [2]string{}, err
	}
	if second == "" {
		second = "Player 2"
	}

	return [2]string{first, second}, nil
}

func (that *Runner) askRounds(name string) (int, error) {
	for {
		answer, err := that.screen.ReadLine(fmt.Sprintf("%s, how many rounds? ", name))
		if err != nil {
			return 0, err
		}

		rounds, err := strconv.Atoi(answer)
		if err == nil && rounds > 0 {
			return rounds, nil
		}
	}
}

// playRound runs one board to completion. Invalid input re-prompts without
// consuming the turn; the round ends on a win line or a full board.
func (that *Runner) playRound(ctx context.Context, players [2]string, mode string, score map[string]int, showNumbers bool) error {
	game := NewGame()
	bot := NewBot(that.rng, that.noise)

	turn := 0
	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.renderBoard(game, players, score, showNumbers)

		current := players[turn%2]
		mark := PlayerX
		if turn%2 == 1 {
			mark = PlayerO
		}

		// In single-player mode the bot always holds the second seat; the
		// human keeps seat 0 even when named like the bot.
		if mode == ModeSingle && turn%2 == 1 {
			that.screen.Pause(botDelay)

			cell, err := bot.SelectMove(game, mark)
			if err != nil {
				return fmt.Errorf("bot failed to select move: %w", err)
			}

			if err := game.MakeTurn(mark, cell); err != nil {
				return fmt.Errorf("bot failed to make turn: %w", err)
			}

			that.logger.Debug("bot moved", "cell", cell, "mark", mark)
		} else if err := that.humanTurn(game, current, mark); err != nil {
			return err
		}

		turn++
	}

	that.renderBoard(game, players, score, showNumbers)

	switch game.Winner {
	case PlayerTie:
		that.screen.Println(terminal.Warn.Sprint("It's a tie!"))
	default:
		winner := players[0]
		if game.Winner == PlayerO {
			winner = players[1]
		}
		score[winner]++
		that.screen.Println(terminal.Title.Sprintf("%s wins!", winner))
	}

	that.screen.Pause(time.Second)

	return nil
}

func (that *Runner) humanTurn(game *Game, name, mark string) error {
	for {
		answer, err := that.screen.ReadLine(fmt.Sprintf("%s (%s), enter your move (0-8): ", name, mark))
		if err != nil {
			return err
		}

		cell, convErr := strconv.Atoi(answer)
		if convErr != nil {
			that.screen.Println(terminal.Danger.Sprint("Invalid input."))
			continue
		}

		if err := game.MakeTurn(mark, cell); err != nil {
			switch {
			case errors.Is(err, apperror.ErrCellOccupied):
				that.screen.Println(terminal.Danger.Sprint("Cell is taken!"))
			case errors.Is(err, apperror.ErrInvalidMove):
				that.screen.Println(terminal.Danger.Sprint("Invalid input."))
			default:
				return fmt.Errorf("failed to make turn: %w", err)
			}
			continue
		}

		return nil
	}
}

func (that *Runner) renderBoard(game *Game, players [2]string, score map[string]int, showNumbers bool) {
	that.screen.Clear()
	that.screen.Center(fmt.Sprintf("%s vs %s", players[0], players[1]))
	that.screen.Center(fmt.Sprintf("Score: %s %d - %d %s", players[0], score[players[0]], score[players[1]], players[1]))
	that.screen.Println()

	const cellWidth = 7
	separator := "+" + strings.Repeat(strings.Repeat("=", cellWidth)+"+", 3)

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			value := game.Board[idx]
			if value == EmptyCell && showNumbers {
				value = fmt.Sprintf("(%d)", idx)
			}
			cells = append(cells, centerCell(value, cellWidth))
		}

		that.screen.Center(separator)
		that.screen.Center("|" + strings.Join(cells, "|") + "|")
	}
	that.screen.Center(separator)

	that.screen.Println()
	that.screen.Println(terminal.Accent.Sprint("Type 'esc' to return to menu at any time."))
	that.screen.Println()
}

func (that *Runner) showFinalScore(players [2]string, score map[string]int) error {
	that.screen.Clear()
	that.screen.Center(fmt.Sprintf("Final: %s %d - %d %s", players[0], score[players[0]], score[players[1]], players[1]))

	switch {
	case score[players[0]] > score[players[1]]:
		that.screen.Center(terminal.Title.Sprintf("%s wins!", players[0]))
	case score[players[0]] < score[players[1]]:
		that.screen.Center(terminal.Title.Sprintf("%s wins!", players[1]))
	default:
		that.screen.Center(terminal.Warn.Sprint("Draw!"))
	}

	return that.screen.WaitEnter("\nEnter to menu...")
}

func centerCell(value string, width int) string {
	if len(value) >= width {
		return value[:width]
	}

	left := (width - len(value)) / 2
	right := width - len(value) - left

	return strings.Repeat(" ", left) + value + strings.Repeat(" ", right)
}
