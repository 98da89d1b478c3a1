package menu

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/Befador/arcade/internal/apperror"
	"github.com/Befador/arcade/internal/terminal"
)

var logo = []string{
	"╔═════════════════════════════════════════════════════════╗",
	"║                                                         ║",
	"║   █████╗  ██████╗   ██████╗  █████╗  ██████╗  ███████╗  ║",
	"║  ██╔══██╗ ██╔══██╗ ██╔════╝ ██╔══██╗ ██╔══██╗ ██╔════╝  ║",
	"║  ███████║ ██████╔╝ ██║      ███████║ ██║  ██║ █████╗    ║",
	"║  ██╔══██║ ██╔══██╗ ██║      ██╔══██║ ██║  ██║ ██╔══╝    ║",
	"║  ██║  ██║ ██║  ██║ ╚██████╗ ██║  ██║ ██████╔╝ ███████╗  ║",
	"║  ╚═╝  ╚═╝ ╚═╝  ╚═╝  ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚══════╝  ║",
	"║                                                         ║",
	"╚═════════════════════════════════════════════════════════╝",
}

// Game is the single capability a game exposes to the arcade: run to
// completion and hand the terminal back.
type Game interface {
	Title() string
	Run(ctx context.Context) error
}

// Menu is the dispatch table from display names to game entry points. It
// holds no game logic of its own.
type Menu struct {
	logger *slog.Logger
	screen *terminal.Screen
	games  []Game
}

func New(logger *slog.Logger, screen *terminal.Screen, games []Game) *Menu {
	return &Menu{
		logger: logger.With("component", "menu"),
		screen: screen,
		games:  games,
	}
}

// Run draws the menu and dispatches selections until the player exits or
// the context is canceled.
func (that *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.draw()

		choice, err := that.screen.ReadLine(terminal.Strong.Sprintf("Select a game (0-%d): ", len(that.games)))
		if err != nil {
			if errors.Is(err, apperror.ErrQuitToMenu) {
				return nil
			}
			return err
		}

		idx, convErr := strconv.Atoi(choice)
		if convErr != nil {
			continue
		}

		if idx == 0 {
			that.screen.Clear()
			that.screen.Println(terminal.Warn.Sprint("See you next time! 👋"))
			that.screen.Pause(800 * time.Millisecond)
			return nil
		}

		if idx < 1 || idx > len(that.games) {
			continue
		}

		game := that.games[idx-1]
		that.logger.Info("launching game", "game", game.Title())

		if err := game.Run(ctx); err != nil {
			if errors.Is(err, apperror.ErrQuitToMenu) || errors.Is(err, context.Canceled) {
				continue
			}

			that.logger.Error("game failed", "game", game.Title(), "error", err)
			that.screen.Println(terminal.Danger.Sprintf("Error launching %s: %v", game.Title(), err))
			if waitErr := that.screen.WaitEnter("\nPress enter to return to the main menu..."); waitErr != nil {
				return nil
			}
		}
	}
}

func (that *Menu) draw() {
	that.screen.Clear()
	for _, line := range logo {
		that.screen.Println(terminal.Title.Sprint(line))
	}

	for idx, game := range that.games {
		style := terminal.Title
		if idx%2 == 0 {
			style = terminal.Accent
		}
		that.screen.Printf("   %s\n", style.Sprintf("%d. %s", idx+1, game.Title()))
	}
	that.screen.Println("   0. Exit")
	that.screen.Println()
}
