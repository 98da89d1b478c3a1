package snake

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Befador/arcade/internal/terminal"
)

var banner = []string{
	"╔════════════════════════════════════════╗",
	"║           ★  S N A K E  ★              ║",
	"╚════════════════════════════════════════╝",
}

// Runner drives the snake game: a ticker for frames and a raw-mode key
// reader for steering, the arcade's stand-in for a curses nodelay loop.
type Runner struct {
	logger *slog.Logger
	screen *terminal.Screen
	rng    *rand.Rand
	width  int
	height int
	tick   time.Duration
}

func NewRunner(logger *slog.Logger, screen *terminal.Screen, rng *rand.Rand, width, height, tickMS int) *Runner {
	return &Runner{
		logger: logger.With("component", "snake"),
		screen: screen,
		rng:    rng,
		width:  width,
		height: height,
		tick:   time.Duration(tickMS) * time.Millisecond,
	}
}

func (that *Runner) Title() string {
	return "Snake"
}

func (that *Runner) Run(ctx context.Context) error {
	keys, err := terminal.OpenKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to open key reader: %w", err)
	}
	defer func() {
		if closeErr := keys.Close(); closeErr != nil {
			that.logger.Error("could not restore terminal", "error", closeErr)
		}
	}()

	game := NewGame(that.width, that.height, that.rng)
	ticker := time.NewTicker(that.tick)
	defer ticker.Stop()

	for !game.Over {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-keys.Events():
			switch event.Key {
			case terminal.KeyEsc:
				return nil
			case terminal.KeyUp:
				game.Steer(Up)
			case terminal.KeyDown:
				game.Steer(Down)
			case terminal.KeyLeft:
				game.Steer(Left)
			case terminal.KeyRight:
				game.Steer(Right)
			}
		case <-ticker.C:
			game.Step()
			that.renderFrame(game)
		}
	}

	that.logger.Info("game over", "score", game.Score)

	return that.gameOver(ctx, keys, game.Score)
}

// renderFrame draws the banner, border, snake, food and score. The whole
// frame is built in memory first so the redraw does not flicker.
func (that *Runner) renderFrame(game *Game) {
	var frame strings.Builder

	// Raw mode needs explicit carriage returns.
	newline := "\r\n"

	frame.WriteString("\033[H\033[2J")
	for _, line := range banner {
		frame.WriteString(terminal.Title.Sprint(line) + newline)
	}

	grid := make([][]rune, game.Height)
	for y := range grid {
		grid[y] = make([]rune, game.Width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	grid[game.Food.Y][game.Food.X] = '◆'
	for _, cell := range game.Body {
		grid[cell.Y][cell.X] = '■'
	}

	frame.WriteString("═" + strings.Repeat("═", game.Width) + "═" + newline)
	for y := 0; y < game.Height; y++ {
		frame.WriteString("║" + string(grid[y]) + "║" + newline)
	}
	frame.WriteString("═" + strings.Repeat("═", game.Width) + "═" + newline)

	frame.WriteString(terminal.Accent.Sprintf("Score: %d", game.Score) + newline)
	frame.WriteString("Arrows to steer, ESC to quit." + newline)

	that.screen.Print(frame.String())
}

func (that *Runner) gameOver(ctx context.Context, keys *terminal.KeyReader, score int) error {
	that.screen.Print("\033[H\033[2J")
	for _, line := range banner {
		that.screen.Print(terminal.Title.Sprint(line) + "\r\n")
	}
	that.screen.Print("\r\n" + terminal.Warn.Sprintf("GAME OVER!  Score: %d", score) + "\r\n")
	that.screen.Print("\r\nPress any key to return to menu...\r\n")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-keys.Events():
		return nil
	}
}
