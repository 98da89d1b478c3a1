package application

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Befador/arcade/internal/blackjack"
	"github.com/Befador/arcade/internal/config"
	"github.com/Befador/arcade/internal/hangman"
	"github.com/Befador/arcade/internal/mastermind"
	"github.com/Befador/arcade/internal/menu"
	"github.com/Befador/arcade/internal/roulette"
	"github.com/Befador/arcade/internal/rps"
	"github.com/Befador/arcade/internal/snake"
	"github.com/Befador/arcade/internal/terminal"
	"github.com/Befador/arcade/internal/tictactoe"
)

// RunApp - wires the games together and dispatches either the main menu or a
// single game picked on the command line.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	screen := terminal.New(os.Stdin, os.Stdout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	noise := conf.Games.TicTacToe.Noise
	passAndPlay := false

	buildTicTacToe := func() *tictactoe.Runner {
		mode := ""
		if passAndPlay {
			mode = tictactoe.ModePassAndPlay
		}
		return tictactoe.NewRunner(logger, screen, rng, noise, mode)
	}

	games := []menu.Game{
		tictactoe.NewRunner(logger, screen, rng, noise, ""),
		snake.NewRunner(logger, screen, rng, conf.Games.Snake.Width, conf.Games.Snake.Height, conf.Games.Snake.TickMS),
		hangman.NewRunner(logger, screen, rng, conf.Games.Hangman.MaxTries),
		mastermind.NewRunner(logger, screen, rng, conf.Games.Mastermind.CodeLength),
		rps.NewRunner(logger, screen, rng, conf.Games.RPS.Rounds),
		blackjack.NewRunner(logger, screen, rng, conf.Games.Blackjack.Decks),
		roulette.NewRunner(logger, screen, rng, conf.Games.Roulette.MinBet),
	}

	root := &cobra.Command{
		Use:           "arcade",
		Short:         "A collection of terminal games",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Info("Starting main menu")
			return menu.New(logger, screen, games).Run(cmd.Context())
		},
	}

	tttCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the bot or a friend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildTicTacToe().Run(cmd.Context())
		},
	}
	tttCmd.Flags().Float64Var(&noise, "noise", noise, "probability of a random bot move (0 plays perfectly)")
	tttCmd.Flags().BoolVar(&passAndPlay, "pass-and-play", false, "two players sharing the keyboard")
	root.AddCommand(tttCmd)

	for _, game := range games[1:] {
		game := game
		root.AddCommand(&cobra.Command{
			Use:   commandName(game.Title()),
			Short: "Play " + game.Title(),
			RunE: func(cmd *cobra.Command, _ []string) error {
				return game.Run(cmd.Context())
			},
		})
	}

	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return err
	}

	log.Info("Arcade closed")
	return nil
}

func commandName(title string) string {
	switch title {
	case "Rock Paper Scissors":
		return "rps"
	default:
		name := make([]rune, 0, len(title))
		for _, r := range title {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			if r == ' ' {
				r = '-'
			}
			name = append(name, r)
		}
		return string(name)
	}
}
