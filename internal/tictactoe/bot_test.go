package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Befador/arcade/internal/apperror"
)

func TestBot_SelectMove(t *testing.T) {
	t.Run("Takes the immediate win", func(t *testing.T) {
		// Given: X can complete the top row
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerX, EmptyCell,
				PlayerO, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			Turn:   PlayerX,
			Status: StatusOngoing,
		}
		bot := NewBot(rand.New(rand.NewSource(1)), 0)

		// When: the bot selects for X
		cell, err := bot.SelectMove(game, PlayerX)

		// Then: it completes the row at index 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Opening move is deterministic at zero noise", func(t *testing.T) {
		// Given: an empty board
		game := NewGame()
		bot := NewBot(rand.New(rand.NewSource(42)), 0)

		// When: the bot selects repeatedly
		first, err := bot.SelectMove(game, PlayerX)
		require.NoError(t, err)

		// Then: every call returns the same lowest-index optimal cell
		for i := 0; i < 5; i++ {
			cell, err := bot.SelectMove(game, PlayerX)
			require.NoError(t, err)
			assert.Equal(t, first, cell)
		}
		assert.Equal(t, 0, first)
	})

	t.Run("Returns ErrNoLegalMoves on a full board", func(t *testing.T) {
		// Given: a full board
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
		}
		bot := NewBot(rand.New(rand.NewSource(1)), 0)

		// When: the bot is asked for a move
		_, err := bot.SelectMove(game, PlayerX)

		// Then: it reports the invariant violation
		assert.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})

	t.Run("Full noise still returns a legal move", func(t *testing.T) {
		// Given: a board with a single free cell and a bot that always
		// plays randomly
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, EmptyCell,
			},
			Turn:   PlayerX,
			Status: StatusOngoing,
		}
		bot := NewBot(rand.New(rand.NewSource(7)), 1)

		// When: the bot selects
		cell, err := bot.SelectMove(game, PlayerX)

		// Then: the only empty cell is chosen
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Blocks the opponent's winning line", func(t *testing.T) {
		// Given: O must block X's top row
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerX, EmptyCell,
				EmptyCell, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			Turn:   PlayerO,
			Status: StatusOngoing,
		}
		bot := NewBot(rand.New(rand.NewSource(1)), 0)

		// When: the bot selects for O
		cell, err := bot.SelectMove(game, PlayerO)

		// Then: it blocks at index 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})
}

func TestBot_OptimalSelfPlayDraws(t *testing.T) {
	// Given: two optimal bots sharing an empty board
	rng := rand.New(rand.NewSource(3))

	// When: they play full games against each other
	for round := 0; round < 10; round++ {
		game := NewGame()
		bot := NewBot(rng, 0)

		mark := PlayerX
		for !game.IsFinished() {
			cell, err := bot.SelectMove(game, mark)
			require.NoError(t, err)
			require.NoError(t, game.MakeTurn(mark, cell))
			mark = toggleMark(mark)
		}

		// Then: optimal-vs-optimal always ends in a tie
		assert.Equal(t, PlayerTie, game.Winner)
	}
}

func TestBot_OptimalNeverLosesToRandom(t *testing.T) {
	// Given: an optimal O bot against a uniformly random X opponent
	rng := rand.New(rand.NewSource(9))
	optimal := NewBot(rng, 0)
	random := NewBot(rng, 1)

	// When: they play many full games
	for round := 0; round < 50; round++ {
		game := NewGame()

		mark := PlayerX
		for !game.IsFinished() {
			bot := random
			if mark == PlayerO {
				bot = optimal
			}

			cell, err := bot.SelectMove(game, mark)
			require.NoError(t, err)
			require.NoError(t, game.MakeTurn(mark, cell))
			mark = toggleMark(mark)
		}

		// Then: the optimal side never loses
		assert.NotEqual(t, PlayerX, game.Winner)
	}
}
