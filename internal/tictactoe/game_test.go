package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Befador/arcade/internal/apperror"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Places mark and toggles turn", func(t *testing.T) {
		// Given: a fresh game with X to move
		game := NewGame()

		// When: X plays cell 4
		err := game.MakeTurn(PlayerX, 4)

		// Then: the cell holds X and it is O's turn
		require.NoError(t, err)
		assert.Equal(t, PlayerX, game.Board[4])
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Returns ErrCellOccupied and leaves board unmodified", func(t *testing.T) {
		// Given: a game where cell 0 is taken
		game := NewGame()
		require.NoError(t, game.MakeTurn(PlayerX, 0))
		before := game.Board

		// When: O plays the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: the move is rejected and the board did not change
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Returns ErrInvalidMove for out-of-range cell", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()
		before := game.Board

		// When: X plays cell 9
		err := game.MakeTurn(PlayerX, 9)

		// Then: the move is rejected and the board did not change
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, game.Board)
	})

	t.Run("Returns ErrNotYourTurn when O moves first", func(t *testing.T) {
		// Given: a fresh game with X to move
		game := NewGame()

		// When: O tries to move
		err := game.MakeTurn(PlayerO, 0)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Returns ErrGameFinished after a win", func(t *testing.T) {
		// Given: a game X has already won
		game := NewGame()
		for _, move := range []struct {
			mark string
			cell int
		}{
			{PlayerX, 0}, {PlayerO, 3}, {PlayerX, 1}, {PlayerO, 4}, {PlayerX, 2},
		} {
			require.NoError(t, game.MakeTurn(move.mark, move.cell))
		}
		require.True(t, game.IsFinished())

		// When: another move is attempted
		err := game.MakeTurn(PlayerO, 5)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, PlayerX, game.Winner)
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Detects a row win for X", func(t *testing.T) {
		// Given: X holds the top row
		game := &Game{Board: [9]string{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		}}

		// When/Then
		assert.Equal(t, PlayerX, game.DetermineGameResult())
	})

	t.Run("Detects a diagonal win for O", func(t *testing.T) {
		// Given: O holds the main diagonal
		game := &Game{Board: [9]string{
			PlayerO, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerX, EmptyCell, PlayerO,
		}}

		// When/Then
		assert.Equal(t, PlayerO, game.DetermineGameResult())
	})

	t.Run("Returns tie on a full board with no line", func(t *testing.T) {
		// Given: a full board with no three-in-a-row
		game := &Game{Board: [9]string{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}}

		// When/Then
		assert.Equal(t, PlayerTie, game.DetermineGameResult())
	})

	t.Run("Returns empty while game is open", func(t *testing.T) {
		// Given: a board with moves left
		game := NewGame()

		// When/Then
		assert.Equal(t, "", game.DetermineGameResult())
	})
}

func TestGame_LegalMoves(t *testing.T) {
	t.Run("Empty board has nine legal moves", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()

		// When/Then
		assert.Len(t, game.LegalMoves(), 9)
	})

	t.Run("Legal moves shrink as cells fill and empty only on a full board", func(t *testing.T) {
		// Given: a game played to a tie
		game := NewGame()
		for _, move := range []struct {
			mark string
			cell int
		}{
			{PlayerX, 0}, {PlayerO, 1}, {PlayerX, 2},
			{PlayerO, 4}, {PlayerX, 3}, {PlayerO, 5},
			{PlayerX, 7}, {PlayerO, 6}, {PlayerX, 8},
		} {
			// Then: moves remain exactly while the board has empty cells
			assert.NotEmpty(t, game.LegalMoves())
			require.NoError(t, game.MakeTurn(move.mark, move.cell))
		}

		// Then: a full board has no legal moves
		assert.Empty(t, game.LegalMoves())
		assert.Equal(t, PlayerTie, game.Winner)
	})
}
