package tictactoe

import (
	"fmt"

	"github.com/Befador/arcade/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the state of one tic-tac-toe round: the board, whose turn it
// is, and the outcome once finished.
type Game struct {
	Board  [9]string
	Turn   string
	Winner string
	Status string
}

func NewGame() *Game {
	return &Game{
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// LegalMoves - all cell indices still empty. An empty result means the board
// is full.
func (that *Game) LegalMoves() []int {
	moves := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// MakeTurn places playerMark at cell and advances the game state. The board
// is left untouched when the move is rejected.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.Status == StatusFinished {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark

	switch winner := resultOf(that.Board); winner {
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
	default:
		that.Turn = toggleMark(playerMark)
	}

	return nil
}

// DetermineGameResult - the winner's mark, PlayerTie on a full board with no
// line, or "" while the game is still open.
func (that *Game) DetermineGameResult() string {
	return resultOf(that.Board)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func resultOf(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return ""
		}
	}

	return PlayerTie
}
