package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameFinished = errors.New("game is already finished")
	ErrNoLegalMoves = errors.New("no legal moves left")

	// ErrQuitToMenu is returned by a running game when the player asks to go
	// back to the arcade menu. It is a control-flow sentinel, not a failure.
	ErrQuitToMenu = errors.New("quit to menu")
)
