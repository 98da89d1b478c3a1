package tictactoe

import (
	"math"
	"math/rand"

	"github.com/Befador/arcade/internal/apperror"
)

// Bot selects moves for the computer player. With probability noise it plays
// a uniformly random legal move; otherwise it plays the minimax-optimal one.
// The random source is injected so games are reproducible under a fixed seed.
type Bot struct {
	rng   *rand.Rand
	noise float64
}

func NewBot(rng *rand.Rand, noise float64) *Bot {
	return &Bot{
		rng:   rng,
		noise: noise,
	}
}

// SelectMove picks a cell for mark. The caller must not invoke it on a
// finished or full board.
func (that *Bot) SelectMove(game *Game, mark string) (int, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	if that.rng.Float64() < that.noise {
		return moves[that.rng.Intn(len(moves))], nil
	}

	return bestMove(game.Board, mark), nil
}

type searchKey struct {
	board [9]string
	mark  string
}

// bestMove searches the full game tree and returns the optimal cell for
// mark. Cells are scanned in ascending order, so ties between equally good
// moves always resolve to the lowest index.
func bestMove(board [9]string, mark string) int {
	memo := make(map[searchKey]int)

	best := -1
	bestScore := math.MinInt

	for cell := range board {
		if board[cell] != EmptyCell {
			continue
		}

		board[cell] = mark
		score := -search(board, toggleMark(mark), memo)
		board[cell] = EmptyCell

		if score > bestScore {
			best = cell
			bestScore = score
		}
	}

	return best
}

// search returns the best achievable outcome for mark to move, scored from
// the mover's perspective: 1 win, 0 draw, -1 loss (negamax).
func search(board [9]string, mark string, memo map[searchKey]int) int {
	key := searchKey{board: board, mark: mark}
	if score, ok := memo[key]; ok {
		return score
	}

	switch resultOf(board) {
	case toggleMark(mark):
		return -1
	case mark:
		return 1
	case PlayerTie:
		return 0
	}

	best := math.MinInt
	for cell := range board {
		if board[cell] != EmptyCell {
			continue
		}

		board[cell] = mark
		if score := -search(board, toggleMark(mark), memo); score > best {
			best = score
		}
		board[cell] = EmptyCell
	}

	memo[key] = best

	return best
}
