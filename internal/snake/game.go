package snake

import "math/rand"

// Point is a board cell, row-major like the terminal itself.
type Point struct {
	Y int
	X int
}

var (
	Up    = Point{Y: -1}
	Down  = Point{Y: 1}
	Left  = Point{X: -1}
	Right = Point{X: 1}
)

// Game is the snake simulation: a body (head last), a direction, and one
// piece of food. Step advances exactly one tick.
type Game struct {
	Width  int
	Height int
	Body   []Point
	Dir    Point
	Food   Point
	Score  int
	Over   bool

	// lastStep is the direction of the last completed step. Steering is
	// validated against it, not against the pending Dir, so two buffered
	// perpendicular presses within one tick can never add up to a reversal.
	lastStep Point

	rng *rand.Rand
}

func NewGame(width, height int, rng *rand.Rand) *Game {
	game := &Game{
		Width:    width,
		Height:   height,
		Dir:      Right,
		lastStep: Right,
		rng:      rng,
	}

	// Two cells in the middle, heading right.
	game.Body = []Point{
		{Y: height / 2, X: width/2 - 1},
		{Y: height / 2, X: width / 2},
	}
	if food, ok := game.newFood(); ok {
		game.Food = food
	}

	return game
}

func (that *Game) Head() Point {
	return that.Body[len(that.Body)-1]
}

// Steer changes direction unless the new one is the exact opposite of the
// last completed step, which would fold the snake onto itself.
func (that *Game) Steer(dir Point) {
	if isOpposite(dir, that.lastStep) {
		return
	}
	that.Dir = dir
}

// Step advances one tick: move the head, detect collisions, grow on food.
func (that *Game) Step() {
	if that.Over {
		return
	}

	head := that.Head()
	next := Point{Y: head.Y + that.Dir.Y, X: head.X + that.Dir.X}

	if next.Y < 0 || next.Y >= that.Height || next.X < 0 || next.X >= that.Width || that.occupies(next) {
		that.Over = true
		return
	}

	that.Body = append(that.Body, next)
	that.lastStep = that.Dir

	if next == that.Food {
		that.Score++
		food, ok := that.newFood()
		if !ok {
			// The snake fills the whole board; there is nothing left to eat.
			that.Over = true
			return
		}
		that.Food = food
	} else {
		that.Body = that.Body[1:]
	}
}

func (that *Game) occupies(p Point) bool {
	for _, cell := range that.Body {
		if cell == p {
			return true
		}
	}
	return false
}

// newFood picks a uniformly random free cell. It reports false when the
// snake occupies the entire board.
func (that *Game) newFood() (Point, bool) {
	free := make([]Point, 0, that.Width*that.Height-len(that.Body))
	for y := 0; y < that.Height; y++ {
		for x := 0; x < that.Width; x++ {
			p := Point{Y: y, X: x}
			if !that.occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Point{}, false
	}

	return free[that.rng.Intn(len(free))], true
}

func isOpposite(a, b Point) bool {
	return a.Y == -b.Y && a.X == -b.X
}
