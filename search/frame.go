package search

import (
	"fmt"

	"github.com/checkers/eval"
	"github.com/checkers/game"
)

// frame is one level of the explicit search stack. Frame d holds the node reached after d plies.
type frame struct {
	isMax bool
	alpha int
	beta  int
	value int
	board game.Board
	moves []game.Move
	next  int // index of the next move to expand
}

func (f *frame) Format(s fmt.State, c rune) {
	kind := "min"
	if f.isMax {
		kind = "max"
	}
	fmt.Fprintf(s, "{%s alpha: %d, beta: %d, value: %d, move %d/%d}",
		kind, f.alpha, f.beta, f.value, f.next, len(f.moves))
}

// reset prepares f as a fresh node below parent.
func (f *frame) reset(parent *frame, b game.Board, moves []game.Move) {
	f.isMax = !parent.isMax
	f.alpha = parent.alpha
	f.beta = parent.beta
	f.value = eval.MaxScore
	if f.isMax {
		f.value = eval.MinScore
	}
	f.board = b
	f.moves = moves
	f.next = 0
}

// done reports whether no more children of f need expanding: either all were expanded or the
// window closed.
func (f *frame) done() bool {
	return f.beta <= f.alpha || f.next >= len(f.moves)
}

// update folds the value of a child into f. It returns true when the child became f's best,
// which requires a strict improvement: the first of equal children is kept.
func (f *frame) update(v int) (improved bool) {
	if f.isMax {
		if v > f.value {
			f.value = v
			improved = true
		}
		if f.value > f.alpha {
			f.alpha = f.value
		}
		return improved
	}
	if v < f.value {
		f.value = v
		improved = true
	}
	if f.value < f.beta {
		f.beta = f.value
	}
	return improved
}
