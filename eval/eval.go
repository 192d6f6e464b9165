// Package eval scores checkers positions for the search.
package eval

import (
	"math"

	"github.com/checkers/game"
)

const (
	MinScore = math.MinInt32 // the perspective player has lost
	MaxScore = math.MaxInt32 // the perspective player has won
)

// Terms is the per-term breakdown of one player's positional sum.
type Terms struct {
	Pieces     int
	Material   int
	Protection int
	Threat     int
	Center     int
	Advance    int
	BackRank   int
}

// Total is the player's positional sum.
func (t Terms) Total() int {
	return t.Material + t.Protection + t.Threat + t.Center + t.Advance + t.BackRank
}

// Evaluator scores boards with a set of weights.
type Evaluator struct {
	Weights
}

// New returns an evaluator using w.
func New(w Weights) *Evaluator { return &Evaluator{Weights: w} }

var std = New(DefaultWeights())

// Evaluate scores b for perspective with the default weights.
func Evaluate(b game.Board, perspective game.Player) int { return std.Evaluate(b, perspective) }

// Evaluate returns a score of b where positive values favour perspective.
// Lost and won positions score MinScore and MaxScore.
func (e *Evaluator) Evaluate(b game.Board, perspective game.Player) int {
	me, opp := e.Breakdown(b, perspective), e.Breakdown(b, perspective.Opponent())
	switch {
	case me.Pieces == 0:
		return MinScore
	case opp.Pieces == 0:
		return MaxScore
	case !game.HasMoves(b, perspective):
		return MinScore
	case !game.HasMoves(b, perspective.Opponent()):
		return MaxScore
	}
	return me.Total() - opp.Total()
}

// Breakdown computes the positional terms of p's pieces on b.
func (e *Evaluator) Breakdown(b game.Board, p game.Player) (t Terms) {
	opp := p.Opponent()
	behind := -p.Forward()
	for _, pc := range b.Pieces[p] {
		if !pc.OnBoard() {
			continue
		}
		x, y := int(pc.X), int(pc.Y)
		t.Pieces++

		if pc.King {
			t.Material += e.king()
		} else {
			t.Material += e.man()
		}

		if by := y + behind; !pc.King && by >= 0 && by < game.RowNum {
			for _, bx := range [2]int{x - 1, x + 1} {
				if bx < 0 || bx >= game.ColNum {
					continue
				}
				if sq := b.At(bx, by); !sq.IsEmpty() && sq.Player() == p {
					t.Protection += e.Protection
				}
			}
			if ay := y + 2*p.Forward(); ay >= 0 && ay < game.RowNum {
				if sq := b.At(x, ay); !sq.IsEmpty() && sq.Player() == opp {
					t.Threat += e.Threat
				}
			}
		}

		dist := abs(4-x) + abs(4-y)
		t.Center += e.Center * (e.CenterBase - dist*e.CenterStep)

		if !pc.King {
			home := int(p.HomeRow())
			t.Advance += e.Advance * (e.AdvanceStep * abs(home-y))
			if y == home {
				t.BackRank += e.BackRank
			}
		}
	}
	return t
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
