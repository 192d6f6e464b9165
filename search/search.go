package search

import (
	"time"

	"github.com/checkers/eval"
	"github.com/checkers/game"
)

/*
Here lies the search. It is an alpha-beta minimax that runs over an explicit stack of frames instead
of recursing, so that the clock can be read after every single node and an iteration can be dropped
at any point of the tree.

Iterative deepening keeps the result of the deepest iteration that ran to completion. The first
iteration is never interrupted: it only evaluates the children of the root, and it guarantees that
a legal move is always returned.
*/

// Result is the outcome of a search.
type Result struct {
	Move game.Move
	// Depth is the deepest completed iteration. It is 0 when no search was needed.
	Depth   int
	Score   int
	Nodes   int
	Elapsed time.Duration
	// Root holds the value of every root move in the deepest completed iteration. Values of pruned
	// subtrees are bounds; root moves never expanded keep eval.MinScore.
	Root []RootScore
}

// RootScore is the value the search gave to one root move.
type RootScore struct {
	Move  game.Move
	Score int
}

// PickMove searches b for p for at most timeLimit seconds and returns the chosen move.
func (e *Engine) PickMove(b game.Board, p game.Player, timeLimit float64) game.Move {
	conf := e.Config
	conf.TimeLimit = time.Duration(timeLimit * float64(time.Second))
	en := *e
	en.Config = conf
	return en.Search(b, p).Move
}

// Search picks a move for p on b within the configured time limit.
func (e *Engine) Search(b game.Board, p game.Player) (retVal Result) {
	start := e.now()
	defer func() { retVal.Elapsed = e.now().Sub(start) }()

	moves := game.MovesFor(b, p)
	switch len(moves) {
	case 0:
		return Result{Move: game.NoMove(p), Score: eval.MinScore}
	case 1:
		return Result{Move: moves[0]}
	}

	s := &searchState{
		engine: e,
		player: p,
		start:  start,
		root:   moves,
		stack:  make([]frame, e.MaxDepth+1),
		scores: make([]int, len(moves)),
	}

	retVal.Move = moves[0]
	for depth := 1; depth <= e.MaxDepth; depth++ {
		best, ok := s.run(b, depth, depth > 1)
		if !ok {
			e.logger.Debug().Int("depth", depth).Int("nodes", s.nodes).Msg("iteration abandoned")
			break
		}
		retVal.Move = moves[best]
		retVal.Depth = depth
		retVal.Score = s.stack[0].value
		retVal.Root = s.rootScores()
		e.logger.Debug().
			Int("depth", depth).
			Int("nodes", s.nodes).
			Int("score", retVal.Score).
			Stringer("move", retVal.Move).
			Msg("iteration complete")

		if s.expired() {
			break
		}
	}
	retVal.Nodes = s.nodes

	e.logger.Info().
		Stringer("player", p).
		Stringer("move", retVal.Move).
		Int("depth", retVal.Depth).
		Int("score", retVal.Score).
		Int("nodes", retVal.Nodes).
		Msg("move picked")
	return retVal
}

type searchState struct {
	engine *Engine
	player game.Player
	start  time.Time
	root   []game.Move
	stack  []frame
	scores []int // per root move, refreshed by every iteration
	nodes  int
}

// expired reports whether less than the safety margin of the budget remains.
func (s *searchState) expired() bool {
	e := s.engine
	remaining := e.TimeLimit - e.now().Sub(s.start)
	return remaining <= e.SafetyMargin
}

// run performs one alpha-beta iteration to the given depth. It returns the index of the best root
// move, or false if the clock ran out first and interruptible is set.
func (s *searchState) run(b game.Board, depth int, interruptible bool) (best int, ok bool) {
	players := [2]game.Player{s.player, s.player.Opponent()}
	stack := s.stack

	root := &stack[0]
	*root = frame{
		isMax: true,
		alpha: eval.MinScore,
		beta:  eval.MaxScore,
		value: eval.MinScore,
		board: b,
		moves: s.root,
	}
	for i := range s.scores {
		s.scores[i] = eval.MinScore
	}

	d := 0
	for {
		f := &stack[d]
		if f.done() {
			if d == 0 {
				break
			}
			v := f.value
			d--
			parent := &stack[d]
			if d == 0 {
				s.scores[parent.next-1] = v
			}
			if parent.update(v) && d == 0 {
				best = parent.next - 1
			}
		} else {
			i := f.next
			f.next++
			child, _ := game.Apply(f.board, f.moves[i])
			s.nodes++

			if d+1 < depth {
				d++
				stack[d].reset(f, child, game.MovesFor(child, players[d&1]))
			} else {
				v := s.engine.eval.Evaluate(child, s.player)
				if d == 0 {
					s.scores[i] = v
				}
				if f.update(v) && d == 0 {
					best = i
				}
			}
		}

		if interruptible && s.expired() {
			return 0, false
		}
	}
	return best, true
}

func (s *searchState) rootScores() []RootScore {
	retVal := make([]RootScore, len(s.root))
	for i, m := range s.root {
		retVal[i] = RootScore{Move: m, Score: s.scores[i]}
	}
	return retVal
}
