package checkers

import (
	"time"

	"github.com/checkers/game"
)

// Session is the state of a game in progress. It is threaded through the turn loop of an Arena.
type Session struct {
	Board game.Board
	Turn  game.Player

	MoveCount         int
	MovesSinceCapture int
	History           []game.Move
	Durations         []time.Duration // time taken by each move of History

	TotalTime    time.Duration
	PreviousTime time.Duration
}

// NewSession starts a session on b with first to move.
func NewSession(b game.Board, first game.Player) Session {
	return Session{Board: b, Turn: first}
}

// advance plays m, which took d, and passes the turn. It reports false and leaves s untouched if m
// cannot be applied.
func (s *Session) advance(m game.Move, d time.Duration) bool {
	next, captured := game.Apply(s.Board, m)
	if next == s.Board {
		return false
	}
	s.Board = next
	s.MoveCount++
	s.MovesSinceCapture++
	if captured {
		s.MovesSinceCapture = 0
	}
	s.History = append(s.History, m)
	s.Durations = append(s.Durations, d)
	s.TotalTime += d
	s.PreviousTime = d
	s.Turn = s.Turn.Opponent()
	return true
}

// drawn reports whether more than limit moves were played since the last capture.
func (s *Session) drawn(limit int) bool { return s.MovesSinceCapture > limit }
