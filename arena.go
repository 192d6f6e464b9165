package checkers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/checkers/game"
)

// Arena represents a game arena: a board, two agents taking turns on it and the rules of the
// session around them.
type Arena struct {
	id      uuid.UUID
	conf    Config
	agents  [2]*Agent
	session Session

	renderer *Renderer
	logger   zerolog.Logger
	now      func() time.Time
}

// ArenaOption configures an Arena.
type ArenaOption func(*Arena)

// WithRenderer draws the board before every turn.
func WithRenderer(r *Renderer) ArenaOption {
	return func(a *Arena) { a.renderer = r }
}

// WithLogger sets the logger receiving the game events.
func WithLogger(l zerolog.Logger) ArenaOption {
	return func(a *Arena) { a.logger = l }
}

// WithClock replaces time.Now when timing the moves.
func WithClock(now func() time.Time) ArenaOption {
	return func(a *Arena) { a.now = now }
}

// NewArena sets up a game on b between two agents playing opposite sides.
// It panics if conf is not valid or both agents play the same side.
func NewArena(conf Config, b game.Board, x, y *Agent, opts ...ArenaOption) *Arena {
	if err := conf.Validate(); err != nil {
		panic(fmt.Sprintf("Config is not valid. Unable to proceed: %v", err))
	}
	if x.Player == y.Player {
		panic(fmt.Sprintf("both agents play %v. Unable to proceed", x.Player))
	}

	a := &Arena{
		id:      uuid.New(),
		conf:    conf,
		session: NewSession(b, conf.FirstPlayer),
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	a.agents[x.Player] = x
	a.agents[y.Player] = y
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With().Str("game", a.id.String()).Logger()
	return a
}

// ID of the game.
func (a *Arena) ID() uuid.UUID { return a.id }

// Name of the game
func (a *Arena) Name() string { return a.conf.Name }

// Session returns the state of the game.
func (a *Arena) Session() *Session { return &a.session }

// Agent returns the agent playing p.
func (a *Arena) Agent(p game.Player) *Agent { return a.agents[p] }

// Play lets the agents take turns until one of them has no move to make, forfeits, or the game is
// drawn because no capture happened for too long.
func (a *Arena) Play() (retVal Outcome, err error) {
	s := &a.session
	a.logger.Info().
		Stringer("first", s.Turn).
		Stringer("player1", a.agents[0]).
		Stringer("player2", a.agents[1]).
		Msg("game started")

	for {
		if a.renderer != nil {
			if err = a.renderer.Render(s.Board, a.info()); err != nil {
				return retVal, err
			}
			a.renderer.Printf("%v to move ...\n", s.Turn)
		}

		agent := a.agents[s.Turn]
		start := a.now()
		var d Decision
		d, err = agent.Choose(s.Board)
		if err != nil {
			return retVal, errors.WithMessage(err, fmt.Sprintf("%v failed to move", agent))
		}
		elapsed := a.now().Sub(start)
		agent.record(elapsed, d.Depth)

		if d.Move.IsNone() {
			retVal = Outcome{Winner: s.Turn.Opponent(), Moves: s.MoveCount}
			break
		}
		if !s.advance(d.Move, elapsed) {
			return retVal, errors.Errorf("%v played %v which cannot be applied", agent, d.Move)
		}
		a.logger.Debug().
			Int("count", s.MoveCount).
			Stringer("move", d.Move).
			Int("depth", d.Depth).
			Dur("elapsed", elapsed).
			Msg("move")

		if s.drawn(a.conf.MoveLimit) {
			retVal = Outcome{Draw: true, Moves: s.MoveCount}
			break
		}
	}

	switch {
	case retVal.Draw:
		a.agents[0].Draw++
		a.agents[1].Draw++
	default:
		a.agents[retVal.Winner].Wins++
		a.agents[retVal.Winner.Opponent()].Loss++
	}

	if a.renderer != nil {
		if err = a.renderer.Render(s.Board, a.info()); err != nil {
			return retVal, err
		}
		a.renderer.Printf("%v\n", retVal)
	}
	a.logger.Info().
		Bool("draw", retVal.Draw).
		Stringer("winner", retVal.Winner).
		Int("moves", retVal.Moves).
		Msg("game over")
	return retVal, nil
}

// Record returns the record of the game played so far.
func (a *Arena) Record(o Outcome) Record {
	s := &a.session
	r := Record{
		ID:      a.id.String(),
		Name:    a.conf.Name,
		First:   a.conf.FirstPlayer,
		Outcome: o,
	}
	for i, ag := range a.agents {
		r.Players[i] = ag.String()
	}
	for i, m := range s.History {
		r.Moves = append(r.Moves, MoveRecord{
			Player:  m.Player,
			Move:    m.String(),
			Elapsed: s.Durations[i],
		})
	}
	return r
}

func (a *Arena) info() *Info {
	s := &a.session
	retVal := &Info{
		MoveCount:    s.MoveCount,
		TotalTime:    s.TotalTime,
		PreviousTime: s.PreviousTime,
	}
	for i, ag := range a.agents {
		retVal.Players[i] = PlayerInfo{
			TotalTime:    ag.TotalTime,
			PreviousTime: ag.PreviousTime,
			Depth:        ag.Depth,
		}
	}
	return retVal
}
