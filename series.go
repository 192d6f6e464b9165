package checkers

import (
	"github.com/pkg/errors"

	"github.com/checkers/game"
)

// Series plays a number of games between the same two agents from the same starting board. The
// first move alternates between the sides from one game to the next.
type Series struct {
	conf   Config
	board  game.Board
	agents [2]*Agent
	opts   []ArenaOption

	// OnGame, if set, is called after every game.
	OnGame func(i int, r Record)
}

// NewSeries prepares a series. opts apply to every game's Arena.
// It panics if conf is not valid.
func NewSeries(conf Config, b game.Board, x, y *Agent, opts ...ArenaOption) *Series {
	if err := conf.Validate(); err != nil {
		panic("Config is not valid. Unable to proceed")
	}
	s := &Series{conf: conf, board: b, opts: opts}
	s.agents[x.Player] = x
	s.agents[y.Player] = y
	return s
}

// Play plays games games and returns their records along with the summary.
func (s *Series) Play(games int) ([]Record, MatchStats, error) {
	records := make([]Record, 0, games)
	for i := 0; i < games; i++ {
		conf := s.conf
		if i&1 == 1 {
			conf.FirstPlayer = conf.FirstPlayer.Opponent()
		}
		s.agents[0].resetStats()
		s.agents[1].resetStats()

		a := NewArena(conf, s.board, s.agents[0], s.agents[1], s.opts...)
		o, err := a.Play()
		if err != nil {
			return records, Summarize(records), errors.WithMessagef(err, "game %d", i+1)
		}
		r := a.Record(o)
		records = append(records, r)
		if s.OnGame != nil {
			s.OnGame(i, r)
		}
	}
	return records, Summarize(records), nil
}
