package checkers

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/checkers/game"
)

// PlayerStats summarises one side over a series of games.
type PlayerStats struct {
	Wins  int
	Loss  int
	Draw  int
	Moves int
	// think time per move, in seconds
	MeanTime   float64
	StdDevTime float64
}

// MatchStats summarises a series of games.
type MatchStats struct {
	Games   int
	Players [2]PlayerStats
}

// Summarize computes the statistics of records.
func Summarize(records []Record) MatchStats {
	var retVal MatchStats
	var times [2][]float64
	for _, r := range records {
		retVal.Games++
		for _, m := range r.Moves {
			times[m.Player] = append(times[m.Player], m.Elapsed.Seconds())
		}
		o := r.Outcome
		switch {
		case o.Draw:
			retVal.Players[0].Draw++
			retVal.Players[1].Draw++
		default:
			retVal.Players[o.Winner].Wins++
			retVal.Players[o.Winner.Opponent()].Loss++
		}
	}
	for p := range times {
		ps := &retVal.Players[p]
		ps.Moves = len(times[p])
		switch len(times[p]) {
		case 0:
		case 1:
			ps.MeanTime = times[p][0]
		default:
			ps.MeanTime, ps.StdDevTime = stat.MeanStdDev(times[p], nil)
		}
	}
	return retVal
}

// WriteTo writes a human readable summary of s to w.
func (s MatchStats) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%d games\n", s.Games)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for p, ps := range s.Players {
		n, err = fmt.Fprintf(w, "%v: wins %d, loss %d, draw %d, %d moves, think time %v ± %v\n",
			game.Player(p), ps.Wins, ps.Loss, ps.Draw, ps.Moves,
			seconds(time.Duration(ps.MeanTime*float64(time.Second))),
			seconds(time.Duration(ps.StdDevTime*float64(time.Second))))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
