package checkers

import (
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"github.com/checkers/game"
)

// Record is the written account of a game.
type Record struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Players [2]string    `json:"players"`
	First   game.Player  `json:"first"`
	Moves   []MoveRecord `json:"moves"`
	Outcome Outcome      `json:"outcome"`
}

// MoveRecord is one move of a Record, in notation.
type MoveRecord struct {
	Player  game.Player   `json:"player"`
	Move    string        `json:"move"`
	Elapsed time.Duration `json:"elapsed"`
}

// Replay plays the moves of r from b and returns the final board. Every move must be legal.
func (r Record) Replay(b game.Board) (game.Board, error) {
	turn := r.First
	for i, mr := range r.Moves {
		if mr.Player != turn {
			return b, errors.Errorf("move %d: %v played out of turn", i+1, mr.Player)
		}
		m, err := game.ParseMove(mr.Player, mr.Move)
		if err != nil {
			return b, errors.WithMessagef(err, "move %d", i+1)
		}
		if !legal(b, m) {
			return b, errors.Errorf("move %d: %v is not legal", i+1, m)
		}
		b, _ = game.Apply(b, m)
		turn = turn.Opponent()
	}
	return b, nil
}

func legal(b game.Board, m game.Move) bool {
	for _, l := range game.MovesFor(b, m.Player) {
		if l == m {
			return true
		}
	}
	return false
}

// SaveRecord writes r to filename as JSON.
func SaveRecord(filename string, r Record) error {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(filename, data, 0644))
}

// LoadRecord reads a record written by SaveRecord.
func LoadRecord(filename string) (retVal Record, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return retVal, errors.WithStack(err)
	}
	if err = sonic.Unmarshal(data, &retVal); err != nil {
		return retVal, errors.Wrapf(err, "unable to parse record %s", filename)
	}
	return retVal, nil
}
