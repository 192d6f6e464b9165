package checkers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/checkers/game"
	"github.com/checkers/search"
)

// An Agent is a player, computer or human.
type Agent struct {
	Player game.Player

	engine  *search.Engine // nil for a human
	console *Console

	// Statistics
	Moves        int
	TotalTime    time.Duration
	PreviousTime time.Duration
	Depth        int // completed search depth of the last move, -1 for a human
	Wins         int
	Loss         int
	Draw         int
	sync.Mutex
}

// Decision is what an agent chose to play, and how it got there.
type Decision struct {
	Move  game.Move
	Depth int
	Score int
	Nodes int
}

// NewComputer creates an agent that picks its moves with e.
func NewComputer(p game.Player, e *search.Engine) *Agent {
	return &Agent{Player: p, engine: e}
}

// Console is the terminal humans play on. Humans sharing a terminal share a Console.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole reads whitespace separated answers from in and writes prompts to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)
	return &Console{in: s, out: out}
}

// NewHuman creates an agent that reads its moves from c.
func NewHuman(p game.Player, c *Console) *Agent {
	return &Agent{Player: p, console: c, Depth: -1}
}

// IsComputer reports whether the agent searches for its moves.
func (a *Agent) IsComputer() bool { return a.engine != nil }

func (a *Agent) String() string {
	kind := "human"
	if a.IsComputer() {
		kind = "computer"
	}
	return fmt.Sprintf("%v (%s)", a.Player, kind)
}

// Choose picks the agent's move on b. A NoMove decision means the agent has no legal move or
// forfeits the game.
func (a *Agent) Choose(b game.Board) (Decision, error) {
	if a.IsComputer() {
		res := a.engine.Search(b, a.Player)
		return Decision{Move: res.Move, Depth: res.Depth, Score: res.Score, Nodes: res.Nodes}, nil
	}
	return a.ask(b)
}

// ask shows the legal moves of b and the session actions until a valid choice is read.
func (a *Agent) ask(b game.Board) (Decision, error) {
	c := a.console
	moves := game.MovesFor(b, a.Player)
	if len(moves) == 0 {
		return Decision{Move: game.NoMove(a.Player)}, nil
	}

	for {
		for i, m := range moves {
			fmt.Fprintf(c.out, "  [%d]  %v\n", i+1, m)
		}
		fmt.Fprintln(c.out, "  [S]  Save game")
		fmt.Fprintln(c.out, "  [Q]  Forfeit game")

		action, err := c.read("Please select an action: ", func(s string) bool {
			switch s[0] {
			case 'S', 's', 'Q', 'q':
				return true
			}
			n, err := strconv.Atoi(s)
			return err == nil && n >= 1 && n <= len(moves)
		})
		if err != nil {
			return Decision{}, err
		}

		switch action[0] {
		case 'S', 's':
			path, err := c.read("Please enter a saved game file path: ", func(string) bool { return true })
			if err != nil {
				return Decision{}, err
			}
			if err = game.SaveFile(path, b); err != nil {
				fmt.Fprintf(c.out, "Warning: Game could not be saved!\n         %v\n", err)
				continue
			}
			fmt.Fprintf(c.out, "Game successfully saved to '%s'!\n", path)
		case 'Q', 'q':
			fmt.Fprintln(c.out, "Quitting game ...")
			return Decision{Move: game.NoMove(a.Player)}, nil
		default:
			n, _ := strconv.Atoi(action)
			return Decision{Move: moves[n-1]}, nil
		}
	}
}

// read prompts until a token accepted by valid is entered.
func (c *Console) read(prompt string, valid func(string) bool) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", errors.WithStack(err)
			}
			return "", errors.Wrap(io.ErrUnexpectedEOF, "no more input")
		}
		if tok := strings.TrimSpace(c.in.Text()); tok != "" && valid(tok) {
			return tok, nil
		}
	}
}

// record adds one move that took d to the statistics.
func (a *Agent) record(d time.Duration, depth int) {
	a.Lock()
	a.Moves++
	a.TotalTime += d
	a.PreviousTime = d
	a.Depth = depth
	if !a.IsComputer() {
		a.Depth = -1
	}
	a.Unlock()
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Moves = 0
	a.TotalTime = 0
	a.PreviousTime = 0
	a.Depth = 0
	if !a.IsComputer() {
		a.Depth = -1
	}
	a.Unlock()
}
