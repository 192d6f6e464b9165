package checkers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkers/game"
	"github.com/checkers/search"
)

func frozen() func() time.Time {
	t0 := time.Unix(0, 0)
	return func() time.Time { return t0 }
}

// shallow returns a computer that searches a single ply, with a clock that never moves.
func shallow(p game.Player) *Agent {
	conf := search.DefaultConfig()
	conf.MaxDepth = 1
	return NewComputer(p, search.New(conf, search.WithClock(frozen())))
}

func TestArenaWinWhenNoMoves(t *testing.T) {
	b := game.EmptyBoard()
	require.NoError(t, b.Place(game.Player1, false, 3, 5))

	a := NewArena(DefaultConfig(), b, shallow(game.Player0), shallow(game.Player1))
	o, err := a.Play()
	require.NoError(t, err)
	assert.False(t, o.Draw)
	assert.Equal(t, game.Player1, o.Winner)
	assert.Equal(t, 0, o.Moves)
	assert.Equal(t, 1, a.Agent(game.Player1).Wins)
	assert.Equal(t, 1, a.Agent(game.Player0).Loss)
	assert.Equal(t, "Game over! Player 2 wins!", o.String())
}

func TestArenaDrawAfterMoveLimit(t *testing.T) {
	b := game.EmptyBoard()
	require.NoError(t, b.Place(game.Player0, true, 0, 0))
	require.NoError(t, b.Place(game.Player1, true, 7, 7))

	conf := DefaultConfig()
	conf.MoveLimit = 2
	a := NewArena(conf, b, shallow(game.Player0), shallow(game.Player1))
	o, err := a.Play()
	require.NoError(t, err)
	assert.True(t, o.Draw)
	assert.Equal(t, 3, o.Moves)
	assert.Equal(t, 3, a.Session().MovesSinceCapture)
	assert.Len(t, a.Session().History, 3)
	assert.Equal(t, 1, a.Agent(game.Player0).Draw)
	assert.Equal(t, 1, a.Agent(game.Player1).Draw)
}

func TestArenaCaptureResetsCounter(t *testing.T) {
	s := NewSession(game.NewBoard(), game.Player0)
	for _, mv := range []string{"C3 -> D4", "F6 -> E5"} {
		m, err := game.ParseMove(s.Turn, mv)
		require.NoError(t, err)
		require.True(t, s.advance(m, time.Second))
	}
	assert.Equal(t, 2, s.MovesSinceCapture)

	capture, err := game.ParseMove(game.Player0, "D4 -> F6")
	require.NoError(t, err)
	require.True(t, s.advance(capture, time.Second))
	assert.Equal(t, 0, s.MovesSinceCapture)
	assert.Equal(t, 3, s.MoveCount)
	assert.Equal(t, game.Player1, s.Turn)
	assert.Equal(t, 3*time.Second, s.TotalTime)
	assert.Equal(t, 11, s.Board.PieceCount(game.Player1))

	assert.False(t, s.advance(capture, time.Second))
	assert.Equal(t, 3, s.MoveCount)
}

func TestArenaComputerGame(t *testing.T) {
	conf := DefaultConfig()
	conf.MoveLimit = 20
	var out bytes.Buffer
	a := NewArena(conf, game.NewBoard(), shallow(game.Player0), shallow(game.Player1),
		WithRenderer(NewRenderer(&out, false)))
	o, err := a.Play()
	require.NoError(t, err)

	s := a.Session()
	assert.Equal(t, s.MoveCount, o.Moves)
	assert.Len(t, s.Durations, s.MoveCount)
	assert.NoError(t, s.Board.Consistent())
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), o.String()))
	assert.Contains(t, out.String(), "Player 1 to move ...")

	r := a.Record(o)
	assert.Equal(t, a.ID().String(), r.ID)
	assert.Len(t, r.Moves, s.MoveCount)
	final, err := r.Replay(game.NewBoard())
	require.NoError(t, err)
	assert.Equal(t, s.Board, final)
}

func TestArenaHumanForfeits(t *testing.T) {
	var out bytes.Buffer
	human := NewHuman(game.Player0, NewConsole(strings.NewReader("x 9 q"), &out))
	a := NewArena(DefaultConfig(), game.NewBoard(), human, shallow(game.Player1))
	o, err := a.Play()
	require.NoError(t, err)
	assert.Equal(t, game.Player1, o.Winner)
	assert.Contains(t, out.String(), "  [7]  G3 -> H4")
	assert.Contains(t, out.String(), "  [S]  Save game")
	assert.Equal(t, 3, strings.Count(out.String(), "Please select an action: "))
	assert.Contains(t, out.String(), "Quitting game ...")
}

func TestArenaHumanRunsOutOfInput(t *testing.T) {
	human := NewHuman(game.Player1, NewConsole(strings.NewReader("1"), &bytes.Buffer{}))
	conf := DefaultConfig()
	a := NewArena(conf, game.NewBoard(), shallow(game.Player0), human)
	_, err := a.Play()
	require.Error(t, err)
	assert.Equal(t, 3, a.Session().MoveCount)
}

func TestHumanChoose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.txt")
	var out bytes.Buffer
	b := game.NewBoard()
	human := NewHuman(game.Player0, NewConsole(strings.NewReader("0 s "+path+" 2"), &out))

	d, err := human.Choose(b)
	require.NoError(t, err)
	assert.Equal(t, game.MovesFor(b, game.Player0)[1], d.Move)
	assert.Contains(t, out.String(), "Game successfully saved to '"+path+"'!")

	saved, err := game.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Squares, saved.Squares)
}

func TestHumanWithoutMoves(t *testing.T) {
	b := game.EmptyBoard()
	require.NoError(t, b.Place(game.Player1, false, 3, 5))
	var out bytes.Buffer
	d, err := NewHuman(game.Player0, NewConsole(strings.NewReader(""), &out)).Choose(b)
	require.NoError(t, err)
	assert.True(t, d.Move.IsNone())
	assert.Empty(t, out.String())
}

func TestSeries(t *testing.T) {
	conf := DefaultConfig()
	conf.MoveLimit = 10
	var played []int
	s := NewSeries(conf, game.NewBoard(), shallow(game.Player0), shallow(game.Player1))
	s.OnGame = func(i int, r Record) { played = append(played, i) }

	records, stats, err := s.Play(3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{0, 1, 2}, played)
	assert.Equal(t, game.Player0, records[0].First)
	assert.Equal(t, game.Player1, records[1].First)
	assert.Equal(t, 3, stats.Games)
	for _, ps := range stats.Players {
		assert.Equal(t, 3, ps.Wins+ps.Loss+ps.Draw)
	}
}

func TestPanelShowsLastDecisionDepth(t *testing.T) {
	conf := search.DefaultConfig()
	conf.MaxDepth = 3
	computer := NewComputer(game.Player0, search.New(conf, search.WithClock(frozen())))
	human := NewHuman(game.Player1, NewConsole(strings.NewReader("q"), &bytes.Buffer{}))
	assert.Equal(t, -1, human.Depth)

	a := NewArena(DefaultConfig(), game.NewBoard(), computer, human)
	_, err := a.Play()
	require.NoError(t, err)
	info := a.info()
	assert.Equal(t, 3, info.Players[0].Depth)
	assert.Equal(t, -1, info.Players[1].Depth)

	// a forced move needs no search, and the panel follows the last decision
	b := game.EmptyBoard()
	require.NoError(t, b.Place(game.Player0, false, 0, 2))
	require.NoError(t, b.Place(game.Player1, false, 7, 7))
	d, err := computer.Choose(b)
	require.NoError(t, err)
	computer.record(time.Millisecond, d.Depth)
	assert.Equal(t, 0, computer.Depth)
	assert.Equal(t, 0, a.info().Players[0].Depth)
}
