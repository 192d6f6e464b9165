package game

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	p    Player
	king bool
	x, y int
}

func setup(t *testing.T, pieces ...placement) Board {
	t.Helper()
	b := EmptyBoard()
	for _, pc := range pieces {
		require.NoError(t, b.Place(pc.p, pc.king, pc.x, pc.y))
	}
	return b
}

func c(x, y uint8) Coord { return Coord{X: x, Y: y} }

func TestMovesForStartingBoard(t *testing.T) {
	b := NewBoard()
	moves := MovesFor(b, Player0)
	require.Len(t, moves, 7)
	for _, m := range moves {
		assert.False(t, m.IsCapture())
		assert.Equal(t, 2, m.Len())
		assert.EqualValues(t, 2, m.From().Y)
		assert.EqualValues(t, 3, m.To().Y)
	}
	// (0,2) can only go right, so it comes first with a single move.
	assert.Equal(t, NewMove(Player0, c(0, 2), c(1, 3)), moves[0])

	assert.Len(t, MovesFor(b, Player1), 7)
}

func TestSingleCaptureFromStartingLayout(t *testing.T) {
	b := NewBoard()
	b.Remove(2, 2)
	b.Remove(1, 5)
	require.NoError(t, b.Place(Player1, false, 1, 3))

	moves := MovesFor(b, Player0)
	require.Len(t, moves, 1, spew.Sdump(moves))
	assert.Equal(t, []Coord{c(0, 2), c(2, 4)}, moves[0].Waypoints())
	assert.True(t, moves[0].IsCapture())
}

func TestDoubleJumpIsOneMove(t *testing.T) {
	b := setup(t,
		placement{Player0, false, 0, 2},
		placement{Player1, false, 1, 3},
		placement{Player1, false, 3, 5},
	)
	moves := MovesFor(b, Player0)
	require.Len(t, moves, 1, spew.Sdump(moves))
	assert.Equal(t, []Coord{c(0, 2), c(2, 4), c(4, 6)}, moves[0].Waypoints())
	assert.Equal(t, Sentinel, moves[0].Path[3])
}

func TestBranchingChainsAreRecordedSeparately(t *testing.T) {
	// From (2,4) the man can continue left or right.
	b := setup(t,
		placement{Player0, false, 0, 2},
		placement{Player1, false, 1, 3},
		placement{Player1, false, 1, 5},
		placement{Player1, false, 3, 5},
	)
	moves := MovesFor(b, Player0)
	require.Len(t, moves, 2, spew.Sdump(moves))
	assert.Equal(t, []Coord{c(0, 2), c(2, 4), c(4, 6)}, moves[0].Waypoints())
	assert.Equal(t, []Coord{c(0, 2), c(2, 4), c(0, 6)}, moves[1].Waypoints())
}

func TestMenNeverCaptureBackward(t *testing.T) {
	b := setup(t,
		placement{Player0, false, 2, 4},
		placement{Player1, false, 3, 3},
	)
	moves := MovesFor(b, Player0)
	for _, m := range moves {
		assert.False(t, m.IsCapture())
	}
	assert.Len(t, moves, 2)

	// the same geometry with a king is a capture
	b = setup(t,
		placement{Player0, true, 2, 4},
		placement{Player1, false, 3, 3},
	)
	moves = MovesFor(b, Player0)
	require.Len(t, moves, 1)
	assert.Equal(t, []Coord{c(2, 4), c(4, 2)}, moves[0].Waypoints())
}

func TestPlayer1MenMoveDown(t *testing.T) {
	b := setup(t,
		placement{Player1, false, 3, 5},
		placement{Player0, false, 4, 4},
	)
	moves := MovesFor(b, Player1)
	require.Len(t, moves, 1)
	assert.Equal(t, []Coord{c(3, 5), c(5, 3)}, moves[0].Waypoints())
}

func TestKingChainMayReturnToOrigin(t *testing.T) {
	b := setup(t,
		placement{Player0, true, 2, 2},
		placement{Player1, false, 3, 3},
		placement{Player1, false, 5, 3},
		placement{Player1, false, 5, 1},
		placement{Player1, false, 3, 1},
	)
	moves := MovesFor(b, Player0)
	require.Len(t, moves, 2, spew.Sdump(moves))
	assert.Equal(t, []Coord{c(2, 2), c(4, 4), c(6, 2), c(4, 0), c(2, 2)}, moves[0].Waypoints())
	assert.Equal(t, []Coord{c(2, 2), c(4, 0), c(6, 2), c(4, 4), c(2, 2)}, moves[1].Waypoints())

	next, captured := Apply(b, moves[0])
	assert.True(t, captured)
	require.NoError(t, next.Consistent())
	assert.Equal(t, 0, next.PieceCount(Player1))
	assert.Equal(t, King0, next.Squares[2][2])
}

func TestKingSimpleMoves(t *testing.T) {
	b := setup(t, placement{Player1, true, 3, 3})
	moves := MovesFor(b, Player1)
	require.Len(t, moves, 4)
	want := []Coord{c(2, 2), c(2, 4), c(4, 2), c(4, 4)}
	for i, m := range moves {
		assert.Equal(t, want[i], m.To())
	}
}

func TestNoPiecesNoMoves(t *testing.T) {
	b := setup(t, placement{Player1, false, 3, 3})
	assert.Empty(t, MovesFor(b, Player0))
	assert.False(t, HasMoves(b, Player0))
}

func TestBlockedPiecesHaveNoMoves(t *testing.T) {
	// a player-0 man on the left edge blocked by two stacked enemies
	b := setup(t,
		placement{Player0, false, 0, 4},
		placement{Player1, false, 1, 5},
		placement{Player1, false, 2, 6},
	)
	assert.Empty(t, MovesFor(b, Player0))
}

// TestRandomPlayouts plays random games and checks the generator and transition invariants on
// every position reached.
func TestRandomPlayouts(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 40; game++ {
		b := NewBoard()
		p := Player0
		for ply := 0; ply < 200; ply++ {
			moves := MovesFor(b, p)
			if len(moves) == 0 {
				break
			}
			anyCapture := false
			for _, m := range moves {
				anyCapture = anyCapture || m.IsCapture()
				for _, w := range m.Waypoints() {
					require.True(t, w.Valid(), "waypoint %v of %v", w, m)
				}
			}
			for _, m := range moves {
				require.Equal(t, anyCapture, m.IsCapture(), "forced capture violated by %v", m)
			}

			m := moves[r.Intn(len(moves))]
			next, captured := Apply(b, m)
			require.Equal(t, m.IsCapture(), captured)
			require.NoError(t, next.Consistent(), "after %v\n%v", m, next)
			require.NotEqual(t, b, next)
			b, p = next, p.Opponent()
		}
	}
}
