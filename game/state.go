package game

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	RowNum   = 8
	ColNum   = 8
	NumPiece = 12 // pieces per player
	MaxPath  = 13 // source square plus up to 12 jump landings
)

// Square is the content of one board cell.
// Bit 0 holds the owning player and bit 1 the king flag; Empty lies outside that range.
type Square uint8

const (
	Man0 Square = iota
	Man1
	King0
	King1
	Empty
)

// SquareOf returns the square value of a piece.
func SquareOf(p Player, king bool) Square {
	s := Square(p & 1)
	if king {
		s |= 2
	}
	return s
}

func (s Square) IsEmpty() bool  { return s >= Empty }
func (s Square) IsKing() bool   { return !s.IsEmpty() && s&2 != 0 }
func (s Square) Player() Player { return Player(s & 1) }

// Glyph is the terminal symbol of a square.
func (s Square) Glyph() byte {
	if s.IsEmpty() {
		return ' '
	}
	return "*o#8"[s]
}

// Player identifies one of the two sides. Player0 starts on rows 0-2 and moves up the board.
type Player uint8

const (
	Player0 Player = iota
	Player1
)

func (p Player) Opponent() Player { return ^p & 1 }

// Forward is the row delta of a man's step.
func (p Player) Forward() int {
	if p == Player0 {
		return 1
	}
	return -1
}

// FarRow is the row on which a man of p is promoted.
func (p Player) FarRow() uint8 { return 7 * uint8(p.Opponent()) }

// HomeRow is p's own back rank.
func (p Player) HomeRow() uint8 { return 7 * uint8(p&1) }

func (p Player) String() string { return fmt.Sprintf("Player %d", int(p)+1) }

// Coord is a board position. X is the column, Y the row.
type Coord struct {
	X, Y uint8
}

// Sentinel marks a captured piece or the end of a move path.
var Sentinel = Coord{X: 0xFF, Y: 0xFF}

func (c Coord) InRange() bool { return c.X < ColNum && c.Y < RowNum }

// IsDark reports whether c is a playable square. A1 is dark.
func (c Coord) IsDark() bool { return (c.X+c.Y)&1 == 0 }

// Valid reports whether c is an in-range dark square.
func (c Coord) Valid() bool { return c.InRange() && c.IsDark() }

func (c Coord) String() string {
	if !c.InRange() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+c.X, c.Y+1)
}

// Piece is an entry of a player's piece table.
type Piece struct {
	King bool
	X, Y uint8
}

func (p Piece) OnBoard() bool { return p.X < ColNum && p.Y < RowNum }
func (p Piece) Coord() Coord  { return Coord{X: p.X, Y: p.Y} }

// Board is the full game state. It is a value: assigning a Board copies it, so transitions never
// alias the board they started from.
type Board struct {
	Squares [RowNum][ColNum]Square // indexed [y][x]
	Pieces  [2][NumPiece]Piece
}

// At returns the square at (x, y).
func (b *Board) At(x, y int) Square { return b.Squares[y][x] }

// Count returns the number of men and kings p has on the board.
func (b *Board) Count(p Player) (men, kings int) {
	for _, pc := range b.Pieces[p] {
		if !pc.OnBoard() {
			continue
		}
		if pc.King {
			kings++
		} else {
			men++
		}
	}
	return
}

// PieceCount returns the total number of pieces p has on the board.
func (b *Board) PieceCount(p Player) int {
	men, kings := b.Count(p)
	return men + kings
}

// find returns the piece table index of p's piece on c, or -1.
func (b *Board) find(p Player, c Coord) int {
	for i, pc := range b.Pieces[p] {
		if pc.X == c.X && pc.Y == c.Y {
			return i
		}
	}
	return -1
}

// Consistent checks that the square grid and the piece tables describe the same position.
func (b *Board) Consistent() error {
	var seen [RowNum][ColNum]bool
	for p := Player0; p <= Player1; p++ {
		for i, pc := range b.Pieces[p] {
			if !pc.OnBoard() {
				continue
			}
			if seen[pc.Y][pc.X] {
				return errors.Errorf("%v piece %d shares square %v", p, i, pc.Coord())
			}
			seen[pc.Y][pc.X] = true
			if want, got := SquareOf(p, pc.King), b.Squares[pc.Y][pc.X]; want != got {
				return errors.Errorf("%v piece %d on %v: square holds %d, want %d", p, i, pc.Coord(), got, want)
			}
		}
	}
	for y := 0; y < RowNum; y++ {
		for x := 0; x < ColNum; x++ {
			if b.Squares[y][x].IsEmpty() {
				continue
			}
			if c := (Coord{X: uint8(x), Y: uint8(y)}); !c.IsDark() {
				return errors.Errorf("light square %v is occupied", c)
			}
			if !seen[y][x] {
				return errors.Errorf("square %v is occupied but has no piece", Coord{X: uint8(x), Y: uint8(y)})
			}
		}
	}
	return nil
}
