package game

import "github.com/pkg/errors"

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() Board {
	var b Board
	for y := range b.Squares {
		for x := range b.Squares[y] {
			b.Squares[y][x] = Empty
		}
	}
	for p := range b.Pieces {
		for i := range b.Pieces[p] {
			b.Pieces[p][i] = Piece{X: Sentinel.X, Y: Sentinel.Y}
		}
	}
	return b
}

// NewBoard returns the standard starting position: twelve men per side on the dark squares of
// the three rows nearest to their owner.
func NewBoard() Board {
	b := EmptyBoard()
	var n [2]int
	for y := 0; y < RowNum; y++ {
		for x := 0; x < ColNum; x++ {
			if (x+y)&1 != 0 || (y > 2 && y < 5) {
				continue
			}
			p := Player0
			if y > 4 {
				p = Player1
			}
			b.Squares[y][x] = SquareOf(p, false)
			b.Pieces[p][n[p]] = Piece{X: uint8(x), Y: uint8(y)}
			n[p]++
		}
	}
	return b
}

// Place puts a piece of p on (x, y), using p's first free piece slot.
func (b *Board) Place(p Player, king bool, x, y int) error {
	c := Coord{X: uint8(x), Y: uint8(y)}
	if x < 0 || y < 0 || !c.InRange() {
		return errors.Errorf("square (%d,%d) is off the board", x, y)
	}
	if !c.IsDark() {
		return errors.Errorf("square %v is a light square", c)
	}
	if !b.Squares[y][x].IsEmpty() {
		return errors.Errorf("square %v is already occupied", c)
	}
	for i := range b.Pieces[p] {
		if b.Pieces[p][i].OnBoard() {
			continue
		}
		b.Pieces[p][i] = Piece{King: king, X: c.X, Y: c.Y}
		b.Squares[y][x] = SquareOf(p, king)
		return nil
	}
	return errors.Errorf("%v already has %d pieces", p, NumPiece)
}

// Remove takes whatever piece stands on (x, y) off the board.
func (b *Board) Remove(x, y int) {
	if !onBoard(x, y) {
		return
	}
	sq := b.Squares[y][x]
	if sq.IsEmpty() {
		return
	}
	if i := b.find(sq.Player(), Coord{X: uint8(x), Y: uint8(y)}); i >= 0 {
		b.Pieces[sq.Player()][i] = Piece{X: Sentinel.X, Y: Sentinel.Y}
	}
	b.Squares[y][x] = Empty
}
