package game

// Apply returns the board that results from playing m on b, and whether any piece was captured.
//
// A move that does not fit the board (off-board or light squares, an occupied destination, no
// piece of the mover on the source, nothing to capture under a jump) leaves b unchanged and
// reports no capture. b itself is never modified.
func Apply(b Board, m Move) (Board, bool) {
	src, dst := m.Path[0], m.Path[1]
	if !src.Valid() || !dst.Valid() || !b.Squares[dst.Y][dst.X].IsEmpty() {
		return b, false
	}
	dx, dy := int(dst.X)-int(src.X), int(dst.Y)-int(src.Y)
	switch {
	case abs(dx) == 1 && abs(dy) == 1:
		return step(b, m), false
	case abs(dx) == 2 && abs(dy) == 2:
		return jump(b, m)
	}
	return b, false
}

func step(b Board, m Move) Board {
	p := m.Player
	src, dst := m.Path[0], m.Path[1]
	i := b.find(p, src)
	if i < 0 {
		return b
	}

	next := b
	pc := &next.Pieces[p][i]
	if !pc.King && dst.Y == p.FarRow() {
		pc.King = true
	}
	next.Squares[src.Y][src.X] = Empty
	next.Squares[dst.Y][dst.X] = SquareOf(p, pc.King)
	pc.X, pc.Y = dst.X, dst.Y
	return next
}

// jump plays a jump chain segment by segment. The chain stops at the first waypoint that is not
// a further two-square jump onto an empty dark square, or right after a man is crowned.
func jump(b Board, m Move) (Board, bool) {
	p, opp := m.Player, m.Player.Opponent()
	i := b.find(p, m.Path[0])
	if i < 0 {
		return b, false
	}
	wasKing := b.Pieces[p][i].King

	next := b
	pc := &next.Pieces[p][i]
	for seg := 0; seg+1 < MaxPath; seg++ {
		from, to := m.Path[seg], m.Path[seg+1]
		if seg > 0 && !isJump(&next, from, to) {
			break
		}

		mid := Coord{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
		j := next.find(opp, mid)
		if j < 0 {
			return b, false
		}

		if !wasKing && to.Y == p.FarRow() {
			pc.King = true
		}
		next.Squares[from.Y][from.X] = Empty
		next.Squares[mid.Y][mid.X] = Empty
		next.Squares[to.Y][to.X] = SquareOf(p, pc.King)
		next.Pieces[opp][j] = Piece{X: Sentinel.X, Y: Sentinel.Y}
		pc.X, pc.Y = to.X, to.Y

		if pc.King && !wasKing {
			break
		}
	}
	return next, true
}

// isJump reports whether from -> to is a two-square diagonal onto an empty dark square of b.
func isJump(b *Board, from, to Coord) bool {
	if !from.Valid() || !to.Valid() || !b.Squares[to.Y][to.X].IsEmpty() {
		return false
	}
	return absDiff(from.X, to.X) == 2 && absDiff(from.Y, to.Y) == 2
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
