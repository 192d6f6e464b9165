package game

// direction is a diagonal unit step.
type direction struct{ dx, dy int }

// Order matters: it fixes the order in which moves are generated.
var (
	kingJumps = [4]direction{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	kingSteps = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

func manJumps(p Player) [2]direction {
	f := p.Forward()
	return [2]direction{{1, f}, {-1, f}}
}

func manSteps(p Player) [2]direction {
	f := p.Forward()
	return [2]direction{{-1, f}, {1, f}}
}

// MovesFor lists every legal move of p on b. If any capture exists only captures are returned.
// An empty result means p has no legal move and has lost.
func MovesFor(b Board, p Player) []Move {
	moves := captures(&b, p)
	if len(moves) > 0 {
		return moves
	}
	return steps(&b, p)
}

// HasMoves reports whether p has at least one legal move on b.
func HasMoves(b Board, p Player) bool {
	return len(MovesFor(b, p)) > 0
}

// chainSearch is the scratch state of the capture search of a single piece.
type chainSearch struct {
	b      *Board
	player Player
	dirs   []direction
	origin Coord
	jumped [RowNum][ColNum]bool
	path   [MaxPath]Coord
	moves  []Move
}

func captures(b *Board, p Player) []Move {
	var moves []Move
	men, kings := manJumps(p), kingJumps
	for _, pc := range b.Pieces[p] {
		if !pc.OnBoard() {
			continue
		}
		cs := chainSearch{
			b:      b,
			player: p,
			origin: pc.Coord(),
			dirs:   men[:],
			moves:  moves,
		}
		if pc.King {
			cs.dirs = kings[:]
		}
		cs.path[0] = cs.origin
		cs.extend(cs.origin, 0)
		moves = cs.moves
	}
	return moves
}

// extend explores every jump available from at, which is path[depth]. A chain is recorded when
// at was reached by a jump and no further jump leaves it.
func (cs *chainSearch) extend(at Coord, depth int) {
	opp := cs.player.Opponent()
	continued := false
	for _, d := range cs.dirs {
		if depth+1 >= MaxPath {
			break
		}
		mx, my := int(at.X)+d.dx, int(at.Y)+d.dy
		lx, ly := int(at.X)+2*d.dx, int(at.Y)+2*d.dy
		if !onBoard(lx, ly) {
			continue
		}
		over := cs.b.Squares[my][mx]
		if over.IsEmpty() || over.Player() != opp || cs.jumped[my][mx] {
			continue
		}
		land := Coord{X: uint8(lx), Y: uint8(ly)}
		if !cs.b.Squares[ly][lx].IsEmpty() && land != cs.origin {
			continue
		}

		continued = true
		cs.jumped[my][mx] = true
		cs.path[depth+1] = land
		cs.extend(land, depth+1)
		cs.jumped[my][mx] = false
	}

	if depth > 0 && !continued {
		m := NoMove(cs.player)
		copy(m.Path[:depth+1], cs.path[:depth+1])
		cs.moves = append(cs.moves, m)
	}
}

func steps(b *Board, p Player) []Move {
	var moves []Move
	men, kings := manSteps(p), kingSteps
	for _, pc := range b.Pieces[p] {
		if !pc.OnBoard() {
			continue
		}
		dirs := men[:]
		if pc.King {
			dirs = kings[:]
		}
		for _, d := range dirs {
			x, y := int(pc.X)+d.dx, int(pc.Y)+d.dy
			if !onBoard(x, y) || !b.Squares[y][x].IsEmpty() {
				continue
			}
			moves = append(moves, NewMove(p, pc.Coord(), Coord{X: uint8(x), Y: uint8(y)}))
		}
	}
	return moves
}

func onBoard(x, y int) bool { return x >= 0 && x < ColNum && y >= 0 && y < RowNum }
