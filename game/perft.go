package game

// Perft counts the positions reached after depth plies from b with p to move. A side without
// moves ends its line early and the position counts as reached.
func Perft(b Board, p Player, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := MovesFor(b, p)
	if len(moves) == 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		next, _ := Apply(b, m)
		n += Perft(next, p.Opponent(), depth-1)
	}
	return n
}

// Divide is Perft split by root move.
func Divide(b Board, p Player, depth int) map[Move]uint64 {
	retVal := make(map[Move]uint64)
	for _, m := range MovesFor(b, p) {
		next, _ := Apply(b, m)
		retVal[m] = Perft(next, p.Opponent(), depth-1)
	}
	return retVal
}
