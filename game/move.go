package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Move is a candidate move: the source square followed by either one destination (a step) or the
// landing squares of a jump chain. The path ends at the first Sentinel; a path of MaxPath
// waypoints has none.
type Move struct {
	Player Player
	Path   [MaxPath]Coord
}

// NoMove is the value returned when p has no legal move.
func NoMove(p Player) Move {
	m := Move{Player: p}
	for i := range m.Path {
		m.Path[i] = Sentinel
	}
	return m
}

// NewMove builds a move from a list of waypoints.
func NewMove(p Player, waypoints ...Coord) Move {
	m := NoMove(p)
	copy(m.Path[:], waypoints)
	return m
}

// IsNone reports whether m is the "no legal move" signal.
func (m Move) IsNone() bool { return !m.Path[0].InRange() }

// Len is the number of waypoints before the first sentinel.
func (m Move) Len() int {
	for i, c := range m.Path {
		if !c.InRange() {
			return i
		}
	}
	return MaxPath
}

// Waypoints returns the path up to the first sentinel.
func (m Move) Waypoints() []Coord {
	return append([]Coord(nil), m.Path[:m.Len()]...)
}

// From is the source square.
func (m Move) From() Coord { return m.Path[0] }

// To is the final landing square.
func (m Move) To() Coord {
	n := m.Len()
	if n == 0 {
		return Sentinel
	}
	return m.Path[n-1]
}

// IsCapture reports whether the first segment is a jump.
func (m Move) IsCapture() bool {
	if m.Len() < 2 {
		return false
	}
	return absDiff(m.Path[0].X, m.Path[1].X) == 2
}

// String renders m in board notation, e.g. "C3 -> E5 -> C7". It stops at the first sentinel or
// at the first waypoint that is not a dark square.
func (m Move) String() string {
	var sb strings.Builder
	for i, c := range m.Path {
		if !c.Valid() {
			break
		}
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseCoord parses a square name such as "C3".
func ParseCoord(s string) (Coord, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'A' || s[0] > 'H' || s[1] < '1' || s[1] > '8' {
		return Sentinel, errors.Errorf("invalid square %q", s)
	}
	return Coord{X: s[0] - 'A', Y: s[1] - '1'}, nil
}

// ParseMove parses a move in the notation produced by Move.String.
func ParseMove(p Player, s string) (Move, error) {
	parts := strings.Split(s, "->")
	if len(parts) < 2 || len(parts) > MaxPath {
		return NoMove(p), errors.Errorf("move %q needs between 2 and %d squares", s, MaxPath)
	}
	m := NoMove(p)
	for i, part := range parts {
		c, err := ParseCoord(part)
		if err != nil {
			return NoMove(p), errors.WithMessagef(err, "move %q", s)
		}
		m.Path[i] = c
	}
	return m, nil
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
