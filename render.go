package checkers

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/checkers/game"
)

// PlayerInfo is the per-player part of the panel drawn next to the board.
type PlayerInfo struct {
	TotalTime    time.Duration
	PreviousTime time.Duration
	Depth        int // of the last decision
}

// Info is the panel drawn next to the board.
type Info struct {
	Players      [2]PlayerInfo
	MoveCount    int
	TotalTime    time.Duration
	PreviousTime time.Duration
}

// playerColor is the foreground of each side's pieces.
var playerColor = [2]aurora.Color{aurora.CyanFg, aurora.YellowFg}

// Renderer draws boards on a terminal.
type Renderer struct {
	w  io.Writer
	au aurora.Aurora
}

// NewRenderer creates a renderer writing to w. Colours are only emitted when colors is set.
func NewRenderer(w io.Writer, colors bool) *Renderer {
	return &Renderer{w: w, au: aurora.NewAurora(colors)}
}

// Printf writes a message below the board.
func (r *Renderer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

// Render draws b, row 8 at the top, with info next to it. info may be nil.
func (r *Renderer) Render(b game.Board, info *Info) error {
	bw := bufio.NewWriter(r.w)
	panel := r.panel(b, info)
	line := 0
	next := func() string {
		if line >= len(panel) {
			return ""
		}
		line++
		return panel[line-1]
	}

	fmt.Fprintln(bw)
	for y := game.RowNum - 1; y >= 0; y-- {
		// each row is three lines tall, the piece sits in the middle one
		for part := 0; part < 3; part++ {
			if part == 1 {
				fmt.Fprintf(bw, "  %d  ", y+1)
			} else {
				bw.WriteString("     ")
			}
			for x := 0; x < game.ColNum; x++ {
				cell := "       "
				sq := b.At(x, y)
				if part == 1 {
					cell = fmt.Sprintf("   %c   ", sq.Glyph())
				}
				color := aurora.BlackBg
				if (x+y)&1 == 1 {
					color = aurora.WhiteBg
				}
				if !sq.IsEmpty() {
					color |= playerColor[sq.Player()]
				}
				bw.WriteString(r.au.Colorize(cell, color).String())
			}
			fmt.Fprintln(bw, next())
		}
	}
	fmt.Fprintln(bw)
	bw.WriteString("     ")
	for x := 0; x < game.ColNum; x++ {
		fmt.Fprintf(bw, "   %c   ", 'A'+x)
	}
	fmt.Fprint(bw, "\n\n")
	return errors.WithStack(bw.Flush())
}

func (r *Renderer) panel(b game.Board, info *Info) []string {
	var retVal []string
	add := func(format string, args ...interface{}) {
		retVal = append(retVal, "  "+fmt.Sprintf(format, args...))
	}
	for p := game.Player0; p <= game.Player1; p++ {
		men, kings := b.Count(p)
		add("%v Info", p)
		add("> reg. piece (%v)       : %d", r.au.Colorize(string(game.SquareOf(p, false).Glyph()), playerColor[p]), men)
		add("> king piece (%v)       : %d", r.au.Colorize(string(game.SquareOf(p, true).Glyph()), playerColor[p]), kings)
		if info != nil {
			pi := info.Players[p]
			add("> total move time      : %s", seconds(pi.TotalTime))
			add("> previous move time   : %s", seconds(pi.PreviousTime))
			add("> alpha-beta max depth : %d", pi.Depth)
		}
		retVal = append(retVal, "")
	}
	if info != nil {
		add("Game Info")
		add("> current move count   : %d", info.MoveCount)
		add("> total move time      : %s", seconds(info.TotalTime))
		add("> previous move time   : %s", seconds(info.PreviousTime))
	}
	return retVal
}

func seconds(d time.Duration) string { return fmt.Sprintf("%.3fs", d.Seconds()) }
