package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Encode writes b as eight lines, row 7 first, each holding the eight square values of the row
// separated by single spaces.
func Encode(w io.Writer, b Board) error {
	bw := bufio.NewWriter(w)
	for y := RowNum - 1; y >= 0; y-- {
		for x := 0; x < ColNum; x++ {
			sep := " "
			if x == ColNum-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(bw, "%d%s", b.Squares[y][x], sep); err != nil {
				return errors.WithStack(err)
			}
		}
	}
	return errors.WithStack(bw.Flush())
}

// Decode reads a board written by Encode and rebuilds the piece tables from the squares.
// Values of 4 and above are read as empty squares. Every problem found is reported.
func Decode(r io.Reader) (Board, error) {
	b := EmptyBoard()
	var errs error

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var n int
	for scanner.Scan() {
		if n >= RowNum*ColNum {
			errs = multierror.Append(errs, errors.Errorf("unexpected trailing value %q", scanner.Text()))
			break
		}
		y, x := RowNum-1-n/ColNum, n%ColNum
		n++

		v, err := strconv.Atoi(scanner.Text())
		if err != nil || v < 0 {
			errs = multierror.Append(errs, errors.Errorf("row %d column %d: invalid square value %q", y+1, x+1, scanner.Text()))
			continue
		}
		if v >= int(Empty) {
			continue
		}
		sq := Square(v)
		if err := b.Place(sq.Player(), sq.IsKing(), x, y); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.WithStack(err))
	}
	if n < RowNum*ColNum {
		errs = multierror.Append(errs, errors.Errorf("board has %d squares, want %d", n, RowNum*ColNum))
	}
	if errs != nil {
		return EmptyBoard(), errs
	}
	return b, nil
}

// LoadFile reads a saved board from path.
func LoadFile(path string) (Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return EmptyBoard(), errors.WithStack(err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return b, errors.WithMessagef(err, "loading %s", path)
	}
	return b, nil
}

// SaveFile writes b to path, replacing any existing file.
func SaveFile(path string, b Board) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := Encode(f, b); err != nil {
		f.Close()
		return errors.WithMessagef(err, "saving %s", path)
	}
	return errors.WithStack(f.Close())
}

// String renders b in the saved-game format.
func (b Board) String() string {
	var sb strings.Builder
	_ = Encode(&sb, b)
	return sb.String()
}
