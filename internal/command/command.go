package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/viralsweeper/internal/sweeper"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
	ErrBadCoordinates = errors.New("invalid cell coordinates")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // print the grid
	"o": 2, // open row col
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// Execute runs a single command against s. Coordinates are validated here
// so that the session only ever sees cells inside the grid.
func Execute(s *sweeper.Session, c string) (sweeper.Event, error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return sweeper.None, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return sweeper.None, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return sweeper.None, ErrNargs
	}
	switch parts[0] {
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return sweeper.None, err
		}
		size := s.Size()
		if row < 0 || row >= size || col < 0 || col >= size {
			return sweeper.None, ErrBadCoordinates
		}
		return s.Click(row, col), nil
	}
	return s.Outcome(), nil
}

// Run reads newline separated commands from r, executes them and writes the
// grid after each one to w. It stops at the first terminal event.
func Run(s *sweeper.Session, r io.Reader, w io.Writer, log logrus.FieldLogger) (sweeper.Event, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		for _, c := range byPiece(text, ";") {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			log.Debug("\t> ", c)
			event, err := Execute(s, c)
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			fmt.Fprint(w, s.Snapshot().String())
			switch event {
			case sweeper.Defeat:
				fmt.Fprintln(w, "You have been infected!")
				return event, nil
			case sweeper.Victory:
				fmt.Fprintln(w, "You have won!")
				return event, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return sweeper.None, err
	}
	return s.Outcome(), nil
}
