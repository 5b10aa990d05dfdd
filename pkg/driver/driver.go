// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/reversi/pkg/board"
)

var welcome = heredoc.Doc(`
	Welcome to Reversi!

	Enter your moves as row,col (for example 2,4).
	Press Ctrl-D to leave the game.

`)

var warn = color.New(color.FgRed)

// MaxLineLength is the longest input line accepted as a move. Longer
// lines are discarded up to the next newline.
const MaxLineLength = 1024

// Options configures how a Driver talks to the players.
type Options struct {
	// Glyphs are used to draw the board and the side to move.
	Glyphs board.Glyphs

	// Echo writes every line read back to the output, which keeps the
	// transcript readable when moves are piped in.
	Echo bool
}

// Driver runs a game by reading moves for alternating players from a
// single input stream.
type Driver struct {
	game    *Game
	options Options

	in  *bufio.Reader
	out io.Writer
}

// New creates a Driver which plays the given game.
func New(game *Game, in io.Reader, out io.Writer, options Options) *Driver {
	return &Driver{
		game:    game,
		options: options,

		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run plays the game until the input is exhausted. Illegal or malformed
// moves never end the game; the same player is simply asked again.
func (driver *Driver) Run() error {
	fmt.Fprint(driver.out, welcome)
	fmt.Fprint(driver.out, driver.game.Board.Render(driver.options.Glyphs))

	for {
		fmt.Fprintf(driver.out, "\n%s (%s) to move: ",
			driver.game.Turn,
			driver.options.Glyphs.Of(driver.game.Turn),
		)

		line, tooLong, err := driver.readLine()
		if err != nil {
			fmt.Fprintln(driver.out)
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("read move: %w", err)
			}

			logrus.Debug("input closed, leaving the game")
			return nil
		}

		if driver.options.Echo {
			fmt.Fprintln(driver.out, line)
		}

		if tooLong {
			logrus.Tracef("discarded input line longer than %d bytes", MaxLineLength)
			_, _ = warn.Fprintln(driver.out, ErrMalformedMove)
			continue
		}

		driver.Step(line)
	}
}

// readLine reads the next line of input without its line ending. Lines
// longer than MaxLineLength are consumed completely and reported with
// tooLong set instead of their text. io.EOF is returned once no input is
// left.
func (driver *Driver) readLine() (line string, tooLong bool, err error) {
	var buf []byte

	for {
		chunk, readErr := driver.in.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) <= MaxLineLength {
			buf = append(buf, chunk...)
		} else {
			tooLong = true
		}

		switch {
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", false, io.EOF
			}
		case readErr != nil:
			return "", false, readErr
		}

		if tooLong {
			buf = buf[:0]
		}

		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}

// Step processes a single line of input and reports whether the turn
// passed to the other player.
func (driver *Driver) Step(line string) bool {
	row, col, err := ParseMove(line)
	if err != nil {
		logrus.Tracef("rejected input %q: %v", line, err)
		_, _ = warn.Fprintln(driver.out, err)
		return false
	}

	player := driver.game.Turn
	defer func() {
		fmt.Fprint(driver.out, driver.game.Board.Render(driver.options.Glyphs))
	}()

	if err := driver.game.Play(row, col); err != nil {
		logrus.Debugf("%s: illegal move %d,%d: %v", player, row, col, err)
		_, _ = warn.Fprintf(driver.out, "Illegal move %d,%d: %s\n", row, col, reason(err))
		return false
	}

	logrus.Debugf("%s played %d,%d: %s", player, row, col, driver.game.Board.Position())
	return true
}

// reason turns an engine error into a message for the players.
func reason(err error) string {
	switch {
	case errors.Is(err, board.ErrOccupiedCell):
		return "the square is already taken"
	case errors.Is(err, board.ErrNoAdjacentOpponent):
		return "the square is not next to an opponent disc"
	case errors.Is(err, board.ErrNoCapture):
		return "the move does not flip any discs"
	default:
		return err.Error()
	}
}
