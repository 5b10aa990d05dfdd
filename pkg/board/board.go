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

package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds        = errors.New("board: square is outside the board")
	ErrInvalidPlayer      = errors.New("board: only black or white can place a disc")
	ErrOccupiedCell       = errors.New("board: square is already occupied")
	ErrNoAdjacentOpponent = errors.New("board: no opponent disc next to square")
	ErrNoCapture          = errors.New("board: move does not capture any discs")
)

// Board is an 8x8 Othello board. The zero value is an empty board; use
// New for the standard starting position.
type Board struct {
	cells [Size][Size]Cell
}

// New returns a board set up in the standard starting position.
func New() *Board {
	var board Board

	mid := Size / 2
	board.cells[mid-1][mid-1], board.cells[mid][mid] = Black, Black
	board.cells[mid-1][mid], board.cells[mid][mid-1] = White, White

	return &board
}

// At returns the contents of the given square. Squares outside the
// board are reported as Empty.
func (board *Board) At(row, col int) Cell {
	sq := Square{Row: row, Col: col}
	if !sq.OnBoard() {
		return Empty
	}

	return board.cells[row][col]
}

// Place puts a disc of the given player's colour on (row, col) and flips
// every captured opponent disc. If the move is illegal an error is
// returned and the board is left untouched.
func (board *Board) Place(row, col int, player Cell) error {
	captures, err := board.Captures(row, col, player)
	if err != nil {
		return err
	}

	board.cells[row][col] = player
	for _, sq := range captures {
		board.cells[sq.Row][sq.Col] = player
	}

	return nil
}

// Captures returns the opponent discs which would be flipped if player
// placed a disc on (row, col), without modifying the board. The error
// explains why the move is illegal when no discs can be captured.
func (board *Board) Captures(row, col int, player Cell) ([]Square, error) {
	target := Square{Row: row, Col: col}

	switch {
	case !target.OnBoard():
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	case !player.IsPlayer():
		return nil, ErrInvalidPlayer
	case board.cells[row][col] != Empty:
		return nil, ErrOccupiedCell
	case !board.hasAdjacent(target, player.Other()):
		return nil, ErrNoAdjacentOpponent
	}

	var captures []Square
	for _, dir := range Directions {
		captures = append(captures, board.line(target, dir, player)...)
	}

	if len(captures) == 0 {
		return nil, ErrNoCapture
	}

	return captures, nil
}

// hasAdjacent checks if any of the neighbours of the square hold a disc
// of the given colour.
func (board *Board) hasAdjacent(target Square, color Cell) bool {
	for _, dir := range Directions {
		sq := target.Step(dir)
		if sq.OnBoard() && board.cells[sq.Row][sq.Col] == color {
			return true
		}
	}

	return false
}

// line walks from target in the given direction and returns the run of
// opponent discs bracketed by a disc of player's colour, or nil.
func (board *Board) line(target Square, dir Direction, player Cell) []Square {
	var run []Square

	for sq := target.Step(dir); sq.OnBoard(); sq = sq.Step(dir) {
		switch board.cells[sq.Row][sq.Col] {
		case Empty:
			return nil
		case player:
			return run
		default:
			run = append(run, sq)
		}
	}

	// ran off the board without finding our own disc
	return nil
}

// Count returns the number of black and white discs on the board.
func (board *Board) Count() (black, white int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch board.cells[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}

	return black, white
}

// Render draws the board with row and column labels followed by the
// disc tally, using the given glyphs for each cell.
func (board *Board) Render(glyphs Glyphs) string {
	var b strings.Builder

	b.WriteString(" ")
	for col := 0; col < Size; col++ {
		fmt.Fprintf(&b, " %d", col)
	}
	b.WriteString("\n")

	for row := 0; row < Size; row++ {
		fmt.Fprintf(&b, "%d", row)
		for col := 0; col < Size; col++ {
			b.WriteString(" " + glyphs.Of(board.cells[row][col]))
		}
		b.WriteString("\n")
	}

	black, white := board.Count()
	fmt.Fprintf(&b, "Black: %d, White: %d\n", black, white)

	return b.String()
}

// String renders the board with the default glyphs.
func (board *Board) String() string {
	return board.Render(DefaultGlyphs)
}
