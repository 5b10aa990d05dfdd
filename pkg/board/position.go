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
	"strconv"
	"strings"
)

// StartPosition is the position string of the standard starting board.
const StartPosition = "8/8/8/3xo3/3ox3/8/8/8"

var ErrInvalidPosition = errors.New("board: invalid position string")

// Position encodes the board as 8 ranks separated by '/', top row first.
// Black discs are written as 'x', white discs as 'o' and runs of empty
// squares as a digit.
func (board *Board) Position() string {
	ranks := make([]string, Size)

	for row := 0; row < Size; row++ {
		var rank string
		gaps := 0

		for col := 0; col < Size; col++ {
			cell := board.cells[row][col]
			if cell == Empty {
				gaps++
				continue
			}

			if gaps > 0 {
				rank += strconv.Itoa(gaps)
				gaps = 0
			}

			if cell == Black {
				rank += "x"
			} else {
				rank += "o"
			}
		}

		if gaps > 0 {
			rank += strconv.Itoa(gaps)
		}

		ranks[row] = rank
	}

	return strings.Join(ranks, "/")
}

// ParsePosition decodes a position string produced by Position. It may be
// followed by a side to move field, "x" or "o"; Black is to move if it is
// missing.
func ParsePosition(position string) (*Board, Cell, error) {
	fields := strings.Fields(position)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, Empty, fmt.Errorf("%w: expected 1 or 2 fields, got %d", ErrInvalidPosition, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Size {
		return nil, Empty, fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidPosition, Size, len(ranks))
	}

	var board Board
	for row, rank := range ranks {
		col := 0
		for _, char := range rank {
			if col >= Size {
				return nil, Empty, fmt.Errorf("%w: rank %d is too long", ErrInvalidPosition, row)
			}

			switch {
			case char == 'x':
				board.cells[row][col] = Black
				col++
			case char == 'o':
				board.cells[row][col] = White
				col++
			case char >= '1' && char <= '8':
				col += int(char - '0')
			default:
				return nil, Empty, fmt.Errorf("%w: unexpected %q in rank %d", ErrInvalidPosition, char, row)
			}
		}

		if col != Size {
			return nil, Empty, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidPosition, row, col)
		}
	}

	turn := Black
	if len(fields) == 2 {
		switch fields[1] {
		case "x":
			turn = Black
		case "o":
			turn = White
		default:
			return nil, Empty, fmt.Errorf("%w: unknown side to move %q", ErrInvalidPosition, fields[1])
		}
	}

	return &board, turn, nil
}
