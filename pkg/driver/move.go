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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/reversi/pkg/board"
)

var (
	ErrMalformedMove = errors.New("enter a move as row,col")
	ErrOutOfRange    = errors.New("row and col must be in 0-7")
)

// ParseMove parses a move of the form "row,col". Surrounding whitespace
// is ignored, both in the line and around each number.
func ParseMove(line string) (row, col int, err error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 2 {
		return 0, 0, ErrMalformedMove
	}

	if row, err = parseCoordinate("row", fields[0]); err != nil {
		return 0, 0, err
	}

	if col, err = parseCoordinate("col", fields[1]); err != nil {
		return 0, 0, err
	}

	if row < 0 || row >= board.Size || col < 0 || col >= board.Size {
		return 0, 0, ErrOutOfRange
	}

	return row, col, nil
}

// parseCoordinate parses one number of a move. Numbers too large for an
// int are off the board rather than malformed.
func parseCoordinate(name, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %s %s", ErrOutOfRange, name, strings.TrimSpace(field))
	case err != nil:
		return 0, fmt.Errorf("%w: bad %s %q", ErrMalformedMove, name, field)
	}

	return n, nil
}
