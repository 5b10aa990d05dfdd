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

// Cell represents the contents of a single square of the board. The
// Black and White values double as the two players of a game.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Other returns the opposing colour of the given player. Empty has no
// opponent and is returned unchanged.
func (cell Cell) Other() Cell {
	switch cell {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// IsPlayer reports whether the cell is one of the two player colours.
func (cell Cell) IsPlayer() bool {
	return cell == Black || cell == White
}

// String returns the name of the colour.
func (cell Cell) String() string {
	switch cell {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Glyphs maps each cell state to the text used to draw it.
type Glyphs struct {
	Black, White, Empty string
}

// DefaultGlyphs are the plain glyphs used by Board.String.
var DefaultGlyphs = Glyphs{
	Black: "*",
	White: "o",
	Empty: "-",
}

// Of returns the glyph of the given cell.
func (glyphs Glyphs) Of(cell Cell) string {
	switch cell {
	case Black:
		return glyphs.Black
	case White:
		return glyphs.White
	default:
		return glyphs.Empty
	}
}
