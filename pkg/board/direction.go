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

// Size is the number of rows and columns of the board.
const Size = 8

// Direction is a unit step on the board in (row, col) deltas.
type Direction struct {
	Row, Col int
}

// Directions contains the 8 compass directions a capturing line can run
// along from a newly placed disc.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Square is a position on the board. Coordinates are signed so that a
// step off either edge stays representable.
type Square struct {
	Row, Col int
}

// Step returns the square one step away in the given direction.
func (sq Square) Step(dir Direction) Square {
	return Square{Row: sq.Row + dir.Row, Col: sq.Col + dir.Col}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (sq Square) OnBoard() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}
