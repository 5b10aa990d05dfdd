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

import "laptudirm.com/x/reversi/pkg/board"

// Game is the state of a game in progress: the board and the player
// whose turn it is.
type Game struct {
	Board *board.Board
	Turn  board.Cell
}

// NewGame returns a game in the standard starting position with Black to
// move.
func NewGame() *Game {
	return &Game{
		Board: board.New(),
		Turn:  board.Black,
	}
}

// Play places a disc for the side to move. The turn passes to the
// opponent only if the move was legal.
func (game *Game) Play(row, col int) error {
	if err := game.Board.Place(row, col, game.Turn); err != nil {
		return err
	}

	game.Turn = game.Turn.Other()
	return nil
}
