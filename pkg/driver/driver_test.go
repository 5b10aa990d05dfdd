package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/reversi/pkg/board"
)

func newTestDriver(input string) (*Driver, *bytes.Buffer) {
	var out bytes.Buffer
	driver := New(NewGame(), strings.NewReader(input), &out, Options{
		Glyphs: board.DefaultGlyphs,
	})

	return driver, &out
}

func TestGame_Play(t *testing.T) {
	t.Run("Successful move passes the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: black plays a legal move
		err := game.Play(2, 4)

		// Then: it is white's turn
		require.NoError(t, err)
		assert.Equal(t, board.White, game.Turn)
	})

	t.Run("Failed move keeps the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: black plays an illegal move
		err := game.Play(0, 0)

		// Then: it is still black's turn
		assert.ErrorIs(t, err, board.ErrNoAdjacentOpponent)
		assert.Equal(t, board.Black, game.Turn)
	})

	t.Run("Players alternate", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: both players make a legal move
		require.NoError(t, game.Play(2, 4))
		require.NoError(t, game.Play(2, 3))

		// Then: it is black's turn again
		assert.Equal(t, board.Black, game.Turn)
	})
}

func TestDriver_Step(t *testing.T) {
	t.Run("Legal move toggles the turn once", func(t *testing.T) {
		// Given: a driver for a new game
		driver, out := newTestDriver("")

		// When: a legal move is entered
		advanced := driver.Step("2,4")

		// Then: the turn passes and the board is rendered
		assert.True(t, advanced)
		assert.Equal(t, board.White, driver.game.Turn)
		assert.Contains(t, out.String(), "Black: 4, White: 1")
	})

	t.Run("Illegal move keeps the turn", func(t *testing.T) {
		// Given: a driver for a new game
		driver, out := newTestDriver("")
		before := driver.game.Board.String()

		// When: an occupied square is entered
		advanced := driver.Step("3,3")

		// Then: black is asked again and the board is unchanged
		assert.False(t, advanced)
		assert.Equal(t, board.Black, driver.game.Turn)
		assert.Equal(t, before, driver.game.Board.String())
		assert.Contains(t, out.String(), "already taken")
		assert.Contains(t, out.String(), "Black: 2, White: 2")
	})

	t.Run("Malformed input never reaches the board", func(t *testing.T) {
		// Given: a driver for a new game
		driver, out := newTestDriver("")
		before := driver.game.Board.String()

		for _, line := range []string{"", "hello", "2;4", "9,9", "-1,3"} {
			// When: malformed input is entered
			advanced := driver.Step(line)

			// Then: the turn does not pass
			assert.False(t, advanced, "line %q", line)
		}

		assert.Equal(t, board.Black, driver.game.Turn)
		assert.Equal(t, before, driver.game.Board.String())
		assert.NotContains(t, out.String(), "Black: 2, White: 2")
	})
}

func TestDriver_Run(t *testing.T) {
	t.Run("Plays moves until the input ends", func(t *testing.T) {
		// Given: a scripted sequence of moves with a mistake in the middle
		driver, out := newTestDriver("2,4\nfoo\n0,0\n2,3\n")

		// When: the driver runs
		err := driver.Run()

		// Then: only the legal moves were played
		require.NoError(t, err)
		assert.Equal(t, board.Black, driver.game.Turn)
		assert.Equal(t, "8/8/3ox3/3ox3/3ox3/8/8/8", driver.game.Board.Position())

		assert.Contains(t, out.String(), "Welcome to Reversi!")
		assert.Contains(t, out.String(), ErrMalformedMove.Error())
		assert.Contains(t, out.String(), "Black: 3, White: 3")
	})

	t.Run("Overlong line is rejected and the game goes on", func(t *testing.T) {
		// Given: a line far longer than any move followed by a legal move
		driver, out := newTestDriver(strings.Repeat("9", 70000) + "\n2,4\n")

		// When: the driver runs
		err := driver.Run()

		// Then: the long line is reported and the next move is still played
		require.NoError(t, err)
		assert.Contains(t, out.String(), ErrMalformedMove.Error())
		assert.Equal(t, board.White, driver.game.Turn)
		assert.Contains(t, out.String(), "Black: 4, White: 1")
	})

	t.Run("Line at the length limit is still parsed", func(t *testing.T) {
		// Given: a legal move padded with spaces up to the limit
		move := "2,4" + strings.Repeat(" ", MaxLineLength-4) + "\n"
		driver, _ := newTestDriver(move)

		// When: the driver runs
		require.NoError(t, driver.Run())

		// Then: the move is played
		assert.Equal(t, board.White, driver.game.Turn)
	})

	t.Run("Last line without a newline is played", func(t *testing.T) {
		// Given: input which ends without a line break
		driver, _ := newTestDriver("2,4")

		// When: the driver runs
		require.NoError(t, driver.Run())

		// Then: the move is played
		assert.Equal(t, board.White, driver.game.Turn)
	})

	t.Run("Empty input ends immediately", func(t *testing.T) {
		// Given: no input at all
		driver, out := newTestDriver("")

		// When: the driver runs
		err := driver.Run()

		// Then: the board is shown once and no error is returned
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out.String(), "Black: 2, White: 2"))
		assert.Contains(t, out.String(), "Black (*) to move: ")
	})

	t.Run("Echo writes the input back", func(t *testing.T) {
		// Given: a driver with echo enabled
		var out bytes.Buffer
		driver := New(NewGame(), strings.NewReader("5,3\n"), &out, Options{
			Glyphs: board.DefaultGlyphs,
			Echo:   true,
		})

		// When: the driver runs
		require.NoError(t, driver.Run())

		// Then: the move follows the prompt
		assert.Contains(t, out.String(), "Black (*) to move: 5,3\n")
		assert.Contains(t, out.String(), "White (o) to move: ")
	})
}
