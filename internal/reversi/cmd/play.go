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

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/reversi/pkg/board"
	"laptudirm.com/x/reversi/pkg/config"
	"laptudirm.com/x/reversi/pkg/driver"
)

// reversi play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a two player game",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play starts a game of Othello for two players sharing
			the terminal. Black moves first, and the players take turns
			entering the square they want to place a disc on as row,col
			with both numbers between 0 and 7.

			A move has to flip at least one of the opponent's discs. If
			it doesn't, the same player is asked for another move.

			The board can be drawn with custom glyphs by creating a
			reversi/config.yaml file in your XDG configuration directory:

			    glyphs:
			      black: "*"
			      white: "o"
			      empty: "-"
			    color: true`),

		RunE: runPlay,
	}

	playFlags(cmd)
	return cmd
}

// playFlags registers the flags understood by runPlay.
func playFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("position", "p", "", "Start from the given position, e.g. \""+board.StartPosition+" x\"")
	cmd.Flags().StringP("config", "c", "", "Read the configuration from the given file")
	cmd.Flags().Bool("no-color", false, "Don't use colors when drawing the board")
}

// runPlay plays a game on the command's input and output streams.
func runPlay(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	position, _ := cmd.Flags().GetString("position")

	conf, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if noColor {
		conf.Color = false
	}

	if !conf.Color {
		color.NoColor = true
	}

	game := driver.NewGame()
	if position != "" {
		b, turn, err := board.ParsePosition(position)
		if err != nil {
			return fmt.Errorf("--position: %w", err)
		}

		game = &driver.Game{Board: b, Turn: turn}
	}

	logrus.Debugf("starting game from %s", game.Board.Position())

	in := cmd.InOrStdin()
	return driver.New(game, in, cmd.OutOrStdout(), driver.Options{
		Glyphs: conf.BoardGlyphs(),
		Echo:   !interactive(in),
	}).Run()
}

// interactive reports whether moves are typed at a terminal. Anything
// other than a terminal file, like a pipe or an in-memory reader, is not.
func interactive(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
