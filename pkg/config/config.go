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

package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/reversi/pkg/board"
)

// File is the location of the configuration file relative to the XDG
// configuration directories.
const File = "reversi/config.yaml"

var ErrInvalidGlyph = errors.New("config: glyphs must be a single character")

// Config holds the display preferences of the players.
type Config struct {
	Glyphs Glyphs `yaml:"glyphs"`
	Color  bool   `yaml:"color"`
}

type Glyphs struct {
	Black string `yaml:"black"`
	White string `yaml:"white"`
	Empty string `yaml:"empty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Glyphs: Glyphs{
			Black: board.DefaultGlyphs.Black,
			White: board.DefaultGlyphs.White,
			Empty: board.DefaultGlyphs.Empty,
		},
		Color: true,
	}
}

// Load reads the configuration file at path. An empty path searches the
// XDG configuration directories instead, and falls back to the defaults
// if no file is found there. Settings missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	config := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(File)
		if err != nil {
			logrus.Tracef("no configuration file found: %v", err)
			return config, nil
		}

		path = found
	}

	logrus.Debugf("loading configuration from %s", path)
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks that every glyph is exactly one character wide so that
// the board columns stay aligned.
func (config Config) Validate() error {
	for _, glyph := range []struct{ name, value string }{
		{"black", config.Glyphs.Black},
		{"white", config.Glyphs.White},
		{"empty", config.Glyphs.Empty},
	} {
		if utf8.RuneCountInString(glyph.value) != 1 {
			return fmt.Errorf("%w: %s is %q", ErrInvalidGlyph, glyph.name, glyph.value)
		}
	}

	return nil
}

// BoardGlyphs converts the configured glyphs for drawing the board,
// colouring them if colour output is enabled.
func (config Config) BoardGlyphs() board.Glyphs {
	if !config.Color {
		return board.Glyphs{
			Black: config.Glyphs.Black,
			White: config.Glyphs.White,
			Empty: config.Glyphs.Empty,
		}
	}

	return board.Glyphs{
		Black: color.New(color.FgHiCyan, color.Bold).Sprint(config.Glyphs.Black),
		White: color.New(color.FgHiYellow, color.Bold).Sprint(config.Glyphs.White),
		Empty: color.New(color.Faint).Sprint(config.Glyphs.Empty),
	}
}
