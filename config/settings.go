// Package config loads run settings and vocabulary definitions.
//
// Settings live in a TOML file:
//
//	separator        = "|"
//	comment          = "#"
//	vocabulary       = "$HOME/airstats/vocabulary.hcl"
//	max_line_length  = 0
//	initial_capacity = 256
//	filter           = 'select(.parts)'
//
// Every key is optional.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/CatherineTower/air-ride-statistics/parser"
	"github.com/CatherineTower/air-ride-statistics/record"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// EnvConfig names the environment variable holding the settings path.
const EnvConfig = "AIRSTATS_CONFIG"

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "airstats.toml"

type Settings struct {
	Separator       string `toml:"separator"`
	Comment         string `toml:"comment"`
	Vocabulary      string `toml:"vocabulary"`
	MaxLineLength   int    `toml:"max_line_length"`
	InitialCapacity int    `toml:"initial_capacity"`
	Filter          string `toml:"filter"`
}

// Defaults returns the settings used when no file is found.
func Defaults() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load reads settings from path. A missing file is an error here; use
// Resolve for the optional lookup.
func Load(path string) (*Settings, error) {
	path = os.ExpandEnv(path)

	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}

	s.applyDefaults()
	s.Vocabulary = os.ExpandEnv(s.Vocabulary)
	if s.Vocabulary != "" && !filepath.IsAbs(s.Vocabulary) {
		// Relative vocabulary paths are relative to the settings file.
		s.Vocabulary = filepath.Join(filepath.Dir(path), s.Vocabulary)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return &s, nil
}

// Resolve finds the settings file to use: the explicit path if given, then
// $AIRSTATS_CONFIG, then ./airstats.toml. Only an explicit path is required
// to exist; otherwise defaults are returned when nothing is found.
func Resolve(explicit string) (*Settings, error) {
	if explicit != "" {
		return Load(explicit)
	}

	for _, p := range []string{os.Getenv(EnvConfig), DefaultFile} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(os.ExpandEnv(p)); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to access settings file %s: %w", p, err)
		}
		return Load(p)
	}

	return Defaults(), nil
}

func (s *Settings) applyDefaults() {
	if s.Separator == "" {
		s.Separator = string(rune(parser.DefaultSeparator))
	}
	if s.Comment == "" {
		s.Comment = string(rune(parser.DefaultComment))
	}
	if s.InitialCapacity == 0 {
		s.InitialCapacity = record.InitialCapacity
	}
}

func (s *Settings) Validate() error {
	if len(s.Separator) != 1 {
		return fmt.Errorf("separator must be a single byte, got %q", s.Separator)
	}
	if len(s.Comment) != 1 {
		return fmt.Errorf("comment must be a single byte, got %q", s.Comment)
	}
	if s.Separator == s.Comment {
		return fmt.Errorf("separator and comment are both %q", s.Separator)
	}
	if isTokenByte(s.Separator[0]) || isTokenByte(s.Comment[0]) {
		return errors.New("separator and comment must not be letters or whitespace")
	}
	if s.MaxLineLength < 0 {
		return fmt.Errorf("max_line_length must not be negative, got %d", s.MaxLineLength)
	}
	if s.InitialCapacity < 0 {
		return fmt.Errorf("initial_capacity must be positive, got %d", s.InitialCapacity)
	}
	return nil
}

// SeparatorByte returns the field separator. Settings must be valid.
func (s *Settings) SeparatorByte() byte { return s.Separator[0] }

// CommentByte returns the comment character. Settings must be valid.
func (s *Settings) CommentByte() byte { return s.Comment[0] }

func isTokenByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return vocab.IsLetter(c)
}
