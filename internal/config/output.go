package config

import (
	"fmt"
	"strings"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/errors"
)

// OutputFormat represents the different ways a position can be printed.
type OutputFormat int

const (
	Text    OutputFormat = iota // ID and letters, e.g. "518 RNBQKBNR"
	Unicode                     // ID and chess glyphs
	FEN                         // Full starting FEN
	JSON                        // One JSON document for the whole run
)

var formatNames = []string{"text", "unicode", "fen", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value such as "fen" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return Text, fmt.Errorf("unknown output format %q (want %s): %w",
		s, strings.Join(formatNames, ", "), errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how each position is written
	Format OutputFormat

	// Colour selects letter case and glyph colour (white upper, black lower)
	Colour chess.Colour

	// Shredder writes FEN castling rights as rook files instead of KQkq
	Shredder bool

	// ShowMirror also prints the mirrored twin of each position
	ShowMirror bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
		Colour: chess.White,
	}
}
