// Package output formats starting positions as text lines or JSON.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/config"
	"github.com/joakim/fischer960/internal/engine"
	"github.com/joakim/fischer960/internal/fischer"
)

// Position is one numbered starting position ready for output.
type Position struct {
	ID          int
	Arrangement chess.Arrangement
	Input       string // Text the position was converted from, if any
}

// NewPosition decodes id into a Position.
func NewPosition(id int) (*Position, error) {
	a, err := fischer.Decode(id)
	if err != nil {
		return nil, err
	}
	return &Position{ID: id, Arrangement: a}, nil
}

// Twin returns the mirrored position.
func (p *Position) Twin() *Position {
	twin, err := fischer.Twin(p.ID)
	if err != nil {
		return &Position{ID: fischer.NoID, Arrangement: p.Arrangement.Mirror()}
	}
	return &Position{ID: twin, Arrangement: p.Arrangement.Mirror()}
}

// rank renders the back rank in the configured style.
func rank(a chess.Arrangement, cfg *config.OutputConfig) string {
	switch cfg.Format {
	case config.Unicode:
		return a.Unicode(cfg.Colour)
	case config.FEN:
		return engine.StartingFEN(a, cfg.Shredder)
	}
	if cfg.Colour == chess.Black {
		return a.Lower()
	}
	return a.String()
}

// FormatLine renders p as one output line without the trailing newline.
// FEN lines carry the FEN alone; other formats are prefixed by the ID.
func FormatLine(p *Position, cfg *config.OutputConfig) string {
	var sb strings.Builder
	writeEntry(&sb, p, cfg)
	if cfg.ShowMirror {
		sb.WriteString(separator(cfg))
		writeEntry(&sb, p.Twin(), cfg)
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, p *Position, cfg *config.OutputConfig) {
	if cfg.Format != config.FEN {
		sb.WriteString(strconv.Itoa(p.ID))
		sb.WriteByte(' ')
	}
	sb.WriteString(rank(p.Arrangement, cfg))
}

func separator(cfg *config.OutputConfig) string {
	if cfg.Format == config.FEN {
		return "\n"
	}
	return "  "
}

// FormatHeader returns the comment line that opens a text draw listing.
func FormatHeader(draw string, count int) string {
	return fmt.Sprintf("# draw %s, %d position(s)", draw, count)
}
