package output

import (
	"encoding/json"
	"io"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/config"
	"github.com/joakim/fischer960/internal/engine"
)

// JSONPosition represents a starting position in JSON format.
type JSONPosition struct {
	ID          int           `json:"id"`
	Arrangement string        `json:"arrangement"`
	Unicode     string        `json:"unicode"`
	FEN         string        `json:"fen"`
	Variant     string        `json:"variant"`
	Input       string        `json:"input,omitempty"`
	Twin        *JSONPosition `json:"twin,omitempty"`
}

// JSONOutput holds a batch of positions. Draw identifies a random draw and
// is empty for conversions.
type JSONOutput struct {
	Draw      string          `json:"draw,omitempty"`
	Seed      *uint64         `json:"seed,omitempty"`
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(p *Position, cfg *config.OutputConfig) *JSONPosition {
	jp := entryToJSON(p, cfg)
	if cfg.ShowMirror {
		jp.Twin = entryToJSON(p.Twin(), cfg)
	}
	return jp
}

func entryToJSON(p *Position, cfg *config.OutputConfig) *JSONPosition {
	letters := p.Arrangement.String()
	if cfg.Colour == chess.Black {
		letters = p.Arrangement.Lower()
	}
	return &JSONPosition{
		ID:          p.ID,
		Arrangement: letters,
		Unicode:     p.Arrangement.Unicode(cfg.Colour),
		FEN:         engine.StartingFEN(p.Arrangement, cfg.Shredder),
		Variant:     engine.Variant(p.Arrangement),
		Input:       p.Input,
	}
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
