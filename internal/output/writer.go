package output

import (
	"fmt"
	"io"

	"github.com/joakim/fischer960/internal/config"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(p *Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Format. draw is the identifier of a
// random draw, or empty when positions are converted from input.
func NewWriter(w io.Writer, cfg *config.OutputConfig, draw string) PositionWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(w, cfg, draw)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per position in text, unicode or FEN form.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new line writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes p on its own line.
func (tw *TextWriter) WritePosition(p *Position) error {
	_, err := fmt.Fprintln(tw.w, FormatLine(p, tw.cfg))
	return err
}

// Flush is a no-op; lines are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as one JSON document on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.OutputConfig
	draw      string
	seed      *uint64
	positions []*JSONPosition
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig, draw string) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		draw:      draw,
		positions: make([]*JSONPosition, 0),
	}
}

// SetSeed records the seed of a reproducible draw in the output.
func (jw *JSONWriter) SetSeed(seed uint64) {
	jw.seed = &seed
}

// WritePosition buffers a position for JSON output.
func (jw *JSONWriter) WritePosition(p *Position) error {
	jw.positions = append(jw.positions, PositionToJSON(p, jw.cfg))
	return nil
}

// Flush writes all buffered positions as one JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.positions) == 0 {
		return nil
	}

	err := EncodeJSON(jw.w, &JSONOutput{
		Draw:      jw.draw,
		Seed:      jw.seed,
		Positions: jw.positions,
	})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
