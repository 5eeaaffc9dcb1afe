package config

import (
	"io"

	"github.com/joakim/fischer960/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithColour sets the colour pieces are printed in.
func (b *ConfigBuilder) WithColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Output.Colour = c
	return b
}

// WithShredder enables Shredder-FEN castling rights.
func (b *ConfigBuilder) WithShredder(enabled bool) *ConfigBuilder {
	b.cfg.Output.Shredder = enabled
	return b
}

// WithMirror enables printing the twin of each position.
func (b *ConfigBuilder) WithMirror(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMirror = enabled
	return b
}

// WithCount sets how many positions to generate.
func (b *ConfigBuilder) WithCount(n int) *ConfigBuilder {
	b.cfg.Generate.Count = n
	return b
}

// WithUnique forbids repeats within one draw.
func (b *ConfigBuilder) WithUnique(enabled bool) *ConfigBuilder {
	b.cfg.Generate.Unique = enabled
	return b
}

// WithSeed makes random draws reproducible.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Generate.Seed = seed
	b.cfg.Generate.UseSeed = true
	return b
}

// WithAudit sets the number of audit samples.
func (b *ConfigBuilder) WithAudit(samples int) *ConfigBuilder {
	b.cfg.Generate.AuditSamples = samples
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
