package config

import (
	"fmt"

	"github.com/joakim/fischer960/internal/errors"
)

// MaxUniqueDraws is the most positions a unique draw can hold.
const MaxUniqueDraws = 960

// GenerateConfig holds settings for random position generation.
type GenerateConfig struct {
	// Count is the number of positions to generate
	Count int

	// Unique forbids repeated positions within one draw
	Unique bool

	// Seed makes the draw reproducible when UseSeed is set
	Seed    uint64
	UseSeed bool

	// AuditSamples is the number of samples for a uniformity audit (0 = off)
	AuditSamples int
}

// NewGenerateConfig creates a GenerateConfig with default values.
func NewGenerateConfig() *GenerateConfig {
	return &GenerateConfig{Count: 1}
}

// Validate checks that the generation settings are usable.
func (g *GenerateConfig) Validate() error {
	if g.Count < 0 {
		return fmt.Errorf("count %d is negative: %w", g.Count, errors.ErrInvalidConfig)
	}
	if g.Unique && g.Count > MaxUniqueDraws {
		return fmt.Errorf("cannot draw %d unique positions, only %d exist: %w",
			g.Count, MaxUniqueDraws, errors.ErrInvalidConfig)
	}
	if g.AuditSamples < 0 {
		return fmt.Errorf("audit sample count %d is negative: %w", g.AuditSamples, errors.ErrInvalidConfig)
	}
	return nil
}
