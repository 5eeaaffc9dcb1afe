// Package config provides configuration for the fischer960 tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/joakim/fischer960/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of goroutines used for batch work
	Workers int

	// BufferSize bounds the work and result channels of the worker pool
	BufferSize int

	Output   *OutputConfig
	Generate *GenerateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		BufferSize: 100,
		Output:     NewOutputConfig(),
		Generate:   NewGenerateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.Output.Format < Text || c.Output.Format > JSON {
		return fmt.Errorf("output format %d: %w", int(c.Output.Format), errors.ErrInvalidConfig)
	}
	return c.Generate.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
