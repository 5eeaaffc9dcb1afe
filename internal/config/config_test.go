package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/joakim/fischer960/internal/chess"
	fserrors "github.com/joakim/fischer960/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.Colour != chess.White {
		t.Errorf("Colour = %v, want White", cfg.Colour)
	}
	if cfg.Shredder {
		t.Error("Shredder should be false by default")
	}
	if cfg.ShowMirror {
		t.Error("ShowMirror should be false by default")
	}
}

func TestGenerateConfig_Defaults(t *testing.T) {
	cfg := NewGenerateConfig()

	if cfg.Count != 1 {
		t.Errorf("Count = %d, want 1", cfg.Count)
	}
	if cfg.Unique || cfg.UseSeed {
		t.Error("Unique and UseSeed should be false by default")
	}
	if cfg.AuditSamples != 0 {
		t.Errorf("AuditSamples = %d, want 0", cfg.AuditSamples)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output and log writers should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"unicode", Unicode, false},
		{"FEN", FEN, false},
		{"json", JSON, false},
		{"pgn", Text, true},
		{"", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, fserrors.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputFormatString(t *testing.T) {
	for _, f := range []OutputFormat{Text, Unicode, FEN, JSON} {
		back, err := ParseOutputFormat(f.String())
		if err != nil || back != f {
			t.Errorf("ParseOutputFormat(%q) = %v, %v", f.String(), back, err)
		}
	}
	if OutputFormat(9).String() != "unknown" {
		t.Errorf("OutputFormat(9).String() = %q", OutputFormat(9).String())
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"zero buffer", func(c *Config) { c.BufferSize = 0 }, true},
		{"bad format", func(c *Config) { c.Output.Format = OutputFormat(7) }, true},
		{"negative count", func(c *Config) { c.Generate.Count = -1 }, true},
		{"zero count", func(c *Config) { c.Generate.Count = 0 }, false},
		{"all unique", func(c *Config) { c.Generate.Unique = true; c.Generate.Count = 960 }, false},
		{"too many unique", func(c *Config) { c.Generate.Unique = true; c.Generate.Count = 961 }, true},
		{"many with repeats", func(c *Config) { c.Generate.Count = 5000 }, false},
		{"negative audit", func(c *Config) { c.Generate.AuditSamples = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, fserrors.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "decoded %d", 518)
	cfg.Logf(2, "hidden %d", 1)

	if got := buf.String(); got != "decoded 518\n" {
		t.Errorf("log = %q, want %q", got, "decoded 518\n")
	}

	cfg.LogFile = nil
	cfg.Logf(0, "no writer") // must not panic
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithOutputFormat(FEN).
		WithColour(chess.Black).
		WithShredder(true).
		WithMirror(true).
		WithCount(12).
		WithUnique(true).
		WithSeed(42).
		WithAudit(1000).
		WithWorkers(3).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != FEN || cfg.Output.Colour != chess.Black {
		t.Errorf("output = %+v", cfg.Output)
	}
	if !cfg.Output.Shredder || !cfg.Output.ShowMirror {
		t.Errorf("output flags = %+v", cfg.Output)
	}
	if cfg.Generate.Count != 12 || !cfg.Generate.Unique {
		t.Errorf("generate = %+v", cfg.Generate)
	}
	if !cfg.Generate.UseSeed || cfg.Generate.Seed != 42 {
		t.Errorf("seed = %d, use = %v", cfg.Generate.Seed, cfg.Generate.UseSeed)
	}
	if cfg.Generate.AuditSamples != 1000 {
		t.Errorf("AuditSamples = %d", cfg.Generate.AuditSamples)
	}
	if cfg.Workers != 3 || cfg.Verbosity != 2 {
		t.Errorf("workers = %d, verbosity = %d", cfg.Workers, cfg.Verbosity)
	}

	fmtOut := cfg.OutputFile
	if _, err := fmtOut.Write([]byte("x")); err != nil || !strings.Contains(out.String(), "x") {
		t.Error("WithOutput should set OutputFile")
	}
}
