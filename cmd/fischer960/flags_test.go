package main

import (
	"errors"
	"testing"

	"github.com/joakim/fischer960/internal/audit"
	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/config"
	fserrors "github.com/joakim/fischer960/internal/errors"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreUint64(ptr *uint64, val uint64) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// selectMode
// ---------------------------------------------------------------------------

func TestSelectMode(t *testing.T) {
	t.Run("defaults to conversion", func(t *testing.T) {
		if got := selectMode(); got != modeConvert {
			t.Errorf("selectMode() = %d; want modeConvert", got)
		}
	})

	tests := []struct {
		name  string
		apply func() func()
		want  mode
	}{
		{"id", func() func() { return saveRestoreString(decodeID, "518") }, modeDecode},
		{"encode", func() func() { return saveRestoreString(encodeInput, "RNBQKBNR") }, modeEncode},
		{"random", func() func() { return saveRestoreBool(randomMode, true) }, modeRandom},
		{"generate", func() func() { return saveRestoreInt(generateN, 5) }, modeGenerate},
		{"all", func() func() { return saveRestoreBool(listAll, true) }, modeAll},
		{"audit", func() func() { return saveRestoreInt(auditSamples, 100) }, modeAudit},
		{"verify", func() func() { return saveRestoreBool(verifyMode, true) }, modeVerify},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.apply()()
			if got := selectMode(); got != tt.want {
				t.Errorf("selectMode() = %d; want %d", got, tt.want)
			}
		})
	}

	t.Run("verify wins over random", func(t *testing.T) {
		defer saveRestoreBool(verifyMode, true)()
		defer saveRestoreBool(randomMode, true)()
		if got := selectMode(); got != modeVerify {
			t.Errorf("selectMode() = %d; want modeVerify", got)
		}
	})
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("format and rendering", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "fen")()
		defer saveRestoreBool(blackPieces, true)()
		defer saveRestoreBool(shredderFEN, true)()
		defer saveRestoreBool(showMirror, true)()

		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Format != config.FEN {
			t.Errorf("Format = %v; want fen", cfg.Output.Format)
		}
		if cfg.Output.Colour != chess.Black || !cfg.Output.Shredder || !cfg.Output.ShowMirror {
			t.Errorf("Output = %+v", cfg.Output)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "pgn")()
		err := applyOutputFlags(config.NewConfig())
		if !errors.Is(err, fserrors.ErrInvalidConfig) {
			t.Errorf("applyOutputFlags() error = %v; want ErrInvalidConfig", err)
		}
	})
}

// ---------------------------------------------------------------------------
// applyGenerateFlags
// ---------------------------------------------------------------------------

func TestApplyGenerateFlags(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		unique     bool
		audit      int
		seeded     bool
		seed       uint64
		wantCount  int
		wantUseSeed bool
	}{
		{"defaults", 0, false, 0, false, 0, 1, false},
		{"count", 12, false, 0, false, 0, 12, false},
		{"unique", 960, true, 0, false, 0, 960, false},
		{"seed given", 3, false, 0, true, 99, 3, true},
		{"seed zero given", 1, false, 0, true, 0, 1, true},
		{"audit", 0, false, 5000, false, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(generateN, tt.n)()
			defer saveRestoreBool(uniqueDraws, tt.unique)()
			defer saveRestoreInt(auditSamples, tt.audit)()
			defer saveRestoreUint64(seed, tt.seed)()

			cfg := config.NewConfig()
			applyGenerateFlags(cfg, tt.seeded)

			if cfg.Generate.Count != tt.wantCount {
				t.Errorf("Count = %d; want %d", cfg.Generate.Count, tt.wantCount)
			}
			if cfg.Generate.Unique != tt.unique {
				t.Errorf("Unique = %v; want %v", cfg.Generate.Unique, tt.unique)
			}
			if cfg.Generate.AuditSamples != tt.audit {
				t.Errorf("AuditSamples = %d; want %d", cfg.Generate.AuditSamples, tt.audit)
			}
			if cfg.Generate.UseSeed != tt.wantUseSeed || cfg.Generate.Seed != tt.seed {
				t.Errorf("seed = %d (use %v); want %d (use %v)",
					cfg.Generate.Seed, cfg.Generate.UseSeed, tt.seed, tt.wantUseSeed)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		defer saveRestoreBool(verbose, true)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})

	t.Run("workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 3)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d; want 3", cfg.Workers)
		}
	})

	t.Run("too many unique draws", func(t *testing.T) {
		defer saveRestoreInt(generateN, 961)()
		defer saveRestoreBool(uniqueDraws, true)()
		err := applyFlags(config.NewConfig())
		if !errors.Is(err, fserrors.ErrInvalidConfig) {
			t.Errorf("applyFlags() error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestParseAuditMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    audit.Method
		wantErr bool
	}{
		{"direct", audit.Direct, false},
		{"", audit.Direct, false},
		{"id", audit.ViaID, false},
		{"table", audit.Direct, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAuditMethod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAuditMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAuditMethod(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}
