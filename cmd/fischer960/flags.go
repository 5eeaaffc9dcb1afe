// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/joakim/fischer960/internal/audit"
	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/config"
	"github.com/joakim/fischer960/internal/errors"
)

var (
	// Modes
	decodeID     = flag.String("id", "", "Decode this ID (0-959)")
	encodeInput  = flag.String("encode", "", "Encode this arrangement (letters or FEN)")
	randomMode   = flag.Bool("random", false, "Print one random ID and its arrangement")
	generateN    = flag.Int("generate", 0, "Generate N arrangements by direct construction")
	uniqueDraws  = flag.Bool("unique", false, "With -generate, never repeat an arrangement (N <= 960)")
	listAll      = flag.Bool("all", false, "List all 960 starting positions")
	auditSamples = flag.Int("audit", 0, "Run a uniformity audit over N generated samples")
	auditMethod  = flag.String("auditmethod", "direct", "Audit sampling: direct (construct, then encode) or id")
	verifyMode   = flag.Bool("verify", false, "Cross-check the algorithms against the reference table")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "text", "Output format: text, unicode, fen, json")
	blackPieces  = flag.Bool("black", false, "Print black pieces (lower-case letters or black glyphs)")
	shredderFEN  = flag.Bool("shredder", false, "Write castling rights as rook files (Shredder-FEN)")
	showMirror   = flag.Bool("mirror", false, "Also print the mirrored twin of every position")

	// Randomness
	seed = flag.Uint64("seed", 0, "Seed for a reproducible draw (default: system entropy)")

	// Performance options
	workers = flag.Int("j", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("q", false, "Quiet mode (errors only)")
	verbose   = flag.Bool("verbose", false, "Log every position and draw")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// mode is the action selected on the command line.
type mode int

const (
	modeConvert mode = iota // positional arguments or stdin
	modeDecode
	modeEncode
	modeRandom
	modeGenerate
	modeAll
	modeAudit
	modeVerify
)

// selectMode picks the action. When several mode flags are given the
// earliest in this order wins.
func selectMode() mode {
	switch {
	case *verifyMode:
		return modeVerify
	case *auditSamples > 0:
		return modeAudit
	case *listAll:
		return modeAll
	case *generateN > 0:
		return modeGenerate
	case *randomMode:
		return modeRandom
	case *decodeID != "":
		return modeDecode
	case *encodeInput != "":
		return modeEncode
	}
	return modeConvert
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyGenerateFlags(cfg, isFlagSet("seed"))

	if *workers > 0 {
		cfg.Workers = *workers
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return cfg.Validate()
}

// applyOutputFlags configures the output format and rendering.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	if *blackPieces {
		cfg.Output.Colour = chess.Black
	}
	cfg.Output.Shredder = *shredderFEN
	cfg.Output.ShowMirror = *showMirror
	return nil
}

// applyGenerateFlags configures random generation and auditing.
func applyGenerateFlags(cfg *config.Config, seeded bool) {
	if *generateN > 0 {
		cfg.Generate.Count = *generateN
	}
	cfg.Generate.Unique = *uniqueDraws
	cfg.Generate.AuditSamples = *auditSamples
	if seeded {
		cfg.Generate.Seed = *seed
		cfg.Generate.UseSeed = true
	}
}

// parseAuditMethod converts the -auditmethod value.
func parseAuditMethod(s string) (audit.Method, error) {
	switch s {
	case "direct", "":
		return audit.Direct, nil
	case "id":
		return audit.ViaID, nil
	}
	return audit.Direct, fmt.Errorf("unknown audit method %q (want direct or id): %w", s, errors.ErrInvalidConfig)
}
