// fischer960 numbers, validates and draws Chess960 starting positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joakim/fischer960/internal/config"
	"github.com/joakim/fischer960/internal/errors"
	"github.com/joakim/fischer960/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fischer960 version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	method, err := parseAuditMethod(*auditMethod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	closeOutput := setupOutputFile(cfg)

	ctx := newProcessingContext(cfg)
	ctx.auditMethod = method

	status := run(ctx, selectMode(), flag.Args(), os.Stdin)

	closeOutput()
	closeLog()
	os.Exit(status)
}

// run performs the selected mode and returns the exit status: 0 on success,
// 1 when any input was invalid or a check failed.
func run(ctx *ProcessingContext, m mode, args []string, stdin io.Reader) int {
	var failures int
	var err error

	switch m {
	case modeVerify:
		failures, err = runVerify(ctx)
	case modeAudit:
		failures, err = runAudit(ctx)
	case modeAll:
		err = runAll(ctx)
	case modeGenerate:
		err = runGenerate(ctx)
	case modeRandom:
		err = runRandom(ctx)
	case modeDecode:
		if _, perr := strconv.Atoi(strings.TrimSpace(*decodeID)); perr != nil {
			ctx.cfg.Logf(0, "%v", &errors.InputError{Err: errors.Wrap(errors.ErrInvalidID, "not a number"), Source: "-id", Input: *decodeID})
			return 1
		}
		failures, err = convert(ctx, "-id", []worker.WorkItem{{Input: *decodeID}})
	case modeEncode:
		if _, perr := strconv.Atoi(strings.TrimSpace(*encodeInput)); perr == nil {
			ctx.cfg.Logf(0, "%v", &errors.InputError{Err: errors.Wrap(errors.ErrInvalidArrangement, "want letters or a FEN, got a number"), Source: "-encode", Input: *encodeInput})
			return 1
		}
		failures, err = convert(ctx, "-encode", []worker.WorkItem{{Input: *encodeInput}})
	default:
		failures, err = convertInputs(ctx, args, stdin)
	}

	if err != nil {
		ctx.cfg.Logf(0, "Error: %v", err)
		return 1
	}
	if failures > 0 {
		return 1
	}
	return 0
}

// convertInputs converts positional arguments, or stdin lines when there are none.
func convertInputs(ctx *ProcessingContext, args []string, stdin io.Reader) (int, error) {
	if len(args) > 0 {
		return convert(ctx, "args", argItems(args))
	}
	items, err := readLines(stdin)
	if err != nil {
		return 0, err
	}
	return convert(ctx, "stdin", items)
}

// setupLogFile configures the log file based on command-line flags and
// returns a function closing it.
func setupLogFile(cfg *config.Config) func() {
	var file *os.File
	var err error

	switch {
	case *logFile != "":
		file, err = os.Create(*logFile)
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	default:
		return func() {}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// setupOutputFile configures the output file based on command-line flags
// and returns a function closing it.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fischer960 [options] [id-or-arrangement...]\n\n")
	fmt.Fprintf(os.Stderr, "Numbers, validates and draws Chess960 starting positions.\n")
	fmt.Fprintf(os.Stderr, "Arguments (or stdin lines when there are none) are converted:\n")
	fmt.Fprintf(os.Stderr, "IDs 0-959 are decoded, back-rank letters or FEN strings are encoded.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text     ID and letters, e.g. 518 RNBQKBNR (default)\n")
	fmt.Fprintf(os.Stderr, "  unicode  ID and chess glyphs\n")
	fmt.Fprintf(os.Stderr, "  fen      starting position FEN (X-FEN, or Shredder-FEN with -shredder)\n")
	fmt.Fprintf(os.Stderr, "  json     JSON document with every rendering\n")
}
