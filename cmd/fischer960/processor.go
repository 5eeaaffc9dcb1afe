// processor.go - Input conversion: IDs, letters and FEN to numbered positions
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joakim/fischer960/internal/audit"
	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/config"
	"github.com/joakim/fischer960/internal/engine"
	"github.com/joakim/fischer960/internal/errors"
	"github.com/joakim/fischer960/internal/fischer"
	"github.com/joakim/fischer960/internal/output"
	"github.com/joakim/fischer960/internal/worker"
)

// ProcessingContext holds shared state for one run of the tool.
type ProcessingContext struct {
	cfg         *config.Config
	src         fischer.Source
	auditMethod audit.Method
}

// newProcessingContext creates the context for cfg, choosing the random
// source from the seed settings.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	return &ProcessingContext{
		cfg: cfg,
		src: newSource(cfg.Generate),
	}
}

// newSource returns a seeded source when a seed was given, else system entropy.
func newSource(gen *config.GenerateConfig) fischer.Source {
	if gen.UseSeed {
		return fischer.NewSeededSource(gen.Seed)
	}
	return fischer.CryptoSource{}
}

// poolOptions returns the worker pool settings from the configuration.
func (ctx *ProcessingContext) poolOptions() []worker.PoolOption {
	return []worker.PoolOption{
		worker.WithWorkers(ctx.cfg.Workers),
		worker.WithBufferSize(ctx.cfg.BufferSize),
	}
}

// parseInput converts one input: a decimal ID is decoded, text containing
// '/' is read as a FEN, anything else as back-rank letters in either case.
func parseInput(input string) (int, chess.Arrangement, error) {
	var a chess.Arrangement
	s := strings.TrimSpace(input)

	if s == "" {
		return fischer.NoID, a, fmt.Errorf("empty input: %w", errors.ErrInvalidArrangement)
	}

	if id, err := strconv.Atoi(s); err == nil {
		a, err := fischer.Decode(id)
		if err != nil {
			return fischer.NoID, a, err
		}
		return id, a, nil
	}

	if strings.Contains(s, "/") {
		a, err := engine.ArrangementFromFEN(s)
		if err != nil {
			return fischer.NoID, a, err
		}
		id, err := fischer.Encode(a)
		return id, a, err
	}

	id, err := fischer.EncodeString(s)
	if err != nil {
		return fischer.NoID, a, err
	}
	a, err = fischer.Decode(id)
	return id, a, err
}

// convertFunc returns the pool function converting items read from source.
func convertFunc(source string) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Line: item.Line, Input: item.Input}
		id, a, err := parseInput(item.Input)
		if err != nil {
			result.ID = fischer.NoID
			result.Err = &errors.InputError{Err: err, Source: source, Line: item.Line, Input: item.Input}
			return result
		}
		result.ID = id
		result.Arrangement = a
		return result
	}
}

// readLines reads one input per line. Blank lines and lines starting with
// '#' are skipped; line numbers are kept for error reports.
func readLines(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Index: len(items), Line: line, Input: text})
	}
	if err := scanner.Err(); err != nil {
		return items, errors.Wrap(err, "reading input")
	}
	return items, nil
}

// argItems turns positional arguments into work items numbered from 1.
func argItems(args []string) []worker.WorkItem {
	items := make([]worker.WorkItem, len(args))
	for i, arg := range args {
		items[i] = worker.WorkItem{Index: i, Line: i + 1, Input: arg}
	}
	return items
}

// convert converts items on the worker pool and writes them in input order.
// Invalid inputs are logged and counted; the returned error is an output
// failure.
func convert(ctx *ProcessingContext, source string, items []worker.WorkItem) (failures int, err error) {
	results := worker.Run(items, convertFunc(source), ctx.poolOptions()...)

	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output, "")
	for _, r := range results {
		if r.Err != nil {
			ctx.cfg.Logf(0, "%v", r.Err)
			failures++
			continue
		}
		ctx.cfg.Logf(2, "%s:%d: %q is position %d", source, r.Line, r.Input, r.ID)
		p := &output.Position{ID: r.ID, Arrangement: r.Arrangement, Input: r.Input}
		if err := w.WritePosition(p); err != nil {
			return failures, errors.Wrap(err, "writing output")
		}
	}
	if err := w.Close(); err != nil {
		return failures, errors.Wrap(err, "writing output")
	}

	ctx.cfg.Logf(1, "%d position(s) converted, %d invalid.", len(results)-failures, failures)
	return failures, nil
}
