// draw.go - Random draws, full listing, reference verification and audits
package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joakim/fischer960/internal/audit"
	"github.com/joakim/fischer960/internal/config"
	"github.com/joakim/fischer960/internal/errors"
	"github.com/joakim/fischer960/internal/fischer"
	"github.com/joakim/fischer960/internal/lookup"
	"github.com/joakim/fischer960/internal/output"
	"github.com/joakim/fischer960/internal/tally"
	"github.com/joakim/fischer960/internal/worker"
)

// drawSource returns the source and worker count for a draw. Seeded draws run
// on one worker so the same seed always yields the same sequence.
func (ctx *ProcessingContext) drawSource() (fischer.Source, int) {
	if ctx.cfg.Generate.UseSeed || ctx.cfg.Workers == 1 {
		return ctx.src, 1
	}
	if _, safe := ctx.src.(fischer.CryptoSource); safe {
		return ctx.src, ctx.cfg.Workers
	}
	return fischer.NewLockedSource(ctx.src), ctx.cfg.Workers
}

// drawPositions generates count positions by direct construction. With
// unique set, repeats are redrawn until count distinct positions are held.
func drawPositions(ctx *ProcessingContext, count int, unique bool) ([]*output.Position, error) {
	src, workers := ctx.drawSource()
	generate := func(item worker.WorkItem) worker.ProcessResult {
		a := fischer.Generate(src)
		id, err := fischer.Encode(a)
		return worker.ProcessResult{Index: item.Index, ID: id, Arrangement: a, Err: err}
	}

	seen := tally.New()
	positions := make([]*output.Position, 0, count)
	for len(positions) < count {
		items := make([]worker.WorkItem, count-len(positions))
		for i := range items {
			items[i].Index = i
		}
		results := worker.Run(items, generate, worker.WithWorkers(workers), worker.WithBufferSize(ctx.cfg.BufferSize))
		for _, r := range results {
			if r.Err != nil {
				return nil, errors.Wrap(r.Err, "generated position")
			}
			if seen.CheckAndAdd(r.ID) && unique {
				ctx.cfg.Logf(2, "redrawing repeat of position %d", r.ID)
				continue
			}
			positions = append(positions, &output.Position{ID: r.ID, Arrangement: r.Arrangement})
		}
	}

	ctx.cfg.Logf(2, "%d draw(s), %d distinct position(s), %d repeat(s)",
		seen.Total(), seen.UniqueCount(), seen.DuplicateCount())
	return positions, nil
}

// writeDraw writes the positions of one random draw under a fresh draw ID.
func writeDraw(ctx *ProcessingContext, positions []*output.Position) error {
	draw := uuid.NewString()
	ctx.cfg.Logf(2, "%s", output.FormatHeader(draw, len(positions)))

	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output, draw)
	if jw, ok := w.(*output.JSONWriter); ok && ctx.cfg.Generate.UseSeed {
		jw.SetSeed(ctx.cfg.Generate.Seed)
	}
	return writeAll(w, positions)
}

func writeAll(w output.PositionWriter, positions []*output.Position) error {
	for _, p := range positions {
		if err := w.WritePosition(p); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return errors.Wrap(w.Close(), "writing output")
}

// runGenerate draws cfg.Generate.Count positions by direct construction.
func runGenerate(ctx *ProcessingContext) error {
	positions, err := drawPositions(ctx, ctx.cfg.Generate.Count, ctx.cfg.Generate.Unique)
	if err != nil {
		return err
	}
	return writeDraw(ctx, positions)
}

// runRandom draws one uniform ID and prints its position.
func runRandom(ctx *ProcessingContext) error {
	id, a := fischer.Random(ctx.src)
	return writeDraw(ctx, []*output.Position{{ID: id, Arrangement: a}})
}

// runAll lists every starting position in ID order.
func runAll(ctx *ProcessingContext) error {
	all := fischer.All()
	positions := make([]*output.Position, len(all))
	for id, a := range all {
		positions[id] = &output.Position{ID: id, Arrangement: a}
	}
	return writeAll(output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output, ""), positions)
}

// verifyID checks the decoder, encoder and twin of one ID against the
// reference table.
func verifyID(item worker.WorkItem) worker.ProcessResult {
	id := item.Index
	result := worker.ProcessResult{Index: id, ID: id}

	want, err := lookup.Arrangement(id)
	if err != nil {
		result.Err = err
		return result
	}
	got, err := fischer.Decode(id)
	if err != nil {
		result.Err = err
		return result
	}
	result.Arrangement = got

	if got != want {
		result.Err = fmt.Errorf("id %d decodes to %s, table has %s: %w", id, got, want, errors.ErrInvalidArrangement)
		return result
	}
	if back, err := fischer.Encode(want); err != nil || back != id {
		result.Err = fmt.Errorf("%s encodes to %d (%v), table has %d: %w", want, back, err, id, errors.ErrInvalidID)
		return result
	}
	twin, _ := fischer.Twin(id)
	if wantTwin, err := lookup.ID(want.Mirror()); err != nil || twin != wantTwin {
		result.Err = fmt.Errorf("twin of %d is %d, table has %d: %w", id, twin, wantTwin, errors.ErrInvalidID)
	}
	return result
}

// runVerify cross-checks all 960 IDs against the reference table and
// returns the number of mismatches.
func runVerify(ctx *ProcessingContext) (int, error) {
	items := make([]worker.WorkItem, fischer.NumPositions)
	for i := range items {
		items[i].Index = i
	}

	mismatches := 0
	for _, r := range worker.Run(items, verifyID, ctx.poolOptions()...) {
		if r.Err != nil {
			ctx.cfg.Logf(0, "%v", r.Err)
			mismatches++
			continue
		}
		ctx.cfg.Logf(2, "%d %s ok", r.ID, r.Arrangement)
	}

	_, err := fmt.Fprintf(ctx.cfg.OutputFile, "verified %d position(s) against the reference table, %d mismatch(es)\n",
		fischer.NumPositions, mismatches)
	return mismatches, errors.Wrap(err, "writing output")
}

// runAudit samples the generator and reports the chi-square test. A rejected
// audit counts as one failure.
func runAudit(ctx *ProcessingContext) (int, error) {
	report, err := audit.Run(ctx.src, audit.Options{
		Method:  ctx.auditMethod,
		Samples: ctx.cfg.Generate.AuditSamples,
		Workers: ctx.cfg.Workers,
	})
	if err != nil {
		return 0, err
	}

	if ctx.cfg.Output.Format == config.JSON {
		err = output.EncodeJSON(ctx.cfg.OutputFile, report)
	} else {
		_, err = fmt.Fprintln(ctx.cfg.OutputFile, report)
	}
	if err != nil {
		return 0, errors.Wrap(err, "writing output")
	}

	if !report.Uniform(audit.DefaultAlpha) {
		ctx.cfg.Logf(0, "uniformity rejected at alpha %g", audit.DefaultAlpha)
		return 1, nil
	}
	return 0, nil
}
