// Package audit checks empirically that random starting positions are
// uniform over all 960 IDs, using a Pearson chi-square goodness-of-fit test.
package audit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/joakim/fischer960/internal/errors"
	"github.com/joakim/fischer960/internal/fischer"
	"github.com/joakim/fischer960/internal/tally"
	"github.com/joakim/fischer960/internal/worker"
)

// Method selects how samples are drawn.
type Method int

const (
	Direct Method = iota // fischer.Generate, then Encode
	ViaID                // fischer.RandomID
)

// String returns the method name used in reports.
func (m Method) String() string {
	if m == ViaID {
		return "id"
	}
	return "direct"
}

// MarshalText renders the method name in JSON reports.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// DefaultAlpha is the significance level used by Report.Uniform.
const DefaultAlpha = 0.001

// Report summarises one audit run.
type Report struct {
	Method           Method  `json:"method"`
	Samples          int     `json:"samples"`
	Distinct         int     `json:"distinct"` // IDs seen at least once
	Expected         float64 `json:"expected"` // Samples per ID under uniformity
	MinCount         float64 `json:"min"`
	MaxCount         float64 `json:"max"`
	ChiSquare        float64 `json:"chiSquare"`
	DegreesOfFreedom int     `json:"degreesOfFreedom"`
	PValue           float64 `json:"pValue"` // P(X >= ChiSquare) for X ~ chi-square(959)
}

// Uniform reports whether uniformity is not rejected at significance alpha.
func (r *Report) Uniform(alpha float64) bool {
	return r.PValue >= alpha
}

// String renders the report on one line.
func (r *Report) String() string {
	return fmt.Sprintf("%s: %d samples, %d/%d positions seen, counts %.0f..%.0f (expected %.2f), chi-square %.2f on %d df, p = %.4g",
		r.Method, r.Samples, r.Distinct, fischer.NumPositions, r.MinCount, r.MaxCount,
		r.Expected, r.ChiSquare, r.DegreesOfFreedom, r.PValue)
}

// Options configures Run.
type Options struct {
	Method  Method
	Samples int
	Workers int // Goroutines drawing samples; values below 1 mean 1
}

// Run draws opts.Samples positions from src and tests them for uniformity.
// When more than one worker draws, src is wrapped in a fischer.LockedSource
// unless it is already a CryptoSource.
func Run(src fischer.Source, opts Options) (*Report, error) {
	if opts.Samples <= 0 {
		return nil, fmt.Errorf("audit needs a positive sample count, got %d: %w", opts.Samples, errors.ErrInvalidConfig)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if src == nil {
		src = fischer.DefaultSource
	}
	if _, safe := src.(fischer.CryptoSource); !safe && workers > 1 {
		src = fischer.NewLockedSource(src)
	}

	counts := tally.NewThreadSafe()
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		id, err := sample(src, opts.Method)
		if err == nil {
			counts.CheckAndAdd(id)
		}
		return worker.ProcessResult{Index: item.Index, ID: id, Err: err}
	}, worker.WithWorkers(workers), worker.WithBufferSize(4*workers))
	pool.Start()

	go func() {
		for i := 0; i < opts.Samples; i++ {
			pool.Submit(worker.WorkItem{Index: i})
		}
		pool.Close()
	}()

	var firstErr error
	for result := range pool.Results() {
		if result.Err != nil && firstErr == nil {
			firstErr = result.Err
			pool.Stop()
		}
	}
	if firstErr != nil {
		return nil, errors.Wrap(firstErr, "audit sample")
	}

	return Evaluate(counts.Counts(), opts.Method), nil
}

// Evaluate computes the report for observed per-ID counts.
func Evaluate(counts []int, method Method) *Report {
	obs := make([]float64, len(counts))
	total := 0
	distinct := 0
	for i, c := range counts {
		obs[i] = float64(c)
		total += c
		if c > 0 {
			distinct++
		}
	}

	expected := float64(total) / float64(len(counts))
	exp := make([]float64, len(counts))
	for i := range exp {
		exp[i] = expected
	}

	df := len(counts) - 1
	chi := stat.ChiSquare(obs, exp)

	return &Report{
		Method:           method,
		Samples:          total,
		Distinct:         distinct,
		Expected:         expected,
		MinCount:         floats.Min(obs),
		MaxCount:         floats.Max(obs),
		ChiSquare:        chi,
		DegreesOfFreedom: df,
		PValue:           distuv.ChiSquared{K: float64(df)}.Survival(chi),
	}
}

func sample(src fischer.Source, method Method) (int, error) {
	if method == ViaID {
		return fischer.RandomID(src), nil
	}
	return fischer.Encode(fischer.Generate(src))
}
