package extract

import (
	"context"
	"runtime"
	"sync/atomic"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/bloom"
	"golang.org/x/sync/errgroup"
)

// seenFalsePositiveRate sizes the duplicate filter. A false positive
// skips a filing as a presumed duplicate; the skip is reported, and
// extraction is best-effort by design, so a rare one is acceptable.
const seenFalsePositiveRate = 1e-4

// Runner drives a batch of filings through the pipeline with a worker
// pool. Filings are independent computations; a failure in one never
// affects the others, and no ordering is guaranteed between them.
type Runner struct {
	Pipeline *Pipeline

	// Extractions, if set, receives every record as it is collected.
	Extractions secfilings.ExtractionService

	// Concurrency bounds the worker pool. Defaults to the number of
	// CPUs; extraction is CPU-bound.
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Failed    int
	Skipped   int
	Bytes     int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// runResult pairs a record with the error that produced it, if any.
type runResult struct {
	extraction *secfilings.Extraction
	err        error
}

// Run extracts the target section from every filing and returns the
// aggregate counts together with all records in completion order.
// The progress callback, if provided, receives events as filings are
// processed.
func (r *Runner) Run(ctx context.Context, filings []secfilings.Filing, progress ProgressFunc) (*Result, []*secfilings.Extraction, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	// Skip duplicate paths up front so workers never race on the
	// same document.
	seen := bloom.NewFilter(uint(len(filings))+1, seenFalsePositiveRate)
	var result Result
	pending := make([]secfilings.Filing, 0, len(filings))
	for _, filing := range filings {
		if seen.Test(filing.Path) {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Path: filing.Path})
			}
			continue
		}
		seen.Add(filing.Path)
		pending = append(pending, filing)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan runResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, filing := range pending {
			filing := filing
			g.Go(func() error {
				extraction, err := r.Pipeline.Extract(gctx, filing)
				resultCh <- runResult{extraction: extraction, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var extractions []*secfilings.Extraction
	for res := range resultCh {
		completed.Add(1)
		extractions = append(extractions, res.extraction)

		if res.extraction.Failed() {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Path:      res.extraction.Path,
					Error:     res.err,
				})
			}
			continue
		}

		result.Extracted++
		result.Bytes += len(res.extraction.Text)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      res.extraction.Path,
			})
		}
	}

	// Persist after collection so storage contention never slows the
	// workers down.
	if r.Extractions != nil {
		for _, extraction := range extractions {
			if err := r.Extractions.CreateExtraction(ctx, extraction); err != nil {
				return nil, nil, err
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, extractions, nil
}
