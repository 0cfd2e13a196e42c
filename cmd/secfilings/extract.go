package main

import (
	"fmt"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/extract"
	"github.com/Guest400123064/parse-sec-filings/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	filings, err := fs.Scan(c.Dir, c.MinYear)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secfilings.ErrorMessage(err))
		return err
	}

	if len(filings) == 0 {
		fmt.Fprintf(deps.Stdout, "No filings found under %q\n", c.Dir)
		return nil
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d filings\n", event.Total)
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r  [%d/%d] %s", event.Completed, event.Total, extract.TruncatePath(event.Path, 60))
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", extract.TruncatePath(event.Path, 60), event.Error)
		case extract.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: duplicate path\n", extract.TruncatePath(event.Path, 60))
		case extract.ProgressFinished:
			fmt.Fprintln(deps.Stdout)
		}
	}

	result, extractions, err := deps.Runner.Run(deps.Ctx, filings, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secfilings.ErrorMessage(err))
		return err
	}

	if err := fs.NewWriter(c.Out).Write(extractions); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Out, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d sections (%s), %d failed, %d skipped\n",
		result.Extracted, extract.FormatBytes(result.Bytes), result.Failed, result.Skipped)
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)

	return nil
}
