package main

import (
	"fmt"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/extract"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := secfilings.ExtractionFilter{Limit: c.Limit}
	if c.Symbol != "" {
		filter.Symbol = &c.Symbol
	}
	if c.Failed {
		status := secfilings.StatusFailure
		filter.Status = &status
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secfilings.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extraction records found. Use 'secfilings extract' to create some.")
		return nil
	}

	for _, e := range extractions {
		status := "ok"
		if e.Failed() {
			status = "FAILED"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-6s  %s  %-6s  %s\n",
			e.ID, e.Symbol, e.FilingTime, status, extract.FormatBytes(len(e.Text)))
	}

	return nil
}
