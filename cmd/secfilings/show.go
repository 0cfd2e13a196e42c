package main

import (
	"fmt"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, secfilings.ExtractionFilter{Symbol: &c.Symbol})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secfilings.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no records for %q. Use 'secfilings list' to see stored records.\n", c.Symbol)
		return secfilings.Errorf(secfilings.ENOTFOUND, "no records for %q", c.Symbol)
	}

	for i, e := range extractions {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		status := "ok"
		if e.Failed() {
			status = "FAILED"
		}
		fmt.Fprintf(deps.Stdout, "## %s %s (%s)\n\n", e.Symbol, e.FilingTime, status)
		fmt.Fprintln(deps.Stdout, e.Text)
	}

	return nil
}
