package main

import (
	"fmt"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return secfilings.Errorf(secfilings.EINVALID, "use --force to confirm deletion")
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, secfilings.ExtractionFilter{Symbol: &c.Symbol})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secfilings.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no records for %q. Use 'secfilings list' to see stored records.\n", c.Symbol)
		return secfilings.Errorf(secfilings.ENOTFOUND, "no records for %q", c.Symbol)
	}

	if err := deps.Extractions.DeleteExtractionsBySymbol(deps.Ctx, c.Symbol); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", secfilings.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d records for %q\n", len(extractions), c.Symbol)
	return nil
}
