package mock

import secfilings "github.com/Guest400123064/parse-sec-filings"

var _ secfilings.Locator = (*Locator)(nil)

// Locator is a mock implementation of secfilings.Locator.
type Locator struct {
	LocateFn func(raw string, section *secfilings.Section) (*secfilings.Span, error)
}

func (l *Locator) Locate(raw string, section *secfilings.Section) (*secfilings.Span, error) {
	return l.LocateFn(raw, section)
}
