// Package trafilatura converts extracted HTML spans to plain text.
package trafilatura

import (
	"strings"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Converter implements secfilings.Converter at compile time.
var _ secfilings.Converter = (*Converter)(nil)

// Converter wraps go-trafilatura to turn a section's HTML span into
// narrative text. Extraction favors precision over recall, so
// ambiguous boilerplate-looking content is dropped rather than kept,
// and tables are excluded: the tables in a risk-factors span are
// financial exhibits, not narrative.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Text converts the HTML span into plain text with paragraph breaks
// preserved as line breaks.
func (c *Converter) Text(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", secfilings.Errorf(secfilings.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		Focus:          trafilatura.FavorPrecision,
		ExcludeTables:  true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return "", err
	}

	return result.ContentText, nil
}
