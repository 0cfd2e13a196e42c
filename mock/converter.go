package mock

import secfilings "github.com/Guest400123064/parse-sec-filings"

var _ secfilings.Converter = (*Converter)(nil)

// Converter is a mock implementation of secfilings.Converter.
type Converter struct {
	TextFn func(html string) (string, error)
}

func (c *Converter) Text(html string) (string, error) {
	return c.TextFn(html)
}

var _ secfilings.MarkdownConverter = (*MarkdownConverter)(nil)

// MarkdownConverter is a mock implementation of secfilings.MarkdownConverter.
type MarkdownConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *MarkdownConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
