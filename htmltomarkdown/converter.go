// Package htmltomarkdown renders extracted section spans as Markdown.
package htmltomarkdown

import (
	"strings"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// Ensure Converter implements secfilings.MarkdownConverter at compile time.
var _ secfilings.MarkdownConverter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert a section span to
// Markdown. No table plugin is registered: tables in a risk-factors
// span are financial exhibits that the text output drops as well.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms the HTML span into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", secfilings.Errorf(secfilings.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
