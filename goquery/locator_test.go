package goquery_test

import (
	"testing"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Locator implements secfilings.Locator at compile time.
var _ secfilings.Locator = (*goquery.Locator)(nil)

// filing wraps body markup in the raw-document shape produced by the
// downloader: SGML preamble, then the HTML payload.
func filing(body string) string {
	return "<SEC-DOCUMENT>0000000000-08-000000.txt\n" +
		"<FILED-AS-OF-DATE>20080215\n" +
		"<html>\n<head><title>FORM 10-K</title></head>\n<body>\n" + body + "\n</body>\n</html>"
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("extracts span between start and end headings", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<font>Item 1A. Risk Factors</font>
<p>We face substantial commodity price risk.</p>
<p>Our operations depend on a single mine site.</p>
<font>Item 1B. Unresolved Staff Comments</font>
<p>None.</p>`)

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.False(t, span.Suspicious)
		assert.Equal(t, "Item 1A Risk Factors", span.StartHeading)
		assert.Equal(t, "Item 1B Unresolved Staff Comments", span.EndHeading)
		assert.Contains(t, span.HTML, "substantial commodity price risk")
		assert.Contains(t, span.HTML, "single mine site")
		assert.NotContains(t, span.HTML, "Item 1A. Risk Factors")
		assert.NotContains(t, span.HTML, "Unresolved Staff Comments")
		assert.NotContains(t, span.HTML, "None.")
	})

	t.Run("skips table of contents mention of the heading", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<font>Item 1A. Risk Factors</font>
<font>Item 2. Properties</font>
<p>toc filler between the index entries</p>
<font>Item 1A. Risk Factors</font>
<p>The real narrative about risks.</p>
<font>Item 2. Properties</font>
<p>Our properties are located in Nevada.</p>`)

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.False(t, span.Suspicious)
		assert.Contains(t, span.HTML, "real narrative about risks")
		assert.NotContains(t, span.HTML, "toc filler")
	})

	t.Run("matches alternate end phrasings", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<font>Item 1A Risk Factors (Dollars in thousands)</font>
<p>Risk narrative.</p>
<font>Item 2. Description of Properties</font>`)

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.Equal(t, "Item 2 Description of Properties", span.EndHeading)
		assert.Contains(t, span.HTML, "Risk narrative.")
	})

	t.Run("finds headings split across nested markup", func(t *testing.T) {
		t.Parallel()

		// Machine-generated filings scatter a single heading across
		// nested spans and entities.
		raw := filing(`
<div><b>Item&nbsp;1A.</b> <b>Risk</b> Factors</div>
<p>Nested heading narrative.</p>
<div><b>Item&nbsp;1B.</b> Unresolved Staff Comments</div>`)

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.Contains(t, span.HTML, "Nested heading narrative.")
	})

	t.Run("returns EMALFORMED without html region", func(t *testing.T) {
		t.Parallel()

		loc := goquery.NewLocator()
		_, err := loc.Locate("<SEC-DOCUMENT>plain text, no markup</SEC-DOCUMENT>", secfilings.Item1A())

		require.Error(t, err)
		assert.Equal(t, secfilings.EMALFORMED, secfilings.ErrorCode(err))
	})

	t.Run("returns ENOBOUNDARY without a start heading", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<p>Some narrative without any item headings.</p>
<font>Item 2. Properties</font>`)

		loc := goquery.NewLocator()
		_, err := loc.Locate(raw, secfilings.Item1A())

		require.Error(t, err)
		assert.Equal(t, secfilings.ENOBOUNDARY, secfilings.ErrorCode(err))
	})

	t.Run("returns ENOBOUNDARY without an end heading", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<font>Item 1A. Risk Factors</font>
<p>Narrative that never terminates.</p>`)

		loc := goquery.NewLocator()
		_, err := loc.Locate(raw, secfilings.Item1A())

		require.Error(t, err)
		assert.Equal(t, secfilings.ENOBOUNDARY, secfilings.ErrorCode(err))
	})

	t.Run("flags suspicious scan order across tag types", func(t *testing.T) {
		t.Parallel()

		// Start heading in a <p>, end heading in a <font> placed after
		// it in the document. Fonts are scanned after paragraphs in
		// the candidate index space, so the pair looks inverted there
		// even though the document order is fine.
		raw := filing(`
<p>Item 1A. Risk Factors</p>
<div>Scan order narrative.</div>
<font>Item 1B. Unresolved Staff Comments</font>`)

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.True(t, span.Suspicious)
		assert.Contains(t, span.HTML, "Scan order narrative.")
	})

	t.Run("returns ENOSPAN when end precedes start in the document", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<font>Item 2. Properties</font>
<p>Property narrative.</p>
<font>Item 1A. Risk Factors</font>
<p>Trailing narrative with no end heading after it.</p>`)

		loc := goquery.NewLocator()
		_, err := loc.Locate(raw, secfilings.Item1A())

		require.Error(t, err)
		assert.Equal(t, secfilings.ENOSPAN, secfilings.ErrorCode(err))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		// Unclosed tags and stray close tags, as machine-generated
		// filings routinely contain.
		raw := filing(`
<font>Item 1A. Risk Factors</font>
<p>Unclosed paragraph narrative
<p>Another unclosed</b> paragraph
<font>Item 1B. Unresolved Staff Comments</font>`)

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.Contains(t, span.HTML, "Unclosed paragraph narrative")
	})

	t.Run("ignores markup after the first closing html tag", func(t *testing.T) {
		t.Parallel()

		raw := filing(`
<font>Item 1A. Risk Factors</font>
<p>First document narrative.</p>
<font>Item 1B. Unresolved Staff Comments</font>`) + `
<html><body><font>Item 1A. Risk Factors</font>
<p>Second document narrative.</p>
<font>Item 2. Properties</font></body></html>`

		loc := goquery.NewLocator()
		span, err := loc.Locate(raw, secfilings.Item1A())

		require.NoError(t, err)
		assert.Contains(t, span.HTML, "First document narrative.")
		assert.NotContains(t, span.HTML, "Second document narrative.")
	})
}
