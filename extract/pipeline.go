// Package extract orchestrates section extraction over filings.
// It runs the per-document pipeline (locate, convert, normalize) and
// drives batches of filings through a worker pool.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/cespare/xxhash/v2"
)

// Pipeline runs the extraction state machine for a single filing.
// It is stateless across calls and safe for concurrent use.
type Pipeline struct {
	Locator   secfilings.Locator
	Converter secfilings.Converter
	Section   *secfilings.Section

	// Markdown, if set, renders the span as Markdown instead of the
	// text conversion and normalization path. Markdown keeps its own
	// structure, so the soft-wrap repair never applies to it.
	Markdown secfilings.MarkdownConverter

	// Logger receives the audit stream: suspicious boundary orders,
	// short sections, and unexpected failures, each tagged with the
	// originating filing. If nil, events are discarded.
	Logger *slog.Logger
}

// Extract processes one filing. It always returns a record: fatal
// conditions, including panics from the parsing layers, become failure
// records tagged with the filing path, and the causing error is
// returned alongside for reporting. A non-nil error therefore never
// means the batch should stop.
func (p *Pipeline) Extract(ctx context.Context, filing secfilings.Filing) (extraction *secfilings.Extraction, err error) {
	logger := p.logger().With("path", filing.Path, "symbol", filing.Symbol)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
			logger.Error("unexpected failure", "panic", r)
			extraction = p.failure(filing)
		}
	}()

	if err := ctx.Err(); err != nil {
		return p.failure(filing), err
	}

	raw, err := os.ReadFile(filing.Path)
	if err != nil {
		logger.Error("read filing", "err", err)
		return p.failure(filing), err
	}

	span, err := p.Locator.Locate(string(raw), p.Section)
	if err != nil {
		if secfilings.ErrorCode(err) == secfilings.ENOSPAN {
			// Structural extraction fails exactly when the matched
			// pair is inverted in document order.
			logger.Warn("suspicious boundary order", "err", err)
		}
		logger.Error("locate section", "section", p.Section.Name, "err", err)
		return p.failure(filing), err
	}
	if span.Suspicious {
		logger.Warn("suspicious boundary order",
			"start", span.StartHeading,
			"end", span.EndHeading,
		)
	}

	text, err := p.convert(span.HTML)
	if err != nil {
		logger.Error("convert section", "err", err)
		return p.failure(filing), err
	}
	if secfilings.TooShort(text) {
		logger.Warn("section too short", "length", len(text), "text", text)
	}

	return &secfilings.Extraction{
		Symbol:      filing.Symbol,
		FilingTime:  filing.FilingTime,
		Path:        filing.Path,
		Text:        text,
		TextHash:    hashText(text),
		Status:      secfilings.StatusSuccess,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

// convert renders the span through the configured output path.
func (p *Pipeline) convert(html string) (string, error) {
	if p.Markdown != nil {
		return p.Markdown.Convert(html)
	}
	text, err := p.Converter.Text(html)
	if err != nil {
		return "", err
	}
	return secfilings.Normalize(text), nil
}

// failure builds the failure record for a filing.
func (p *Pipeline) failure(filing secfilings.Filing) *secfilings.Extraction {
	return &secfilings.Extraction{
		Symbol:      filing.Symbol,
		FilingTime:  filing.FilingTime,
		Path:        filing.Path,
		Text:        secfilings.FailureText(filing.Path),
		Status:      secfilings.StatusFailure,
		ExtractedAt: time.Now().UTC(),
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// hashText computes an xxhash of the extracted text.
func hashText(text string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(text))
}
