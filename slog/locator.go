// Package slog provides logging decorators for pipeline collaborators.
package slog

import (
	"log/slog"
	"time"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

// Ensure LoggingLocator implements secfilings.Locator.
var _ secfilings.Locator = (*LoggingLocator)(nil)

// LoggingLocator wraps a Locator with debug logging.
type LoggingLocator struct {
	next   secfilings.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next secfilings.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the operation.
func (l *LoggingLocator) Locate(raw string, section *secfilings.Section) (span *secfilings.Span, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"section", section.Name,
			"raw_bytes", len(raw),
			"duration", time.Since(begin),
			"err", err,
		}
		if span != nil {
			attrs = append(attrs,
				"span_bytes", len(span.HTML),
				"suspicious", span.Suspicious,
			)
		}
		l.logger.Info("section location", attrs...)
	}(time.Now())
	return l.next.Locate(raw, section)
}
