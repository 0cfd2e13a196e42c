package slog

import (
	"log/slog"
	"time"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

// Ensure LoggingConverter implements secfilings.Converter.
var _ secfilings.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   secfilings.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next secfilings.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Text delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Text(html string) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("text conversion",
			"html_bytes", len(html),
			"text_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Text(html)
}
