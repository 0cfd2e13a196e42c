package secfilings

import (
	"context"
	"fmt"
	"time"
)

// Filing identifies one raw 10-K filing document on disk. The document
// may contain non-HTML preamble (SGML metadata) ahead of the HTML
// payload.
type Filing struct {
	// Symbol is the company ticker the filing belongs to.
	Symbol string `json:"symbol"`

	// FilingTime is the filing date in "yyyy-mm" form.
	FilingTime string `json:"filingTime"`

	// Path is the location of the raw document.
	Path string `json:"path"`
}

// Validate returns an error if the filing contains invalid fields.
func (f *Filing) Validate() error {
	if f.Path == "" {
		return Errorf(EINVALID, "filing path required")
	}
	return nil
}

// Extraction status codes. The numeric values are part of the output
// record format consumed downstream.
const (
	StatusSuccess = 0
	StatusFailure = 1
)

// Extraction is the per-filing result record. Failure records keep the
// source path recoverable from the text marker so they can be triaged
// from the output file alone.
type Extraction struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	FilingTime  string    `json:"filing_time"`
	Path        string    `json:"path"`
	Text        string    `json:"item1a"`
	TextHash    string    `json:"textHash"`
	Status      int       `json:"status"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Failed reports whether the record is a failure record.
func (e *Extraction) Failed() bool {
	return e.Status == StatusFailure
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "extraction path required")
	}
	if e.Status != StatusSuccess && e.Status != StatusFailure {
		return Errorf(EINVALID, "extraction status must be 0 or 1")
	}
	return nil
}

// FailureText returns the tagged text recorded for a filing that could
// not be extracted.
func FailureText(path string) string {
	return fmt.Sprintf("<FAILED>%s</FAILED>", path)
}

// ExtractionService represents a service for managing extraction records.
type ExtractionService interface {
	// CreateExtraction persists a new extraction record.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves records matching the filter.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtractionsBySymbol removes all records for a symbol.
	DeleteExtractionsBySymbol(ctx context.Context, symbol string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID     *string `json:"id"`
	Symbol *string `json:"symbol"`
	Status *int    `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
