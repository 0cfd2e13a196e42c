package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ secfilings.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements secfilings.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// CreateExtraction persists a new extraction record. The ID is
// assigned here; the text hash is computed when the caller has not
// already set one.
func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *secfilings.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	extraction.ID = uuid.New().String()
	if extraction.ExtractedAt.IsZero() {
		extraction.ExtractedAt = time.Now().UTC()
	}
	if extraction.TextHash == "" {
		extraction.TextHash = fmt.Sprintf("%x", xxhash.Sum64String(extraction.Text))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, symbol, filing_time, path, text, text_hash, status, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.Symbol, extraction.FilingTime, extraction.Path, extraction.Text,
		extraction.TextHash, extraction.Status, extraction.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves a record by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*secfilings.Extraction, error) {
	var e secfilings.Extraction
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, symbol, filing_time, path, text, text_hash, status, extracted_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&e.ID, &e.Symbol, &e.FilingTime, &e.Path, &e.Text, &e.TextHash, &e.Status, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, secfilings.Errorf(secfilings.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	e.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
	}

	return &e, nil
}

// FindExtractions retrieves records matching the filter, most recent
// first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter secfilings.ExtractionFilter) ([]*secfilings.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, symbol, filing_time, path, text, text_hash, status, extracted_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Symbol != nil {
		query.WriteString(" AND symbol = ?")
		args = append(args, *filter.Symbol)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY extracted_at DESC, symbol ASC")

	if filter.Limit > 0 || filter.Offset > 0 {
		// OFFSET is only valid after a LIMIT clause; -1 means unlimited.
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*secfilings.Extraction
	for rows.Next() {
		var e secfilings.Extraction
		var extractedAt string

		if err := rows.Scan(&e.ID, &e.Symbol, &e.FilingTime, &e.Path, &e.Text,
			&e.TextHash, &e.Status, &extractedAt); err != nil {
			return nil, err
		}

		e.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
		}

		extractions = append(extractions, &e)
	}

	return extractions, rows.Err()
}

// DeleteExtractionsBySymbol removes all records for a symbol.
func (s *ExtractionService) DeleteExtractionsBySymbol(ctx context.Context, symbol string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE symbol = ?", symbol)
	return err
}
