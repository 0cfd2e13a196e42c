package mock

import (
	"context"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

var _ secfilings.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of secfilings.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn          func(ctx context.Context, extraction *secfilings.Extraction) error
	FindExtractionByIDFn        func(ctx context.Context, id string) (*secfilings.Extraction, error)
	FindExtractionsFn           func(ctx context.Context, filter secfilings.ExtractionFilter) ([]*secfilings.Extraction, error)
	DeleteExtractionsBySymbolFn func(ctx context.Context, symbol string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *secfilings.Extraction) error {
	return s.CreateExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*secfilings.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter secfilings.ExtractionFilter) ([]*secfilings.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtractionsBySymbol(ctx context.Context, symbol string) error {
	return s.DeleteExtractionsBySymbolFn(ctx, symbol)
}
