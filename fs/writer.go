package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

// record is the external dump shape consumed by the downstream
// analysis step. Field names are part of the output contract.
type record struct {
	Symbol     string `json:"symbol"`
	FilingTime string `json:"filing_time"`
	Item1A     string `json:"item1a"`
	Status     int    `json:"status"`
}

// Writer dumps extraction records to a JSON file.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write serializes the records as an indented JSON list, creating
// parent directories as needed.
func (w *Writer) Write(extractions []*secfilings.Extraction) error {
	records := make([]record, 0, len(extractions))
	for _, e := range extractions {
		records = append(records, record{
			Symbol:     e.Symbol,
			FilingTime: e.FilingTime,
			Item1A:     e.Text,
			Status:     e.Status,
		})
	}

	data, err := json.MarshalIndent(records, "", " ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(w.path, data, 0644)
}
