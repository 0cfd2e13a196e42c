package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes records in the dump shape", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "extracts", "item1a-full.json")
		w := fs.NewWriter(path)

		err := w.Write([]*secfilings.Extraction{
			{Symbol: "nem", FilingTime: "2008-02", Text: "Risk narrative.", Status: secfilings.StatusSuccess},
			{Symbol: "lode", FilingTime: "2009-02", Text: secfilings.FailureText("some/path"), Status: secfilings.StatusFailure},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var records []map[string]any
		require.NoError(t, json.Unmarshal(data, &records))
		require.Len(t, records, 2)

		assert.Equal(t, "nem", records[0]["symbol"])
		assert.Equal(t, "2008-02", records[0]["filing_time"])
		assert.Equal(t, "Risk narrative.", records[0]["item1a"])
		assert.Equal(t, float64(0), records[0]["status"])

		assert.Equal(t, float64(1), records[1]["status"])
		assert.Contains(t, records[1]["item1a"], "<FAILED>some/path</FAILED>")
	})

	t.Run("empty batch writes an empty list", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, fs.NewWriter(path).Write(nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	})
}
