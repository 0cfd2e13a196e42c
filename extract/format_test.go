package extract_test

import (
	"testing"

	"github.com/Guest400123064/parse-sec-filings/extract"
	"github.com/stretchr/testify/assert"
)

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	t.Run("returns path unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nem/10-K/1.htm", extract.TruncatePath("nem/10-K/1.htm", 50))
	})

	t.Run("truncates with ellipsis keeping the end", func(t *testing.T) {
		t.Parallel()
		path := "filings/nem/10-K/20080221000000/__RAW__.htm"
		result := extract.TruncatePath(path, 20)
		assert.Equal(t, "...00000/__RAW__.htm", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns path unchanged when exactly max length", func(t *testing.T) {
		t.Parallel()
		path := "nem/__RAW__.htm"
		assert.Equal(t, path, extract.TruncatePath(path, len(path)))
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, extract.TruncatePath("nem/__RAW__.htm", 0))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nem", extract.TruncatePath("nem/__RAW__.htm", 3))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", extract.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", extract.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", extract.FormatBytes(2*1024*1024))
	})
}
