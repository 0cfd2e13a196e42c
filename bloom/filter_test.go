package bloom_test

import (
	"testing"

	"github.com/Guest400123064/parse-sec-filings/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("data/filings/nem/10-K/20080215/__RAW__.htm"))

	f.Add("data/filings/nem/10-K/20080215/__RAW__.htm")

	assert.True(t, f.Test("data/filings/nem/10-K/20080215/__RAW__.htm"))
	assert.False(t, f.Test("data/filings/lode/10-K/20090213/__RAW__.htm"))
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	path := "data/filings/nem/10-K/20080215/__RAW__.htm"

	f.Add(path)
	countAfterFirst := f.EstimatedCount()

	f.Add(path)
	f.Add(path)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
}
