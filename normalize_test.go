package secfilings_test

import (
	"strings"
	"testing"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_RemovesPageNumbers(t *testing.T) {
	t.Parallel()

	in := "...end of sentence.\n12\nNext paragraph starts here."
	out := secfilings.Normalize(in)

	assert.NotContains(t, strings.Split(out, "\n"), "12")
	assert.Contains(t, out, "end of sentence.")
	assert.Contains(t, out, "Next paragraph starts here.")
}

func TestNormalize_KeepsLongNumbers(t *testing.T) {
	t.Parallel()

	// Three digits is not a page footer at 10-K scale.
	in := "First paragraph.\n123\nSecond paragraph."
	out := secfilings.Normalize(in)

	assert.Contains(t, out, "123")
}

func TestNormalize_MergesWrappedParagraphs(t *testing.T) {
	t.Parallel()

	in := "Risk Factor One\ncontinues here.\nRisk Factor Two"
	out := secfilings.Normalize(in)

	assert.Equal(t, "Risk Factor One continues here.\nRisk Factor Two", out)
}

func TestNormalize_DigitAndPunctuationContinuations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"digit start continues",
			"Our revenue fell by\n30 percent in fiscal 2008.",
			"Our revenue fell by 30 percent in fiscal 2008.",
		},
		{
			"punctuation start continues",
			"Risks include\n- commodity prices",
			"Risks include - commodity prices",
		},
		{
			"uppercase starts new paragraph",
			"First risk.\nSecond risk.",
			"First risk.\nSecond risk.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, secfilings.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	in := "Risk Factor One\ncontinues here.\n7\nRisk Factor Two\nalso wraps."
	once := secfilings.Normalize(in)
	twice := secfilings.Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalize_TrimsAndDropsEmptyLines(t *testing.T) {
	t.Parallel()

	in := "\n\nRisk Factor One\n\ncontinues.\n\n"
	out := secfilings.Normalize(in)

	assert.Equal(t, "Risk Factor One continues.", out)
}

func TestTooShort(t *testing.T) {
	t.Parallel()

	assert.True(t, secfilings.TooShort("tiny"))
	assert.False(t, secfilings.TooShort(strings.Repeat("a", secfilings.MinSectionLength)))
}
