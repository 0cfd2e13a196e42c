package secfilings

import (
	"regexp"
	"strings"
	"unicode"
)

// MinSectionLength is the shortest extracted section considered
// plausible. Results below it are still returned as successes but
// flagged for manual review.
const MinSectionLength = 32

// pageNumber matches the page-footer numbers the source layout injects
// mid-paragraph: a 1-2 digit number alone between two line breaks.
var pageNumber = regexp.MustCompile(`\n[0-9]{1,2}\n`)

// Normalize cleans converter output of page-layout artifacts. It runs
// two stages in order: page-number removal, then re-joining of
// paragraphs that were broken by soft wraps rather than true paragraph
// breaks. Normalize is idempotent.
func Normalize(text string) string {
	// Page numbers first, so a footer number inside a wrapped
	// paragraph does not survive as its own line.
	s := pageNumber.ReplaceAllString(text, " ")

	// A line whose first character is lowercase, a digit, or
	// punctuation continues the previous paragraph; anything else
	// starts a new one.
	paragraphs := []string{""}
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		if continuesParagraph(line) {
			paragraphs[len(paragraphs)-1] = strings.TrimSpace(paragraphs[len(paragraphs)-1] + " " + line)
		} else {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n"))
}

// continuesParagraph reports whether a line is the soft-wrapped
// continuation of the previous one, judged by its first character.
func continuesParagraph(line string) bool {
	r := []rune(line)[0]
	if unicode.IsLetter(r) && unicode.IsLower(r) {
		return true
	}
	if unicode.IsNumber(r) {
		return true
	}
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// TooShort reports whether a normalized section is suspiciously short,
// which usually means the wrong or an empty span was captured.
func TooShort(text string) bool {
	return len(text) < MinSectionLength
}
