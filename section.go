package secfilings

import (
	"regexp"
	"strings"
)

// Section defines a target filing section in terms of the heading
// phrasings that open it and the heading phrasings of whatever section
// follows it. Headings are matched against normalized candidate text
// (see NormalizeHeading), so patterns are written without punctuation.
type Section struct {
	// Name identifies the section in logs and error messages.
	Name string

	start *regexp.Regexp
	end   *regexp.Regexp
}

// Item 1A heading phrasings observed across real filings. The
// parenthetical variants cover filers that qualify the heading inline
// (e.g. NEM); "Description of Properties" is an alternate Item 2
// phrasing used by some filers (e.g. LODE).
var (
	item1aStartPatterns = []string{
		`^item 1a ?risk factors$`,
		`^item 1a ?risk factors \(.*?\)$`,
	}
	item1aEndPatterns = []string{
		`^item 1b ?unresolved staff comments$`,
		`^item 2 ?properties$`,
		`^item 2 ?properties \(.*?\)$`,
		`^item 2 description of properties$`,
	}
)

// NewSection builds a Section from start and end heading patterns.
// Each pattern set is compiled as a case-insensitive disjunction.
func NewSection(name string, startPatterns, endPatterns []string) (*Section, error) {
	start, err := regexp.Compile(`(?is)` + strings.Join(startPatterns, `|`))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid start patterns: %v", err)
	}
	end, err := regexp.Compile(`(?is)` + strings.Join(endPatterns, `|`))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid end patterns: %v", err)
	}
	return &Section{Name: name, start: start, end: end}, nil
}

// Item1A returns the built-in "Item 1A: Risk Factors" section target.
func Item1A() *Section {
	s, err := NewSection("Item 1A: Risk Factors", item1aStartPatterns, item1aEndPatterns)
	if err != nil {
		panic(err) // built-in patterns are known valid
	}
	return s
}

// MatchesStart reports whether the normalized heading text opens the
// section.
func (s *Section) MatchesStart(heading string) bool {
	return s.start.MatchString(heading)
}

// MatchesEnd reports whether the normalized heading text opens the
// section that follows the target, i.e. closes the target.
func (s *Section) MatchesEnd(heading string) bool {
	return s.end.MatchString(heading)
}

// headingPunct strips the punctuation that varies freely between
// filings ("Item 1A." vs "Item 1A:" vs "Item 1A,").
var headingPunct = regexp.MustCompile(`[.:,;]`)

// headingSpace collapses whitespace runs. Go's \s is ASCII-only, so
// the Unicode separator class is needed for the non-breaking, em and
// thin spaces layout tools scatter through heading markup.
var headingSpace = regexp.MustCompile(`[\s\p{Z}]+`)

// NormalizeHeading prepares a candidate tag's concatenated text for
// pattern matching: punctuation stripped, whitespace runs collapsed to
// single spaces, surrounding whitespace trimmed.
func NormalizeHeading(text string) string {
	s := headingPunct.ReplaceAllString(text, "")
	s = headingSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
