package secfilings

// Span is the located section content, still in HTML form.
type Span struct {
	// HTML is everything strictly between the start and end boundary
	// tags.
	HTML string

	// StartHeading and EndHeading are the normalized heading texts the
	// boundary tags matched with.
	StartHeading string
	EndHeading   string

	// Suspicious is set when the end boundary was encountered at or
	// before the start boundary during the reverse scan. This usually
	// means a duplicate or table-of-contents heading was matched; the
	// span is still returned for best-effort processing.
	Suspicious bool
}

// Locator finds a target section inside one raw filing document.
//
// Implementations must tolerate malformed markup: filings are
// machine-generated and frequently invalid strict HTML.
type Locator interface {
	// Locate isolates the HTML payload of the raw document, finds the
	// section boundaries, and returns the span between them.
	// Returns EMALFORMED if no HTML region exists, ENOBOUNDARY if
	// either boundary heading cannot be found, and ENOSPAN if the end
	// boundary is not reachable after the start boundary.
	Locate(raw string, section *Section) (*Span, error)
}

// Converter turns an HTML span into plain narrative text, discarding
// boilerplate and tables. Paragraph breaks are preserved as line
// breaks.
type Converter interface {
	Text(html string) (string, error)
}

// MarkdownConverter renders an HTML span as Markdown, for consumers
// that want the section with inline structure preserved.
type MarkdownConverter interface {
	Convert(html string) (string, error)
}
