// Package goquery locates section boundaries inside raw filing HTML.
// It parses the document with the tolerant x/net/html parser (via
// goquery), scans heading-bearing tags for the section's start and end
// headings, and extracts the HTML span between them structurally.
package goquery

import (
	"bytes"
	"regexp"
	"strings"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Ensure Locator implements secfilings.Locator at compile time.
var _ secfilings.Locator = (*Locator)(nil)

// htmlRegion matches the first <html>...</html> region of a raw
// document. Filings carry SGML metadata ahead of the payload and
// sometimes several documents per file, so the match is non-greedy to
// stop at the first closing tag.
var htmlRegion = regexp.MustCompile(`(?is)<html.*?>(.*?)</html>`)

// candidateTags are the tag types known to carry section headings,
// in scan priority order. Candidates are concatenated type by type,
// each type in document order; the boundary scan walks the combined
// list backward, so this ordering decides which heading is examined
// first. Do not reorder.
var candidateTags = []string{"font", "b", "p", "div", "table"}

// Locator finds a target section inside one raw filing document.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// candidate is one heading-bearing tag considered during the boundary
// scan.
type candidate struct {
	node    *html.Node
	heading string
}

// Locate isolates the HTML payload, finds the section boundaries, and
// returns the HTML span strictly between them.
func (l *Locator) Locate(raw string, section *secfilings.Section) (*secfilings.Span, error) {
	m := htmlRegion.FindStringSubmatch(raw)
	if m == nil {
		return nil, secfilings.Errorf(secfilings.EMALFORMED, "no content between <html> and </html>")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(m[1]))
	if err != nil {
		return nil, secfilings.Errorf(secfilings.EMALFORMED, "parse html: %v", err)
	}

	candidates := collectCandidates(doc)

	// Scan backward so the section's real heading, which always
	// follows any table-of-contents mention of it, is found first.
	// Stop as soon as both boundaries are recorded.
	var start, end *candidate
	var startIdx, endIdx int
	for ri := 0; ri < len(candidates); ri++ {
		c := &candidates[len(candidates)-1-ri]
		if section.MatchesStart(c.heading) {
			start, startIdx = c, ri
		}
		if section.MatchesEnd(c.heading) {
			end, endIdx = c, ri
		}
		if start != nil && end != nil {
			break
		}
	}

	if start == nil || end == nil {
		return nil, secfilings.Errorf(secfilings.ENOBOUNDARY,
			"no boundary for section %q: start found=%t end found=%t",
			section.Name, start != nil, end != nil)
	}

	// The end boundary normally sits after the start boundary in the
	// document, i.e. at a smaller reverse-scan index. Anything else
	// signals a duplicate or table-of-contents match; the caller
	// proceeds with whatever was found.
	suspicious := startIdx <= endIdx

	spanHTML, err := spanBetween(start.node, end.node)
	if err != nil {
		return nil, err
	}

	return &secfilings.Span{
		HTML:         spanHTML,
		StartHeading: start.heading,
		EndHeading:   end.heading,
		Suspicious:   suspicious,
	}, nil
}

// collectCandidates gathers all heading-bearing tags, type by type in
// priority order, each type in document order.
func collectCandidates(doc *goquery.Document) []candidate {
	var candidates []candidate
	for _, tag := range candidateTags {
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			candidates = append(candidates, candidate{
				node:    sel.Nodes[0],
				heading: secfilings.NormalizeHeading(sel.Text()),
			})
		})
	}
	return candidates
}

// spanBetween renders everything strictly between the start and end
// nodes in document order: the close tags of start's ancestors, every
// complete subtree in between, and the open tags of end's ancestors.
// Returns ENOSPAN if the end node is not reachable forward of the
// start node (the boundaries came from a suspicious pair).
func spanBetween(start, end *html.Node) (string, error) {
	root := start
	for root.Parent != nil {
		root = root.Parent
	}

	w := &spanWriter{start: start, end: end}
	w.walk(root)

	if !w.finished {
		return "", secfilings.Errorf(secfilings.ENOSPAN,
			"end boundary not reachable after start boundary")
	}
	if w.err != nil {
		return "", secfilings.Errorf(secfilings.EINTERNAL, "render span: %v", w.err)
	}
	return w.buf.String(), nil
}

// spanWriter walks the tree in document order, emitting between the
// start and end nodes.
type spanWriter struct {
	start *html.Node
	end   *html.Node

	buf        bytes.Buffer
	started    bool
	finished   bool
	misordered bool
	err        error
}

// done reports whether the walk has terminated, successfully or not.
func (w *spanWriter) done() bool {
	return w.finished || w.misordered
}

func (w *spanWriter) walk(n *html.Node) {
	if w.done() {
		return
	}
	switch n {
	case w.end:
		if w.started {
			w.finished = true
		} else {
			w.misordered = true
		}
		return
	case w.start:
		// The start subtree itself is excluded from the span.
		w.started = true
		return
	}

	if w.started {
		if !contains(n, w.end) {
			if err := html.Render(&w.buf, n); err != nil && w.err == nil {
				w.err = err
			}
			return
		}
		// n is an ancestor of the end node: emit its open tag and
		// descend; the walk terminates inside.
		if n.Type == html.ElementNode {
			writeOpenTag(&w.buf, n)
		}
		for c := n.FirstChild; c != nil && !w.done(); c = c.NextSibling {
			w.walk(c)
		}
		return
	}

	// Before the start node: descend looking for it. When the start
	// turns up in a child, the close tags of its ancestors belong to
	// the span.
	for c := n.FirstChild; c != nil && !w.done(); c = c.NextSibling {
		w.walk(c)
	}
	if w.started && !w.done() && n.Type == html.ElementNode {
		closeTag(&w.buf, n)
	}
}

// contains reports whether target is within the subtree rooted at n.
func contains(n, target *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == target || contains(c, target) {
			return true
		}
	}
	return false
}

// writeOpenTag writes the opening tag of an element, attributes
// included.
func writeOpenTag(buf *bytes.Buffer, n *html.Node) {
	buf.WriteByte('<')
	buf.WriteString(n.Data)
	for _, a := range n.Attr {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(a.Val))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
}

// closeTag writes the closing tag of an element.
func closeTag(buf *bytes.Buffer, n *html.Node) {
	buf.WriteString("</")
	buf.WriteString(n.Data)
	buf.WriteByte('>')
}
