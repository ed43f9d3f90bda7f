// Package goquery implements the plant-page extraction engine using
// CSS-selector DOM traversal. It segments each labeled field into a preamble
// plus named sub-sections keyed by heading elements, and recognizes embedded
// tables and link lists as structured values.
package goquery

import (
	"strings"

	"github.com/niklas-joh/plantScraper"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractOptions control the sibling walk between two boundary markers.
type ExtractOptions struct {
	// StopText truncates extraction at the first occurrence of the token
	// within a sibling's flattened text. Content before the token within
	// that sibling is preserved; everything after is discarded.
	StopText string

	// Tables delegates table siblings to the table extractor. A table is
	// treated as the terminal, complete content of the section: extraction
	// stops and the table takes precedence over any text collected so far.
	Tables bool
}

// ExtractBetween walks forward-sibling nodes starting immediately after
// start, stopping before end (exclusive) or at the end of the parent when
// end is nil. Sibling headings of the boundary tier are skipped, never
// recursed into. List elements expand to one bullet line per item. Returns
// empty text when start is nil or no content is found.
func ExtractBetween(start, end *html.Node, opts ExtractOptions) plantscraper.SectionContent {
	if start == nil {
		return plantscraper.Text("")
	}

	var parts contentParts
	for n := start.NextSibling; n != nil && n != end; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if isBoundaryHeading(n) {
			continue
		}
		if opts.Tables && n.DataAtom == atom.Table {
			return extractTableNode(n)
		}
		if isList(n) {
			parts.addBullets(n)
			continue
		}

		text := nodeText(n)
		if opts.StopText != "" {
			if idx := strings.Index(text, opts.StopText); idx >= 0 {
				if idx > 0 {
					parts.addText(strings.TrimSpace(text[:idx]))
				}
				break
			}
		}
		parts.addText(text)
	}

	return plantscraper.Text(parts.String())
}

// isBoundaryHeading reports whether n is a heading of the tier that
// partitions fields into sub-sections.
func isBoundaryHeading(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.H3
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol)
}

// nodeText flattens the text of n and its descendants: each text node is
// trimmed and non-empty segments are joined with single spaces.
func nodeText(n *html.Node) string {
	var segments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				segments = append(segments, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(segments, " ")
}

// listItems returns the flattened text of every li descendant of a list
// node, in document order.
func listItems(n *html.Node) []string {
	var items []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Li {
			if t := nodeText(n); t != "" {
				items = append(items, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return items
}

// contentParts accumulates flattened content. Consecutive text runs join
// with spaces on one line; every list item gets its own bullet line.
type contentParts struct {
	lines []string
	run   []string
}

func (p *contentParts) addText(text string) {
	if text != "" {
		p.run = append(p.run, text)
	}
}

func (p *contentParts) addBullets(list *html.Node) {
	for _, item := range listItems(list) {
		p.flush()
		p.lines = append(p.lines, "* "+item)
	}
}

func (p *contentParts) flush() {
	if len(p.run) > 0 {
		p.lines = append(p.lines, strings.Join(p.run, " "))
		p.run = nil
	}
}

func (p *contentParts) String() string {
	p.flush()
	return strings.TrimSpace(strings.Join(p.lines, "\n"))
}
