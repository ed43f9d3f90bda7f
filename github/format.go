package github

import (
	"fmt"
	"strings"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// titlePrefix leads every synced issue title so synced issues are easy to
// tell apart from hand-filed ones.
const titlePrefix = "Plant Guide: "

// IssueTitle returns the issue title for a plant record.
func IssueTitle(rec *plantscraper.Record) string {
	return titlePrefix + rec.Name
}

// IssueBody renders a record as issue markdown. The body ends with an HTML
// comment carrying the record's content hash, so a later sync can tell
// whether the issue is already up to date without diffing the whole body.
func IssueBody(rec *plantscraper.Record, contentHash string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Growing guide](%s)\n", rec.Link)
	if rec.ImageURL != "" {
		fmt.Fprintf(&b, "\n![%s](%s)\n", rec.Name, rec.ImageURL)
	}

	if rec.Fields != nil {
		for _, label := range rec.Fields.Keys() {
			value, _ := rec.Fields.Get(label)
			b.WriteString("\n## " + label + "\n\n")
			writeFieldValue(&b, value)
		}
	}

	b.WriteString("\n" + hashMarker(contentHash) + "\n")
	return b.String()
}

// BodyMatchesHash reports whether an issue body was rendered from content
// with the given hash.
func BodyMatchesHash(body, contentHash string) bool {
	return strings.Contains(body, hashMarker(contentHash))
}

func hashMarker(contentHash string) string {
	return "<!-- content-hash: " + contentHash + " -->"
}

func writeFieldValue(b *strings.Builder, value plantscraper.FieldValue) {
	switch v := value.(type) {
	case plantscraper.Text:
		b.WriteString(string(v) + "\n")
	case *plantscraper.Links:
		for _, text := range v.Keys() {
			url, _ := v.Get(text)
			fmt.Fprintf(b, "- [%s](%s)\n", text, url)
		}
	case *plantscraper.Table:
		writeTable(b, v)
	case *plantscraper.Structured:
		if v.Content != nil {
			b.WriteString(*v.Content + "\n")
		}
		if v.Sections != nil {
			for _, heading := range v.Sections.Keys() {
				content, _ := v.Sections.Get(heading)
				b.WriteString("\n### " + heading + "\n\n")
				switch c := content.(type) {
				case plantscraper.Text:
					b.WriteString(string(c) + "\n")
				case *plantscraper.Table:
					writeTable(b, c)
				}
			}
		}
	}
}

func writeTable(b *strings.Builder, table *plantscraper.Table) {
	if len(table.Headers) == 0 {
		return
	}

	writeTableRow(b, table.Headers)
	separators := make([]string, len(table.Headers))
	for i := range separators {
		separators[i] = "---"
	}
	writeTableRow(b, separators)

	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Keys()))
		for _, key := range row.Keys() {
			cell, _ := row.Get(key)
			cells = append(cells, cell)
		}
		writeTableRow(b, cells)
	}
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" " + escapeTableCell(cell) + " |")
	}
	b.WriteString("\n")
}

// escapeTableCell keeps cell text from breaking the markdown table grid.
func escapeTableCell(cell string) string {
	cell = strings.ReplaceAll(cell, "|", "\\|")
	return strings.ReplaceAll(cell, "\n", " ")
}
