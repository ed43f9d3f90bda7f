package notion

import (
	"strings"

	"github.com/samber/lo"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// maxRichTextLength is Notion's limit on a single rich text content value.
const maxRichTextLength = 2000

var (
	selectFields      = []string{"Plant Type", "Soil pH"}
	multiSelectFields = []string{"Sun Exposure", "Bloom Time", "Flower Color", "Hardiness Zone"}
	richTextFields    = []string{
		"Botanical Name", "Photo Credit",
		"Planting", "Growing", "Harvesting", "Wit and Wisdom", "Cooking Notes",
	}
)

// PageProperties maps a record onto the plant database's properties. The
// title and URL properties come from the identity; the remaining fields
// are mapped by name when present, with multi-line values split into
// multi-select options and long text truncated to Notion's limit.
func PageProperties(rec *plantscraper.Record) Properties {
	props := Properties{
		"Name": {Title: richText(rec.Name)},
	}
	if rec.Link != "" {
		props["Link"] = Property{URL: rec.Link}
	}
	if rec.ImageURL != "" {
		props["Image URL"] = Property{URL: rec.ImageURL}
	}

	for _, name := range selectFields {
		if value := fieldText(rec, name); value != "" {
			first := strings.TrimSpace(strings.SplitN(value, "\n", 2)[0])
			if first != "" {
				props[name] = Property{Select: &SelectOption{Name: first}}
			}
		}
	}

	for _, name := range multiSelectFields {
		if value := fieldText(rec, name); value != "" {
			options := lo.FilterMap(strings.Split(value, "\n"), func(line string, _ int) (SelectOption, bool) {
				line = strings.TrimSpace(line)
				return SelectOption{Name: line}, line != ""
			})
			if len(options) > 0 {
				props[name] = Property{MultiSelect: options}
			}
		}
	}

	for _, name := range richTextFields {
		if value := fieldText(rec, name); value != "" {
			props[name] = Property{RichText: richText(truncate(value))}
		}
	}

	return props
}

// fieldText flattens a field value to plain text. Structured fields
// render as preamble plus "heading:" sections; link and table fields have
// no property representation and return "".
func fieldText(rec *plantscraper.Record, name string) string {
	value, ok := rec.Field(name)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case plantscraper.Text:
		return string(v)
	case *plantscraper.Structured:
		var parts []string
		if v.Content != nil && *v.Content != "" {
			parts = append(parts, *v.Content)
		}
		if v.Sections != nil {
			for _, heading := range v.Sections.Keys() {
				content, _ := v.Sections.Get(heading)
				if text, ok := content.(plantscraper.Text); ok {
					parts = append(parts, heading+":\n"+string(text))
				}
			}
		}
		return strings.Join(parts, "\n\n")
	default:
		return ""
	}
}

// truncate caps rich text at Notion's limit. The API counts characters,
// not bytes, so the cut is on runes; byte slicing could split a UTF-8
// sequence and corrupt non-ASCII content.
func truncate(s string) string {
	if len(s) <= maxRichTextLength {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRichTextLength {
		return s
	}
	return string(runes[:maxRichTextLength-3]) + "..."
}

func richText(content string) []RichText {
	return []RichText{{Type: "text", Text: TextContent{Content: content}}}
}

func linkedRichText(content, url string) []RichText {
	return []RichText{{Type: "text", Text: TextContent{Content: content, Link: &TextLink{URL: url}}}}
}

// PageBlocks renders a record's guide content as page blocks: the plant
// image, the structured sections with their sub-headings, the pest table
// and the recipe link list.
func PageBlocks(rec *plantscraper.Record) []Block {
	var blocks []Block

	if rec.ImageURL != "" {
		blocks = append(blocks, imageBlock(rec.ImageURL))
	}

	if rec.Fields == nil {
		return blocks
	}

	for _, label := range rec.Fields.Keys() {
		value, _ := rec.Fields.Get(label)
		switch v := value.(type) {
		case plantscraper.Text:
			blocks = append(blocks, headingBlock(label, 2), paragraphBlock(truncate(string(v))))
		case *plantscraper.Structured:
			blocks = append(blocks, headingBlock(label, 2))
			if v.Content != nil && *v.Content != "" {
				blocks = append(blocks, paragraphBlock(truncate(*v.Content)))
			}
			if v.Sections != nil {
				for _, heading := range v.Sections.Keys() {
					content, _ := v.Sections.Get(heading)
					blocks = append(blocks, headingBlock(heading, 3))
					switch c := content.(type) {
					case plantscraper.Text:
						blocks = append(blocks, paragraphBlock(truncate(string(c))))
					case *plantscraper.Table:
						blocks = append(blocks, tableBlock(c))
					}
				}
			}
		case *plantscraper.Table:
			blocks = append(blocks, headingBlock(label, 2), tableBlock(v))
		case *plantscraper.Links:
			blocks = append(blocks, headingBlock(label, 2))
			for _, text := range v.Keys() {
				url, _ := v.Get(text)
				blocks = append(blocks, bulletBlock(text, url))
			}
		}
	}

	return blocks
}

func paragraphBlock(content string) Block {
	return Block{
		Object:    "block",
		Type:      "paragraph",
		Paragraph: &RichTextBlock{RichText: richText(content)},
	}
}

func headingBlock(content string, level int) Block {
	b := Block{Object: "block"}
	body := &RichTextBlock{RichText: richText(content)}
	if level == 3 {
		b.Type = "heading_3"
		b.Heading3 = body
	} else {
		b.Type = "heading_2"
		b.Heading2 = body
	}
	return b
}

func imageBlock(url string) Block {
	return Block{
		Object: "block",
		Type:   "image",
		Image:  &Image{Type: "external", External: External{URL: url}},
	}
}

func bulletBlock(content, url string) Block {
	body := &RichTextBlock{RichText: richText(content)}
	if url != "" {
		body.RichText = linkedRichText(content, url)
	}
	return Block{
		Object:           "block",
		Type:             "bulleted_list_item",
		BulletedListItem: body,
	}
}

func tableBlock(table *plantscraper.Table) Block {
	rows := make([]Block, 0, len(table.Rows)+1)
	rows = append(rows, tableRowBlock(table.Headers))

	for _, row := range table.Rows {
		cells := lo.Map(row.Keys(), func(key string, _ int) string {
			cell, _ := row.Get(key)
			return cell
		})
		rows = append(rows, tableRowBlock(cells))
	}

	return Block{
		Object: "block",
		Type:   "table",
		Table: &TableBlock{
			TableWidth:      len(table.Headers),
			HasColumnHeader: true,
			Children:        rows,
		},
	}
}

func tableRowBlock(cells []string) Block {
	richCells := lo.Map(cells, func(cell string, _ int) []RichText {
		return richText(cell)
	})
	return Block{
		Object:   "block",
		Type:     "table_row",
		TableRow: &TableRow{Cells: richCells},
	}
}
