// Package notion syncs stored plant records to a Notion database: one
// page per plant, with the extracted fields mapped onto database
// properties and the guide content rendered as page blocks.
package notion

// RichText is one rich text span.
type RichText struct {
	Type string      `json:"type,omitempty"`
	Text TextContent `json:"text"`
}

// TextContent is the text payload of a rich text span.
type TextContent struct {
	Content string    `json:"content"`
	Link    *TextLink `json:"link,omitempty"`
}

// TextLink attaches a URL to a rich text span.
type TextLink struct {
	URL string `json:"url"`
}

// SelectOption is one select or multi-select value.
type SelectOption struct {
	Name string `json:"name"`
}

// Property is a page property value. Exactly one field is set, matching
// the property's type in the database schema.
type Property struct {
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	URL         string         `json:"url,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
}

// Properties maps property names to values.
type Properties map[string]Property

// Block is one page content block. Type names the populated field.
type Block struct {
	Object           string         `json:"object"`
	Type             string         `json:"type"`
	Paragraph        *RichTextBlock `json:"paragraph,omitempty"`
	Heading2         *RichTextBlock `json:"heading_2,omitempty"`
	Heading3         *RichTextBlock `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBlock `json:"bulleted_list_item,omitempty"`
	Image            *Image         `json:"image,omitempty"`
	Table            *TableBlock    `json:"table,omitempty"`
	TableRow         *TableRow      `json:"table_row,omitempty"`
}

// RichTextBlock is the shared body of paragraph, heading and list blocks.
type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// Image is an externally hosted image block.
type Image struct {
	Type     string   `json:"type"`
	External External `json:"external"`
}

// External holds an external asset URL.
type External struct {
	URL string `json:"url"`
}

// TableBlock is a table with its rows as children.
type TableBlock struct {
	TableWidth      int     `json:"table_width"`
	HasColumnHeader bool    `json:"has_column_header"`
	HasRowHeader    bool    `json:"has_row_header"`
	Children        []Block `json:"children"`
}

// TableRow is one table row; each cell is a rich text list.
type TableRow struct {
	Cells [][]RichText `json:"cells"`
}

// Page is the subset of the Notion page payload the sync cares about.
type Page struct {
	ID         string     `json:"id"`
	Archived   bool       `json:"archived"`
	Properties Properties `json:"properties"`
}

// Title returns the page's title text, or "" when the title property is
// empty.
func (p *Page) Title() string {
	for _, prop := range p.Properties {
		if len(prop.Title) > 0 {
			return prop.Title[0].Text.Content
		}
	}
	return ""
}

// Database is the subset of the database payload used for schema checks.
type Database struct {
	ID         string                    `json:"id"`
	Properties map[string]map[string]any `json:"properties"`
}
