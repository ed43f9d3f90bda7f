package plantscraper

import (
	"bytes"
	"encoding/json"
)

// Identity holds the fixed fields of one plant, sourced from the guide grid
// rather than from labeled page content.
type Identity struct {
	Name     string
	Link     string
	ImageURL string
}

// Validate returns an error if the identity is not usable for scraping.
func (id *Identity) Validate() error {
	if id.Name == "" {
		return Errorf(EINVALID, "plant name required")
	}
	if id.Link == "" {
		return Errorf(EINVALID, "plant link required")
	}
	return nil
}

// FieldValue is the extracted value of one labeled field. Exactly one of the
// sealed variants applies per field: Text, *Structured, *Links, or *Table.
type FieldValue interface {
	fieldValue()
}

// SectionContent is the content of one sub-heading within a Structured
// field: ordinarily Text, but a *Table when the field is table-bearing.
type SectionContent interface {
	sectionContent()
}

// Text is flattened field or sub-section content with no further structure.
type Text string

func (Text) fieldValue()     {}
func (Text) sectionContent() {}

// Structured is a field split into a preamble plus named sub-sections keyed
// by heading text, in document order.
type Structured struct {
	// Content is the text preceding the first sub-heading. Nil when every
	// preamble paragraph was deduplicated away or none existed.
	Content *string `json:"content"`

	// Sections maps heading text to the extracted section content.
	Sections *Sections `json:"sub_headings"`
}

func (*Structured) fieldValue() {}

// Links maps visible anchor text to an absolute URL. Duplicate anchor text
// overwrites the earlier URL (last-write-wins).
type Links struct {
	OrderedMap[string]
}

func (*Links) fieldValue() {}

// Table is the structured representation of an embedded table.
type Table struct {
	Headers []string `json:"headers"`
	Rows    []*Row   `json:"rows"`
}

func (*Table) fieldValue()     {}
func (*Table) sectionContent() {}

// Row is one table row as an ordered column-to-cell mapping.
type Row = OrderedMap[string]

// Sections is an ordered heading-to-content mapping. It exists as a named
// type so unmarshaling can resolve each value to Text or *Table.
type Sections struct {
	OrderedMap[SectionContent]
}

// UnmarshalJSON reads sub-heading values, sniffing each as text or table.
func (s *Sections) UnmarshalJSON(data []byte) error {
	raw := NewOrderedMap[json.RawMessage]()
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}
	for _, k := range raw.Keys() {
		v, _ := raw.Get(k)
		content, err := decodeSectionContent(v)
		if err != nil {
			return err
		}
		s.Set(k, content)
	}
	return nil
}

// Record is the final output unit for one plant: its identity plus an
// insertion-ordered mapping from field label to extracted value.
type Record struct {
	Identity
	Fields *OrderedMap[FieldValue]
}

// NewRecord returns a Record with empty fields for the given identity.
func NewRecord(id Identity) *Record {
	return &Record{Identity: id, Fields: NewOrderedMap[FieldValue]()}
}

// Field returns the value extracted for the given label.
func (r *Record) Field(label string) (FieldValue, bool) {
	if r.Fields == nil {
		var zero FieldValue
		return zero, false
	}
	return r.Fields.Get(label)
}

// identityLabels are JSON keys reserved for identity fields; they are never
// label-text values and are excluded from extraction.
var identityLabels = map[string]bool{
	"Name":      true,
	"Link":      true,
	"Image URL": true,
}

// IsIdentityLabel reports whether label is reserved for identity fields.
func IsIdentityLabel(label string) bool {
	return identityLabels[label]
}

// MarshalJSON writes the record as a flat JSON object: identity keys first,
// then every field label in document order.
func (r *Record) MarshalJSON() ([]byte, error) {
	flat := NewOrderedMap[any]()
	flat.Set("Name", r.Name)
	flat.Set("Link", r.Link)
	flat.Set("Image URL", r.ImageURL)
	if r.Fields != nil {
		for _, label := range r.Fields.Keys() {
			v, _ := r.Fields.Get(label)
			flat.Set(label, v)
		}
	}
	return flat.MarshalJSON()
}

// UnmarshalJSON reads a flat record object back into identity and typed
// field values.
func (r *Record) UnmarshalJSON(data []byte) error {
	raw := NewOrderedMap[json.RawMessage]()
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}
	r.Fields = NewOrderedMap[FieldValue]()
	for _, key := range raw.Keys() {
		v, _ := raw.Get(key)
		if IsIdentityLabel(key) {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return Errorf(EINVALID, "identity field %q: %v", key, err)
			}
			switch key {
			case "Name":
				r.Name = s
			case "Link":
				r.Link = s
			case "Image URL":
				r.ImageURL = s
			}
			continue
		}
		fv, err := decodeFieldValue(v)
		if err != nil {
			return Errorf(EINVALID, "field %q: %v", key, err)
		}
		r.Fields.Set(key, fv)
	}
	return nil
}

// decodeFieldValue resolves raw JSON to the matching FieldValue variant:
// a string is Text; an object with content/sub_headings is Structured; one
// with headers/rows is a Table; any other object is a link map.
func decodeFieldValue(raw json.RawMessage) (FieldValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Text(""), nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	}
	if trimmed[0] != '{' {
		return nil, Errorf(EINVALID, "unsupported field value %s", shorten(trimmed))
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, err
	}
	_, hasContent := probe["content"]
	_, hasSections := probe["sub_headings"]
	if hasContent && hasSections {
		var s Structured
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	_, hasHeaders := probe["headers"]
	_, hasRows := probe["rows"]
	if hasHeaders && hasRows {
		var t Table
		if err := json.Unmarshal(trimmed, &t); err != nil {
			return nil, err
		}
		return &t, nil
	}

	var l Links
	if err := json.Unmarshal(trimmed, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func decodeSectionContent(raw json.RawMessage) (SectionContent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	}
	var t Table
	if err := json.Unmarshal(trimmed, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func shorten(b []byte) string {
	const max = 40
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
