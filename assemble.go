package plantscraper

import (
	"strings"
)

// MergeFieldItems merges the values extracted from multiple field items
// that share one label. Preambles concatenate with a newline separator and
// sub-heading mappings merge key-wise with the later item winning. A single
// value passes through unchanged; a non-text value among texts wins
// outright, since link maps and tables are terminal field shapes.
func MergeFieldItems(values []FieldValue) FieldValue {
	switch len(values) {
	case 0:
		return Text("")
	case 1:
		return values[0]
	}

	// Link maps merge key-wise across items, later item winning; the first
	// table wins its field outright.
	if merged := mergeLinks(values); merged != nil {
		return merged
	}
	for _, v := range values {
		if _, ok := v.(*Table); ok {
			return v
		}
	}

	var preamble []string
	sections := &Sections{}
	for _, v := range values {
		switch fv := v.(type) {
		case Text:
			if fv != "" {
				preamble = append(preamble, string(fv))
			}
		case *Structured:
			if fv.Content != nil && *fv.Content != "" {
				preamble = append(preamble, *fv.Content)
			}
			if fv.Sections != nil {
				for _, k := range fv.Sections.Keys() {
					sv, _ := fv.Sections.Get(k)
					sections.Set(k, sv)
				}
			}
		}
	}

	content := strings.Join(preamble, "\n")
	if sections.Len() == 0 {
		return Text(content)
	}
	return &Structured{Content: optional(content), Sections: sections}
}

// mergeLinks combines every link map among values, or returns nil when none
// exists.
func mergeLinks(values []FieldValue) FieldValue {
	var merged *Links
	for _, v := range values {
		l, ok := v.(*Links)
		if !ok {
			continue
		}
		if merged == nil {
			merged = &Links{}
		}
		for _, k := range l.Keys() {
			url, _ := l.Get(k)
			merged.Set(k, url)
		}
	}
	if merged == nil {
		return nil
	}
	return merged
}

// FinalizeField applies the assembly post-pass to one field value: preamble
// paragraphs that appear verbatim inside any sub-section are removed, an
// empty preamble becomes null, and a structured value left with no
// sub-sections collapses to plain text.
func FinalizeField(v FieldValue) FieldValue {
	s, ok := v.(*Structured)
	if !ok {
		return v
	}
	if s.Sections == nil || s.Sections.Len() == 0 {
		if s.Content == nil {
			return Text("")
		}
		return Text(*s.Content)
	}

	if s.Content != nil {
		s.Content = optional(dedupeParagraphs(*s.Content, s.Sections))
	}
	return s
}

// dedupeParagraphs drops every preamble paragraph whose trimmed text is a
// substring of any sub-section's text.
func dedupeParagraphs(content string, sections *Sections) string {
	paragraphs := strings.Split(content, "\n")
	kept := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		if !inAnySection(trimmed, sections) {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, "\n")
}

func inAnySection(paragraph string, sections *Sections) bool {
	for _, k := range sections.Keys() {
		v, _ := sections.Get(k)
		text, ok := v.(Text)
		if ok && strings.Contains(string(text), paragraph) {
			return true
		}
	}
	return false
}

// optional returns nil for an empty string, preserving the null-preamble
// output convention.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
