package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/niklas-joh/plantScraper"
	"golang.org/x/net/html"
)

// SegmentField extracts one field item's subtree into a FieldValue under the
// given policy.
//
// Link fields delegate to ExtractLinks, falling back to flattened text when
// no anchors match. Otherwise the item is split at its heading tier: content
// before the first heading becomes the preamble, each heading opens a
// sub-section extracted up to the next heading, and the policy selects the
// stop-text or table handling active during section extraction. Items
// without headings flatten to plain text with list items as bullet lines.
// A nil item yields empty plain text.
func SegmentField(item *goquery.Selection, policy plantscraper.FieldPolicy, baseURL, linkPathFilter string) plantscraper.FieldValue {
	if item == nil || item.Length() == 0 {
		return plantscraper.Text("")
	}

	if policy == plantscraper.PolicyLinks {
		if links := ExtractLinks(item, linkPathFilter, baseURL); links.Len() > 0 {
			return links
		}
		return flattenItem(item)
	}

	if policy == plantscraper.PolicyTable {
		if table := item.Find("table").First(); table.Length() > 0 {
			return ExtractTable(table)
		}
	}

	headings := item.Find("h3")
	if headings.Length() == 0 {
		return flattenItem(item)
	}

	opts := sectionOptions(policy)
	sections := &plantscraper.Sections{}

	headingNodes := headings.Nodes
	for i, h := range headingNodes {
		title := nodeText(h)
		if title == "" {
			continue
		}
		var next *html.Node
		if i < len(headingNodes)-1 {
			next = headingNodes[i+1]
		}
		content := ExtractBetween(h, next, opts)
		if text, ok := content.(plantscraper.Text); ok && text == "" {
			continue
		}
		sections.Set(title, content)
	}

	return &plantscraper.Structured{
		Content:  preamble(headingNodes[0]),
		Sections: sections,
	}
}

// sectionOptions maps a field policy to the navigator behavior for its
// sub-sections.
func sectionOptions(policy plantscraper.FieldPolicy) ExtractOptions {
	switch policy {
	case plantscraper.PolicyAdStop:
		return ExtractOptions{StopText: plantscraper.AdStopMarker}
	case plantscraper.PolicyTable:
		return ExtractOptions{Tables: true}
	default:
		return ExtractOptions{}
	}
}

// preamble collects content strictly before the first heading by walking
// backward through its preceding siblings, accumulating in reverse to
// preserve document order. Returns nil when nothing precedes the heading.
func preamble(firstHeading *html.Node) *string {
	var reversed []*html.Node
	for n := firstHeading.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			reversed = append(reversed, n)
		}
	}

	var parts contentParts
	for i := len(reversed) - 1; i >= 0; i-- {
		n := reversed[i]
		if isList(n) {
			parts.addBullets(n)
			continue
		}
		parts.addText(nodeText(n))
	}

	if s := parts.String(); s != "" {
		return &s
	}
	return nil
}

// flattenItem joins the item's child content as plain text, expanding list
// items to bullet lines.
func flattenItem(item *goquery.Selection) plantscraper.Text {
	var parts contentParts
	for _, root := range item.Nodes {
		for n := root.FirstChild; n != nil; n = n.NextSibling {
			switch {
			case n.Type == html.TextNode:
				parts.addText(nodeText(n))
			case n.Type != html.ElementNode:
			case isList(n):
				parts.addBullets(n)
			default:
				parts.addText(nodeText(n))
			}
		}
	}
	return plantscraper.Text(parts.String())
}
