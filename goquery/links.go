package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/niklas-joh/plantScraper"
)

// ExtractLinks scans a subtree for anchors whose href contains pathFilter
// and builds a name-to-absolute-URL mapping keyed by the anchor's trimmed
// visible text. Root-relative hrefs are resolved against baseURL; absolute
// hrefs pass through unchanged. A later anchor with duplicate visible text
// overwrites the earlier URL; the collision is accepted, not retried.
func ExtractLinks(subtree *goquery.Selection, pathFilter, baseURL string) *plantscraper.Links {
	links := &plantscraper.Links{}
	if subtree == nil {
		return links
	}

	subtree.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, pathFilter) {
			return
		}
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		links.Set(name, absoluteURL(baseURL, href))
	})

	return links
}

func absoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "/") {
		return strings.TrimSuffix(baseURL, "/") + href
	}
	return href
}
