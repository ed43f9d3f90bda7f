package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/niklas-joh/plantScraper"
)

// gridItemSelector matches one plant card on the growing-guides grid page.
const gridItemSelector = "div.views-view-grid__item"

// ExtractPlantGrid reads plant identities from a guide grid page: the card
// title anchor supplies name and link, the card image supplies the image
// URL (falling back to the lazy-load attribute). Cards without a title
// anchor are skipped.
func ExtractPlantGrid(html, baseURL string) ([]plantscraper.Identity, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "failed to parse HTML: %v", err)
	}

	var plants []plantscraper.Identity
	doc.Find(gridItemSelector).Each(func(_ int, item *goquery.Selection) {
		title := item.Find("h3 a").First()
		if title.Length() == 0 {
			return
		}
		href, ok := title.Attr("href")
		if !ok {
			return
		}

		img := item.Find("img").First()
		src, exists := img.Attr("src")
		if !exists || src == "" {
			src, _ = img.Attr("data-src")
		}

		plants = append(plants, plantscraper.Identity{
			Name:     strings.TrimSpace(title.Text()),
			Link:     absoluteURL(baseURL, href),
			ImageURL: absoluteURL(baseURL, src),
		})
	})

	return plants, nil
}
