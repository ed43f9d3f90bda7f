package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/bloom"
	"github.com/niklas-joh/plantScraper/goquery"
)

// Grid discovery limits. The guide grid is a few hundred plants over a
// handful of pages; the Bloom filter is sized well past that.
const (
	gridExpectedPlants    = 10000
	gridFalsePositiveRate = 0.01

	// DefaultMaxGridPages bounds pagination in case the site never stops
	// serving non-empty pages.
	DefaultMaxGridPages = 50
)

// Ensure GridSource implements plantscraper.GuideSource.
var _ plantscraper.GuideSource = (*GridSource)(nil)

// GridSource discovers plants by walking the paginated growing-guides grid.
// Pagination uses the ?page=N query parameter, starting at page 0 and
// stopping at the first page that contributes no new plants.
type GridSource struct {
	Fetcher     plantscraper.Fetcher
	Limiter     plantscraper.RateLimiter
	MaxPages    int
	RetryDelays []time.Duration
}

// DiscoverPlants walks the grid pages under gridURL and returns every
// distinct plant, in grid order. Duplicate links across pages are dropped.
func (g *GridSource) DiscoverPlants(ctx context.Context, gridURL string) ([]plantscraper.Identity, error) {
	parsed, err := url.Parse(gridURL)
	if err != nil {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "invalid grid URL %q: %v", gridURL, err)
	}
	baseURL := parsed.Scheme + "://" + parsed.Host

	maxPages := g.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxGridPages
	}
	delays := g.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	seen := bloom.NewFilter(gridExpectedPlants, gridFalsePositiveRate)
	var plants []plantscraper.Identity

	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.Limiter != nil {
			if err := g.Limiter.Wait(ctx, parsed.Host); err != nil {
				return nil, err
			}
		}

		html, err := FetchWithRetryDelays(ctx, pageURL(gridURL, page), g.Fetcher.Fetch, nil, delays)
		if err != nil {
			// The page past the last grid page 404s on some layouts.
			if plantscraper.ErrorCode(err) == plantscraper.ENOTFOUND {
				break
			}
			return nil, err
		}

		found, err := goquery.ExtractPlantGrid(html, baseURL)
		if err != nil {
			return nil, err
		}

		added := 0
		for _, p := range found {
			if seen.Test(p.Link) {
				continue
			}
			seen.Add(p.Link)
			plants = append(plants, p)
			added++
		}
		if added == 0 {
			break
		}
	}

	return plants, nil
}

// DiscoverURLs implements plantscraper.GuideSource over the grid walk,
// returning just the plant page URLs.
func (g *GridSource) DiscoverURLs(ctx context.Context, gridURL string) ([]string, error) {
	plants, err := g.DiscoverPlants(ctx, gridURL)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(plants))
	for _, p := range plants {
		urls = append(urls, p.Link)
	}
	return urls, nil
}

// pageURL appends the pagination parameter. Page zero is the bare grid URL,
// which is how the site serves the first page.
func pageURL(gridURL string, page int) string {
	if page == 0 {
		return gridURL
	}
	sep := "?"
	if strings.Contains(gridURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d", gridURL, sep, page)
}
