package plantscraper

import "context"

// GuideSource discovers growing-guide page URLs for a site. Implementations
// hide grid-pagination crawling versus sitemap discovery.
type GuideSource interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// RateLimiter enforces a politeness delay between requests to one domain.
type RateLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}

// Converter renders raw page HTML as Markdown for debug snapshots.
type Converter interface {
	Convert(html string) (markdown string, err error)
}
