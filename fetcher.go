package plantscraper

import "context"

// Fetcher retrieves page HTML from URLs. The guide pages are static, so
// implementations use plain HTTP; no browser automation is needed.
type Fetcher interface {
	// Fetch retrieves the page body. A non-2xx response is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
