// Package mock provides hand-written mock implementations of the domain
// interfaces for use in tests.
package mock

import (
	"context"

	plantscraper "github.com/niklas-joh/plantScraper"
)

var _ plantscraper.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of plantscraper.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ plantscraper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of plantscraper.Extractor.
type Extractor struct {
	ExtractEntityFn func(html string, id plantscraper.Identity) (*plantscraper.Record, error)
}

func (e *Extractor) ExtractEntity(html string, id plantscraper.Identity) (*plantscraper.Record, error) {
	return e.ExtractEntityFn(html, id)
}

var _ plantscraper.GuideSource = (*GuideSource)(nil)

// GuideSource is a mock implementation of plantscraper.GuideSource.
type GuideSource struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *GuideSource) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ plantscraper.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of plantscraper.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (r *RateLimiter) Wait(ctx context.Context, domain string) error {
	return r.WaitFn(ctx, domain)
}

var _ plantscraper.Converter = (*Converter)(nil)

// Converter is a mock implementation of plantscraper.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
