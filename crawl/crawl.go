// Package crawl provides scraping orchestration. It coordinates grid
// discovery, rate-limited fetching with retries, extraction, and storage
// of plant records.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is deliberately 1: the guide site is scraped politely,
// one in-flight request, spaced by the domain rate limit.
const DefaultConcurrency = 1

// Scraper orchestrates scraping detail pages for a list of plants.
type Scraper struct {
	Fetcher     plantscraper.Fetcher
	Extractor   plantscraper.Extractor
	Records     plantscraper.RecordService
	Limiter     plantscraper.RateLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Plant     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single plant.
type scrapeResult struct {
	plant plantscraper.Identity
	data  []byte
	err   error
}

// ScrapePlants fetches and extracts the detail page of every plant and
// saves the resulting records. One plant failing is recorded and skipped;
// the batch continues. The progress callback, if provided, receives events
// as scraping proceeds.
func (s *Scraper) ScrapePlants(ctx context.Context, plants []plantscraper.Identity, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(plants)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan scrapeResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, plant := range plants {
			plant := plant
			g.Go(func() error {
				resultCh <- s.processPlant(gctx, plant)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Records are saved as results stream in, so an interrupted batch keeps
	// every plant completed so far.
	var saved, failed, bytes int
	for result := range resultCh {
		completed.Add(1)

		if result.err == nil {
			rec := &plantscraper.StoredRecord{
				PlantName: result.plant.Name,
				Data:      result.data,
			}
			if err := s.Records.SaveRecord(ctx, rec); err != nil {
				result.err = err
			} else {
				saved++
				bytes += len(result.data)
			}
		}

		if progress == nil {
			if result.err != nil {
				failed++
			}
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Plant:     result.plant.Name,
		}
		if result.err != nil {
			failed++
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &Result{Saved: saved, Failed: failed, Bytes: bytes}, nil
}

// processPlant fetches, extracts, and serializes a single plant's page.
func (s *Scraper) processPlant(ctx context.Context, plant plantscraper.Identity) scrapeResult {
	result := scrapeResult{plant: plant}

	if err := plant.Validate(); err != nil {
		result.err = err
		return result
	}

	if s.Limiter != nil {
		parsed, err := url.Parse(plant.Link)
		if err != nil {
			result.err = plantscraper.Errorf(plantscraper.EINVALID, "invalid plant link %q: %v", plant.Link, err)
			return result
		}
		if err := s.Limiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, plant.Link, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	record, err := s.Extractor.ExtractEntity(html, plant)
	if err != nil {
		result.err = err
		return result
	}

	data, err := record.MarshalJSON()
	if err != nil {
		result.err = err
		return result
	}
	result.data = data

	return result
}
