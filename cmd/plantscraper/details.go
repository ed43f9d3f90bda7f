package main

import (
	"fmt"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/crawl"
	"github.com/niklas-joh/plantScraper/fs"
)

// Run executes the details command.
func (c *DetailsCmd) Run(deps *Dependencies) error {
	stored, err := deps.Plants.FindPlants(deps.Ctx, plantscraper.PlantFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
		return err
	}
	if len(stored) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no plants found. Run 'plantscraper list' first.\n")
		return plantscraper.Errorf(plantscraper.ENOTFOUND, "no plants found")
	}

	plants := make([]plantscraper.Identity, 0, len(stored))
	for _, p := range stored {
		plants = append(plants, plantscraper.Identity{
			Name:     p.Name,
			Link:     p.Link,
			ImageURL: p.ImageURL,
		})
	}

	if c.Concurrency > 0 {
		deps.Scraper.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d plants\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Plant, event.Error)
		}
	}

	result, err := deps.Scraper.ScrapePlants(deps.Ctx, plants, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records (%s)\n", result.Saved, crawl.FormatBytes(result.Bytes))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d plants failed\n", result.Failed)
	}

	if c.Output != "" {
		records, err := deps.Records.FindRecords(deps.Ctx, plantscraper.RecordFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
			return err
		}
		if err := fs.WriteRecordsJSON(c.Output, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(records), c.Output)
	}

	return nil
}
