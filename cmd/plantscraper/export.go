package main

import (
	"fmt"
	"net/url"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.FindRecords(deps.Ctx, plantscraper.RecordFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no records found. Run 'plantscraper details' first.\n")
		return plantscraper.Errorf(plantscraper.ENOTFOUND, "no records found")
	}

	if err := fs.WriteRecordsJSON(c.Output, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(records), c.Output)

	if c.CSV != "" {
		plants, err := deps.Plants.FindPlants(deps.Ctx, plantscraper.PlantFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
			return err
		}
		if err := fs.WritePlantsCSV(c.CSV, plants); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d plants to %s\n", len(plants), c.CSV)
	}

	if c.Snapshots != "" {
		if err := c.writeSnapshots(deps, records); err != nil {
			return err
		}
	}

	return nil
}

// writeSnapshots re-fetches each recorded plant's page and writes a
// markdown rendering, rate limited like any other scrape.
func (c *ExportCmd) writeSnapshots(deps *Dependencies, records []*plantscraper.StoredRecord) error {
	writer := fs.NewSnapshotWriter(c.Snapshots, deps.Converter)

	var written, failed int
	for _, sr := range records {
		var rec plantscraper.Record
		if err := rec.UnmarshalJSON(sr.Data); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", sr.PlantName, plantscraper.ErrorMessage(err))
			continue
		}
		plant := &plantscraper.Plant{
			Name:     rec.Name,
			Link:     rec.Link,
			ImageURL: rec.ImageURL,
		}

		parsed, err := url.Parse(plant.Link)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: invalid link %q\n", plant.Name, plant.Link)
			continue
		}
		if err := deps.Limiter.Wait(deps.Ctx, parsed.Host); err != nil {
			return err
		}

		html, err := deps.Fetcher.Fetch(deps.Ctx, plant.Link)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", plant.Name, plantscraper.ErrorMessage(err))
			continue
		}

		if _, err := writer.WriteSnapshot(plant, html, sr.FetchedAt); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", plant.Name, plantscraper.ErrorMessage(err))
			continue
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d snapshots to %s\n", written, c.Snapshots)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d snapshots failed\n", failed)
	}
	return nil
}
