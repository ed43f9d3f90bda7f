package main

import (
	"fmt"
	"net/url"
	"strings"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/fs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	plants, err := c.discover(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
		return err
	}

	var created, existing, failed int
	for _, plant := range plants {
		plant := plant
		err := deps.Plants.CreatePlant(deps.Ctx, &plant)
		switch {
		case err == nil:
			created++
		case plantscraper.ErrorCode(err) == plantscraper.ECONFLICT:
			existing++
		default:
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", plant.Name, plantscraper.ErrorMessage(err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Discovered %d plants (%d new, %d already known)\n", len(plants), created, existing)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d failed to save\n", failed)
	}

	if c.CSV != "" {
		stored, err := deps.Plants.FindPlants(deps.Ctx, plantscraper.PlantFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
			return err
		}
		if err := fs.WritePlantsCSV(c.CSV, stored); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantscraper.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d plants to %s\n", len(stored), c.CSV)
	}

	return nil
}

func (c *ListCmd) discover(deps *Dependencies) ([]plantscraper.Plant, error) {
	if c.Sitemap {
		urls, err := deps.Sitemap.DiscoverURLs(deps.Ctx, c.URL)
		if err != nil {
			return nil, err
		}
		plants := make([]plantscraper.Plant, 0, len(urls))
		for _, u := range urls {
			plants = append(plants, plantscraper.Plant{
				Name: nameFromLink(u),
				Link: u,
			})
		}
		return plants, nil
	}

	deps.Grid.MaxPages = c.MaxPages
	identities, err := deps.Grid.DiscoverPlants(deps.Ctx, c.URL)
	if err != nil {
		return nil, err
	}
	plants := make([]plantscraper.Plant, 0, len(identities))
	for _, id := range identities {
		plants = append(plants, plantscraper.Plant{
			Name:     id.Name,
			Link:     id.Link,
			ImageURL: id.ImageURL,
		})
	}
	return plants, nil
}

// nameFromLink derives a display name from a guide URL's final path
// segment. Sitemaps carry no titles, so "winter-squash" becomes
// "Winter Squash".
func nameFromLink(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}
	slug := strings.Trim(parsed.Path, "/")
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}

	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
