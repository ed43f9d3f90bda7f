package main

import (
	"context"
	"io"
	"log/slog"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/crawl"
	"github.com/niklas-joh/plantScraper/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Plants  plantscraper.PlantService
	Records plantscraper.RecordService
	Fetcher plantscraper.Fetcher
	Limiter plantscraper.RateLimiter
	Grid    *crawl.GridSource
	Sitemap plantscraper.GuideSource
	Scraper *crawl.Scraper

	// Converter renders markdown snapshots for the export command.
	Converter plantscraper.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List    ListCmd    `cmd:"" help:"Discover plants from the growing-guide grid"`
	Details DetailsCmd `cmd:"" help:"Scrape detail pages for discovered plants"`
	Export  ExportCmd  `cmd:"" help:"Write stored data to CSV, JSON, or markdown snapshots"`
	Sync    SyncCmd    `cmd:"" help:"Push stored records to external services"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL      string `default:"https://www.almanac.com/gardening/growing-guides" help:"Growing-guide grid URL"`
	MaxPages int    `default:"50" help:"Maximum grid pages to walk"`
	Sitemap  bool   `help:"Discover plant URLs from the site's sitemaps instead of the grid"`
	CSV      string `help:"Also write the plant list to a CSV file"`
}

// DetailsCmd is the "details" subcommand.
type DetailsCmd struct {
	Limit       int    `short:"l" help:"Scrape at most this many plants"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent fetch limit"`
	Output      string `short:"o" help:"Also write the records to an indented JSON file"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output    string `short:"o" default:"plants_detail.json" help:"JSON output path"`
	CSV       string `help:"Also write the plant list to a CSV file"`
	Snapshots string `help:"Fetch each recorded plant's page and write markdown snapshots to this directory"`
}

// SyncCmd groups the sync targets.
type SyncCmd struct {
	Github SyncGithubCmd `cmd:"" help:"Sync records to GitHub issues (uses GITHUB_TOKEN)"`
	Notion SyncNotionCmd `cmd:"" help:"Sync records to a Notion database (uses NOTION_TOKEN)"`
}

// SyncGithubCmd is the "sync github" subcommand.
type SyncGithubCmd struct {
	Owner string `required:"" help:"Repository owner"`
	Repo  string `required:"" help:"Repository name"`
}

// SyncNotionCmd is the "sync notion" subcommand.
type SyncNotionCmd struct {
	Database string `required:"" help:"Notion database ID"`
}
