package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/crawl"
	"github.com/niklas-joh/plantScraper/goquery"
	"github.com/niklas-joh/plantScraper/htmltomarkdown"
	phttp "github.com/niklas-joh/plantScraper/http"
	pslog "github.com/niklas-joh/plantScraper/slog"
	"github.com/niklas-joh/plantScraper/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PlantService  plantscraper.PlantService
	RecordService plantscraper.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("plantscraper"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'plantscraper --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PLANTSCRAPER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PlantService = sqlite.NewPlantService(m.DB)
	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Plants = m.PlantService
	deps.Records = m.RecordService

	fetcher := pslog.NewLoggingFetcher(phttp.NewFetcher(), deps.Logger)
	defer fetcher.Close()
	deps.Fetcher = fetcher

	limiter := crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond)
	deps.Limiter = limiter
	deps.Grid = &crawl.GridSource{
		Fetcher: fetcher,
		Limiter: limiter,
	}
	deps.Sitemap = pslog.NewLoggingGuideSource(phttp.NewSitemapSource(nil), deps.Logger)

	deps.Scraper = &crawl.Scraper{
		Fetcher:   fetcher,
		Extractor: pslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		Records:   m.RecordService,
		Limiter:   limiter,
	}

	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PLANTSCRAPER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "plantscraper.db"
	}
	dir := filepath.Join(home, ".plantscraper")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "plantscraper.db")
}
