package main

import (
	"fmt"
	"os"

	"github.com/niklas-joh/plantScraper/github"
	"github.com/niklas-joh/plantScraper/notion"
)

// Run executes the "sync github" command.
func (c *SyncGithubCmd) Run(deps *Dependencies) error {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		fmt.Fprintln(deps.Stderr, "GITHUB_TOKEN environment variable not set")
		return fmt.Errorf("GITHUB_TOKEN not set")
	}

	client, err := github.NewClient(token, c.Owner, c.Repo)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	syncer := github.NewSyncer(client, deps.Records, deps.Logger)
	result, err := syncer.Sync(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error syncing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Synced to %s/%s: %d created, %d updated, %d unchanged\n",
		c.Owner, c.Repo, result.Created, result.Updated, result.Skipped)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d records failed\n", result.Failed)
	}
	return nil
}

// Run executes the "sync notion" command.
func (c *SyncNotionCmd) Run(deps *Dependencies) error {
	token := os.Getenv("NOTION_TOKEN")
	if token == "" {
		fmt.Fprintln(deps.Stderr, "NOTION_TOKEN environment variable not set")
		return fmt.Errorf("NOTION_TOKEN not set")
	}

	client, err := notion.NewClient(token, c.Database)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	syncer := notion.NewSyncer(client, deps.Records, deps.Logger)
	result, err := syncer.Sync(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error syncing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Synced to Notion database %s: %d created, %d updated\n",
		c.Database, result.Created, result.Updated)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d records failed\n", result.Failed)
	}
	return nil
}
