package notion

import (
	"context"
	"encoding/json"
	"log/slog"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// SyncResult summarizes one sync run.
type SyncResult struct {
	Created int
	Updated int
	Failed  int
}

// Syncer pushes stored records into the plant database. Pages are matched
// by the stored page ID when present, falling back to the page title.
type Syncer struct {
	Client  *Client
	Records plantscraper.RecordService
	Logger  *slog.Logger
}

// NewSyncer creates a Syncer.
func NewSyncer(client *Client, records plantscraper.RecordService, logger *slog.Logger) *Syncer {
	return &Syncer{Client: client, Records: records, Logger: logger}
}

// Sync validates the database schema and pushes every stored record. A
// failure on one record is logged and does not stop the run.
func (s *Syncer) Sync(ctx context.Context) (*SyncResult, error) {
	db, err := s.Client.GetDatabase(ctx)
	if err != nil {
		return nil, err
	}
	if missing := ValidateDatabase(db); len(missing) > 0 {
		// The API cannot add properties to an existing database, so
		// warn and push what the schema can hold.
		s.Logger.Warn("database schema is missing properties",
			"missing", missing,
		)
	}

	pages, err := s.Client.QueryDatabase(ctx)
	if err != nil {
		return nil, err
	}
	byTitle := make(map[string]string, len(pages))
	for _, page := range pages {
		if title := page.Title(); title != "" {
			byTitle[title] = page.ID
		}
	}

	stored, err := s.Records.FindRecords(ctx, plantscraper.RecordFilter{})
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, sr := range stored {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.syncRecord(ctx, sr, byTitle, result); err != nil {
			result.Failed++
			s.Logger.Error("notion sync failed",
				"plant", sr.PlantName,
				"err", err,
			)
		}
	}
	return result, nil
}

func (s *Syncer) syncRecord(ctx context.Context, sr *plantscraper.StoredRecord, byTitle map[string]string, result *SyncResult) error {
	var rec plantscraper.Record
	if err := json.Unmarshal(sr.Data, &rec); err != nil {
		return plantscraper.Errorf(plantscraper.EINVALID, "record %q holds invalid JSON: %v", sr.PlantName, err)
	}

	props := PageProperties(&rec)
	blocks := PageBlocks(&rec)

	pageID := sr.NotionPageID
	if pageID == "" {
		pageID = byTitle[rec.Name]
	}

	if pageID == "" {
		page, err := s.Client.CreatePage(ctx, props, blocks)
		if err != nil {
			return err
		}
		if err := s.Records.MarkSynced(ctx, sr.ID, 0, page.ID); err != nil {
			return err
		}
		result.Created++
		s.Logger.Info("page created",
			"plant", sr.PlantName,
			"page", page.ID,
		)
		return nil
	}

	if _, err := s.Client.UpdatePage(ctx, pageID, props); err != nil {
		return err
	}
	if err := s.Client.AppendBlockChildren(ctx, pageID, blocks); err != nil {
		return err
	}
	if sr.NotionPageID == "" {
		if err := s.Records.MarkSynced(ctx, sr.ID, 0, pageID); err != nil {
			return err
		}
	}
	result.Updated++
	s.Logger.Info("page updated",
		"plant", sr.PlantName,
		"page", pageID,
	)
	return nil
}
