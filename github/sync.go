package github

import (
	"context"
	"encoding/json"
	"log/slog"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// IssueLabel is applied to every synced issue.
const IssueLabel = "plant-guide"

// SyncResult summarizes one sync run.
type SyncResult struct {
	Created int
	Updated int
	Skipped int
	Failed  int
}

// Syncer pushes stored records to GitHub issues. Each plant gets one
// issue, created on first sync and patched in place when the extracted
// content changes.
type Syncer struct {
	Client  *Client
	Records plantscraper.RecordService
	Logger  *slog.Logger
}

// NewSyncer creates a Syncer.
func NewSyncer(client *Client, records plantscraper.RecordService, logger *slog.Logger) *Syncer {
	return &Syncer{Client: client, Records: records, Logger: logger}
}

// Sync pushes every stored record to GitHub. Records that already have an
// up-to-date issue are skipped; a failure on one record is logged and does
// not stop the run.
func (s *Syncer) Sync(ctx context.Context) (*SyncResult, error) {
	stored, err := s.Records.FindRecords(ctx, plantscraper.RecordFilter{})
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, sr := range stored {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.syncRecord(ctx, sr, result); err != nil {
			result.Failed++
			s.Logger.Error("issue sync failed",
				"plant", sr.PlantName,
				"err", err,
			)
		}
	}
	return result, nil
}

func (s *Syncer) syncRecord(ctx context.Context, sr *plantscraper.StoredRecord, result *SyncResult) error {
	var rec plantscraper.Record
	if err := json.Unmarshal(sr.Data, &rec); err != nil {
		return plantscraper.Errorf(plantscraper.EINVALID, "record %q holds invalid JSON: %v", sr.PlantName, err)
	}

	body := IssueBody(&rec, sr.ContentHash)

	if sr.IssueNumber == 0 {
		issue, err := s.Client.CreateIssue(ctx, IssueTitle(&rec), body, []string{IssueLabel})
		if err != nil {
			return err
		}
		if err := s.Records.MarkSynced(ctx, sr.ID, issue.Number, ""); err != nil {
			return err
		}
		result.Created++
		s.Logger.Info("issue created",
			"plant", sr.PlantName,
			"issue", issue.Number,
		)
		return nil
	}

	issue, err := s.Client.GetIssue(ctx, sr.IssueNumber)
	if err != nil {
		return err
	}
	if BodyMatchesHash(issue.Body, sr.ContentHash) {
		result.Skipped++
		return nil
	}

	if _, err := s.Client.UpdateIssue(ctx, sr.IssueNumber, IssueRequest{Body: &body}); err != nil {
		return err
	}
	if err := s.Client.AddComment(ctx, sr.IssueNumber, "Guide content changed on the source page; issue body refreshed."); err != nil {
		return err
	}
	result.Updated++
	s.Logger.Info("issue updated",
		"plant", sr.PlantName,
		"issue", sr.IssueNumber,
	)
	return nil
}
