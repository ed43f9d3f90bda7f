package mock

import (
	"context"

	plantscraper "github.com/niklas-joh/plantScraper"
)

var _ plantscraper.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of plantscraper.RecordService.
type RecordService struct {
	SaveRecordFn       func(ctx context.Context, rec *plantscraper.StoredRecord) error
	FindRecordByNameFn func(ctx context.Context, plantName string) (*plantscraper.StoredRecord, error)
	FindRecordsFn      func(ctx context.Context, filter plantscraper.RecordFilter) ([]*plantscraper.StoredRecord, error)
	MarkSyncedFn       func(ctx context.Context, id string, issueNumber int, notionPageID string) error
}

func (s *RecordService) SaveRecord(ctx context.Context, rec *plantscraper.StoredRecord) error {
	return s.SaveRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByName(ctx context.Context, plantName string) (*plantscraper.StoredRecord, error) {
	return s.FindRecordByNameFn(ctx, plantName)
}

func (s *RecordService) FindRecords(ctx context.Context, filter plantscraper.RecordFilter) ([]*plantscraper.StoredRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) MarkSynced(ctx context.Context, id string, issueNumber int, notionPageID string) error {
	return s.MarkSyncedFn(ctx, id, issueNumber, notionPageID)
}
