package plantscraper

import (
	"context"
	"time"
)

// StoredRecord is a persisted extraction result for one plant, with the
// bookkeeping used by the sync clients: a content hash for change detection
// and the remote identifiers written back after a successful sync.
type StoredRecord struct {
	ID          string    `json:"id"`
	PlantName   string    `json:"plantName"`
	Data        []byte    `json:"data"` // record JSON, insertion-ordered keys
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`

	IssueNumber  int    `json:"issueNumber,omitempty"`
	NotionPageID string `json:"notionPageId,omitempty"`
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	PlantName *string `json:"plantName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService persists extraction results and their sync state.
type RecordService interface {
	// SaveRecord inserts or replaces the record for a plant. The content
	// hash and fetch time are computed by the implementation.
	SaveRecord(ctx context.Context, rec *StoredRecord) error

	// FindRecordByName retrieves the stored record for one plant.
	// Returns ENOTFOUND if no record exists.
	FindRecordByName(ctx context.Context, plantName string) (*StoredRecord, error)

	// FindRecords retrieves stored records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*StoredRecord, error)

	// MarkSynced records the remote identifiers after a successful sync.
	// Zero values leave the corresponding column unchanged.
	MarkSynced(ctx context.Context, id string, issueNumber int, notionPageID string) error
}
