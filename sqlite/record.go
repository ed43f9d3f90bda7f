package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	plantscraper "github.com/niklas-joh/plantScraper"
)

// Compile-time interface verification.
var _ plantscraper.RecordService = (*RecordService)(nil)

// RecordService implements plantscraper.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// SaveRecord inserts or replaces the record for a plant. The content hash
// and fetch time are computed here; re-saving a plant keeps its sync
// bookkeeping (issue number, Notion page) intact.
func (s *RecordService) SaveRecord(ctx context.Context, rec *plantscraper.StoredRecord) error {
	if rec.PlantName == "" {
		return plantscraper.Errorf(plantscraper.EINVALID, "plant name required")
	}
	if len(rec.Data) == 0 {
		return plantscraper.Errorf(plantscraper.EINVALID, "record data required")
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.ContentHash = ContentHash(rec.Data)
	rec.FetchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, plant_name, data, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(plant_name) DO UPDATE SET
			data = excluded.data,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, rec.ID, rec.PlantName, rec.Data, rec.ContentHash, rec.FetchedAt.Format(time.RFC3339))

	return err
}

// FindRecordByName retrieves the stored record for one plant.
func (s *RecordService) FindRecordByName(ctx context.Context, plantName string) (*plantscraper.StoredRecord, error) {
	var rec plantscraper.StoredRecord
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, plant_name, data, content_hash, fetched_at, issue_number, notion_page_id
		FROM records
		WHERE plant_name = ?
	`, plantName).Scan(&rec.ID, &rec.PlantName, &rec.Data, &rec.ContentHash, &fetchedAt,
		&rec.IssueNumber, &rec.NotionPageID)

	if err == sql.ErrNoRows {
		return nil, plantscraper.Errorf(plantscraper.ENOTFOUND, "no record for plant %q", plantName)
	}
	if err != nil {
		return nil, err
	}

	rec.FetchedAt, err = scanTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindRecords retrieves stored records matching the filter, in the order
// the plants were scraped.
func (s *RecordService) FindRecords(ctx context.Context, filter plantscraper.RecordFilter) ([]*plantscraper.StoredRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, plant_name, data, content_hash, fetched_at, issue_number, notion_page_id FROM records WHERE 1=1")

	if filter.PlantName != nil {
		query.WriteString(" AND plant_name = ?")
		args = append(args, *filter.PlantName)
	}

	query.WriteString(" ORDER BY rowid ASC")
	clause, pageArgs := paginate(filter.Limit, filter.Offset)
	query.WriteString(clause)
	args = append(args, pageArgs...)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*plantscraper.StoredRecord
	for rows.Next() {
		var rec plantscraper.StoredRecord
		var fetchedAt string

		if err := rows.Scan(&rec.ID, &rec.PlantName, &rec.Data, &rec.ContentHash, &fetchedAt,
			&rec.IssueNumber, &rec.NotionPageID); err != nil {
			return nil, err
		}

		rec.FetchedAt, err = scanTime(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// MarkSynced records the remote identifiers after a successful sync. Zero
// values leave the corresponding column unchanged, so the GitHub and
// Notion sync paths don't clobber each other.
func (s *RecordService) MarkSynced(ctx context.Context, id string, issueNumber int, notionPageID string) error {
	var query strings.Builder
	var args []any

	query.WriteString("UPDATE records SET id = id")
	if issueNumber != 0 {
		query.WriteString(", issue_number = ?")
		args = append(args, issueNumber)
	}
	if notionPageID != "" {
		query.WriteString(", notion_page_id = ?")
		args = append(args, notionPageID)
	}
	query.WriteString(" WHERE id = ?")
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query.String(), args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return plantscraper.Errorf(plantscraper.ENOTFOUND, "record not found")
	}

	return nil
}

// ContentHash computes the change-detection hash for record data.
func ContentHash(data []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}
