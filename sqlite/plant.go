package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	plantscraper "github.com/niklas-joh/plantScraper"
)

// Compile-time interface verification.
var _ plantscraper.PlantService = (*PlantService)(nil)

// PlantService implements plantscraper.PlantService using SQLite.
type PlantService struct {
	db *DB
}

// NewPlantService creates a new PlantService.
func NewPlantService(db *DB) *PlantService {
	return &PlantService{db: db}
}

// CreatePlant stores a new plant with a generated ID. A plant with the
// same link already present returns ECONFLICT.
func (s *PlantService) CreatePlant(ctx context.Context, plant *plantscraper.Plant) error {
	if err := plant.Validate(); err != nil {
		return err
	}

	plant.ID = uuid.New().String()
	plant.AddedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plants (id, name, link, image_url, added_at)
		VALUES (?, ?, ?, ?, ?)
	`, plant.ID, plant.Name, plant.Link, plant.ImageURL, plant.AddedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return plantscraper.Errorf(plantscraper.ECONFLICT, "plant with link %q already exists", plant.Link)
	}
	return err
}

// FindPlantByID retrieves a plant by ID.
func (s *PlantService) FindPlantByID(ctx context.Context, id string) (*plantscraper.Plant, error) {
	var plant plantscraper.Plant
	var addedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, link, image_url, added_at
		FROM plants
		WHERE id = ?
	`, id).Scan(&plant.ID, &plant.Name, &plant.Link, &plant.ImageURL, &addedAt)

	if err == sql.ErrNoRows {
		return nil, plantscraper.Errorf(plantscraper.ENOTFOUND, "plant not found")
	}
	if err != nil {
		return nil, err
	}

	plant.AddedAt, err = scanTime(addedAt, "added_at")
	if err != nil {
		return nil, err
	}

	return &plant, nil
}

// FindPlants retrieves plants matching the filter, in insertion order so
// the list reads the way the grid presented it.
func (s *PlantService) FindPlants(ctx context.Context, filter plantscraper.PlantFilter) ([]*plantscraper.Plant, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, link, image_url, added_at FROM plants WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
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

	var plants []*plantscraper.Plant
	for rows.Next() {
		var plant plantscraper.Plant
		var addedAt string

		if err := rows.Scan(&plant.ID, &plant.Name, &plant.Link, &plant.ImageURL, &addedAt); err != nil {
			return nil, err
		}

		plant.AddedAt, err = scanTime(addedAt, "added_at")
		if err != nil {
			return nil, err
		}

		plants = append(plants, &plant)
	}

	return plants, rows.Err()
}

// DeletePlant permanently removes a plant and any record extracted for it.
func (s *PlantService) DeletePlant(ctx context.Context, id string) error {
	plant, err := s.FindPlantByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE plant_name = ?", plant.Name); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM plants WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return plantscraper.Errorf(plantscraper.ENOTFOUND, "plant not found")
	}

	return nil
}
