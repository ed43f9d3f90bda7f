package plantscraper

import (
	"context"
	"time"
)

// Plant is one row of the scraped guide grid: the identity of a plant whose
// detail page has yet to be (or has been) scraped.
type Plant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Link     string    `json:"link"`
	ImageURL string    `json:"imageUrl"`
	AddedAt  time.Time `json:"addedAt"`
}

// Identity returns the plant's identity fields for extraction.
func (p *Plant) Identity() Identity {
	return Identity{Name: p.Name, Link: p.Link, ImageURL: p.ImageURL}
}

// Validate returns an error if the plant contains invalid fields.
func (p *Plant) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "plant name required")
	}
	if p.Link == "" {
		return Errorf(EINVALID, "plant link required")
	}
	return nil
}

// PlantFilter represents a filter for FindPlants.
type PlantFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PlantService manages the stored plant list.
type PlantService interface {
	// CreatePlant stores a new plant. Duplicate links return ECONFLICT.
	CreatePlant(ctx context.Context, plant *Plant) error

	// FindPlantByID retrieves a plant by ID.
	// Returns ENOTFOUND if the plant does not exist.
	FindPlantByID(ctx context.Context, id string) (*Plant, error)

	// FindPlants retrieves plants matching the filter, in insertion order.
	FindPlants(ctx context.Context, filter PlantFilter) ([]*Plant, error)

	// DeletePlant permanently removes a plant and its stored record.
	// Returns ENOTFOUND if the plant does not exist.
	DeletePlant(ctx context.Context, id string) error
}
