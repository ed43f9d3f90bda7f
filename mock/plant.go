package mock

import (
	"context"

	plantscraper "github.com/niklas-joh/plantScraper"
)

var _ plantscraper.PlantService = (*PlantService)(nil)

// PlantService is a mock implementation of plantscraper.PlantService.
type PlantService struct {
	CreatePlantFn   func(ctx context.Context, plant *plantscraper.Plant) error
	FindPlantByIDFn func(ctx context.Context, id string) (*plantscraper.Plant, error)
	FindPlantsFn    func(ctx context.Context, filter plantscraper.PlantFilter) ([]*plantscraper.Plant, error)
	DeletePlantFn   func(ctx context.Context, id string) error
}

func (s *PlantService) CreatePlant(ctx context.Context, plant *plantscraper.Plant) error {
	return s.CreatePlantFn(ctx, plant)
}

func (s *PlantService) FindPlantByID(ctx context.Context, id string) (*plantscraper.Plant, error) {
	return s.FindPlantByIDFn(ctx, id)
}

func (s *PlantService) FindPlants(ctx context.Context, filter plantscraper.PlantFilter) ([]*plantscraper.Plant, error) {
	return s.FindPlantsFn(ctx, filter)
}

func (s *PlantService) DeletePlant(ctx context.Context, id string) error {
	return s.DeletePlantFn(ctx, id)
}
