package sqlite_test

import (
	"context"
	"testing"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantService_CreatePlant(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))
		plant := &plantscraper.Plant{
			Name:     "Artichokes",
			Link:     "https://www.almanac.com/plant/artichokes",
			ImageURL: "https://www.almanac.com/img/artichoke.jpg",
		}

		err := svc.CreatePlant(context.Background(), plant)

		require.NoError(t, err)
		assert.NotEmpty(t, plant.ID)
		assert.False(t, plant.AddedAt.IsZero())
	})

	t.Run("duplicate link returns conflict", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))
		ctx := context.Background()

		first := &plantscraper.Plant{Name: "Artichokes", Link: "https://www.almanac.com/plant/artichokes"}
		require.NoError(t, svc.CreatePlant(ctx, first))

		dup := &plantscraper.Plant{Name: "Artichokes Again", Link: "https://www.almanac.com/plant/artichokes"}
		err := svc.CreatePlant(ctx, dup)

		require.Error(t, err)
		assert.Equal(t, plantscraper.ECONFLICT, plantscraper.ErrorCode(err))
	})

	t.Run("validates required fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))

		err := svc.CreatePlant(context.Background(), &plantscraper.Plant{Name: "No Link"})

		require.Error(t, err)
		assert.Equal(t, plantscraper.EINVALID, plantscraper.ErrorCode(err))
	})
}

func TestPlantService_FindPlantByID(t *testing.T) {
	t.Parallel()

	t.Run("round trips a stored plant", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))
		ctx := context.Background()

		plant := &plantscraper.Plant{
			Name:     "Beets",
			Link:     "https://www.almanac.com/plant/beets",
			ImageURL: "https://www.almanac.com/img/beets.jpg",
		}
		require.NoError(t, svc.CreatePlant(ctx, plant))

		got, err := svc.FindPlantByID(ctx, plant.ID)

		require.NoError(t, err)
		assert.Equal(t, plant.Name, got.Name)
		assert.Equal(t, plant.Link, got.Link)
		assert.Equal(t, plant.ImageURL, got.ImageURL)
		assert.Equal(t, plant.AddedAt.Unix(), got.AddedAt.Unix())
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))

		_, err := svc.FindPlantByID(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, plantscraper.ENOTFOUND, plantscraper.ErrorCode(err))
	})
}

func TestPlantService_FindPlants(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.PlantService) {
		t.Helper()
		ctx := context.Background()
		for _, p := range []*plantscraper.Plant{
			{Name: "Artichokes", Link: "https://x/plant/artichokes"},
			{Name: "Beets", Link: "https://x/plant/beets"},
			{Name: "Kale", Link: "https://x/plant/kale"},
		} {
			require.NoError(t, svc.CreatePlant(ctx, p))
		}
	}

	t.Run("returns plants in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))
		seed(t, svc)

		plants, err := svc.FindPlants(context.Background(), plantscraper.PlantFilter{})

		require.NoError(t, err)
		require.Len(t, plants, 3)
		assert.Equal(t, "Artichokes", plants[0].Name)
		assert.Equal(t, "Beets", plants[1].Name)
		assert.Equal(t, "Kale", plants[2].Name)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))
		seed(t, svc)

		name := "Beets"
		plants, err := svc.FindPlants(context.Background(), plantscraper.PlantFilter{Name: &name})

		require.NoError(t, err)
		require.Len(t, plants, 1)
		assert.Equal(t, "Beets", plants[0].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))
		seed(t, svc)

		plants, err := svc.FindPlants(context.Background(), plantscraper.PlantFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, plants, 1)
		assert.Equal(t, "Beets", plants[0].Name)
	})
}

func TestPlantService_DeletePlant(t *testing.T) {
	t.Parallel()

	t.Run("removes the plant and its record", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		plantSvc := sqlite.NewPlantService(db)
		recordSvc := sqlite.NewRecordService(db)
		ctx := context.Background()

		plant := &plantscraper.Plant{Name: "Kale", Link: "https://x/plant/kale"}
		require.NoError(t, plantSvc.CreatePlant(ctx, plant))
		require.NoError(t, recordSvc.SaveRecord(ctx, &plantscraper.StoredRecord{
			PlantName: "Kale",
			Data:      []byte(`{"Name":"Kale"}`),
		}))

		require.NoError(t, plantSvc.DeletePlant(ctx, plant.ID))

		_, err := plantSvc.FindPlantByID(ctx, plant.ID)
		assert.Equal(t, plantscraper.ENOTFOUND, plantscraper.ErrorCode(err))

		_, err = recordSvc.FindRecordByName(ctx, "Kale")
		assert.Equal(t, plantscraper.ENOTFOUND, plantscraper.ErrorCode(err))
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPlantService(mustOpenDB(t))

		err := svc.DeletePlant(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, plantscraper.ENOTFOUND, plantscraper.ErrorCode(err))
	})
}
