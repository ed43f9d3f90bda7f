package notion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/niklas-joh/plantScraper/notion"
)

func validDatabase() *notion.Database {
	props := map[string]map[string]any{
		"Name":           {"title": map[string]any{}},
		"Botanical Name": {"rich_text": map[string]any{}},
		"Plant Type":     {"select": map[string]any{}},
		"Sun Exposure":   {"multi_select": map[string]any{}},
		"Soil pH":        {"select": map[string]any{}},
		"Bloom Time":     {"multi_select": map[string]any{}},
		"Flower Color":   {"multi_select": map[string]any{}},
		"Hardiness Zone": {"multi_select": map[string]any{}},
		"Link":           {"url": map[string]any{}},
		"Image URL":      {"url": map[string]any{}},
		"Photo Credit":   {"rich_text": map[string]any{}},
		"Planting":       {"rich_text": map[string]any{}},
		"Growing":        {"rich_text": map[string]any{}},
		"Harvesting":     {"rich_text": map[string]any{}},
		"Wit and Wisdom": {"rich_text": map[string]any{}},
		"Cooking Notes":  {"rich_text": map[string]any{}},
	}
	return &notion.Database{ID: "db-1", Properties: props}
}

func TestValidateDatabase(t *testing.T) {
	t.Parallel()

	t.Run("complete schema has nothing missing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, notion.ValidateDatabase(validDatabase()))
	})

	t.Run("reports missing properties", func(t *testing.T) {
		t.Parallel()

		db := validDatabase()
		delete(db.Properties, "Bloom Time")
		delete(db.Properties, "Soil pH")

		missing := notion.ValidateDatabase(db)

		assert.Equal(t, []string{"Bloom Time", "Soil pH"}, missing)
	})

	t.Run("reports type mismatches", func(t *testing.T) {
		t.Parallel()

		db := validDatabase()
		db.Properties["Link"] = map[string]any{"rich_text": map[string]any{}}

		missing := notion.ValidateDatabase(db)

		assert.Equal(t, []string{"Link"}, missing)
	})

	t.Run("empty database misses everything", func(t *testing.T) {
		t.Parallel()

		missing := notion.ValidateDatabase(&notion.Database{})

		assert.Len(t, missing, 16)
	})
}
