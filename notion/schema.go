package notion

import "sort"

// Property names and types the plant database is expected to carry.
// Pests/Diseases and Recipes are deliberately absent: they render as page
// content blocks, not properties.
var databaseSchema = map[string]string{
	"Name":           "title",
	"Botanical Name": "rich_text",
	"Plant Type":     "select",
	"Sun Exposure":   "multi_select",
	"Soil pH":        "select",
	"Bloom Time":     "multi_select",
	"Flower Color":   "multi_select",
	"Hardiness Zone": "multi_select",
	"Link":           "url",
	"Image URL":      "url",
	"Photo Credit":   "rich_text",
	"Planting":       "rich_text",
	"Growing":        "rich_text",
	"Harvesting":     "rich_text",
	"Wit and Wisdom": "rich_text",
	"Cooking Notes":  "rich_text",
}

// ValidateDatabase checks that a database carries every expected property
// with the expected type and returns the names of the missing ones.
func ValidateDatabase(db *Database) []string {
	var missing []string
	for name, propType := range databaseSchema {
		props, ok := db.Properties[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if _, ok := props[propType]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
