package plantscraper

// Extractor turns one plant's fetched page into a Record.
type Extractor interface {
	// ExtractEntity parses the page HTML, segments every labeled field,
	// cleans the text, and assembles the final record. It returns ENOTFOUND
	// when the page lacks the expected content container; any error is a
	// per-entity failure, never fatal to a batch.
	ExtractEntity(html string, id Identity) (*Record, error)
}
