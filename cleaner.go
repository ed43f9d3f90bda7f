package plantscraper

import (
	"strings"
)

// AdStopMarker is the token that terminates section extraction under
// PolicyAdStop. Cleaning additionally handles the case variants listed in
// CleanerConfig.AdMarkers.
const AdStopMarker = "ADVERTISEMENT"

// CleanerConfig holds the rule sets used by the Cleaner. The term lists are
// data, not logic: they evolved across scraper iterations and are expected
// to keep changing, so callers may supply their own.
type CleanerConfig struct {
	// AdMarkers are the literal interstitial tokens to remove. A line equal
	// to a marker is dropped; a line containing one is truncated at it.
	AdMarkers []string

	// OffTopicTerms flag paragraphs about unrelated site sections.
	OffTopicTerms []string

	// ConversationalTerms flag first/second-person reader commentary.
	ConversationalTerms []string

	// NutritionTerms unconditionally keep a paragraph that mentions them.
	NutritionTerms []string

	// CookingVerbs, co-located with the entity's own name, override a
	// denylist match and keep the paragraph.
	CookingVerbs []string

	// Sentinel is emitted when the strict filter discards every paragraph.
	Sentinel string
}

// DefaultCleanerConfig returns the rule sets observed to work for the
// growing-guide pages.
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		AdMarkers: []string{"ADVERTISEMENT", "Advertisement"},
		OffTopicTerms: []string{
			"Vegetables", "Flowers", "Shrubs", "Herbs",
			"Gardening Products", "Growing Guides",
		},
		ConversationalTerms: []string{
			"I ", "I'", "my ", "My ", "me ",
			"you ", "You ", "your ", "Your ", "we ", "We ",
		},
		NutritionTerms: []string{
			"vitamin", "nutrient", "nutrition", "fiber",
			"antioxidant", "calorie", "mineral", "protein",
		},
		CookingVerbs: []string{
			"cook", "boil", "steam", "roast", "grill", "bake",
			"fry", "saute", "sauté", "simmer", "serve", "eat",
			"season", "trim", "slice",
		},
		Sentinel: "No cooking notes available.",
	}
}

// Cleaner removes interstitial boilerplate from extracted text. Clean covers
// every field; CleanStrict adds the paragraph filter used for the one
// ad-stop label. Both are idempotent.
type Cleaner struct {
	cfg CleanerConfig
}

// NewCleaner returns a Cleaner using the given rule sets.
func NewCleaner(cfg CleanerConfig) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean removes advertisement markers line by line. Lines consisting only of
// a marker are dropped; lines with a marker amid other text keep the prefix
// before the first marker; all other lines pass through unchanged. Multiple
// occurrences across multiple lines are all handled.
func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}
	if !c.containsMarker(text) {
		return text
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		marker, idx := c.firstMarker(line)
		switch {
		case marker == "":
			cleaned = append(cleaned, line)
		case strings.TrimSpace(line) == marker:
			// marker-only line, drop it
		case idx > 0:
			if prefix := strings.TrimSpace(line[:idx]); prefix != "" {
				cleaned = append(cleaned, prefix)
			}
		default:
			// marker at the start of a mixed line: nothing salvageable
		}
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// CleanStrict applies Clean and then the paragraph filter: a paragraph
// matching the off-topic or conversational denylist is dropped unless a
// cooking verb appears alongside the entity's own name; paragraphs matching
// the nutrition allowlist, or neither denylist, are kept. If every paragraph
// is dropped, the sentinel is returned.
func (c *Cleaner) CleanStrict(text, entityName string) string {
	text = c.Clean(text)
	if text == "" {
		return ""
	}
	if text == c.cfg.Sentinel {
		return text
	}

	paragraphs := strings.Split(text, "\n")
	kept := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if c.keepParagraph(p, entityName) {
			kept = append(kept, p)
		}
	}

	if len(kept) == 0 {
		return c.cfg.Sentinel
	}
	return strings.Join(kept, "\n")
}

func (c *Cleaner) keepParagraph(p, entityName string) bool {
	if containsAnyFold(p, c.cfg.NutritionTerms) {
		return true
	}
	offTopic := containsAny(p, c.cfg.OffTopicTerms)
	conversational := containsAny(p, c.cfg.ConversationalTerms)
	if !offTopic && !conversational {
		return true
	}
	// Denylisted, but instructional text about the plant itself stays.
	return entityName != "" &&
		containsFold(p, entityName) &&
		containsAnyFold(p, c.cfg.CookingVerbs)
}

func (c *Cleaner) containsMarker(s string) bool {
	for _, m := range c.cfg.AdMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// firstMarker returns the marker occurring earliest in line and its index,
// or ("", -1) if none occurs.
func (c *Cleaner) firstMarker(line string) (string, int) {
	found := ""
	foundIdx := -1
	for _, m := range c.cfg.AdMarkers {
		if idx := strings.Index(line, m); idx >= 0 && (foundIdx == -1 || idx < foundIdx) {
			found, foundIdx = m, idx
		}
	}
	return found, foundIdx
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, t := range terms {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
