package plantscraper

// FieldPolicy selects the extraction and cleaning behavior for one field
// label. Labels are resolved to a policy once at segmentation entry instead
// of string-matching throughout the pipeline.
type FieldPolicy int

const (
	// PolicyPlain extracts text with no special handling.
	PolicyPlain FieldPolicy = iota

	// PolicyAdStop truncates section extraction at the advertisement marker
	// and applies the strict paragraph filter during cleaning.
	PolicyAdStop

	// PolicyTable extracts the field's table as a structured value. A table
	// found inside a sub-section terminates that section's extraction.
	PolicyTable

	// PolicyLinks extracts the field as a name-to-URL mapping, falling back
	// to flattened text when no matching anchors exist.
	PolicyLinks
)

// Policies maps field labels to their extraction policy. Unknown labels get
// PolicyPlain.
type Policies map[string]FieldPolicy

// DefaultPolicies returns the policy table for the known page structure.
func DefaultPolicies() Policies {
	return Policies{
		"Cooking Notes":  PolicyAdStop,
		"Pests/Diseases": PolicyTable,
		"Recipes":        PolicyLinks,
	}
}

// For resolves the policy for a label.
func (p Policies) For(label string) FieldPolicy {
	if policy, ok := p[label]; ok {
		return policy
	}
	return PolicyPlain
}
