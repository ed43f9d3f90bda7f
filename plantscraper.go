// Package plantscraper extracts semi-structured plant-care information from
// growing-guide pages and normalizes it into nested, serializable records.
// It scrapes the guide grid for plant identities, fetches each plant's page,
// segments every labeled field into a preamble plus named sub-sections,
// recognizes embedded tables and link lists, and strips advertisement
// boilerplate before persisting the result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package plantscraper
