package sqlite

import (
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// Timestamps are stored as RFC3339 text. scanTime converts a stored column
// value back to time.Time, naming the column so a corrupt row is traceable.
func scanTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, plantscraper.Errorf(plantscraper.EINTERNAL,
			"column %s holds invalid timestamp %q: %v", column, value, err)
	}
	return t, nil
}

// paginate returns the LIMIT/OFFSET clause for the positive filter values,
// with the matching bind arguments.
func paginate(limit, offset int) (string, []any) {
	var clause string
	var args []any
	if limit > 0 {
		clause += " LIMIT ?"
		args = append(args, limit)
	}
	if offset > 0 {
		clause += " OFFSET ?"
		args = append(args, offset)
	}
	return clause, args
}
