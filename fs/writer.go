// Package fs provides file-based output for scraped data: the detailed
// JSON export, the plant-list CSV, and per-plant markdown snapshots.
package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// jsonIndent matches the indentation of the detailed JSON export.
const jsonIndent = "  "

// WriteRecordsJSON writes stored records as one indented JSON array. The
// stored data is re-indented without decoding, which preserves the field
// order the extraction produced. The file is written to a temporary
// sibling and renamed into place so readers never see a partial export.
func WriteRecordsJSON(path string, records []*plantscraper.StoredRecord) error {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, rec := range records {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n" + jsonIndent)
		if err := json.Indent(&buf, rec.Data, jsonIndent, jsonIndent); err != nil {
			return plantscraper.Errorf(plantscraper.EINVALID, "record %q holds invalid JSON: %v", rec.PlantName, err)
		}
	}
	if len(records) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")

	return atomicWrite(path, buf.Bytes())
}

// atomicWrite writes data to a temporary sibling of path and renames it
// into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
