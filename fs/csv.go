package fs

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// csvHeader is the column layout of the plant-list CSV.
var csvHeader = []string{"Name", "Link", "Image URL"}

// WritePlantsCSV writes the plant list as a CSV with a Name, Link and
// Image URL header. The file is written atomically.
func WritePlantsCSV(path string, plants []*plantscraper.Plant) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range plants {
		if err := w.Write([]string{p.Name, p.Link, p.ImageURL}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return atomicWrite(path, buf.Bytes())
}

// ReadPlantsCSV reads a plant list previously written by WritePlantsCSV.
// The header row is validated and skipped.
func ReadPlantsCSV(path string) ([]*plantscraper.Plant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	header, err := r.Read()
	if err == io.EOF {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "plant CSV %q is empty", path)
	} else if err != nil {
		return nil, err
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, plantscraper.Errorf(plantscraper.EINVALID, "plant CSV %q has unexpected header %v", path, header)
		}
	}

	var plants []*plantscraper.Plant
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		plants = append(plants, &plantscraper.Plant{
			Name:     row[0],
			Link:     row[1],
			ImageURL: row[2],
		})
	}
	return plants, nil
}
