package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
)

var headerCleaner = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// sanitizeHeader strips everything but alphanumerics and underscores from a
// column name, so headers like "publication Date!" still match.
func sanitizeHeader(name string) string {
	return headerCleaner.ReplaceAllString(name, "")
}

// columnSetters maps a sanitized column name to the Row field it feeds.
// The names are those of the historical export files.
var columnSetters = map[string]func(*Row, string){
	"publicationDate": func(r *Row, v string) { r.PublicationDate = v },
	"Headline":        func(r *Row, v string) { r.Headline = v },
	"name":            func(r *Row, v string) { r.SourceName = v },
	"author":          func(r *Row, v string) { r.Author = v },
	"url":             func(r *Row, v string) { r.URL = v },
	"coverageLevel":   func(r *Row, v string) { r.CoverageLevel = v },
	"tags":            func(r *Row, v string) { r.TagLabel = v },
	"location":        func(r *Row, v string) { r.LocationLabel = v },
}

// ReadRows parses CSV input into ingestion rows. The first record is the
// header; unknown columns are ignored, and empty cells stay empty so the
// fan-out counts them as missing.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	setters := make([]func(*Row, string), len(header))
	for i, name := range header {
		setters[i] = columnSetters[sanitizeHeader(name)]
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		var row Row
		for i, value := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&row, value)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile parses a CSV file into ingestion rows
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()
	return ReadRows(f)
}
