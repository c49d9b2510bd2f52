package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"growhub/pkg/models"
)

// RowError describes why one CSV data row did not make it into the batch.
type RowError struct {
	Line int    `json:"line"` // 1-based line in the file, header is line 1
	Err  string `json:"error"`
}

// CSVBatch is the outcome of parsing one CSV file: the components that
// survived validation, per-row errors, and the count of rows silently
// dropped for missing required fields.
type CSVBatch struct {
	Components []models.BuildComponent
	RowErrors  []RowError
	Skipped    int
}

// ParseCSV reads a component CSV (header row required) and normalizes
// every valid row. Rows missing any of name/brand/category/price are
// dropped; rows that fail normalization (bad JSON cell, non-positive
// price) are reported in RowErrors. If no row at all survives, the whole
// batch is an error.
func ParseCSV(src io.Reader) (*CSVBatch, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	batch := &CSVBatch{}
	line := 1

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		line++
		if len(row) == 0 {
			continue
		}

		name := valueAt(header, row, "name")
		brand := valueAt(header, row, "brand")
		category := valueAt(header, row, "category")
		price := valueAt(header, row, "price")
		if name == "" || brand == "" || category == "" || price == "" {
			batch.Skipped++
			continue
		}

		rec := models.RawComponentRecord{
			Name:             name,
			Brand:            brand,
			Category:         category,
			Price:            price,
			PowerConsumption: valueAt(header, row, "power_consumption"),
			Description:      valueAt(header, row, "description"),
			ImageURL:         valueAt(header, row, "image_url"),
			AffiliateURL:     valueAt(header, row, "affiliate_url"),
			Specifications:   valueAt(header, row, "specifications"),
			Compatibility:    valueAt(header, row, "compatibility"),
			Dimensions:       valueAt(header, row, "dimensions"),
			Weight:           valueAt(header, row, "weight"),
			Rating:           valueAt(header, row, "rating"),
			ReviewCount:      valueAt(header, row, "review_count"),
		}

		comp, err := Normalize(rec)
		if err != nil {
			batch.RowErrors = append(batch.RowErrors, RowError{Line: line, Err: err.Error()})
			continue
		}
		batch.Components = append(batch.Components, *comp)
	}

	if len(batch.Components) == 0 {
		return nil, fmt.Errorf("no valid components found in CSV (required fields: name, brand, category, price)")
	}
	return batch, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
