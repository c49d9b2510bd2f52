package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"growhub/internal/classify"
	"growhub/pkg/models"
)

// Normalize maps one raw ingestion record (scraped page or CSV row) into
// a BuildComponent. Required fields are name, brand and a price that
// parses to a value > 0; category is derived from the name when the
// source did not supply one. All other numeric fields coerce to 0 on
// parse failure. Malformed JSON cells (specifications, dimensions) fail
// the record.
func Normalize(rec models.RawComponentRecord) (*models.BuildComponent, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return nil, fmt.Errorf("missing required field: name")
	}

	brand := strings.TrimSpace(rec.Brand)
	if brand == "" {
		return nil, fmt.Errorf("missing required field: brand")
	}

	category := strings.TrimSpace(rec.Category)
	if category == "" {
		category = classify.Category(name)
	}

	price, err := strconv.ParseFloat(cleanPriceText(rec.Price), 64)
	if err != nil || price <= 0 {
		return nil, fmt.Errorf("invalid price %q: must parse to a number > 0", rec.Price)
	}

	power := parseIntOrZero(rec.PowerConsumption)
	if strings.TrimSpace(rec.PowerConsumption) == "" {
		power = classify.Watts(name)
	}

	comp := &models.BuildComponent{
		Name:             name,
		Brand:            brand,
		Category:         category,
		Price:            price,
		PowerConsumption: power,
		Description:      strings.TrimSpace(rec.Description),
		ImageURL:         strings.TrimSpace(rec.ImageURL),
		AffiliateURL:     strings.TrimSpace(rec.AffiliateURL),
		Compatibility:    splitList(rec.Compatibility),
		Weight:           parseFloatOrZero(rec.Weight),
		Rating:           parseFloatOrZero(rec.Rating),
		ReviewCount:      parseIntOrZero(rec.ReviewCount),
		IsCustom:         false,
	}

	if s := strings.TrimSpace(rec.Specifications); s != "" {
		specs := make(map[string]any)
		if err := json.Unmarshal([]byte(s), &specs); err != nil {
			return nil, fmt.Errorf("malformed specifications JSON: %w", err)
		}
		comp.Specifications = specs
	}

	if s := strings.TrimSpace(rec.Dimensions); s != "" {
		var dims models.Dimensions
		if err := json.Unmarshal([]byte(s), &dims); err != nil {
			return nil, fmt.Errorf("malformed dimensions JSON: %w", err)
		}
		comp.Dimensions = dims
	}

	return comp, nil
}

// cleanPriceText strips currency symbols, commas and whitespace so both
// "$1,299.00" and "149.99" parse.
func cleanPriceText(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")
	return replacer.Replace(s)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
