package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"growhub/internal/catalog"
	"growhub/pkg/database"
	"growhub/pkg/models"
)

func main() {
	var (
		out = flag.String("file", "data/components.csv", "output CSV path for build components")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportComponents(ctx, db, *out); err != nil {
		log.Fatalf("export failed: %v", err)
	}

	log.Printf("✅ exported components to %s", *out)
}

func exportComponents(ctx context.Context, db *sql.DB, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"name", "brand", "category", "price", "power_consumption",
		"description", "image_url", "affiliate_url", "specifications",
		"compatibility", "dimensions", "weight", "rating", "review_count",
	}); err != nil {
		return err
	}

	repo := catalog.NewRepo(db)
	offset := 0
	const page = 100

	for {
		items, err := repo.List(ctx, catalog.ListQuery{Limit: page, Offset: offset})
		if err != nil {
			return err
		}
		if len(items) == 0 {
			break
		}

		for _, comp := range items {
			if err := w.Write(componentRow(comp)); err != nil {
				return err
			}
		}
		offset += len(items)
	}

	w.Flush()
	return w.Error()
}

func componentRow(comp models.BuildComponent) []string {
	specs := ""
	if len(comp.Specifications) > 0 {
		if b, err := json.Marshal(comp.Specifications); err == nil {
			specs = string(b)
		}
	}

	compat := ""
	for i, tag := range comp.Compatibility {
		if i > 0 {
			compat += ","
		}
		compat += tag
	}

	dims := ""
	if comp.Dimensions != (models.Dimensions{}) {
		if b, err := json.Marshal(comp.Dimensions); err == nil {
			dims = string(b)
		}
	}

	return []string{
		comp.Name,
		comp.Brand,
		comp.Category,
		strconv.FormatFloat(comp.Price, 'f', -1, 64),
		strconv.Itoa(comp.PowerConsumption),
		comp.Description,
		comp.ImageURL,
		comp.AffiliateURL,
		specs,
		compat,
		dims,
		strconv.FormatFloat(comp.Weight, 'f', -1, 64),
		strconv.FormatFloat(comp.Rating, 'f', -1, 64),
		strconv.Itoa(comp.ReviewCount),
	}
}
