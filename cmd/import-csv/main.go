package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"growhub/internal/catalog"
	"growhub/internal/ingest"
	"growhub/pkg/database"
)

func main() {
	var (
		in = flag.String("file", "data/components.csv", "input CSV path for build components")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	defer f.Close()

	batch, err := ingest.ParseCSV(f)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	res := ingest.Import(ctx, catalog.NewRepo(db), batch)
	for _, re := range res.Errors {
		if re.Line > 0 {
			log.Printf("row %d: %s", re.Line, re.Err)
		} else {
			log.Printf("insert error: %s", re.Err)
		}
	}
	if res.Skipped > 0 {
		log.Printf("skipped %d row(s) missing required fields", res.Skipped)
	}

	log.Printf("✅ imported %d component(s) from %s", res.ImportedCount, *in)
	if res.ImportedCount == 0 {
		os.Exit(1)
	}
}
