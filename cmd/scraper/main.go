package main

import (
	"context"
	"flag"
	"log"
	"time"

	"growhub/internal/catalog"
	"growhub/internal/scrape"
	"growhub/pkg/database"
)

func main() {
	flag.Parse()
	urls := flag.Args()
	if len(urls) == 0 {
		log.Fatal("usage: scraper <product-url> [<product-url> ...]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := catalog.NewRepo(db)
	scraper := scrape.New()

	ok := 0
	for _, u := range urls {
		comp, err := scraper.Scrape(u)
		if err != nil {
			log.Printf("[scraper] %s: %v", u, err)
			continue
		}
		if err := repo.Create(ctx, comp); err != nil {
			log.Printf("[scraper] save %q: %v", comp.Name, err)
			continue
		}
		log.Printf("[scraper] saved %q (%s, $%.2f, %dW)", comp.Name, comp.Category, comp.Price, comp.PowerConsumption)
		ok++
	}

	log.Printf("✅ scraped %d/%d product(s)", ok, len(urls))
}
