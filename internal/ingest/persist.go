package ingest

import (
	"context"
	"fmt"
	"log"

	"growhub/pkg/models"
)

// ComponentStore is the slice of the catalog repository the importer needs.
type ComponentStore interface {
	Create(ctx context.Context, comp *models.BuildComponent) error
}

// ImportResult reports the outcome of persisting one parsed batch.
type ImportResult struct {
	ImportedCount int        `json:"imported_count"`
	Skipped       int        `json:"skipped"`
	Errors        []RowError `json:"errors,omitempty"`
}

// Import persists a parsed batch one component at a time, in order.
// A failed insert is recorded and the import moves on; rows already
// inserted stay inserted.
func Import(ctx context.Context, store ComponentStore, batch *CSVBatch) ImportResult {
	res := ImportResult{
		Skipped: batch.Skipped,
		Errors:  append([]RowError(nil), batch.RowErrors...),
	}

	for i := range batch.Components {
		comp := batch.Components[i]
		if err := store.Create(ctx, &comp); err != nil {
			log.Printf("[import] insert %q failed: %v", comp.Name, err)
			res.Errors = append(res.Errors, RowError{
				Err: fmt.Sprintf("insert %q: %v", comp.Name, err),
			})
			continue
		}
		res.ImportedCount++
	}
	return res
}
