package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growhub/internal/catalog"
	"growhub/pkg/database"
)

func TestParseCSVDropsInvalidRows(t *testing.T) {
	csvData := strings.Join([]string{
		"name,brand,category,price,power_consumption",
		"4x4 Grow Tent,VIVOSUN,grow-tent,109.99,0",
		"SF-2000 LED Grow Light,,led-light,299.99,200", // no brand
		"CLOUDLINE T6,AC Infinity,ventilation,149.99,45",
	}, "\n")

	batch, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, batch.Components, 2)
	assert.Equal(t, 1, batch.Skipped)
	assert.Empty(t, batch.RowErrors)

	assert.Equal(t, "4x4 Grow Tent", batch.Components[0].Name)
	assert.Equal(t, 109.99, batch.Components[0].Price)
	assert.Equal(t, "CLOUDLINE T6", batch.Components[1].Name)
	assert.Equal(t, 45, batch.Components[1].PowerConsumption)
}

func TestParseCSVAllInvalid(t *testing.T) {
	csvData := strings.Join([]string{
		"name,brand,category,price",
		"No Brand Item,,accessories,10",
		",VIVOSUN,grow-tent,109.99",
	}, "\n")

	batch, err := ParseCSV(strings.NewReader(csvData))
	assert.Nil(t, batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required fields: name, brand, category, price")
}

func TestParseCSVBadJSONCellFailsOnlyThatRow(t *testing.T) {
	csvData := strings.Join([]string{
		"name,brand,category,price,specifications",
		`Good Item,BrandA,accessories,10,"{""key"":""v""}"`,
		`Bad Item,BrandB,accessories,12,"{broken"`,
	}, "\n")

	batch, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, batch.Components, 1)
	assert.Equal(t, "Good Item", batch.Components[0].Name)

	require.Len(t, batch.RowErrors, 1)
	assert.Equal(t, 3, batch.RowErrors[0].Line)
	assert.Contains(t, batch.RowErrors[0].Err, "specifications")
}

func TestParseCSVHeaderCaseInsensitive(t *testing.T) {
	csvData := "Name,BRAND,Category,Price\nTent,VIVOSUN,grow-tent,99.99\n"

	batch, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, batch.Components, 1)
	assert.Equal(t, "Tent", batch.Components[0].Name)
}

func TestImportPersistsValidRows(t *testing.T) {
	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	repo := catalog.NewRepo(db)

	csvData := strings.Join([]string{
		"name,brand,category,price,power_consumption,compatibility",
		`4x4 Grow Tent,VIVOSUN,grow-tent,109.99,0,"led-light,ventilation"`,
		"Missing Brand Row,,led-light,299.99,200,",
		"CLOUDLINE T6,AC Infinity,ventilation,149.99,45,",
	}, "\n")

	batch, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	res := Import(context.Background(), repo, batch)
	assert.Equal(t, 2, res.ImportedCount)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Errors)

	ctx := context.Background()
	items, err := repo.List(ctx, catalog.ListQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// name-ordered: "4x4 Grow Tent" then "CLOUDLINE T6"
	assert.Equal(t, 109.99, items[0].Price)
	assert.Equal(t, []string{"led-light", "ventilation"}, items[0].Compatibility)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, 45, items[1].PowerConsumption)

	counts, err := repo.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"grow-tent": 1, "ventilation": 1}, counts)
}
