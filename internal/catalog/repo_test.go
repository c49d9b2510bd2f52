package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growhub/pkg/database"
	"growhub/pkg/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewRepo(db)
}

func TestRepoCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	comp := &models.BuildComponent{
		Name:             "CLOUDLINE T6",
		Brand:            "AC Infinity",
		Category:         "ventilation",
		Price:            149.99,
		PowerConsumption: 45,
		Description:      "6 inch inline duct fan",
		Specifications:   map[string]any{"airflow": "402 CFM"},
		Compatibility:    []string{"grow-tent", "carbon-filter"},
		Dimensions:       models.Dimensions{Length: 30, Width: 20, Height: 20},
		Weight:           2.1,
	}
	require.NoError(t, repo.Create(ctx, comp))
	require.NotEmpty(t, comp.ID) // generated

	got, err := repo.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, comp.Name, got.Name)
	assert.Equal(t, 149.99, got.Price)
	assert.Equal(t, 45, got.PowerConsumption)
	assert.Equal(t, "402 CFM", got.Specifications["airflow"])
	assert.Equal(t, []string{"grow-tent", "carbon-filter"}, got.Compatibility)
	assert.Equal(t, models.Dimensions{Length: 30, Width: 20, Height: 20}, got.Dimensions)
	assert.False(t, got.IsCustom)
}

func TestRepoGetMissing(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepoCustomIDPreserved(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	comp := &models.BuildComponent{
		ID:       "custom-1700000000000",
		Name:     "DIY Trellis",
		Brand:    "Homemade",
		Category: "accessories",
		IsCustom: true,
	}
	require.NoError(t, repo.Create(ctx, comp))

	got, err := repo.GetByID(ctx, "custom-1700000000000")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsCustom)
	assert.True(t, strings.HasPrefix(got.ID, "custom-"))
}

func TestRepoGetCorruptJSONColumn(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// a row whose specifications column is not valid JSON must surface
	// as an error, not as a silently empty component
	_, err := repo.DB.ExecContext(ctx, `
		INSERT INTO build_components (id, name, brand, category, price, specifications)
		VALUES ('bad-1', 'Mystery Fan', 'NoName', 'ventilation', 19.99, '{not json')
	`)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "bad-1")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "decode specifications")
}

func TestRepoListFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []models.BuildComponent{
		{Name: "4x4 Grow Tent", Brand: "VIVOSUN", Category: "grow-tent", Price: 109.99},
		{Name: "SF-2000 LED", Brand: "Spider Farmer", Category: "led-light", Price: 299.99},
		{Name: "SF-1000 LED", Brand: "Spider Farmer", Category: "led-light", Price: 159.99},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	items, err := repo.List(ctx, ListQuery{Category: "led-light", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	total, err := repo.Count(ctx, ListQuery{Category: "led-light"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	items, err = repo.List(ctx, ListQuery{Q: "vivosun", Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "4x4 Grow Tent", items[0].Name)

	counts, err := repo.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"grow-tent": 1, "led-light": 2}, counts)
}

func TestRepoUpdateAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	comp := &models.BuildComponent{Name: "Timer", Brand: "BN-LINK", Category: "timer", Price: 12.99}
	require.NoError(t, repo.Create(ctx, comp))

	comp.Price = 9.99
	ok, err := repo.Update(ctx, comp)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Price)

	ok, err = repo.Delete(ctx, comp.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.Delete(ctx, comp.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
