package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growhub/pkg/models"
)

func comp(id, category string, price float64, watts int) models.BuildComponent {
	return models.BuildComponent{
		ID:               id,
		Name:             id,
		Brand:            "TestBrand",
		Category:         category,
		Price:            price,
		PowerConsumption: watts,
	}
}

func TestAggregatorTotals(t *testing.T) {
	agg := NewAggregator()

	require.True(t, agg.Add(comp("a", "led-light", 10, 5)))
	require.True(t, agg.Add(comp("b", "accessories", 3, 0)))
	require.True(t, agg.SetQuantity("a", "led-light", 2))
	require.True(t, agg.SetQuantity("b", "accessories", 4))

	assert.Equal(t, 32.0, agg.TotalCost())
	assert.Equal(t, 10, agg.TotalPower())
	assert.Equal(t, 2, agg.Len())
}

func TestAggregatorDuplicateAddIsNoOp(t *testing.T) {
	agg := NewAggregator()

	assert.True(t, agg.Add(comp("a", "led-light", 10, 5)))
	assert.False(t, agg.Add(comp("a", "led-light", 10, 5)))
	assert.Equal(t, 1, agg.Len())

	// same id in a different category is a distinct selection
	assert.True(t, agg.Add(comp("a", "accessories", 10, 5)))
	assert.Equal(t, 2, agg.Len())
}

func TestAggregatorQuantityZeroRemoves(t *testing.T) {
	viaRemove := NewAggregator()
	viaZero := NewAggregator()

	for _, agg := range []*Aggregator{viaRemove, viaZero} {
		require.True(t, agg.Add(comp("a", "led-light", 10, 5)))
		require.True(t, agg.Add(comp("b", "led-light", 20, 10)))
	}

	require.True(t, viaRemove.Remove("a", "led-light"))
	require.True(t, viaZero.SetQuantity("a", "led-light", 0))

	assert.Equal(t, viaRemove.Items(), viaZero.Items())
	assert.Equal(t, viaRemove.TotalCost(), viaZero.TotalCost())

	items := viaZero.Items()["led-light"]
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestAggregatorMissingEntries(t *testing.T) {
	agg := NewAggregator()
	assert.False(t, agg.Remove("nope", "led-light"))
	assert.False(t, agg.SetQuantity("nope", "led-light", 3))

	require.True(t, agg.Add(comp("a", "led-light", 10, 5)))
	assert.False(t, agg.Remove("a", "accessories")) // wrong category
	assert.False(t, agg.SetQuantity("a", "accessories", 2))
	assert.Equal(t, 1, agg.Len())
}

func TestAggregatorAddStartsAtQuantityOne(t *testing.T) {
	agg := NewAggregator()
	require.True(t, agg.Add(comp("a", "led-light", 10, 5)))

	items := agg.Items()["led-light"]
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 10.0, agg.TotalCost())
}

func TestAggregatorItemsIsACopy(t *testing.T) {
	agg := NewAggregator()
	require.True(t, agg.Add(comp("a", "led-light", 10, 5)))

	items := agg.Items()
	items["led-light"][0].Quantity = 99

	fresh := agg.Items()["led-light"]
	assert.Equal(t, 1, fresh[0].Quantity)
}
