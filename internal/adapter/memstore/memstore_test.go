package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasadhande/pizza-factory/internal/entity"
)

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog()
	ctx := context.Background()

	p, err := c.LookupPizza(ctx, "Deluxe Veggie")
	require.NoError(t, err)
	assert.True(t, p.Vegetarian)
	price, err := p.Price(entity.SizeLarge)
	require.NoError(t, err)
	assert.Equal(t, 325, price)

	cr, err := c.LookupCrust(ctx, "Cheese Burst")
	require.NoError(t, err)
	assert.Equal(t, 75, cr.Price)

	top, err := c.LookupTopping(ctx, "Grilled chicken")
	require.NoError(t, err)
	assert.False(t, top.Vegetarian)

	s, err := c.LookupSide(ctx, "Mousse cake")
	require.NoError(t, err)
	assert.Equal(t, 90, s.Price)

	assert.Equal(t, 35, c.ExtraCheesePrice())
}

func TestCatalogLookupMiss(t *testing.T) {
	c := NewCatalog()
	_, err := c.LookupPizza(context.Background(), "Margherita")
	var unknown *entity.UnknownCatalogItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "pizza", unknown.Kind)
}

func TestCatalogMenu(t *testing.T) {
	m, err := NewCatalog().Menu(context.Background())
	require.NoError(t, err)
	assert.Len(t, m.Pizzas, 6)
	assert.Len(t, m.Crusts, 4)
	assert.Len(t, m.Toppings, 8)
	assert.Len(t, m.Sides, 2)
	assert.Equal(t, 35, m.ExtraCheesePrice)
}

func TestInventoryConsumeAndRestock(t *testing.T) {
	inv := NewInventory()
	ctx := context.Background()

	ok, err := inv.HasStock(ctx, "Capsicum")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, inv.Restock(ctx, "Capsicum", 2))
	ok, err = inv.HasStock(ctx, "Capsicum")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, inv.Consume(ctx, "Capsicum", 2))
	assert.Equal(t, 0, inv.Quantity("Capsicum"))

	err = inv.Consume(ctx, "Capsicum", 1)
	var stock *entity.InsufficientStockError
	require.ErrorAs(t, err, &stock)
	assert.Equal(t, "Capsicum", stock.Ingredient)
	assert.Equal(t, 0, inv.Quantity("Capsicum"))
}
