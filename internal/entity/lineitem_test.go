package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPizza(t *testing.T, name string, prices map[Size]int, veg bool) *Pizza {
	t.Helper()
	p, err := NewPizza(name, prices, veg)
	require.NoError(t, err)
	return &p
}

func mustTopping(t *testing.T, name string, price int, veg bool) Topping {
	t.Helper()
	top, err := NewTopping(name, price, veg)
	require.NoError(t, err)
	return top
}

func mustCrust(t *testing.T, name string, price int) Crust {
	t.Helper()
	c, err := NewCrust(name, price)
	require.NoError(t, err)
	return c
}

func deluxeVeggie(t *testing.T) *Pizza {
	return mustPizza(t, "Deluxe Veggie", fullPrices(150, 200, 325), true)
}

func TestLineItemPrice_MediumWithToppings(t *testing.T) {
	li := LineItem{
		Pizza: deluxeVeggie(t),
		Size:  SizeMedium,
		Crust: mustCrust(t, "New hand tossed", 0),
		Toppings: []Topping{
			mustTopping(t, "Black olive", 20, true),
			mustTopping(t, "Capsicum", 25, true),
		},
	}
	p, err := li.Price()
	require.NoError(t, err)
	assert.Equal(t, 245, p)
}

func TestLineItemPrice_LargeTwoToppingsFree(t *testing.T) {
	li := LineItem{
		Pizza: deluxeVeggie(t),
		Size:  SizeLarge,
		Crust: mustCrust(t, "New hand tossed", 0),
		Toppings: []Topping{
			mustTopping(t, "Black olive", 20, true),
			mustTopping(t, "Capsicum", 25, true),
		},
	}
	p, err := li.Price()
	require.NoError(t, err)
	assert.Equal(t, 325, p)
}

func TestLineItemPrice_LargeOverflowToppingCharged(t *testing.T) {
	li := LineItem{
		Pizza: deluxeVeggie(t),
		Size:  SizeLarge,
		Crust: mustCrust(t, "New hand tossed", 0),
		Toppings: []Topping{
			mustTopping(t, "Black olive", 20, true),
			mustTopping(t, "Capsicum", 25, true),
			mustTopping(t, "Paneer", 35, true),
		},
	}
	p, err := li.Price()
	require.NoError(t, err)
	// First two free; only the third is charged.
	assert.Equal(t, 360, p)
}

func TestLineItemPrice_CrustAddend(t *testing.T) {
	li := LineItem{
		Pizza: deluxeVeggie(t),
		Size:  SizeRegular,
		Crust: mustCrust(t, "Cheese Burst", 75),
	}
	p, err := li.Price()
	require.NoError(t, err)
	assert.Equal(t, 225, p)
}

func TestLineItemPrice_ExtraCheese(t *testing.T) {
	li := LineItem{
		Pizza:            deluxeVeggie(t),
		Size:             SizeRegular,
		Crust:            mustCrust(t, "New hand tossed", 0),
		ExtraCheese:      true,
		ExtraCheesePrice: 35,
	}
	p, err := li.Price()
	require.NoError(t, err)
	assert.Equal(t, 185, p)
}

func TestLineItemPrice_NoPizzaIsFree(t *testing.T) {
	li := LineItem{
		Crust:    mustCrust(t, "New hand tossed", 0),
		Toppings: []Topping{mustTopping(t, "Mushroom", 30, true)},
	}
	p, err := li.Price()
	require.NoError(t, err)
	assert.Equal(t, 0, p)
}

func TestLineItemIngredients(t *testing.T) {
	li := LineItem{
		Pizza:       deluxeVeggie(t),
		Size:        SizeMedium,
		Crust:       mustCrust(t, "New hand tossed", 0),
		Toppings:    []Topping{mustTopping(t, "Capsicum", 25, true)},
		ExtraCheese: true,
	}
	assert.Equal(t,
		[]string{"Deluxe Veggie", "New hand tossed", "Capsicum", ExtraCheeseIngredient},
		li.Ingredients())
}

func TestSideLinePrice(t *testing.T) {
	side, err := NewSide("Cold drink", 55)
	require.NoError(t, err)

	sl, err := NewSideLine(side, 2)
	require.NoError(t, err)
	assert.Equal(t, 110, sl.Price())

	one, err := NewSideLine(side, 1)
	require.NoError(t, err)
	assert.Equal(t, 55, one.Price())
}
