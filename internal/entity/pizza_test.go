package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPrices(regular, medium, large int) map[Size]int {
	return map[Size]int{SizeRegular: regular, SizeMedium: medium, SizeLarge: large}
}

func TestNewPizza(t *testing.T) {
	p, err := NewPizza("Deluxe Veggie", fullPrices(150, 200, 325), true)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Veggie", p.Name)
	assert.True(t, p.Vegetarian)

	got, err := p.Price(SizeMedium)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}

func TestNewPizza_MissingSizeInTable(t *testing.T) {
	_, err := NewPizza("Test Pizza", map[Size]int{SizeRegular: 100}, true)
	var sizeErr *InvalidSizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestNewPizza_NegativePrice(t *testing.T) {
	_, err := NewPizza("Test Pizza", fullPrices(100, -150, 200), true)
	var priceErr *InvalidPriceError
	require.ErrorAs(t, err, &priceErr)
}

func TestNewPizza_EmptyName(t *testing.T) {
	_, err := NewPizza("", fullPrices(100, 150, 200), true)
	var nameErr *EmptyNameError
	require.ErrorAs(t, err, &nameErr)
}

func TestPizzaPrice_UnknownSize(t *testing.T) {
	p, err := NewPizza("Test Pizza", fullPrices(100, 150, 200), true)
	require.NoError(t, err)

	_, err = p.Price(Size("Jumbo"))
	var sizeErr *InvalidSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "Jumbo", sizeErr.Size)
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("Large")
	require.NoError(t, err)
	assert.Equal(t, SizeLarge, s)

	_, err = ParseSize("")
	assert.ErrorIs(t, err, ErrMissingSize)

	_, err = ParseSize("huge")
	var sizeErr *InvalidSizeError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestNewTopping_NegativePrice(t *testing.T) {
	_, err := NewTopping("Mushroom", -10, true)
	var priceErr *InvalidPriceError
	require.ErrorAs(t, err, &priceErr)
	assert.Equal(t, -10, priceErr.Price)
}

func TestNewTopping_ZeroPriceAllowed(t *testing.T) {
	top, err := NewTopping("Fresh tomato", 0, true)
	require.NoError(t, err)
	assert.Equal(t, 0, top.Price)
}

func TestNewCrust_EmptyName(t *testing.T) {
	_, err := NewCrust("", 0)
	var nameErr *EmptyNameError
	require.ErrorAs(t, err, &nameErr)
}

func TestNewSide_NonPositivePrice(t *testing.T) {
	_, err := NewSide("Cold drink", 0)
	var priceErr *InvalidPriceError
	require.ErrorAs(t, err, &priceErr)

	_, err = NewSide("Cold drink", -5)
	require.ErrorAs(t, err, &priceErr)
}

func TestNewSideLine_NegativeQuantity(t *testing.T) {
	side, err := NewSide("Cold drink", 55)
	require.NoError(t, err)

	_, err = NewSideLine(side, -1)
	var qtyErr *InvalidQuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.Equal(t, -1, qtyErr.Quantity)
}
