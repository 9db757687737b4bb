package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSize is returned when a line item request omits the pizza size.
	ErrMissingSize = errors.New("pizza size is required")

	// ErrOrderPlaced is returned by AddItem/AddSide once an order is placed.
	ErrOrderPlaced = errors.New("order already placed")
)

// UnknownCatalogItemError reports a catalog lookup miss.
// Kind is one of "pizza", "crust", "topping", "side".
type UnknownCatalogItemError struct {
	Kind string
	ID   string
}

func (e *UnknownCatalogItemError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.ID)
}

// InvalidSizeError reports a size value outside {Regular, Medium, Large},
// or a size missing from a pizza's price table.
type InvalidSizeError struct {
	Size string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid pizza size: %q", e.Size)
}

// InvalidPriceError reports a construction-time price invariant violation.
type InvalidPriceError struct {
	Item  string
	Price int
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %d for %s", e.Price, e.Item)
}

// InvalidQuantityError reports a negative side-line quantity.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: %d", e.Quantity)
}

// EmptyNameError reports an empty identifier at construction.
type EmptyNameError struct {
	Kind string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("%s name cannot be empty", e.Kind)
}

// RuleViolationError is returned by Order.Validate when a business rule
// rejects a line item (or the order itself). Message is the stable,
// user-visible violation text.
type RuleViolationError struct {
	Rule    string
	Message string
}

func (e *RuleViolationError) Error() string { return e.Message }

// InsufficientStockError reports that an ingredient is out of stock,
// either during validation or during commit.
type InsufficientStockError struct {
	Ingredient string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %s", e.Ingredient)
}
