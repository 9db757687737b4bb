package usecase

import (
	"context"

	"github.com/prasadhande/pizza-factory/internal/entity"
)

// Catalog is the read-only source of truth for priced menu items.
// Lookup misses return *entity.UnknownCatalogItemError.
type Catalog interface {
	LookupPizza(ctx context.Context, id string) (*entity.Pizza, error)
	LookupCrust(ctx context.Context, id string) (entity.Crust, error)
	LookupTopping(ctx context.Context, id string) (entity.Topping, error)
	LookupSide(ctx context.Context, id string) (entity.Side, error)
	// ExtraCheesePrice is the flat per-pizza charge for the extra-cheese flag.
	ExtraCheesePrice() int
	// Menu returns the full catalog for display.
	Menu(ctx context.Context) (*Menu, error)
}

// Inventory is the mutable stock ledger. Consume fails with
// *entity.InsufficientStockError and must leave the ledger untouched
// for that call; it never partially applies.
type Inventory interface {
	HasStock(ctx context.Context, ingredient string) (bool, error)
	Consume(ctx context.Context, ingredient string, qty int) error
	Restock(ctx context.Context, ingredient string, qty int) error
}

// OrderQueue publishes placed-order events for downstream consumers
// (kitchen display, analytics).
type OrderQueue interface {
	PublishPlaced(ctx context.Context, msg PlacedMsg) error
}

// Menu is the display shape of the catalog.
type Menu struct {
	Pizzas           []MenuPizza   `json:"pizzas"`
	Crusts           []MenuCrust   `json:"crusts"`
	Toppings         []MenuTopping `json:"toppings"`
	Sides            []MenuSide    `json:"sides"`
	ExtraCheesePrice int           `json:"extraCheesePrice"`
}

type MenuPizza struct {
	Name        string         `json:"name"`
	Vegetarian  bool           `json:"vegetarian"`
	PriceBySize map[string]int `json:"priceBySize"`
}

type MenuCrust struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type MenuTopping struct {
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Vegetarian bool   `json:"vegetarian"`
}

type MenuSide struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
