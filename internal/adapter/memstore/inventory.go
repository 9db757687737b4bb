package memstore

import (
	"context"
	"sync"

	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

// Inventory is a mutex-guarded in-memory stock ledger. Quantities never
// go negative: Consume rejects a request that exceeds the available
// quantity and leaves the ledger untouched.
type Inventory struct {
	mu    sync.Mutex
	stock map[string]int
}

func NewInventory() *Inventory {
	return &Inventory{stock: make(map[string]int)}
}

func (i *Inventory) HasStock(_ context.Context, ingredient string) (bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stock[ingredient] > 0, nil
}

func (i *Inventory) Consume(_ context.Context, ingredient string, qty int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stock[ingredient] < qty {
		return &entity.InsufficientStockError{Ingredient: ingredient}
	}
	i.stock[ingredient] -= qty
	return nil
}

func (i *Inventory) Restock(_ context.Context, ingredient string, qty int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stock[ingredient] += qty
	return nil
}

// Quantity reports the current stock level, mainly for tests and the
// dev seeding path.
func (i *Inventory) Quantity(ingredient string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stock[ingredient]
}

var _ usecase.Inventory = (*Inventory)(nil)
