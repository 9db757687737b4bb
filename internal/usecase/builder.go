package usecase

import (
	"context"

	"github.com/prasadhande/pizza-factory/internal/entity"
)

// LineItemInput is one requested pizza configuration, as it arrives on
// the wire.
type LineItemInput struct {
	Pizza       string
	Size        string
	Crust       string
	Toppings    []string
	ExtraCheese bool
}

// SideLineInput is one requested side. Quantity zero means omitted and
// defaults to 1.
type SideLineInput struct {
	Side     string
	Quantity int
}

// Builder resolves order requests against the catalog into priced line
// items. Rule checking happens later, when the order validates.
type Builder struct {
	catalog Catalog
}

func NewBuilder(catalog Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// BuildLineItem resolves every identifier in the request. All requested
// toppings stay attached; on a Large the first two price at zero and
// the rest are charged (charge-for-overflow policy).
func (b *Builder) BuildLineItem(ctx context.Context, in LineItemInput) (entity.LineItem, error) {
	size, err := entity.ParseSize(in.Size)
	if err != nil {
		return entity.LineItem{}, err
	}
	pizza, err := b.catalog.LookupPizza(ctx, in.Pizza)
	if err != nil {
		return entity.LineItem{}, err
	}
	crust, err := b.catalog.LookupCrust(ctx, in.Crust)
	if err != nil {
		return entity.LineItem{}, err
	}
	toppings := make([]entity.Topping, 0, len(in.Toppings))
	for _, id := range in.Toppings {
		top, err := b.catalog.LookupTopping(ctx, id)
		if err != nil {
			return entity.LineItem{}, err
		}
		toppings = append(toppings, top)
	}
	return entity.LineItem{
		Pizza:            pizza,
		Size:             size,
		Crust:            crust,
		Toppings:         toppings,
		ExtraCheese:      in.ExtraCheese,
		ExtraCheesePrice: b.catalog.ExtraCheesePrice(),
	}, nil
}

// BuildSideLine resolves a side request. A zero quantity defaults to 1;
// a negative one is rejected at construction.
func (b *Builder) BuildSideLine(ctx context.Context, in SideLineInput) (entity.SideLine, error) {
	side, err := b.catalog.LookupSide(ctx, in.Side)
	if err != nil {
		return entity.SideLine{}, err
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	return entity.NewSideLine(side, qty)
}
