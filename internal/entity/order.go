package entity

import "context"

// Status is the order lifecycle state.
type Status string

const (
	StatusNew    Status = "NEW"
	StatusPlaced Status = "PLACED"
	// StatusCancelled is never produced by any operation; it exists for
	// the no-cancellation guard rule.
	StatusCancelled Status = "CANCELLED"
)

// StockChecker is the slice of the inventory ledger that validation
// needs. Checking never consumes stock.
type StockChecker interface {
	HasStock(ctx context.Context, ingredient string) (bool, error)
}

// Order aggregates line items and side lines. It exclusively owns its
// lines; the referenced Pizza/Crust/Topping/Side values are shared,
// immutable catalog objects. Mutation is only allowed while the order
// is New.
type Order struct {
	items      []LineItem
	sides      []SideLine
	status     Status
	rules      []Rule
	orderRules []OrderRule
}

func NewOrder() *Order {
	return &Order{
		status:     StatusNew,
		rules:      DefaultRules(),
		orderRules: DefaultOrderRules(),
	}
}

// AddItem appends a line item. Rules are evaluated later, at Validate
// time, so an invalid line can sit in a New order until then.
func (o *Order) AddItem(li LineItem) error {
	if o.status != StatusNew {
		return ErrOrderPlaced
	}
	o.items = append(o.items, li)
	return nil
}

func (o *Order) AddSide(sl SideLine) error {
	if o.status != StatusNew {
		return ErrOrderPlaced
	}
	o.sides = append(o.sides, sl)
	return nil
}

func (o *Order) Items() []LineItem { return o.items }
func (o *Order) Sides() []SideLine { return o.sides }
func (o *Order) Status() Status    { return o.status }

// Place freezes the order. Irreversible.
func (o *Order) Place() { o.status = StatusPlaced }

// TotalPrice sums line item and side line prices. A pure function of
// order state; an empty order totals 0.
func (o *Order) TotalPrice() (int, error) {
	total := 0
	for _, li := range o.items {
		p, err := li.Price()
		if err != nil {
			return 0, err
		}
		total += p
	}
	for _, sl := range o.sides {
		total += sl.Price()
	}
	return total, nil
}

// Validate runs every applicable rule over every line item, then the
// order-level rules, then requires strictly positive stock for every
// distinct ingredient the order touches. It fails fast on the first
// violation and never consumes stock.
func (o *Order) Validate(ctx context.Context, stock StockChecker) error {
	for _, li := range o.items {
		for _, r := range o.rules {
			if !r.AppliesTo(li) {
				continue
			}
			if err := r.Validate(li); err != nil {
				return err
			}
		}
	}
	for _, r := range o.orderRules {
		if err := r.Validate(o); err != nil {
			return err
		}
	}
	for _, ing := range o.Ingredients() {
		ok, err := stock.HasStock(ctx, ing)
		if err != nil {
			return err
		}
		if !ok {
			return &InsufficientStockError{Ingredient: ing}
		}
	}
	return nil
}

// Ingredients returns the distinct inventory identifiers the order
// touches, in first-use order. Side quantities do not multiply the
// result: a side line of quantity 2 contributes its ingredient once.
func (o *Order) Ingredients() []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, li := range o.items {
		for _, id := range li.Ingredients() {
			add(id)
		}
	}
	for _, sl := range o.sides {
		add(sl.Side.Name)
	}
	return ids
}
