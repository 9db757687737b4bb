package entity

// ExtraCheeseIngredient is the inventory identifier consumed when a
// line item carries the extra-cheese flag.
const ExtraCheeseIngredient = "Extra cheese"

// FreeToppingCount is the Large-size promotion allowance: the first two
// toppings, in request order, are free on a Large pizza.
const FreeToppingCount = 2

// LineItem is one ordered pizza configuration. It is immutable once
// added to an Order. Topping order is preserved because the Large
// promotion exempts the first two as submitted.
type LineItem struct {
	Pizza            *Pizza
	Size             Size
	Crust            Crust
	Toppings         []Topping
	ExtraCheese      bool
	ExtraCheesePrice int
}

// Price computes the line price: base price for the size, plus the
// crust addend, plus priced toppings, plus the flat extra-cheese price
// when flagged. On a Large pizza the first two toppings price at zero
// and any overflow is charged normally. Without a pizza the line is
// worth nothing, toppings included.
func (li LineItem) Price() (int, error) {
	if li.Pizza == nil {
		return 0, nil
	}
	base, err := li.Pizza.Price(li.Size)
	if err != nil {
		return 0, err
	}
	total := base + li.Crust.Price
	for i, t := range li.Toppings {
		if li.Size == SizeLarge && i < FreeToppingCount {
			continue
		}
		total += t.Price
	}
	if li.ExtraCheese {
		total += li.ExtraCheesePrice
	}
	return total, nil
}

// Ingredients lists every inventory identifier this line touches:
// the pizza base, the crust, each topping, and extra cheese if set.
func (li LineItem) Ingredients() []string {
	if li.Pizza == nil {
		return nil
	}
	ids := make([]string, 0, len(li.Toppings)+3)
	ids = append(ids, li.Pizza.Name, li.Crust.Name)
	for _, t := range li.Toppings {
		ids = append(ids, t.Name)
	}
	if li.ExtraCheese {
		ids = append(ids, ExtraCheeseIngredient)
	}
	return ids
}

// SideLine is one ordered side dish with a quantity.
type SideLine struct {
	Side     Side
	Quantity int
}

// NewSideLine builds a SideLine. Quantity zero is legal (an empty
// line); a negative quantity is a construction error.
func NewSideLine(side Side, quantity int) (SideLine, error) {
	if quantity < 0 {
		return SideLine{}, &InvalidQuantityError{Quantity: quantity}
	}
	return SideLine{Side: side, Quantity: quantity}, nil
}

// Price is unit price times quantity.
func (sl SideLine) Price() int {
	return sl.Side.Price * sl.Quantity
}
