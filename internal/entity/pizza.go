package entity

// Pizza is an immutable menu entry: a named base with a price per size
// and a vegetarian flag. Prices are whole currency units.
type Pizza struct {
	Name        string
	Vegetarian  bool
	PriceBySize map[Size]int
}

// NewPizza builds a Pizza. The price table must cover Regular, Medium
// and Large, and no price may be negative.
func NewPizza(name string, priceBySize map[Size]int, vegetarian bool) (Pizza, error) {
	if name == "" {
		return Pizza{}, &EmptyNameError{Kind: "pizza"}
	}
	prices := make(map[Size]int, len(Sizes))
	for _, s := range Sizes {
		p, ok := priceBySize[s]
		if !ok {
			return Pizza{}, &InvalidSizeError{Size: string(s)}
		}
		if p < 0 {
			return Pizza{}, &InvalidPriceError{Item: "pizza " + name, Price: p}
		}
		prices[s] = p
	}
	return Pizza{Name: name, Vegetarian: vegetarian, PriceBySize: prices}, nil
}

// Price returns the base price for the given size.
func (p Pizza) Price(size Size) (int, error) {
	v, ok := p.PriceBySize[size]
	if !ok {
		return 0, &InvalidSizeError{Size: string(size)}
	}
	return v, nil
}
