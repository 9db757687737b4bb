package entity

// Side is an immutable side dish. Unlike toppings, a side must cost
// strictly more than zero.
type Side struct {
	Name  string
	Price int
}

func NewSide(name string, price int) (Side, error) {
	if name == "" {
		return Side{}, &EmptyNameError{Kind: "side"}
	}
	if price <= 0 {
		return Side{}, &InvalidPriceError{Item: "side " + name, Price: price}
	}
	return Side{Name: name, Price: price}, nil
}
