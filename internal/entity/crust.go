package entity

// Crust is an immutable crust choice. Price is a possibly-zero addend
// on top of the pizza's base price.
type Crust struct {
	Name  string
	Price int
}

func NewCrust(name string, price int) (Crust, error) {
	if name == "" {
		return Crust{}, &EmptyNameError{Kind: "crust"}
	}
	if price < 0 {
		return Crust{}, &InvalidPriceError{Item: "crust " + name, Price: price}
	}
	return Crust{Name: name, Price: price}, nil
}
