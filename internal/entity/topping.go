package entity

// Topping is an immutable priced add-on. A zero price is legal (free
// topping); a negative one is not.
type Topping struct {
	Name       string
	Price      int
	Vegetarian bool
}

func NewTopping(name string, price int, vegetarian bool) (Topping, error) {
	if name == "" {
		return Topping{}, &EmptyNameError{Kind: "topping"}
	}
	if price < 0 {
		return Topping{}, &InvalidPriceError{Item: "topping " + name, Price: price}
	}
	return Topping{Name: name, Price: price, Vegetarian: vegetarian}, nil
}
