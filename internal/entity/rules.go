package entity

// paneerTopping is matched case-sensitively against the canonical
// catalog name.
const paneerTopping = "Paneer"

// Rule is a line-item business rule: a predicate deciding whether the
// rule applies, and a validator run only when it does. The rule set is
// closed; rules are plain function pairs rather than an open hierarchy.
type Rule struct {
	Name      string
	AppliesTo func(LineItem) bool
	Validate  func(LineItem) error
}

// OrderRule validates the order as a whole rather than one line.
type OrderRule struct {
	Name     string
	Validate func(*Order) error
}

func violation(rule, message string) error {
	return &RuleViolationError{Rule: rule, Message: message}
}

// DefaultRules returns the line-item rules in evaluation order. Order
// only affects which violation is reported first.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "vegetarian-no-nonveg-topping",
			AppliesTo: func(li LineItem) bool {
				return li.Pizza != nil && li.Pizza.Vegetarian
			},
			Validate: func(li LineItem) error {
				for _, t := range li.Toppings {
					if !t.Vegetarian {
						return violation("vegetarian-no-nonveg-topping",
							"Vegetarian pizza cannot have non-vegetarian toppings")
					}
				}
				return nil
			},
		},
		{
			Name: "nonveg-no-paneer",
			AppliesTo: func(li LineItem) bool {
				return li.Pizza != nil && !li.Pizza.Vegetarian
			},
			Validate: func(li LineItem) error {
				for _, t := range li.Toppings {
					if t.Name == paneerTopping {
						return violation("nonveg-no-paneer",
							"Non-vegetarian pizza cannot have paneer topping")
					}
				}
				return nil
			},
		},
		{
			Name: "nonveg-single-nonveg-topping",
			AppliesTo: func(li LineItem) bool {
				return li.Pizza != nil && !li.Pizza.Vegetarian
			},
			Validate: func(li LineItem) error {
				nonVeg := 0
				for _, t := range li.Toppings {
					if !t.Vegetarian {
						nonVeg++
					}
				}
				if nonVeg > 1 {
					return violation("nonveg-single-nonveg-topping",
						"Only one non-veg topping allowed per non-veg pizza")
				}
				return nil
			},
		},
		{
			// The Large promotion itself is applied by pricing
			// (LineItem.Price); this entry keeps the policy visible in
			// the rule set attached to every order.
			Name: "large-free-toppings",
			AppliesTo: func(li LineItem) bool {
				return li.Size == SizeLarge
			},
			Validate: func(LineItem) error { return nil },
		},
	}
}

// DefaultOrderRules returns the order-level rules. The cancellation
// guard always holds today — no operation produces a cancelled order —
// and exists so a future cancel feature cannot pass validation
// unnoticed.
func DefaultOrderRules() []OrderRule {
	return []OrderRule{
		{
			Name: "no-order-cancellation",
			Validate: func(o *Order) error {
				if o.Status() == StatusCancelled {
					return violation("no-order-cancellation",
						"Order cancellation is not allowed.")
				}
				return nil
			},
		},
	}
}
