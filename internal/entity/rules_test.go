package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleByName(t *testing.T, name string) Rule {
	t.Helper()
	for _, r := range DefaultRules() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no rule named %q", name)
	return Rule{}
}

func vegItem(t *testing.T, toppings ...Topping) LineItem {
	return LineItem{
		Pizza:    mustPizza(t, "Test Pizza", fullPrices(100, 150, 200), true),
		Size:     SizeRegular,
		Toppings: toppings,
	}
}

func nonVegItem(t *testing.T, toppings ...Topping) LineItem {
	return LineItem{
		Pizza:    mustPizza(t, "Non-Veg Pizza", fullPrices(120, 170, 220), false),
		Size:     SizeRegular,
		Toppings: toppings,
	}
}

func TestVegetarianRule(t *testing.T) {
	rule := ruleByName(t, "vegetarian-no-nonveg-topping")
	pepperoni := mustTopping(t, "Pepperoni", 30, false)
	mushroom := mustTopping(t, "Mushroom", 25, true)

	assert.True(t, rule.AppliesTo(vegItem(t)))
	assert.False(t, rule.AppliesTo(nonVegItem(t)))

	err := rule.Validate(vegItem(t, pepperoni))
	require.Error(t, err)
	assert.EqualError(t, err, "Vegetarian pizza cannot have non-vegetarian toppings")

	assert.NoError(t, rule.Validate(vegItem(t, mushroom)))
	assert.NoError(t, rule.Validate(vegItem(t)))
}

func TestPaneerRule(t *testing.T) {
	rule := ruleByName(t, "nonveg-no-paneer")
	paneer := mustTopping(t, "Paneer", 35, true)

	assert.True(t, rule.AppliesTo(nonVegItem(t)))
	assert.False(t, rule.AppliesTo(vegItem(t)))

	err := rule.Validate(nonVegItem(t, paneer))
	require.Error(t, err)
	assert.EqualError(t, err, "Non-vegetarian pizza cannot have paneer topping")

	// Match is case-sensitive on the canonical catalog name.
	lower := mustTopping(t, "paneer", 35, true)
	assert.NoError(t, rule.Validate(nonVegItem(t, lower)))
}

func TestSingleNonVegToppingRule(t *testing.T) {
	rule := ruleByName(t, "nonveg-single-nonveg-topping")
	chicken := mustTopping(t, "Grilled chicken", 40, false)
	barbeque := mustTopping(t, "Barbeque chicken", 45, false)

	err := rule.Validate(nonVegItem(t, chicken, barbeque))
	require.Error(t, err)
	assert.EqualError(t, err, "Only one non-veg topping allowed per non-veg pizza")

	assert.NoError(t, rule.Validate(nonVegItem(t, chicken)))
}

func TestLargeFreeToppingsRule_NoValidationEffect(t *testing.T) {
	rule := ruleByName(t, "large-free-toppings")

	li := vegItem(t)
	li.Size = SizeLarge
	assert.True(t, rule.AppliesTo(li))
	assert.NoError(t, rule.Validate(li))

	li.Size = SizeMedium
	assert.False(t, rule.AppliesTo(li))
}

func TestNoCancellationRule(t *testing.T) {
	rules := DefaultOrderRules()
	require.Len(t, rules, 1)

	o := NewOrder()
	assert.NoError(t, rules[0].Validate(o))

	o.status = StatusCancelled
	err := rules[0].Validate(o)
	require.Error(t, err)
	assert.EqualError(t, err, "Order cancellation is not allowed.")
}

func TestRuleViolationCarriesRuleName(t *testing.T) {
	rule := ruleByName(t, "nonveg-no-paneer")
	err := rule.Validate(nonVegItem(t, mustTopping(t, "Paneer", 35, true)))

	var rv *RuleViolationError
	require.ErrorAs(t, err, &rv)
	assert.Equal(t, "nonveg-no-paneer", rv.Rule)
}
