// Package memstore holds in-memory implementations of the catalog and
// inventory ports. They back the dev mode (no MySQL/Redis configured)
// and the test fixtures.
package memstore

import (
	"context"
	"sort"

	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

const defaultExtraCheesePrice = 35

type menuPizza struct {
	vegetarian bool
	prices     map[entity.Size]int
}

var (
	menuPizzas = map[string]menuPizza{
		"Deluxe Veggie":           {true, prices(150, 200, 325)},
		"Cheese and Corn":         {true, prices(175, 375, 475)},
		"Paneer Tikka":            {true, prices(160, 290, 340)},
		"Non-Veg Supreme":         {false, prices(190, 325, 425)},
		"Chicken Tikka":           {false, prices(210, 370, 500)},
		"Pepper Barbecue Chicken": {false, prices(220, 380, 525)},
	}

	menuCrusts = map[string]int{
		"New hand tossed":  0,
		"Wheat thin crust": 20,
		"Cheese Burst":     75,
		"Fresh pan pizza":  50,
	}

	menuToppings = map[string]struct {
		price      int
		vegetarian bool
	}{
		"Black olive":      {20, true},
		"Capsicum":         {25, true},
		"Paneer":           {35, true},
		"Mushroom":         {30, true},
		"Fresh tomato":     {10, true},
		"Chicken tikka":    {35, false},
		"Barbeque chicken": {45, false},
		"Grilled chicken":  {40, false},
	}

	menuSides = map[string]int{
		"Cold drink":  55,
		"Mousse cake": 90,
	}
)

func prices(regular, medium, large int) map[entity.Size]int {
	return map[entity.Size]int{
		entity.SizeRegular: regular,
		entity.SizeMedium:  medium,
		entity.SizeLarge:   large,
	}
}

// Catalog is a read-only in-memory catalog seeded with the standard
// menu.
type Catalog struct {
	pizzas      map[string]entity.Pizza
	crusts      map[string]entity.Crust
	toppings    map[string]entity.Topping
	sides       map[string]entity.Side
	extraCheese int
}

func NewCatalog() *Catalog {
	c := &Catalog{
		pizzas:      make(map[string]entity.Pizza, len(menuPizzas)),
		crusts:      make(map[string]entity.Crust, len(menuCrusts)),
		toppings:    make(map[string]entity.Topping, len(menuToppings)),
		sides:       make(map[string]entity.Side, len(menuSides)),
		extraCheese: defaultExtraCheesePrice,
	}
	for name, mp := range menuPizzas {
		p, err := entity.NewPizza(name, mp.prices, mp.vegetarian)
		if err != nil {
			panic(err) // seed data is static
		}
		c.pizzas[name] = p
	}
	for name, price := range menuCrusts {
		cr, err := entity.NewCrust(name, price)
		if err != nil {
			panic(err)
		}
		c.crusts[name] = cr
	}
	for name, mt := range menuToppings {
		top, err := entity.NewTopping(name, mt.price, mt.vegetarian)
		if err != nil {
			panic(err)
		}
		c.toppings[name] = top
	}
	for name, price := range menuSides {
		s, err := entity.NewSide(name, price)
		if err != nil {
			panic(err)
		}
		c.sides[name] = s
	}
	return c
}

func (c *Catalog) LookupPizza(_ context.Context, id string) (*entity.Pizza, error) {
	p, ok := c.pizzas[id]
	if !ok {
		return nil, &entity.UnknownCatalogItemError{Kind: "pizza", ID: id}
	}
	return &p, nil
}

func (c *Catalog) LookupCrust(_ context.Context, id string) (entity.Crust, error) {
	cr, ok := c.crusts[id]
	if !ok {
		return entity.Crust{}, &entity.UnknownCatalogItemError{Kind: "crust", ID: id}
	}
	return cr, nil
}

func (c *Catalog) LookupTopping(_ context.Context, id string) (entity.Topping, error) {
	top, ok := c.toppings[id]
	if !ok {
		return entity.Topping{}, &entity.UnknownCatalogItemError{Kind: "topping", ID: id}
	}
	return top, nil
}

func (c *Catalog) LookupSide(_ context.Context, id string) (entity.Side, error) {
	s, ok := c.sides[id]
	if !ok {
		return entity.Side{}, &entity.UnknownCatalogItemError{Kind: "side", ID: id}
	}
	return s, nil
}

func (c *Catalog) ExtraCheesePrice() int { return c.extraCheese }

func (c *Catalog) Menu(context.Context) (*usecase.Menu, error) {
	m := &usecase.Menu{ExtraCheesePrice: c.extraCheese}
	for _, p := range c.pizzas {
		bySize := make(map[string]int, len(p.PriceBySize))
		for s, v := range p.PriceBySize {
			bySize[string(s)] = v
		}
		m.Pizzas = append(m.Pizzas, usecase.MenuPizza{
			Name: p.Name, Vegetarian: p.Vegetarian, PriceBySize: bySize,
		})
	}
	for _, cr := range c.crusts {
		m.Crusts = append(m.Crusts, usecase.MenuCrust{Name: cr.Name, Price: cr.Price})
	}
	for _, top := range c.toppings {
		m.Toppings = append(m.Toppings, usecase.MenuTopping{
			Name: top.Name, Price: top.Price, Vegetarian: top.Vegetarian,
		})
	}
	for _, s := range c.sides {
		m.Sides = append(m.Sides, usecase.MenuSide{Name: s.Name, Price: s.Price})
	}
	sort.Slice(m.Pizzas, func(i, j int) bool { return m.Pizzas[i].Name < m.Pizzas[j].Name })
	sort.Slice(m.Crusts, func(i, j int) bool { return m.Crusts[i].Name < m.Crusts[j].Name })
	sort.Slice(m.Toppings, func(i, j int) bool { return m.Toppings[i].Name < m.Toppings[j].Name })
	sort.Slice(m.Sides, func(i, j int) bool { return m.Sides[i].Name < m.Sides[j].Name })
	return m, nil
}

var _ usecase.Catalog = (*Catalog)(nil)
