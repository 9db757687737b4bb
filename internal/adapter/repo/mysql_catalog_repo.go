package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

// MySQLCatalogRepo serves the catalog from the pizzas/pizza_prices/
// crusts/toppings/sides tables. The catalog is read-only here; menu
// editing belongs to a back-office tool, not this service.
type MySQLCatalogRepo struct {
	db          *sql.DB
	extraCheese int
}

func NewMySQLCatalogRepo(db *sql.DB, extraCheesePrice int) *MySQLCatalogRepo {
	return &MySQLCatalogRepo{db: db, extraCheese: extraCheesePrice}
}

func (r *MySQLCatalogRepo) LookupPizza(ctx context.Context, id string) (*entity.Pizza, error) {
	var vegetarian bool
	err := r.db.QueryRowContext(ctx, `
SELECT vegetarian FROM pizzas WHERE name=?`, id).Scan(&vegetarian)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &entity.UnknownCatalogItemError{Kind: "pizza", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup pizza %q: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT size, price FROM pizza_prices WHERE pizza_name=?`, id)
	if err != nil {
		return nil, fmt.Errorf("lookup pizza prices %q: %w", id, err)
	}
	defer rows.Close()

	prices := make(map[entity.Size]int, 3)
	for rows.Next() {
		var size string
		var price int
		if err := rows.Scan(&size, &price); err != nil {
			return nil, err
		}
		prices[entity.Size(size)] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	p, err := entity.NewPizza(id, prices, vegetarian)
	if err != nil {
		return nil, fmt.Errorf("catalog row for pizza %q: %w", id, err)
	}
	return &p, nil
}

func (r *MySQLCatalogRepo) LookupCrust(ctx context.Context, id string) (entity.Crust, error) {
	var price int
	err := r.db.QueryRowContext(ctx, `
SELECT price FROM crusts WHERE name=?`, id).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Crust{}, &entity.UnknownCatalogItemError{Kind: "crust", ID: id}
	}
	if err != nil {
		return entity.Crust{}, fmt.Errorf("lookup crust %q: %w", id, err)
	}
	return entity.NewCrust(id, price)
}

func (r *MySQLCatalogRepo) LookupTopping(ctx context.Context, id string) (entity.Topping, error) {
	var price int
	var vegetarian bool
	err := r.db.QueryRowContext(ctx, `
SELECT price, vegetarian FROM toppings WHERE name=?`, id).Scan(&price, &vegetarian)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Topping{}, &entity.UnknownCatalogItemError{Kind: "topping", ID: id}
	}
	if err != nil {
		return entity.Topping{}, fmt.Errorf("lookup topping %q: %w", id, err)
	}
	return entity.NewTopping(id, price, vegetarian)
}

func (r *MySQLCatalogRepo) LookupSide(ctx context.Context, id string) (entity.Side, error) {
	var price int
	err := r.db.QueryRowContext(ctx, `
SELECT price FROM sides WHERE name=?`, id).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Side{}, &entity.UnknownCatalogItemError{Kind: "side", ID: id}
	}
	if err != nil {
		return entity.Side{}, fmt.Errorf("lookup side %q: %w", id, err)
	}
	return entity.NewSide(id, price)
}

func (r *MySQLCatalogRepo) ExtraCheesePrice() int { return r.extraCheese }

func (r *MySQLCatalogRepo) Menu(ctx context.Context) (*usecase.Menu, error) {
	m := &usecase.Menu{ExtraCheesePrice: r.extraCheese}

	rows, err := r.db.QueryContext(ctx, `
SELECT p.name, p.vegetarian, pp.size, pp.price
FROM pizzas p JOIN pizza_prices pp ON pp.pizza_name = p.name
ORDER BY p.name, pp.size`)
	if err != nil {
		return nil, fmt.Errorf("menu pizzas: %w", err)
	}
	defer rows.Close()

	byName := map[string]int{} // name -> index into m.Pizzas
	for rows.Next() {
		var name, size string
		var vegetarian bool
		var price int
		if err := rows.Scan(&name, &vegetarian, &size, &price); err != nil {
			return nil, err
		}
		idx, ok := byName[name]
		if !ok {
			m.Pizzas = append(m.Pizzas, usecase.MenuPizza{
				Name: name, Vegetarian: vegetarian, PriceBySize: map[string]int{},
			})
			idx = len(m.Pizzas) - 1
			byName[name] = idx
		}
		m.Pizzas[idx].PriceBySize[size] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crusts, err := r.db.QueryContext(ctx, `SELECT name, price FROM crusts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("menu crusts: %w", err)
	}
	defer crusts.Close()
	for crusts.Next() {
		var c usecase.MenuCrust
		if err := crusts.Scan(&c.Name, &c.Price); err != nil {
			return nil, err
		}
		m.Crusts = append(m.Crusts, c)
	}
	if err := crusts.Err(); err != nil {
		return nil, err
	}

	tops, err := r.db.QueryContext(ctx, `SELECT name, price, vegetarian FROM toppings ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("menu toppings: %w", err)
	}
	defer tops.Close()
	for tops.Next() {
		var t usecase.MenuTopping
		if err := tops.Scan(&t.Name, &t.Price, &t.Vegetarian); err != nil {
			return nil, err
		}
		m.Toppings = append(m.Toppings, t)
	}
	if err := tops.Err(); err != nil {
		return nil, err
	}

	sides, err := r.db.QueryContext(ctx, `SELECT name, price FROM sides ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("menu sides: %w", err)
	}
	defer sides.Close()
	for sides.Next() {
		var s usecase.MenuSide
		if err := sides.Scan(&s.Name, &s.Price); err != nil {
			return nil, err
		}
		m.Sides = append(m.Sides, s)
	}
	if err := sides.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

var _ usecase.Catalog = (*MySQLCatalogRepo)(nil)
