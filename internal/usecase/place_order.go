package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/logging"
)

type PlaceOrderInput struct {
	Items []LineItemInput
	Sides []SideLineInput
}

type PlaceOrderOutput struct {
	OrderID string
	Total   int
	Status  string
}

// PlaceOrder builds an order from a request, validates it against the
// business rules and the inventory, consumes stock, and places it.
type PlaceOrder struct {
	builder *Builder
	inv     Inventory
	queue   OrderQueue // optional

	// Serializes validate+consume: a concurrent commit must not deplete
	// stock between the check and the decrement.
	mu sync.Mutex
}

func NewPlaceOrder(builder *Builder, inv Inventory, queue OrderQueue) *PlaceOrder {
	return &PlaceOrder{builder: builder, inv: inv, queue: queue}
}

// Execute runs the whole flow: build -> add -> validate -> consume ->
// place. Any failure before consumption leaves the inventory untouched.
// Consumption takes one unit per distinct ingredient the order touches;
// side quantities are not multiplied in.
func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	order := entity.NewOrder()

	for _, it := range in.Items {
		li, err := uc.builder.BuildLineItem(ctx, it)
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		if err := order.AddItem(li); err != nil {
			return PlaceOrderOutput{}, err
		}
	}
	for _, s := range in.Sides {
		sl, err := uc.builder.BuildSideLine(ctx, s)
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		if err := order.AddSide(sl); err != nil {
			return PlaceOrderOutput{}, err
		}
	}

	total, err := order.TotalPrice()
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := order.Validate(ctx, uc.inv); err != nil {
		return PlaceOrderOutput{}, err
	}
	for _, ing := range order.Ingredients() {
		if err := uc.inv.Consume(ctx, ing, 1); err != nil {
			return PlaceOrderOutput{}, err
		}
	}
	order.Place()

	orderID := uuid.NewString()
	if uc.queue != nil {
		msg := placedMsg(orderID, total, order)
		if err := uc.queue.PublishPlaced(ctx, msg); err != nil {
			// The order is already committed; delivery is best-effort.
			logging.FromCtx(ctx).Warn("publish order.placed failed",
				"order_id", orderID, "err", err)
		}
	}

	return PlaceOrderOutput{
		OrderID: orderID,
		Total:   total,
		Status:  string(order.Status()),
	}, nil
}

func placedMsg(orderID string, total int, order *entity.Order) PlacedMsg {
	msg := PlacedMsg{OrderID: orderID, Total: total}
	for _, li := range order.Items() {
		item := PlacedItem{
			Pizza:       li.Pizza.Name,
			Size:        string(li.Size),
			Crust:       li.Crust.Name,
			ExtraCheese: li.ExtraCheese,
		}
		for _, t := range li.Toppings {
			item.Toppings = append(item.Toppings, t.Name)
		}
		msg.Items = append(msg.Items, item)
	}
	for _, sl := range order.Sides() {
		msg.Sides = append(msg.Sides, PlacedSide{Side: sl.Side.Name, Quantity: sl.Quantity})
	}
	return msg
}
