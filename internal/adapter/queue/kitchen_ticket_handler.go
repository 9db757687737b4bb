package queue

import (
	"context"
	"strings"

	"github.com/prasadhande/pizza-factory/internal/logging"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

// KitchenTicketHandler turns placed-order events into kitchen tickets.
// Today the ticket goes to the structured log; a display-system client
// would slot in behind the same handler.
type KitchenTicketHandler struct{}

func NewKitchenTicketHandler() *KitchenTicketHandler {
	return &KitchenTicketHandler{}
}

// HandleTicket is intended to be used with queue.JSONHandler[usecase.PlacedMsg].
func (h *KitchenTicketHandler) HandleTicket(ctx context.Context, msg usecase.PlacedMsg) error {
	log := logging.FromCtx(ctx).With("order_id", msg.OrderID)
	for _, it := range msg.Items {
		desc := it.Size + " " + it.Pizza + " on " + it.Crust
		if len(it.Toppings) > 0 {
			desc += " with " + strings.Join(it.Toppings, ", ")
		}
		if it.ExtraCheese {
			desc += " + extra cheese"
		}
		log.Info("kitchen ticket", "line", desc)
	}
	for _, s := range msg.Sides {
		log.Info("kitchen ticket", "side", s.Side, "quantity", s.Quantity)
	}
	return nil
}
