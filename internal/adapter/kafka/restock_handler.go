package kafka

import (
	"context"
	"fmt"

	"github.com/prasadhande/pizza-factory/internal/logging"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

// RestockHandler applies supply-feed restock events to the inventory
// ledger.
type RestockHandler struct {
	Inv usecase.Inventory
}

func NewRestockHandler(inv usecase.Inventory) *RestockHandler {
	return &RestockHandler{Inv: inv}
}

func (h *RestockHandler) Handle(ctx context.Context, ev usecase.RestockMsg) error {
	if ev.IngredientID == "" || ev.Quantity <= 0 {
		// Bad event; not retryable.
		logging.FromCtx(ctx).Warn("dropping malformed restock event",
			"ingredient", ev.IngredientID, "quantity", ev.Quantity)
		return nil
	}
	if err := h.Inv.Restock(ctx, ev.IngredientID, ev.Quantity); err != nil {
		return fmt.Errorf("restock %q: %w", ev.IngredientID, err)
	}
	logging.FromCtx(ctx).Info("restocked",
		"ingredient", ev.IngredientID, "quantity", ev.Quantity)
	return nil
}
