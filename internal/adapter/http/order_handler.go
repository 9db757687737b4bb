package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

type OrderHandler struct {
	place   *usecase.PlaceOrder
	catalog usecase.Catalog
	inv     usecase.Inventory
}

func NewOrderHandler(place *usecase.PlaceOrder, catalog usecase.Catalog, inv usecase.Inventory) *OrderHandler {
	return &OrderHandler{place: place, catalog: catalog, inv: inv}
}

type lineItemReq struct {
	Pizza       string   `json:"pizza" binding:"required"`
	Size        string   `json:"size"`
	Crust       string   `json:"crust" binding:"required"`
	Toppings    []string `json:"toppings"`
	ExtraCheese bool     `json:"extraCheese"`
}

type sideLineReq struct {
	Side     string `json:"side" binding:"required"`
	Quantity int    `json:"quantity"`
}

type createOrderReq struct {
	Items []lineItemReq `json:"items" binding:"required,min=1"`
	Sides []sideLineReq `json:"sides"`
}

type createOrderResp struct {
	OrderID string `json:"orderId"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

// CreateOrder translates the request into the place-order use case and
// maps domain failures onto HTTP statuses.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	in := usecase.PlaceOrderInput{}
	for _, it := range req.Items {
		in.Items = append(in.Items, usecase.LineItemInput{
			Pizza:       it.Pizza,
			Size:        it.Size,
			Crust:       it.Crust,
			Toppings:    it.Toppings,
			ExtraCheese: it.ExtraCheese,
		})
	}
	for _, s := range req.Sides {
		in.Sides = append(in.Sides, usecase.SideLineInput{Side: s.Side, Quantity: s.Quantity})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	out, err := h.place.Execute(ctx, in)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, createOrderResp{
		OrderID: out.OrderID,
		Total:   out.Total,
		Status:  out.Status,
	})
}

// GetMenu serves the full catalog.
func (h *OrderHandler) GetMenu(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	menu, err := h.catalog.Menu(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "menu_unavailable"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

type restockReq struct {
	Ingredient string `json:"ingredient" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// Restock adds stock for one ingredient.
func (h *OrderHandler) Restock(c *gin.Context) {
	var req restockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.inv.Restock(ctx, req.Ingredient, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": req.Ingredient, "quantity": req.Quantity})
}

func statusFor(err error) int {
	var (
		unknown   *entity.UnknownCatalogItemError
		size      *entity.InvalidSizeError
		qty       *entity.InvalidQuantityError
		violation *entity.RuleViolationError
		stock     *entity.InsufficientStockError
	)
	switch {
	case errors.As(err, &violation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &stock):
		return http.StatusConflict
	case errors.As(err, &unknown),
		errors.As(err, &size),
		errors.As(err, &qty),
		errors.Is(err, entity.ErrMissingSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
