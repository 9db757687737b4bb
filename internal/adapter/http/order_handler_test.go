package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasadhande/pizza-factory/internal/adapter/memstore"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

func testRouter(t *testing.T, inv *memstore.Inventory) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := memstore.NewCatalog()
	uc := usecase.NewPlaceOrder(usecase.NewBuilder(catalog), inv, nil)
	h := NewOrderHandler(uc, catalog, inv)

	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/menu", h.GetMenu)
	r.POST("/v1/inventory/restock", h.Restock)
	return r
}

func stockedInventory(t *testing.T, ids ...string) *memstore.Inventory {
	t.Helper()
	inv := memstore.NewInventory()
	for _, id := range ids {
		require.NoError(t, inv.Restock(context.Background(), id, 10))
	}
	return inv
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_OK(t *testing.T) {
	inv := stockedInventory(t,
		"Deluxe Veggie", "New hand tossed", "Black olive", "Capsicum", "Cold drink")
	r := testRouter(t, inv)

	w := postJSON(t, r, "/v1/orders", gin.H{
		"items": []gin.H{{
			"pizza":    "Deluxe Veggie",
			"size":     "Medium",
			"crust":    "New hand tossed",
			"toppings": []string{"Black olive", "Capsicum"},
		}},
		"sides": []gin.H{{"side": "Cold drink", "quantity": 2}},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp createOrderResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 245+110, resp.Total)
	assert.Equal(t, "PLACED", resp.Status)
	assert.NotEmpty(t, resp.OrderID)

	// Commit consumed one unit of each distinct ingredient.
	assert.Equal(t, 9, inv.Quantity("Deluxe Veggie"))
	assert.Equal(t, 9, inv.Quantity("Cold drink"))
}

func TestCreateOrder_RuleViolation(t *testing.T) {
	inv := stockedInventory(t, "Chicken Tikka", "New hand tossed", "Paneer")
	r := testRouter(t, inv)

	w := postJSON(t, r, "/v1/orders", gin.H{
		"items": []gin.H{{
			"pizza":    "Chicken Tikka",
			"size":     "Regular",
			"crust":    "New hand tossed",
			"toppings": []string{"Paneer"},
		}},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Non-vegetarian pizza cannot have paneer topping")
	assert.Equal(t, 10, inv.Quantity("Chicken Tikka"))
}

func TestCreateOrder_UnknownItem(t *testing.T) {
	r := testRouter(t, memstore.NewInventory())

	w := postJSON(t, r, "/v1/orders", gin.H{
		"items": []gin.H{{
			"pizza": "Hawaiian",
			"size":  "Regular",
			"crust": "New hand tossed",
		}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	r := testRouter(t, memstore.NewInventory())

	w := postJSON(t, r, "/v1/orders", gin.H{
		"items": []gin.H{{
			"pizza": "Deluxe Veggie",
			"size":  "Regular",
			"crust": "New hand tossed",
		}},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
}

func TestCreateOrder_MissingSize(t *testing.T) {
	inv := stockedInventory(t, "Deluxe Veggie", "New hand tossed")
	r := testRouter(t, inv)

	w := postJSON(t, r, "/v1/orders", gin.H{
		"items": []gin.H{{
			"pizza": "Deluxe Veggie",
			"crust": "New hand tossed",
		}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMenu(t *testing.T) {
	r := testRouter(t, memstore.NewInventory())

	req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var menu usecase.Menu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	assert.Len(t, menu.Pizzas, 6)
	assert.Equal(t, 35, menu.ExtraCheesePrice)
}

func TestRestock(t *testing.T) {
	inv := memstore.NewInventory()
	r := testRouter(t, inv)

	w := postJSON(t, r, "/v1/inventory/restock", gin.H{
		"ingredient": "Capsicum",
		"quantity":   5,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, inv.Quantity("Capsicum"))
}
