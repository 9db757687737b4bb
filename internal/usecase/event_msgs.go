package usecase

// PlacedMsg is published on the order queue when an order is placed.
type PlacedMsg struct {
	OrderID string       `json:"orderId"`
	Total   int          `json:"total"`
	Items   []PlacedItem `json:"items"`
	Sides   []PlacedSide `json:"sides,omitempty"`
}

type PlacedItem struct {
	Pizza       string   `json:"pizza"`
	Size        string   `json:"size"`
	Crust       string   `json:"crust"`
	Toppings    []string `json:"toppings,omitempty"`
	ExtraCheese bool     `json:"extraCheese,omitempty"`
}

type PlacedSide struct {
	Side     string `json:"side"`
	Quantity int    `json:"quantity"`
}

// RestockMsg arrives on the restock topic from the supply feed.
type RestockMsg struct {
	IngredientID string `json:"ingredientId"`
	Quantity     int    `json:"quantity"`
}
