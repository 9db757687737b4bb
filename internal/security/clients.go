package security

// In-memory client registry (replace with DB/config later)
type Client struct {
	ID      string
	Secret  string
	Perms   []string // e.g. {"menu.read","orders.write"}
	Enabled bool
}

var Clients = map[string]Client{
	"storefront":  {ID: "storefront", Secret: "storefront-secret", Perms: []string{"menu.read", "orders.write"}, Enabled: true},
	"svc-kitchen": {ID: "svc-kitchen", Secret: "kitchen-secret", Perms: []string{"menu.read"}, Enabled: true},
	"svc-supply":  {ID: "svc-supply", Secret: "supply-secret", Perms: []string{"inventory.write"}, Enabled: true},
}
