package http

// QuoteRequest is the body of POST /api/v1/orders/quote.
// Omitted milk means no milk, omitted iced means not iced.
type QuoteRequest struct {
	Base   string   `json:"base"`
	Size   string   `json:"size"`
	Milk   string   `json:"milk,omitempty"`
	Syrups []string `json:"syrups,omitempty"`
	Sugar  int      `json:"sugar,omitempty"`
	Iced   bool     `json:"iced,omitempty"`
}

// Order is a quoted order. Display is the order's String rendering.
type Order struct {
	ID          string   `json:"id"`
	Base        string   `json:"base"`
	Size        string   `json:"size"`
	Milk        string   `json:"milk"`
	Syrups      []string `json:"syrups"`
	Sugar       int      `json:"sugar"`
	Iced        bool     `json:"iced"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Display     string   `json:"display"`
}

// MenuItem is a base or milk with its price, or a size with its multiplier.
type MenuItem struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

// Menu is the body of GET /api/v1/menu.
type Menu struct {
	Bases      []MenuItem `json:"bases"`
	Sizes      []MenuItem `json:"sizes"`
	Milks      []MenuItem `json:"milks"`
	SyrupPrice float64    `json:"syrup_price"`
	IcedPrice  float64    `json:"iced_price"`
	MaxSugar   int        `json:"max_sugar"`
	MaxSyrups  int        `json:"max_syrups"`
}

// Error is returned with every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
