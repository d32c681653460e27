package entities

import "time"

// Cart pricing rules. Totals are always derived from the line items and never
// persisted or trusted from storage.
const (
	TaxRate               = 0.0725
	FreeShippingThreshold = 1000.0
	ShippingCost          = 14.99
	MaxQuantityPerItem    = 99
)

// CartItem is one normalized line item, uniquely keyed by ProductID within a
// cart. Price is snapshotted at add time.

type CartItem struct {
	ProductID int         `json:"product_id"`
	SKU       string      `json:"sku"`
	Name      string      `json:"name"`
	Price     float64     `json:"price"`
	Quantity  int         `json:"quantity"` // always >= 1
	Image     string      `json:"image,omitempty"`
	Category  string      `json:"category"`
	Size      ProductSize `json:"size"`
}

// Cart is the item list plus derived monetary totals. Items keep insertion
// order. Only Items and LastUpdated survive a persistence round trip; the
// totals are recomputed on load and after every mutation.

type Cart struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Shipping    float64    `json:"shipping"`
	Total       float64    `json:"total"`
	ItemCount   int        `json:"item_count"`
	LastUpdated time.Time  `json:"last_updated"`
}
