package entities

// ProductSize is the container size a product ships in.
type ProductSize string

const (
	ProductSizeOneGallon  ProductSize = "1-gallon"
	ProductSizeFiveGallon ProductSize = "5-gallon"
)

// Product is an immutable catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// StockQuantity is an optional ceiling: nil means the count is unknown to the
// catalog and only InStock gates cart adds. The inventory table is the source
// of truth for available stock at order confirmation time.

type Product struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Price         float64     `json:"price"`
	Category      string      `json:"category"`
	Size          ProductSize `json:"size"`
	Image         string      `json:"image,omitempty"`
	InStock       bool        `json:"in_stock"`
	StockQuantity *int        `json:"stock_quantity,omitempty"`
}
