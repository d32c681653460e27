package entities

import "time"

// OrderStatus represents the order lifecycle.
//
// Domain notes:
//   - pending: created, stock not yet deducted, fully reversible.
//   - confirmed: stock deducted; the only terminal-success transition.
//   - cancelled: pending orders only, no inventory impact.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a single-product order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ordered_by-index): ordered_by
//
// UnitPrice and Total are snapshotted at creation so later catalog price
// changes do not reprice an open order.

type Order struct {
	ID        string      `json:"id"`
	ProductID int         `json:"product_id"`
	Quantity  int         `json:"quantity"`
	UnitPrice float64     `json:"unit_price"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	OrderedBy string      `json:"ordered_by"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
