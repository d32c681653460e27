package request

// OrderCreateRequest creates an order. When Confirmed is true the order is
// confirmed (stock deducted) immediately after creation, matching the
// single-call admin flow.
type OrderCreateRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	OrderedBy string `json:"ordered_by" binding:"required"`
	Confirmed bool   `json:"confirmed"`
}
