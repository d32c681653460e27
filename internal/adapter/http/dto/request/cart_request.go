package request

// CartAddItemRequest adds (or increments) a line item.
type CartAddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

// CartUpdateQuantityRequest replaces a line's quantity. Quantity is a pointer
// so an explicit 0 (which removes the line) survives binding validation.
type CartUpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartCheckoutRequest turns the cart into pending orders.
type CartCheckoutRequest struct {
	OrderedBy string `json:"ordered_by" binding:"required"`
}
