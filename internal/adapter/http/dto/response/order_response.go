package response

import (
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

type OrderResponse struct {
	OrderID   string    `json:"order_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	OrderedBy string    `json:"ordered_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:   o.ID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		UnitPrice: o.UnitPrice,
		Total:     o.Total,
		Status:    string(o.Status),
		OrderedBy: o.OrderedBy,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
