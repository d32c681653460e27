package response

import (
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

type CartItemResponse struct {
	ProductID int     `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category"`
	Size      string  `json:"size"`
}

type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	Tax         float64            `json:"tax"`
	Shipping    float64            `json:"shipping"`
	Total       float64            `json:"total"`
	ItemCount   int                `json:"item_count"`
	LastUpdated time.Time          `json:"last_updated"`
}

type CartAddItemResponse struct {
	Added bool         `json:"added"`
	Cart  CartResponse `json:"cart"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Category:  item.Category,
			Size:      string(item.Size),
		})
	}
	return CartResponse{
		Items:       items,
		Subtotal:    c.Subtotal,
		Tax:         c.Tax,
		Shipping:    c.Shipping,
		Total:       c.Total,
		ItemCount:   c.ItemCount,
		LastUpdated: c.LastUpdated,
	}
}
