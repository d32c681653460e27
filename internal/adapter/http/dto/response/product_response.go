package response

import "github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"

type ProductResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Size          string  `json:"size"`
	Image         string  `json:"image,omitempty"`
	InStock       bool    `json:"in_stock"`
	StockQuantity *int    `json:"stock_quantity,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Category:      p.Category,
		Size:          string(p.Size),
		Image:         p.Image,
		InStock:       p.InStock,
		StockQuantity: p.StockQuantity,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
