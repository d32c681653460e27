package interfaces

import (
	"context"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the product catalog.
//
// DeductStock is the server-authoritative inventory decrement performed at
// order confirmation: it must only succeed when the product is in stock and
// the remaining quantity covers the request, and it returns a zero-value
// Product (nil error) when that condition fails.

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id int) (entities.Product, error)
	DeductStock(ctx context.Context, id int, quantity int) (entities.Product, error)
}
