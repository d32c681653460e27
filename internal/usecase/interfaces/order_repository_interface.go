package interfaces

import (
	"context"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for orders.
//
// UpdateStatus performs a guarded transition: the write only applies when the
// stored status equals `from`, and a zero-value Order (nil error) is returned
// when the guard fails or the order does not exist.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByOrderedBy(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)
}
