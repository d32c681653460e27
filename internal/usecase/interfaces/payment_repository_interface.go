package interfaces

import (
	"context"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// IOrderPaymentRepository abstracts DynamoDB persistence for OrderPayment.

type IOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}
