package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderedBy  = errors.New("invalid ordered_by")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// IOrderUseCase drives the order state machine:
//
//	pending -> confirmed (stock deducted; the only terminal success)
//	pending -> cancelled (no inventory impact)
//
// Confirm is the admin action that performs the authoritative stock
// deduction. Insufficient stock is a distinct error from not-found and from
// generic failure so callers can re-query inventory and reprice.

type IOrderUseCase interface {
	Create(ctx context.Context, productID, quantity int, orderedBy string) (entities.Order, error)
	Confirm(ctx context.Context, orderID string) (entities.Order, error)
	Cancel(ctx context.Context, orderID string) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	ListByOrderedBy(ctx context.Context, userID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	productRepo interfaces.IProductRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, productRepo interfaces.IProductRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo}
}

func (u *OrderUseCase) Create(ctx context.Context, productID, quantity int, orderedBy string) (entities.Order, error) {
	orderedBy = strings.TrimSpace(orderedBy)
	if orderedBy == "" {
		return entities.Order{}, ErrInvalidOrderedBy
	}
	if quantity <= 0 {
		return entities.Order{}, ErrInvalidQuantity
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entities.Order{}, err
	}
	if product.ID == 0 {
		return entities.Order{}, ErrProductNotFound
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Total:     product.Price * float64(quantity),
		Status:    entities.OrderStatusPending,
		OrderedBy: orderedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s product_id=%d quantity=%d total=%.2f", created.ID, created.ProductID, created.Quantity, created.Total)
	return created, nil
}

// Confirm deducts stock first and only then flips the status. If the status
// flip loses a race the deduction is compensated, so a confirmed order always
// corresponds to exactly one inventory decrement.
func (u *OrderUseCase) Confirm(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusPending {
		return entities.Order{}, ErrOrderNotPending
	}

	product, err := u.productRepo.GetByID(ctx, order.ProductID)
	if err != nil {
		return entities.Order{}, err
	}
	if product.ID == 0 {
		return entities.Order{}, ErrProductNotFound
	}
	if !product.InStock {
		log.Printf("[order][usecase] confirm rejected order_id=%s product_id=%d reason=out_of_stock", orderID, order.ProductID)
		return entities.Order{}, ErrInsufficientStock
	}

	// Products without a tracked count are treated as unlimited; only counted
	// inventory is deducted.
	deductedStock := product.StockQuantity != nil
	if deductedStock {
		deducted, err := u.productRepo.DeductStock(ctx, order.ProductID, order.Quantity)
		if err != nil {
			return entities.Order{}, err
		}
		if deducted.ID == 0 {
			log.Printf("[order][usecase] confirm rejected order_id=%s product_id=%d reason=insufficient_stock", orderID, order.ProductID)
			return entities.Order{}, ErrInsufficientStock
		}
	}

	confirmed, err := u.repo.UpdateStatus(ctx, orderID, entities.OrderStatusPending, entities.OrderStatusConfirmed)
	if err != nil || confirmed.ID == "" {
		// Roll the deduction back; the order stays pending.
		if deductedStock {
			if _, rbErr := u.productRepo.DeductStock(ctx, order.ProductID, -order.Quantity); rbErr != nil {
				log.Printf("[order][usecase] stock rollback failed order_id=%s product_id=%d err=%v", orderID, order.ProductID, rbErr)
			}
		}
		if err != nil {
			return entities.Order{}, err
		}
		return entities.Order{}, ErrOrderNotPending
	}

	log.Printf("[order][usecase] confirmed order_id=%s product_id=%d quantity=%d", orderID, order.ProductID, order.Quantity)
	return confirmed, nil
}

func (u *OrderUseCase) Cancel(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	cancelled, err := u.repo.UpdateStatus(ctx, orderID, entities.OrderStatusPending, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	if cancelled.ID == "" {
		// Either missing or already past pending.
		order, gErr := u.repo.GetByID(ctx, orderID)
		if gErr != nil {
			return entities.Order{}, gErr
		}
		if order.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		return entities.Order{}, ErrOrderNotPending
	}
	log.Printf("[order][usecase] cancelled order_id=%s", orderID)
	return cancelled, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByOrderedBy(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidOrderedBy
	}
	return u.repo.ListByOrderedBy(ctx, userID)
}
