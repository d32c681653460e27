package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartID   = errors.New("invalid cart id")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrEmptyCart       = errors.New("cart is empty")
)

// AddItemReason explains why an add was rejected.
type AddItemReason string

const (
	AddReasonOutOfStock       AddItemReason = "out_of_stock"
	AddReasonQuantityExceeded AddItemReason = "quantity_exceeded"
)

// AddItemOutcome is the typed result of AddItem. A rejected add is a normal
// outcome, not an error: the cart is unchanged and Reason says why, so the
// caller can tell "out of stock" from a real failure.
type AddItemOutcome struct {
	Added  bool          `json:"added"`
	Reason AddItemReason `json:"reason,omitempty"`
	Cart   entities.Cart `json:"cart"`
}

// ICartUseCase is the cart ledger: line-itemized cart state with derived
// totals, persisted to the snapshot store after every mutation.
//
// Mutations are load -> validate -> mutate -> recompute -> persist, so no
// caller ever observes totals that are stale relative to the items.

type ICartUseCase interface {
	Get(ctx context.Context, cartID string) (entities.Cart, error)
	AddItem(ctx context.Context, cartID string, productID, quantity int) (AddItemOutcome, error)
	RemoveItem(ctx context.Context, cartID string, productID int) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, cartID string, productID, quantity int) (entities.Cart, error)
	Clear(ctx context.Context, cartID string) error
	Checkout(ctx context.Context, cartID, orderedBy string) ([]entities.Order, error)
}

type CartUseCase struct {
	store       interfaces.ICartStore
	productRepo interfaces.IProductRepository
	orderRepo   interfaces.IOrderRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(store interfaces.ICartStore, productRepo interfaces.IProductRepository, orderRepo interfaces.IOrderRepository) *CartUseCase {
	return &CartUseCase{store: store, productRepo: productRepo, orderRepo: orderRepo}
}

func (u *CartUseCase) Get(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	items, lastUpdated, err := u.store.Load(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	return buildCart(items, lastUpdated), nil
}

func (u *CartUseCase) AddItem(ctx context.Context, cartID string, productID, quantity int) (AddItemOutcome, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return AddItemOutcome{}, ErrInvalidCartID
	}
	if quantity <= 0 {
		return AddItemOutcome{}, ErrInvalidQuantity
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return AddItemOutcome{}, err
	}
	if product.ID == 0 {
		return AddItemOutcome{}, ErrProductNotFound
	}

	items, lastUpdated, err := u.store.Load(ctx, cartID)
	if err != nil {
		return AddItemOutcome{}, err
	}

	existing := 0
	if idx := findLine(items, productID); idx >= 0 {
		existing = items[idx].Quantity
	}

	if !product.InStock {
		log.Printf("[cart][usecase] add rejected cart_id=%s product_id=%d reason=out_of_stock", cartID, productID)
		return AddItemOutcome{Added: false, Reason: AddReasonOutOfStock, Cart: buildCart(items, lastUpdated)}, nil
	}
	// Client-side heuristic only: the inventory table is re-checked at order
	// confirmation.
	if product.StockQuantity != nil && existing+quantity > *product.StockQuantity {
		log.Printf("[cart][usecase] add rejected cart_id=%s product_id=%d reason=quantity_exceeded have=%d want=%d ceiling=%d",
			cartID, productID, existing, quantity, *product.StockQuantity)
		return AddItemOutcome{Added: false, Reason: AddReasonQuantityExceeded, Cart: buildCart(items, lastUpdated)}, nil
	}

	if idx := findLine(items, productID); idx >= 0 {
		items[idx].Quantity = clampQuantity(existing + quantity)
	} else {
		items = append(items, entities.CartItem{
			ProductID: product.ID,
			SKU:       deriveSKU(product),
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  clampQuantity(quantity),
			Image:     product.Image,
			Category:  product.Category,
			Size:      product.Size,
		})
	}

	if err := u.store.Save(ctx, cartID, items); err != nil {
		return AddItemOutcome{}, err
	}
	return AddItemOutcome{Added: true, Cart: buildCart(items, time.Now().UTC())}, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, cartID string, productID int) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	items, lastUpdated, err := u.store.Load(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	idx := findLine(items, productID)
	if idx < 0 {
		// Removing an absent line is a no-op.
		return buildCart(items, lastUpdated), nil
	}
	items = append(items[:idx], items[idx+1:]...)

	if err := u.store.Save(ctx, cartID, items); err != nil {
		return entities.Cart{}, err
	}
	return buildCart(items, time.Now().UTC()), nil
}

func (u *CartUseCase) UpdateQuantity(ctx context.Context, cartID string, productID, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return u.RemoveItem(ctx, cartID, productID)
	}

	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	items, lastUpdated, err := u.store.Load(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	idx := findLine(items, productID)
	if idx < 0 {
		return buildCart(items, lastUpdated), nil
	}
	items[idx].Quantity = clampQuantity(quantity)

	if err := u.store.Save(ctx, cartID, items); err != nil {
		return entities.Cart{}, err
	}
	return buildCart(items, time.Now().UTC()), nil
}

func (u *CartUseCase) Clear(ctx context.Context, cartID string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return ErrInvalidCartID
	}
	return u.store.Delete(ctx, cartID)
}

// Checkout turns each cart line into a pending order and clears the cart.
// Pending orders carry no inventory impact; stock is only deducted at the
// admin confirmation step.
func (u *CartUseCase) Checkout(ctx context.Context, cartID, orderedBy string) ([]entities.Order, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}
	orderedBy = strings.TrimSpace(orderedBy)
	if orderedBy == "" {
		return nil, ErrInvalidOrderedBy
	}

	items, _, err := u.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now().UTC()
	orders := make([]entities.Order, 0, len(items))
	for _, item := range items {
		o := entities.Order{
			ID:        uuid.NewString(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.Price * float64(item.Quantity),
			Status:    entities.OrderStatusPending,
			OrderedBy: orderedBy,
			CreatedAt: now,
			UpdatedAt: now,
		}
		created, err := u.orderRepo.Create(ctx, o)
		if err != nil {
			log.Printf("[cart][usecase] checkout order create failed cart_id=%s product_id=%d err=%v", cartID, item.ProductID, err)
			return nil, err
		}
		orders = append(orders, created)
	}

	if err := u.store.Delete(ctx, cartID); err != nil {
		// Orders are already placed; a stale snapshot is recoverable.
		log.Printf("[cart][usecase] checkout cart clear failed cart_id=%s err=%v", cartID, err)
	}
	log.Printf("[cart][usecase] checkout success cart_id=%s orders=%d ordered_by=%s", cartID, len(orders), orderedBy)
	return orders, nil
}

func findLine(items []entities.CartItem, productID int) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func clampQuantity(q int) int {
	if q > entities.MaxQuantityPerItem {
		return entities.MaxQuantityPerItem
	}
	return q
}

func deriveSKU(p entities.Product) string {
	code := "NA"
	switch p.Size {
	case entities.ProductSizeOneGallon:
		code = "1G"
	case entities.ProductSizeFiveGallon:
		code = "5G"
	}
	return fmt.Sprintf("APR-%s-%04d", code, p.ID)
}

// buildCart recomputes every derived total from the item list. Totals are
// never read back from storage.
func buildCart(items []entities.CartItem, lastUpdated time.Time) entities.Cart {
	cart := entities.Cart{Items: items, LastUpdated: lastUpdated}
	if cart.Items == nil {
		cart.Items = []entities.CartItem{}
	}

	for _, item := range cart.Items {
		cart.Subtotal += item.Price * float64(item.Quantity)
		cart.ItemCount += item.Quantity
	}
	cart.Tax = cart.Subtotal * entities.TaxRate
	if len(cart.Items) > 0 && cart.Subtotal < entities.FreeShippingThreshold {
		cart.Shipping = entities.ShippingCost
	}
	cart.Total = cart.Subtotal + cart.Tax + cart.Shipping
	return cart
}
