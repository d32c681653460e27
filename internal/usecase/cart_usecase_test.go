package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	mock_interfaces "github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCartUseCase_Get(t *testing.T) {
	t.Run("invalid cart id", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil)
		_, err := uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("empty snapshot builds empty cart with zero totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Load(gomock.Any(), "cart-1").Return(nil, time.Time{}, nil)

		cart, err := uc.Get(context.Background(), "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 || cart.Subtotal != 0 || cart.Tax != 0 || cart.Shipping != 0 || cart.Total != 0 || cart.ItemCount != 0 {
			t.Fatalf("expected zeroed empty cart, got %+v", cart)
		}
		if cart.Items == nil {
			t.Fatalf("expected non-nil items slice")
		}
	})

	t.Run("totals derived from items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		items := []entities.CartItem{
			{ProductID: 1, Price: 100, Quantity: 2},
			{ProductID: 2, Price: 50.5, Quantity: 1},
		}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(items, time.Now(), nil)

		cart, err := uc.Get(context.Background(), "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantSubtotal := 250.5
		wantTax := wantSubtotal * entities.TaxRate
		wantShipping := entities.ShippingCost
		if !almostEqual(cart.Subtotal, wantSubtotal) {
			t.Fatalf("expected subtotal %.2f, got %.2f", wantSubtotal, cart.Subtotal)
		}
		if !almostEqual(cart.Tax, wantTax) {
			t.Fatalf("expected tax %.4f, got %.4f", wantTax, cart.Tax)
		}
		if !almostEqual(cart.Shipping, wantShipping) {
			t.Fatalf("expected shipping %.2f, got %.2f", wantShipping, cart.Shipping)
		}
		if !almostEqual(cart.Total, wantSubtotal+wantTax+wantShipping) {
			t.Fatalf("expected total %.4f, got %.4f", wantSubtotal+wantTax+wantShipping, cart.Total)
		}
		if cart.ItemCount != 3 {
			t.Fatalf("expected item count 3, got %d", cart.ItemCount)
		}
	})

	t.Run("free shipping at threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		items := []entities.CartItem{{ProductID: 1, Price: entities.FreeShippingThreshold, Quantity: 1}}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(items, time.Now(), nil)

		cart, err := uc.Get(context.Background(), "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Shipping != 0 {
			t.Fatalf("expected free shipping at threshold, got %.2f", cart.Shipping)
		}
	})
}

func TestCartUseCase_AddItem(t *testing.T) {
	product := entities.Product{ID: 7, Name: "Sealant", Price: 120, Category: "coatings", Size: entities.ProductSizeFiveGallon, InStock: true}

	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil)
		_, err := uc.AddItem(context.Background(), "cart-1", 7, 0)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(nil, productRepo, nil)

		productRepo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{}, nil)

		_, err := uc.AddItem(context.Background(), "cart-1", 7, 1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("new line appended with derived sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(store, productRepo, nil)

		productRepo.EXPECT().GetByID(gomock.Any(), 7).Return(product, nil)
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(nil, time.Time{}, nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.CartItem) error {
				if len(items) != 1 {
					t.Fatalf("expected one line, got %d", len(items))
				}
				if items[0].SKU != "APR-5G-0007" {
					t.Fatalf("unexpected sku %q", items[0].SKU)
				}
				if items[0].Quantity != 2 {
					t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
				}
				return nil
			},
		)

		outcome, err := uc.AddItem(context.Background(), "cart-1", 7, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Added || outcome.Reason != "" {
			t.Fatalf("expected accepted outcome, got %+v", outcome)
		}
		if outcome.Cart.ItemCount != 2 {
			t.Fatalf("expected item count 2, got %d", outcome.Cart.ItemCount)
		}
	})

	t.Run("existing line merges instead of duplicating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(store, productRepo, nil)

		existing := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 3}}
		productRepo.EXPECT().GetByID(gomock.Any(), 7).Return(product, nil)
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.CartItem) error {
				if len(items) != 1 {
					t.Fatalf("expected merged single line, got %d", len(items))
				}
				if items[0].Quantity != 5 {
					t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
				}
				return nil
			},
		)

		outcome, err := uc.AddItem(context.Background(), "cart-1", 7, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Added {
			t.Fatalf("expected accepted outcome")
		}
	})

	t.Run("quantity clamps at ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(store, productRepo, nil)

		existing := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 98}}
		productRepo.EXPECT().GetByID(gomock.Any(), 7).Return(product, nil)
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.CartItem) error {
				if items[0].Quantity != entities.MaxQuantityPerItem {
					t.Fatalf("expected clamp to %d, got %d", entities.MaxQuantityPerItem, items[0].Quantity)
				}
				return nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "cart-1", 7, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("out of stock is a rejected outcome, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(store, productRepo, nil)

		oos := product
		oos.InStock = false
		productRepo.EXPECT().GetByID(gomock.Any(), 7).Return(oos, nil)
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(nil, time.Time{}, nil)
		// No Save: rejected adds leave the snapshot untouched.

		outcome, err := uc.AddItem(context.Background(), "cart-1", 7, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Added || outcome.Reason != AddReasonOutOfStock {
			t.Fatalf("expected out_of_stock rejection, got %+v", outcome)
		}
	})

	t.Run("quantity exceeding counted stock is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(store, productRepo, nil)

		counted := product
		counted.StockQuantity = intPtr(4)
		existing := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 3}}
		productRepo.EXPECT().GetByID(gomock.Any(), 7).Return(counted, nil)
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)

		outcome, err := uc.AddItem(context.Background(), "cart-1", 7, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Added || outcome.Reason != AddReasonQuantityExceeded {
			t.Fatalf("expected quantity_exceeded rejection, got %+v", outcome)
		}
		if outcome.Cart.ItemCount != 3 {
			t.Fatalf("expected cart unchanged, got %+v", outcome.Cart)
		}
	})
}

func TestCartUseCase_UpdateQuantity(t *testing.T) {
	t.Run("zero quantity removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		existing := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 3}}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Len(0)).Return(nil)

		cart, err := uc.UpdateQuantity(context.Background(), "cart-1", 7, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", cart)
		}
	})

	t.Run("positive quantity replaces the line quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		existing := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 3}}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.CartItem) error {
				if items[0].Quantity != 9 {
					t.Fatalf("expected quantity 9, got %d", items[0].Quantity)
				}
				return nil
			},
		)

		if _, err := uc.UpdateQuantity(context.Background(), "cart-1", 7, 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update clamps at ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		existing := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 3}}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.CartItem) error {
				if items[0].Quantity != entities.MaxQuantityPerItem {
					t.Fatalf("expected clamp to %d, got %d", entities.MaxQuantityPerItem, items[0].Quantity)
				}
				return nil
			},
		)

		if _, err := uc.UpdateQuantity(context.Background(), "cart-1", 7, 500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent line is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Load(gomock.Any(), "cart-1").Return(nil, time.Time{}, nil)

		cart, err := uc.UpdateQuantity(context.Background(), "cart-1", 99, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", cart)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	t.Run("removes a line and recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		existing := []entities.CartItem{
			{ProductID: 7, Price: 120, Quantity: 1},
			{ProductID: 8, Price: 30, Quantity: 2},
		}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(existing, time.Now(), nil)
		store.EXPECT().Save(gomock.Any(), "cart-1", gomock.Len(1)).Return(nil)

		cart, err := uc.RemoveItem(context.Background(), "cart-1", 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].ProductID != 8 {
			t.Fatalf("expected only product 8 left, got %+v", cart.Items)
		}
		if !almostEqual(cart.Subtotal, 60) {
			t.Fatalf("expected subtotal 60, got %.2f", cart.Subtotal)
		}
	})

	t.Run("absent line skips the save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Load(gomock.Any(), "cart-1").Return(nil, time.Time{}, nil)

		if _, err := uc.RemoveItem(context.Background(), "cart-1", 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCartUseCase_Checkout(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Load(gomock.Any(), "cart-1").Return(nil, time.Time{}, nil)

		_, err := uc.Checkout(context.Background(), "cart-1", "user-1")
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("missing ordered_by", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil)
		_, err := uc.Checkout(context.Background(), "cart-1", "  ")
		if !errors.Is(err, ErrInvalidOrderedBy) {
			t.Fatalf("expected ErrInvalidOrderedBy, got %v", err)
		}
	})

	t.Run("one pending order per line, then cart cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(store, nil, orderRepo)

		items := []entities.CartItem{
			{ProductID: 7, Price: 120, Quantity: 2},
			{ProductID: 8, Price: 30, Quantity: 1},
		}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(items, time.Now(), nil)
		orderRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Status != entities.OrderStatusPending || o.OrderedBy != "user-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.ProductID == 7 && !almostEqual(o.Total, 240) {
					t.Fatalf("expected total 240 for product 7, got %.2f", o.Total)
				}
				return o, nil
			},
		).Times(2)
		store.EXPECT().Delete(gomock.Any(), "cart-1").Return(nil)

		orders, err := uc.Checkout(context.Background(), "cart-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
	})

	t.Run("order create failure aborts checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(store, nil, orderRepo)

		items := []entities.CartItem{{ProductID: 7, Price: 120, Quantity: 2}}
		store.EXPECT().Load(gomock.Any(), "cart-1").Return(items, time.Now(), nil)
		orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.Checkout(context.Background(), "cart-1", "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
