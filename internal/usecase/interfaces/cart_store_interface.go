package interfaces

import (
	"context"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// ICartStore abstracts the durable key-value store holding cart snapshots.
//
// Only the item list is persisted; derived totals are recomputed on load. A
// corrupt or unparseable snapshot must be treated as an empty cart, not
// surfaced as an error.

type ICartStore interface {
	Load(ctx context.Context, cartID string) ([]entities.CartItem, time.Time, error)
	Save(ctx context.Context, cartID string, items []entities.CartItem) error
	Delete(ctx context.Context, cartID string) error
}
