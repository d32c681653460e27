package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// cartSnapshot is the wire format stored in Redis. Only the item list and the
// write timestamp are persisted; totals are recomputed from items on load.
type cartSnapshot struct {
	Items       []entities.CartItem `json:"items"`
	LastUpdated time.Time           `json:"last_updated"`
}

// RedisCartStore keeps one full cart snapshot per cart id. Writes are
// last-write-wins; there is no cross-session merge.

type RedisCartStore struct {
	client *redis.Client
}

var _ interfaces.ICartStore = (*RedisCartStore)(nil)

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Load returns the snapshot for cartID. A missing key is an empty cart. A
// corrupt snapshot is discarded (logged) and also reported as an empty cart:
// losing a cart beats crashing the session.
func (s *RedisCartStore) Load(ctx context.Context, cartID string) ([]entities.CartItem, time.Time, error) {
	raw, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, err
	}

	items, lastUpdated, err := decodeSnapshot(raw)
	if err != nil {
		log.Printf("[cart][store] discarding corrupt snapshot cart_id=%s err=%v", cartID, err)
		return nil, time.Time{}, nil
	}
	return items, lastUpdated, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cartID string, items []entities.CartItem) error {
	raw, err := encodeSnapshot(items, time.Now().UTC())
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(cartID), raw, 0).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, cartKey(cartID)).Err()
}

func cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}

func encodeSnapshot(items []entities.CartItem, lastUpdated time.Time) ([]byte, error) {
	if items == nil {
		items = []entities.CartItem{}
	}
	return json.Marshal(cartSnapshot{Items: items, LastUpdated: lastUpdated})
}

func decodeSnapshot(raw []byte) ([]entities.CartItem, time.Time, error) {
	var snap cartSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, time.Time{}, err
	}
	return snap.Items, snap.LastUpdated, nil
}
