package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"app/internal/domain/cart"
	logx "app/internal/logger"
	repo "app/internal/repository"
)

// CartRedisStore はカートスナップショットをRedisに1キー1セッションで置く。
type CartRedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// DI
func NewCartRedisStore(rdb redis.Cmdable, ttl time.Duration) *CartRedisStore {
	return &CartRedisStore{rdb: rdb, ttl: ttl}
}

func (s *CartRedisStore) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Load はスナップショットを読み戻す。
// キーが無い・壊れている場合はエラーにせず空カートを返す（起動を止めない）。
func (s *CartRedisStore) Load(ctx context.Context, sessionID string) (cart.Cart, error) {
	key := s.cartKey(sessionID)

	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return cart.Empty(time.Now()), nil
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("load cart snapshot: %w", err)
	}

	var snap cart.Cart
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		// 壊れたスナップショットは捨てて空から始める
		logx.Warn().Err(err).Str("key", key).Msg("discarding malformed cart snapshot")
		return cart.Empty(time.Now()), nil
	}

	return cart.Apply(cart.Empty(time.Now()), cart.Load{Snapshot: snap}, time.Now()), nil
}

// Save は全量スナップショットを書き、TTLを延長する。
func (s *CartRedisStore) Save(ctx context.Context, sessionID string, snapshot cart.Cart) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}

	key := s.cartKey(sessionID)
	if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

var _ repo.CartStore = (*CartRedisStore)(nil)
