package repository

import (
	"context"

	"app/internal/domain/cart"
)

// CartStore はセッション単位のカートスナップショットの読み書き。
// キーは1セッション1つ。書き込みはベストエフォート（失敗してもカート本体は
// メモリ上の値が正）。
type CartStore interface {
	// Load はスナップショットを返す。未保存・壊れている場合は空カート。
	Load(ctx context.Context, sessionID string) (cart.Cart, error)
	// Save は全量スナップショットを書く。
	Save(ctx context.Context, sessionID string, snapshot cart.Cart) error
}
