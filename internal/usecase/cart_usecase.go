package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/cart"
	logx "app/internal/logger"
	repo "app/internal/repository"
)

// 現在時刻の約束（テストで差し替える）
type Clock interface {
	Now() time.Time
}

// CartUsecase はセッションのカートを司る。
// 変更はすべて cart.Apply（純粋関数）を通し、毎回スナップショットを保存する。
// 保存はベストエフォートで、失敗してもメモリ上のカートを正として返す。
type CartUsecase struct {
	cartStore   repo.CartStore
	productRepo repo.ProductRepository
	clock       Clock
}

// DI
func NewCartUsecase(
	cartStore repo.CartStore,
	productRepo repo.ProductRepository,
	clock Clock,
) *CartUsecase {
	return &CartUsecase{
		cartStore:   cartStore,
		productRepo: productRepo,
		clock:       clock,
	}
}

// OAS: AddCartItemRequest
type AddItemInput struct {
	ProductID int64
	VariantID string
	Quantity  int
}

// GetCart は現在のカートを返す（スナップショットが読めなければ空）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	if sessionID == "" {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	return u.load(ctx, sessionID), nil
}

// AddItem は商品（バリアント任意）をカートへ追加する。
// 在庫切れはここでは弾かない（UI側の表示制御に任せる）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddItemInput) (cart.Cart, error) {
	if sessionID == "" {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if in.ProductID <= 0 {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return cart.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	state := u.load(ctx, sessionID)
	next := cart.Apply(state, cart.AddItem{Product: p, VariantID: in.VariantID, Quantity: qty}, u.clock.Now())

	u.persist(ctx, sessionID, next)
	return next, nil
}

// RemoveItem は(productID, variantID)に完全一致する明細を消す。無ければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, productID int64, variantID string) (cart.Cart, error) {
	if sessionID == "" {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if productID <= 0 {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	state := u.load(ctx, sessionID)
	next := cart.Apply(state, cart.RemoveItem{ProductID: productID, VariantID: variantID}, u.clock.Now())

	u.persist(ctx, sessionID, next)
	return next, nil
}

// UpdateQuantity は数量を上書きする。0以下は削除扱い。対象が無ければ何もしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int, variantID string) (cart.Cart, error) {
	if sessionID == "" {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if productID <= 0 {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	state := u.load(ctx, sessionID)
	next := cart.Apply(state, cart.UpdateQuantity{ProductID: productID, VariantID: variantID, Quantity: quantity}, u.clock.Now())

	u.persist(ctx, sessionID, next)
	return next, nil
}

// ClearCart は空カートに戻す。
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	if sessionID == "" {
		return cart.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	state := u.load(ctx, sessionID)
	next := cart.Apply(state, cart.Clear{}, u.clock.Now())

	u.persist(ctx, sessionID, next)
	return next, nil
}

// スナップショットを読む。失敗してもエラーにせず空カートで続ける。
func (u *CartUsecase) load(ctx context.Context, sessionID string) cart.Cart {
	state, err := u.cartStore.Load(ctx, sessionID)
	if err != nil {
		logx.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart snapshot")
		return cart.Empty(u.clock.Now())
	}
	return state
}

// スナップショットを書く。失敗はログのみ。
func (u *CartUsecase) persist(ctx context.Context, sessionID string, snapshot cart.Cart) {
	if err := u.cartStore.Save(ctx, sessionID, snapshot); err != nil {
		logx.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist cart snapshot")
	}
}
