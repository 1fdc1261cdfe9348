package cart

import (
	"time"

	"app/internal/domain/model"
)

// Command はカートへの変更。Applyに渡す。
type Command interface {
	apply(state Cart, now time.Time) Cart
}

// Apply は純粋な状態遷移。stateは変更せず新しいCartを返す。
// 永続化やHTTPから切り離してここだけで検証できるようにする。
func Apply(state Cart, cmd Command, now time.Time) Cart {
	return cmd.apply(state, now)
}

// AddItem は商品（バリアント任意）をカートへ追加する。
type AddItem struct {
	Product   model.Product
	VariantID string
	Quantity  int
}

// RemoveItem は(ProductID, VariantID)に完全一致する明細を取り除く。
type RemoveItem struct {
	ProductID int64
	VariantID string
}

// UpdateQuantity は数量を上書きする。0以下は削除と同義。
type UpdateQuantity struct {
	ProductID int64
	VariantID string
	Quantity  int
}

// Clear は空カートに戻す。
type Clear struct{}

// Load は保存済みスナップショットをそのまま採用する。
type Load struct {
	Snapshot Cart
}

func (c AddItem) apply(state Cart, now time.Time) Cart {
	qty := c.Quantity
	if qty <= 0 {
		qty = 1
	}

	v := resolveVariant(c.Product, c.VariantID)

	items := make([]Item, len(state.Items))
	copy(items, state.Items)

	found := false
	for i := range items {
		if items[i].ProductID == c.Product.ID && items[i].VariantID == v.ID {
			newQty := items[i].Quantity + qty
			items[i].Quantity = newQty
			// 上限は増える方向にしか動かない（元実装のラチェット仕様）
			if newQty > items[i].MaxQuantity {
				items[i].MaxQuantity = newQty
			}
			found = true
			break
		}
	}

	if !found {
		maxQty := v.MaxQuantity
		if maxQty <= 0 {
			maxQty = DefaultMaxQuantity
		}
		items = append(items, Item{
			ProductID:     c.Product.ID,
			VariantID:     v.ID,
			Name:          v.Name,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
			Image:         c.Product.Image,
			Weight:        v.Weight,
			Quantity:      qty,
			MaxQuantity:   maxQty,
			InStock:       v.InStock,
			Discount:      v.Discount,
		})
	}

	return recompute(items, now)
}

func (c RemoveItem) apply(state Cart, now time.Time) Cart {
	items := make([]Item, 0, len(state.Items))
	for _, it := range state.Items {
		if it.ProductID == c.ProductID && it.VariantID == c.VariantID {
			continue
		}
		items = append(items, it)
	}
	return recompute(items, now)
}

func (c UpdateQuantity) apply(state Cart, now time.Time) Cart {
	if c.Quantity <= 0 {
		//0以下は削除
		return RemoveItem{ProductID: c.ProductID, VariantID: c.VariantID}.apply(state, now)
	}

	items := make([]Item, len(state.Items))
	copy(items, state.Items)

	for i := range items {
		if items[i].ProductID == c.ProductID && items[i].VariantID == c.VariantID {
			items[i].Quantity = c.Quantity
			if c.Quantity > items[i].MaxQuantity {
				items[i].MaxQuantity = c.Quantity
			}
			break
		}
	}

	return recompute(items, now)
}

func (c Clear) apply(_ Cart, now time.Time) Cart {
	return Empty(now)
}

func (c Load) apply(_ Cart, _ time.Time) Cart {
	snap := c.Snapshot
	if snap.Items == nil {
		snap.Items = []Item{}
	}
	if snap.Version == 0 {
		snap.Version = SnapshotVersion
	}
	return snap
}
