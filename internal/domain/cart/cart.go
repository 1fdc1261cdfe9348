package cart

import (
	"strconv"
	"time"

	"app/internal/domain/model"
	"app/internal/domain/money"
)

// スナップショットのスキーマ版数
const SnapshotVersion = 1

// バリアント側で上限未指定のときの購入上限
const DefaultMaxQuantity = 10

// Item はカートの明細。(ProductID, VariantID) で一意。
// バリアント未選択の商品は、商品ID文字列を擬似バリアントIDとして持つ。
type Item struct {
	ProductID     int64       `json:"productId"`
	VariantID     string      `json:"variantId,omitempty"`
	Name          string      `json:"name"`
	Price         money.Money `json:"price"`
	OriginalPrice money.Money `json:"originalPrice,omitempty"`
	Image         string      `json:"image,omitempty"`
	Weight        string      `json:"weight,omitempty"`
	Quantity      int         `json:"quantity"`
	MaxQuantity   int         `json:"maxQuantity"`
	InStock       bool        `json:"inStock"`
	Discount      int         `json:"discount,omitempty"`
}

// Cart は1セッション分のカート。Itemsは追加順を保つ。
// TotalItems / TotalPrice は毎回ゼロから再計算する（差分更新しない）。
type Cart struct {
	Version     int         `json:"version"`
	Items       []Item      `json:"items"`
	TotalItems  int         `json:"totalItems"`
	TotalPrice  money.Money `json:"totalPrice"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

// Empty は空カート。
func Empty(now time.Time) Cart {
	return Cart{
		Version:     SnapshotVersion,
		Items:       []Item{},
		TotalItems:  0,
		TotalPrice:  0,
		LastUpdated: now,
	}
}

// IsInCart は(productID, variantID)の明細があるか。
func (c Cart) IsInCart(productID int64, variantID string) bool {
	for _, it := range c.Items {
		if it.ProductID == productID && it.VariantID == variantID {
			return true
		}
	}
	return false
}

// ItemQuantity は該当明細の数量（無ければ0）。
func (c Cart) ItemQuantity(productID int64, variantID string) int {
	for _, it := range c.Items {
		if it.ProductID == productID && it.VariantID == variantID {
			return it.Quantity
		}
	}
	return 0
}

// TotalItemCount は全明細の数量合計。
func (c Cart) TotalItemCount() int {
	return c.TotalItems
}

// Subtotal は現在の明細から小計を計算し直す。
func (c Cart) Subtotal() money.Money {
	return subtotal(c.Items)
}

// 小計の計算規約：
//  1. originalPrice（無ければprice）を単価の基準にする
//  2. discountは常にoriginalPriceへ掛ける
//     （priceが割引後でも再適用する。元実装の仕様をそのまま保持）
//  3. 数量を掛けて合算する
func subtotal(items []Item) money.Money {
	var sum money.Money
	for _, it := range items {
		orig := it.OriginalPrice
		if orig == 0 {
			orig = it.Price
		}
		sum += orig.Discounted(it.Discount).Mul(it.Quantity)
	}
	return sum
}

func recompute(items []Item, now time.Time) Cart {
	totalItems := 0
	for _, it := range items {
		totalItems += it.Quantity
	}
	return Cart{
		Version:     SnapshotVersion,
		Items:       items,
		TotalItems:  totalItems,
		TotalPrice:  subtotal(items),
		LastUpdated: now,
	}
}

// resolveVariant はvariantIDが商品のバリアントに一致すればそれを、
// 一致しなければ商品自身から擬似バリアントを合成して返す。
func resolveVariant(p model.Product, variantID string) model.ProductVariant {
	if variantID != "" {
		for _, v := range p.Variants {
			if v.ID == variantID {
				return v
			}
		}
	}
	return model.ProductVariant{
		ID:            strconv.FormatInt(p.ID, 10),
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Weight:        p.Weight,
		InStock:       p.InStock,
		Discount:      p.Discount,
	}
}
