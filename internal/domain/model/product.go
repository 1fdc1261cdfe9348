package model

import (
	"time"

	"gorm.io/gorm"

	"app/internal/domain/money"
)

// 在庫表示ステータス
const (
	StockStatusInStock    = "in-stock"
	StockStatusLowStock   = "low-stock"
	StockStatusOutOfStock = "out-of-stock"
)

// 商品。価格はDB上も整形済み文字列（"₹899"）で持ち、money.Moneyが境界で変換する。
type Product struct {
	ID            int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Category      string           `gorm:"type:varchar(100);index" json:"category"`
	Description   string           `gorm:"type:text" json:"description"`
	Price         money.Money      `gorm:"type:varchar(32);not null" json:"price"`
	OriginalPrice money.Money      `gorm:"type:varchar(32)" json:"original_price,omitempty"`
	Image         string           `gorm:"type:text" json:"image"`
	Weight        string           `gorm:"type:varchar(50)" json:"weight"`
	Badge         string           `gorm:"type:varchar(50)" json:"badge,omitempty"`
	Rating        float64          `gorm:"not null;default:0" json:"rating"`
	Reviews       int              `gorm:"not null;default:0" json:"reviews"`
	InStock       bool             `gorm:"not null;default:true" json:"in_stock"`
	StockStatus   string           `gorm:"type:varchar(20)" json:"stock_status,omitempty"`
	Discount      int              `gorm:"not null;default:0" json:"discount,omitempty"`
	Features      StringList       `gorm:"type:jsonb" json:"features,omitempty"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt     time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

// 商品バリアント（サイズ・重量・価格の組）。IDは親商品内で一意。
type ProductVariant struct {
	ProductID     int64       `gorm:"primaryKey" json:"product_id"`
	ID            string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`
	Price         money.Money `gorm:"type:varchar(32);not null" json:"price"`
	OriginalPrice money.Money `gorm:"type:varchar(32)" json:"original_price,omitempty"`
	Weight        string      `gorm:"type:varchar(50)" json:"weight"`
	InStock       bool        `gorm:"not null;default:true" json:"in_stock"`
	Discount      int         `gorm:"not null;default:0" json:"discount,omitempty"`
	SKU           string      `gorm:"type:varchar(64)" json:"sku,omitempty"`
	// 1回の購入上限（0は未指定＝カート側のデフォルトに任せる）
	MaxQuantity int `gorm:"not null;default:0" json:"max_quantity,omitempty"`
}
