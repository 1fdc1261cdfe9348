package model

import "time"

// 商品カテゴリ。slugはURL用で一意。
type Category struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Slug         string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description  string     `gorm:"type:text" json:"description"`
	Image        string     `gorm:"type:text" json:"image"`
	PriceRange   string     `gorm:"type:varchar(64)" json:"price_range,omitempty"`
	ProductCount int        `gorm:"not null;default:0" json:"product_count"`
	Highlights   StringList `gorm:"type:jsonb" json:"highlights,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
