package model

import (
	"time"
)

// CartItem holds one line of a user's cart. The composite unique index
// backs the additive upsert in the cart repository: one row per
// (user, product), quantity never below 1. Rows are hard-deleted: a
// soft-delete tombstone would collide with the unique index when the same
// product is re-added.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal is the line-item price shown in the cart and checkout views.
func (c CartItem) Subtotal() float64 {
	return float64(c.Quantity) * c.Product.Price
}
