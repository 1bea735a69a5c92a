package model

import "time"

// 1ユーザーにつきウィッシュリストは1つ。初回アクセス時に作られる。
type Wishlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// ウィッシュリストの明細。数量は持たない（重複なしの集合）。
type WishlistItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WishlistID int64     `gorm:"not null;uniqueIndex:idx_wishlist_product" json:"wishlist_id"`
	ProductID  int64     `gorm:"not null;uniqueIndex:idx_wishlist_product;index" json:"product_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
