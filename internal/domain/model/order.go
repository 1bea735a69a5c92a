package model

import "time"

// 注文。作成後は更新・削除しない（追記専用の台帳）。
// UserIDはゲスト注文のときNULL。
// TotalPriceは作成時点の Σ(単価スナップショット × 数量)。
type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *int64    `gorm:"index" json:"user_id,omitempty"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
