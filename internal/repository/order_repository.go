package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 注文は作成と取得のみ（追記専用）。更新・削除は約束しない。
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// ユーザーの注文を新しい順で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
