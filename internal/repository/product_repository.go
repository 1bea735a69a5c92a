package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// カート/チェックアウトからは読み取りのみ。
type ProductRepository interface {
	// 名前の部分一致（大文字小文字を区別しない）。qが空なら全件。
	List(ctx context.Context, q string) ([]model.Product, error)

	// IDで1件取得。無ければ（削除済み含む）ErrNotFound。
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// カタログ投入用（seedコマンドが使う）。
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
