package repository

import (
	"context"

	"shop/internal/domain/model"
)

// ウィッシュリストの永続化。1ユーザー1リスト、明細は重複なし。
type WishlistRepository interface {
	// ユーザーのリストを取得し、無ければ作る。
	// 同一ユーザーの初回同時アクセスでも重複を作らないこと。
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Wishlist, error)

	// 明細の商品IDを追加順で返す。
	ListProductIDs(ctx context.Context, wishlistID int64) ([]int64, error)

	// 追加。既に入っていれば何もせず false を返す（エラーではない）。
	AddProduct(ctx context.Context, wishlistID int64, productID int64) (added bool, err error)

	// 削除。無ければ何もしない。
	RemoveProduct(ctx context.Context, wishlistID int64, productID int64) error
}
