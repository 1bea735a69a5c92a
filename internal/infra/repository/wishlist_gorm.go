package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// ユーザーのウィッシュリストを取得し、無ければ作る。
// user_idのunique制約があるので、同時に来ても1つしかできない。
func (r *WishlistGormRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Wishlist, error) {
	var wl model.Wishlist

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("user_id = ?", userID).First(&wl).Error
		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る。unique違反（同時作成）なら取り直す。
		newWL := model.Wishlist{UserID: userID}
		if err := tx.Create(&newWL).Error; err != nil {
			retryErr := tx.Where("user_id = ?", userID).First(&wl).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		wl = newWL
		return nil
	})

	if err != nil {
		return model.Wishlist{}, err
	}
	return wl, nil
}

// 明細の商品IDを追加順で返す
func (r *WishlistGormRepository) ListProductIDs(ctx context.Context, wishlistID int64) ([]int64, error) {
	var ids []int64

	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("wishlist_id = ?", wishlistID).
		Order("id asc").
		Pluck("product_id", &ids).Error

	if err != nil {
		return []int64{}, err
	}
	return ids, nil
}

// 追加。(wishlist_id, product_id)のunique制約＋ON CONFLICT DO NOTHINGで
// 二重追加は挿入0件＝falseになる（冪等）。
func (r *WishlistGormRepository) AddProduct(ctx context.Context, wishlistID int64, productID int64) (bool, error) {
	item := model.WishlistItem{
		WishlistID: wishlistID,
		ProductID:  productID,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// 削除。無ければ0件削除でそのまま成功。
func (r *WishlistGormRepository) RemoveProduct(ctx context.Context, wishlistID int64, productID int64) error {
	return r.db.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		Delete(&model.WishlistItem{}).Error
}
