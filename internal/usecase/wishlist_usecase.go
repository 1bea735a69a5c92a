package usecase

import (
	"context"
	"net/http"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// WishlistUsecase は /wishlist の業務ロジックです。
// リストはユーザーごとに1つで、初回アクセス時に作られる。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
}

func NewWishlistUsecase(
	wishlistRepo repo.WishlistRepository,
	productRepo repo.ProductRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type WishlistResponse struct {
	Items []model.Product `json:"items"`
}

type WishlistMutationResponse struct {
	ProductID int64  `json:"product_id"`
	Added     bool   `json:"added"`
	Message   string `json:"message"`
}

// GetWishlist はリストを返す（無ければ空のリストを作る）。
// カタログから消えた商品はスキップ。
func (u *WishlistUsecase) GetWishlist(ctx context.Context, userID int64) (WishlistResponse, error) {
	if userID <= 0 {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	wl, err := u.wishlistRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ids, err := u.wishlistRepo.ListProductIDs(ctx, wl.ID)
	if err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]model.Product, 0, len(ids))
	for _, pid := range ids {
		p, err := u.productRepo.FindByID(ctx, pid)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items = append(items, p)
	}

	return WishlistResponse{Items: items}, nil
}

// AddToWishlist は商品を追加する。既に入っていれば何も変えず
// 「already in wishlist」を知らせる（成功扱い）。
func (u *WishlistUsecase) AddToWishlist(ctx context.Context, userID int64, productID int64) (WishlistMutationResponse, error) {
	if userID <= 0 {
		return WishlistMutationResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return WishlistMutationResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	//商品チェック
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return WishlistMutationResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return WishlistMutationResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	wl, err := u.wishlistRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return WishlistMutationResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	added, err := u.wishlistRepo.AddProduct(ctx, wl.ID, productID)
	if err != nil {
		return WishlistMutationResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	msg := "added to wishlist"
	if !added {
		msg = "already in wishlist"
	}

	return WishlistMutationResponse{
		ProductID: productID,
		Added:     added,
		Message:   msg,
	}, nil
}

// RemoveFromWishlist は商品を外す。入っていなければ何もしない。
func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	wl, err := u.wishlistRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.wishlistRepo.RemoveProduct(ctx, wl.ID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
