package usecase

import (
	"context"
	"net/http"

	repo "shop/internal/repository"
	"shop/internal/session"
)

// CartUsecase はセッションカートの業務ロジックです。
// カートはセッションストアだけに持ち、DBには書かない。
type CartUsecase struct {
	sessions    session.Store
	productRepo repo.ProductRepository
}

func NewCartUsecase(sessions session.Store, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		sessions:    sessions,
		productRepo: productRepo,
	}
}

type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

// GetCart はカートの表示用ビューを作る。
// カタログから消えた商品は黙ってスキップし、合計にも入れない。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	cart, _ := u.sessions.Get(sessionID)
	return u.buildCartResponse(ctx, cart)
}

// AddToCart は数量を1増やす（無ければ1で入れる）。
// 商品が存在しなければ404で、カートは変更しない。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	//商品チェック（追加時点で存在すること）
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, _ := u.sessions.Get(sessionID)
	cart.Add(productID)
	u.sessions.Set(sessionID, cart)

	return u.buildCartResponse(ctx, cart)
}

// RemoveFromCart は明細ごと削除する。無ければ何もせず成功。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, _ := u.sessions.Get(sessionID)
	cart.Remove(productID)
	u.sessions.Set(sessionID, cart)

	return u.buildCartResponse(ctx, cart)
}

// ClearCart は無条件で空にする。
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) (CartResponse, error) {
	u.sessions.Set(sessionID, session.Cart{})
	return CartResponse{Items: []CartItemResponse{}, Total: 0}, nil
}

// カートを商品ID順に解決してビューを作る。
// 解決できない商品はスキップ（エラーにしない）。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cart session.Cart) (CartResponse, error) {
	ids := sortedProductIDs(cart)

	items := make([]CartItemResponse, 0, len(ids))
	var total int64 = 0

	for _, pid := range ids {
		qty := cart.Quantity(pid)
		if qty <= 0 {
			continue
		}

		p, err := u.productRepo.FindByID(ctx, pid)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items = append(items, CartItemResponse{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Subtotal:  p.Price * qty,
		})

		total += p.Price * qty
	}

	return CartResponse{Items: items, Total: total}, nil
}
