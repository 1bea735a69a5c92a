package usecase

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/session"
)

// CheckoutUsecase はセッションカートを注文に変換する。
// セッション状態が永続状態に渡る唯一の場所。
type CheckoutUsecase struct {
	tx          repo.TransactionManager
	sessions    session.Store
	productRepo repo.ProductRepository
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	sessions session.Store,
	productRepo repo.ProductRepository,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:          tx,
		sessions:    sessions,
		productRepo: productRepo,
	}
}

type PlaceOrderInput struct {
	Name    string
	Email   string
	Address string
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	UserID     *int64            `json:"user_id,omitempty"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Address    string            `json:"address"`
	TotalPrice int64             `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []OrderItemOutput `json:"items"`
}

type CheckoutResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

// GetCheckout はチェックアウト画面用にカートを解決して返す。
// カートが空（全部スキップされた場合も含む）なら400で弾く。
func (u *CheckoutUsecase) GetCheckout(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	cart, _ := u.sessions.Get(sessionID)
	if cart.IsEmpty() {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	items := make([]CartItemResponse, 0, len(cart))
	var total int64 = 0

	for _, pid := range sortedProductIDs(cart) {
		qty := cart.Quantity(pid)
		if qty <= 0 {
			continue
		}

		p, err := u.productRepo.FindByID(ctx, pid)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
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

	if len(items) == 0 {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	return CheckoutResponse{Items: items, Total: total}, nil
}

// PlaceOrder は注文を確定する。
// userID はゲスト注文のとき nil。
// 連絡先3項目は「空でないこと」だけを見る（形式チェックはしない）。
// 注文とスナップショットは1トランザクションで書き、
// コミットが確認できてからセッションカートを空にする。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, sessionID string, userID *int64, in PlaceOrderInput) (OrderOutput, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	address := strings.TrimSpace(in.Address)

	if name == "" || email == "" || address == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "name, email and address are required")
	}

	cart, _ := u.sessions.Get(sessionID)
	if cart.IsEmpty() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カートをカタログに対して解決し直す（消えた商品はスキップ）
		orderItems := make([]model.OrderItem, 0, len(cart))
		var total int64 = 0

		for _, pid := range sortedProductIDs(cart) {
			qty := cart.Quantity(pid)
			if qty <= 0 {
				continue
			}

			p, err := r.Products().FindByID(ctx, pid)
			if err == repo.ErrNotFound {
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//スナップショット（後の価格変更は注文に影響しない）
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           p.ID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   p.Price,
				Quantity:            qty,
			})

			total += p.Price * qty
		}

		//全部スキップされたら空カートと同じ扱い
		if len(orderItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:     userID,
			Name:       name,
			Email:      email,
			Address:    address,
			TotalPrice: total,
			CreatedAt:  now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(model.Order{
			ID:         orderID,
			UserID:     userID,
			Name:       name,
			Email:      email,
			Address:    address,
			TotalPrice: total,
			CreatedAt:  now,
		}, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	//注文がコミットされた後にだけカートを空にする。
	//ここで落ちても「注文あり・カート残り」になるだけで、逆は起きない。
	u.sessions.Set(sessionID, session.Cart{})

	return out, nil
}

func sortedProductIDs(cart session.Cart) []int64 {
	ids := make([]int64, 0, len(cart))
	for pid := range cart {
		ids = append(ids, pid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:         o.ID,
		UserID:     o.UserID,
		Name:       o.Name,
		Email:      o.Email,
		Address:    o.Address,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		Items:      outItems,
	}
}
