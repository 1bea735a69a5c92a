package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type WishlistRepoMock struct{ mock.Mock }

func (m *WishlistRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Wishlist, error) {
	args := m.Called(ctx, userID)
	wl, _ := args.Get(0).(model.Wishlist)
	return wl, args.Error(1)
}

func (m *WishlistRepoMock) ListProductIDs(ctx context.Context, wishlistID int64) ([]int64, error) {
	args := m.Called(ctx, wishlistID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *WishlistRepoMock) AddProduct(ctx context.Context, wishlistID int64, productID int64) (bool, error) {
	args := m.Called(ctx, wishlistID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *WishlistRepoMock) RemoveProduct(ctx context.Context, wishlistID int64, productID int64) error {
	args := m.Called(ctx, wishlistID, productID)
	return args.Error(0)
}

func newWishlistFixture(t *testing.T) (*usecase.WishlistUsecase, *WishlistRepoMock, *CartProductRepoMock) {
	t.Helper()
	wRepo := new(WishlistRepoMock)
	pRepo := new(CartProductRepoMock)
	return usecase.NewWishlistUsecase(wRepo, pRepo), wRepo, pRepo
}

func TestWishlistUsecase_GetWishlist_CreatesOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	uc, wRepo, _ := newWishlistFixture(t)

	//初回アクセスで空のリストが作られる
	wRepo.On("GetOrCreateByUserID", mock.Anything, int64(7)).Return(model.Wishlist{ID: 1, UserID: 7}, nil)
	wRepo.On("ListProductIDs", mock.Anything, int64(1)).Return([]int64{}, nil)

	out, err := uc.GetWishlist(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	wRepo.AssertExpectations(t)
}

func TestWishlistUsecase_GetWishlist_SkipsMissingProducts(t *testing.T) {
	ctx := context.Background()
	uc, wRepo, pRepo := newWishlistFixture(t)

	wRepo.On("GetOrCreateByUserID", mock.Anything, int64(7)).Return(model.Wishlist{ID: 1, UserID: 7}, nil)
	wRepo.On("ListProductIDs", mock.Anything, int64(1)).Return([]int64{101, 999}, nil)
	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, Name: "ProductA", Price: 2999}, nil)
	pRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetWishlist(ctx, 7)
	assert.NoError(t, err)

	//カタログから消えた商品は黙って除外する
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(101), out.Items[0].ID)
}

func TestWishlistUsecase_GetWishlist_Unauthorized(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newWishlistFixture(t)

	_, err := uc.GetWishlist(ctx, 0)
	assertErrStatus(t, err, http.StatusUnauthorized)
}

func TestWishlistUsecase_AddToWishlist_New(t *testing.T) {
	ctx := context.Background()
	uc, wRepo, pRepo := newWishlistFixture(t)

	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101}, nil)
	wRepo.On("GetOrCreateByUserID", mock.Anything, int64(7)).Return(model.Wishlist{ID: 1, UserID: 7}, nil)
	wRepo.On("AddProduct", mock.Anything, int64(1), int64(101)).Return(true, nil)

	out, err := uc.AddToWishlist(ctx, 7, 101)
	assert.NoError(t, err)

	assert.True(t, out.Added)
	assert.Equal(t, "added to wishlist", out.Message)
}

func TestWishlistUsecase_AddToWishlist_AlreadyPresent(t *testing.T) {
	ctx := context.Background()
	uc, wRepo, pRepo := newWishlistFixture(t)

	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101}, nil)
	wRepo.On("GetOrCreateByUserID", mock.Anything, int64(7)).Return(model.Wishlist{ID: 1, UserID: 7}, nil)
	wRepo.On("AddProduct", mock.Anything, int64(1), int64(101)).Return(false, nil)

	//重複追加はエラーではなく「already in wishlist」の通知
	out, err := uc.AddToWishlist(ctx, 7, 101)
	assert.NoError(t, err)

	assert.False(t, out.Added)
	assert.Equal(t, "already in wishlist", out.Message)
}

func TestWishlistUsecase_AddToWishlist_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	uc, wRepo, pRepo := newWishlistFixture(t)

	pRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToWishlist(ctx, 7, 999)
	assertErrStatus(t, err, http.StatusNotFound)
	wRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestWishlistUsecase_RemoveFromWishlist_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	uc, wRepo, _ := newWishlistFixture(t)

	wRepo.On("GetOrCreateByUserID", mock.Anything, int64(7)).Return(model.Wishlist{ID: 1, UserID: 7}, nil)
	wRepo.On("RemoveProduct", mock.Anything, int64(1), int64(999)).Return(nil)

	//入っていない商品の削除も成功扱い
	err := uc.RemoveFromWishlist(ctx, 7, 999)
	assert.NoError(t, err)
}
