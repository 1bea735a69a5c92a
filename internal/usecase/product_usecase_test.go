package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_ListProducts(t *testing.T) {
	ctx := context.Background()
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("List", mock.Anything, "").Return([]model.Product{
		{ID: 101, Name: "ProductA", Price: 2999},
		{ID: 102, Name: "ProductB", Price: 7999},
	}, nil)

	out, err := uc.ListProducts(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
}

func TestProductUsecase_ListProducts_TrimsQuery(t *testing.T) {
	ctx := context.Background()
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("List", mock.Anything, "shirt").Return([]model.Product{}, nil)

	out, err := uc.ListProducts(ctx, "  shirt  ")
	assert.NoError(t, err)
	assert.Equal(t, "shirt", out.Query)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_QueryTooLong(t *testing.T) {
	ctx := context.Background()
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	_, err := uc.ListProducts(ctx, strings.Repeat("a", 101))
	assertErrStatus(t, err, http.StatusBadRequest)
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(ctx, 999)
	assertErrStatus(t, err, http.StatusNotFound)
}

func TestProductUsecase_GetProductDetail_InvalidID(t *testing.T) {
	ctx := context.Background()
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	_, err := uc.GetProductDetail(ctx, 0)
	assertErrStatus(t, err, http.StatusBadRequest)
}

func TestProductUsecase_GetProductDetail_Found(t *testing.T) {
	ctx := context.Background()
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, Name: "ProductA", Price: 2999}, nil)

	p, err := uc.GetProductDetail(ctx, 101)
	assert.NoError(t, err)
	assert.Equal(t, "ProductA", p.Name)
}
