package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	"app/internal/domain/money"
	repo "app/internal/repository"
	"app/internal/usecase"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProdProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Public: List / Detail
// =====================

func TestProductUsecase_ListProducts_InvalidPage(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})
	assert.ErrorContains(t, err, "invalid page")
}

func TestProductUsecase_ListProducts_InvalidLimit(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assert.ErrorContains(t, err, "invalid limit")
}

func TestProductUsecase_ListProducts_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	in := usecase.ListProductsInput{Page: 1, Limit: 20, Q: "jaggery", Category: "sweeteners", Sort: "rating"}
	q := repo.ProductListQuery{Page: 1, Limit: 20, Q: "jaggery", Category: "sweeteners", Sort: "rating"}

	items := []model.Product{
		{ID: 1, Name: "Organic Jaggery", Price: money.FromRupees(899)},
	}
	pRepo.On("List", mock.Anything, q).Return(items, int64(1), nil)

	out, err := uc.ListProducts(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, 1, len(out.Items))

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	assert.ErrorContains(t, err, "not found")
}

func TestProductUsecase_GetProductDetail_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Ghee"}, nil)

	p, err := uc.GetProductDetail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	pRepo.AssertExpectations(t)
}

// =====================
// Admin: Product CRUD
// =====================

func validProductInput() usecase.AdminSaveProductInput {
	return usecase.AdminSaveProductInput{
		Name:     "Organic Jaggery",
		Category: "sweeteners",
		Price:    "₹899",
		InStock:  true,
	}
}

func TestProductUsecase_AdminCreateProduct_Validation(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	in := validProductInput()
	in.Name = " "
	_, err := uc.AdminCreateProduct(context.Background(), in)
	assert.ErrorContains(t, err, "name required")

	in = validProductInput()
	in.Price = "free"
	_, err = uc.AdminCreateProduct(context.Background(), in)
	assert.ErrorContains(t, err, "invalid price")

	in = validProductInput()
	in.Discount = 150
	_, err = uc.AdminCreateProduct(context.Background(), in)
	assert.ErrorContains(t, err, "invalid discount")

	in = validProductInput()
	in.Variants = []usecase.ProductVariantInput{
		{ID: "500g", Name: "500g", Price: "₹899", InStock: true},
		{ID: "500g", Name: "dup", Price: "₹999", InStock: true},
	}
	_, err = uc.AdminCreateProduct(context.Background(), in)
	assert.ErrorContains(t, err, "duplicate variant id")
}

func TestProductUsecase_AdminCreateProduct_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	in := validProductInput()
	in.OriginalPrice = "₹1,099"
	in.Variants = []usecase.ProductVariantInput{
		{ID: "500g", Name: "Jaggery 500g", Price: "₹499", InStock: true, MaxQuantity: 5},
	}

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Organic Jaggery" &&
			p.Price == money.FromRupees(899) &&
			p.OriginalPrice == money.FromRupees(1099) &&
			len(p.Variants) == 1 &&
			p.Variants[0].Price == money.FromRupees(499)
	})).Return(model.Product{ID: 123}, nil)

	id, err := uc.AdminCreateProduct(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(123), id)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminUpdateProduct_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.AdminUpdateProduct(context.Background(), 99, validProductInput())
	assert.ErrorContains(t, err, "not found")
}

func TestProductUsecase_AdminDeleteProduct(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("SoftDelete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, uc.AdminDeleteProduct(context.Background(), 1))

	err := uc.AdminDeleteProduct(context.Background(), 0)
	assert.ErrorContains(t, err, "invalid id")

	pRepo.AssertExpectations(t)
}
