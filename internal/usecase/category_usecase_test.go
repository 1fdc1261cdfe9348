package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CatCategoryRepoMock struct{ mock.Mock }

func (m *CatCategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CatCategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CatCategoryRepoMock) FindBySlug(ctx context.Context, slug string) (model.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CatCategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CatCategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CatCategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Public
// =====================

func TestCategoryUsecase_ListCategories(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("List", mock.Anything).Return([]model.Category{{ID: 1, Name: "Sweeteners", Slug: "sweeteners"}}, nil)

	out, err := uc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))

	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_GetCategoryBySlug(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindBySlug", mock.Anything, "sweeteners").Return(model.Category{ID: 1, Slug: "sweeteners"}, nil)

	out, err := uc.GetCategoryBySlug(context.Background(), "sweeteners")
	assert.NoError(t, err)
	assert.Equal(t, "sweeteners", out.Slug)
}

func TestCategoryUsecase_GetCategoryBySlug_NotFound(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindBySlug", mock.Anything, "nope").Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.GetCategoryBySlug(context.Background(), "nope")
	assert.ErrorContains(t, err, "not found")
}

// =====================
// Admin CRUD
// =====================

func TestCategoryUsecase_AdminCreateCategory_Validation(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CatCategoryRepoMock))

	_, err := uc.AdminCreateCategory(context.Background(), usecase.AdminSaveCategoryInput{Name: " ", Slug: "x"})
	assert.ErrorContains(t, err, "name required")

	// slugは小文字英数とハイフンのみ
	for _, slug := range []string{"", "Has Space", "UPPER", "-lead", "trail-", "é"} {
		_, err := uc.AdminCreateCategory(context.Background(), usecase.AdminSaveCategoryInput{Name: "Oils", Slug: slug})
		assert.ErrorContains(t, err, "invalid slug", slug)
	}
}

func TestCategoryUsecase_AdminCreateCategory_Success(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "Cold Pressed Oils" && c.Slug == "cold-pressed-oils"
	})).Return(model.Category{ID: 7}, nil)

	id, err := uc.AdminCreateCategory(context.Background(), usecase.AdminSaveCategoryInput{
		Name: "Cold Pressed Oils",
		Slug: "cold-pressed-oils",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_AdminUpdateCategory_NotFound(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.AdminUpdateCategory(context.Background(), 99, usecase.AdminSaveCategoryInput{Name: "Oils", Slug: "oils"})
	assert.ErrorContains(t, err, "not found")
}

func TestCategoryUsecase_AdminDeleteCategory(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, uc.AdminDeleteCategory(context.Background(), 1))
	cRepo.AssertExpectations(t)
}
