package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// ListCategories は全カテゴリ。
func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

// GetCategoryByID はID指定の取得（管理画面の編集用）。
func (u *CategoryUsecase) GetCategoryByID(ctx context.Context, id int64) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// GetCategoryBySlug はストア側のカテゴリページ用。
func (u *CategoryUsecase) GetCategoryBySlug(ctx context.Context, slug string) (model.Category, error) {
	c, err := u.categoryRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type AdminSaveCategoryInput struct {
	Name         string
	Slug         string
	Description  string
	Image        string
	PriceRange   string
	ProductCount int
	Highlights   []string
}

func (u *CategoryUsecase) buildCategory(in AdminSaveCategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	slug := strings.TrimSpace(in.Slug)
	if !slugPattern.MatchString(slug) {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	return model.Category{
		Name:         name,
		Slug:         slug,
		Description:  in.Description,
		Image:        in.Image,
		PriceRange:   in.PriceRange,
		ProductCount: in.ProductCount,
		Highlights:   in.Highlights,
	}, nil
}

// AdminCreateCategory はカテゴリを作成してIDを返す。
func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, in AdminSaveCategoryInput) (int64, error) {
	c, err := u.buildCategory(in)
	if err != nil {
		return 0, err
	}

	created, err := u.categoryRepo.Create(ctx, c)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created.ID, nil
}

// AdminUpdateCategory は全量更新。
func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, id int64, in AdminSaveCategoryInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.buildCategory(in)
	if err != nil {
		return err
	}
	c.ID = id

	err = u.categoryRepo.Update(ctx, c)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDeleteCategory は物理削除。
func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
