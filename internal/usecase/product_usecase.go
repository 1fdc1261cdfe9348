package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/domain/money"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
	Sort     string
}

type ListProductsOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ListProducts は公開商品一覧。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ListProductsOutput, error) {
	if in.Page < 1 {
		return ListProductsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ListProductsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        in.Q,
		Category: in.Category,
		Sort:     in.Sort,
	})
	if err != nil {
		return ListProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ListProductsOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

// GetProductDetail は商品詳細（バリアント込み）。
func (u *ProductUsecase) GetProductDetail(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// バリアント入力。価格は整形済み文字列で受けてここで一度だけパースする。
type ProductVariantInput struct {
	ID            string
	Name          string
	Price         string
	OriginalPrice string
	Weight        string
	InStock       bool
	Discount      int
	SKU           string
	MaxQuantity   int
}

type AdminSaveProductInput struct {
	Name          string
	Category      string
	Description   string
	Price         string
	OriginalPrice string
	Image         string
	Weight        string
	Badge         string
	Rating        float64
	Reviews       int
	InStock       bool
	StockStatus   string
	Discount      int
	Features      []string
	Variants      []ProductVariantInput
}

// 入力を検証してmodelへ変換する。
func (u *ProductUsecase) buildProduct(in AdminSaveProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Discount < 0 || in.Discount > 100 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid discount")
	}

	price, err := money.Parse(in.Price)
	if err != nil || price <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	var originalPrice money.Money
	if strings.TrimSpace(in.OriginalPrice) != "" {
		originalPrice, err = money.Parse(in.OriginalPrice)
		if err != nil {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid original_price")
		}
	}

	variants := make([]model.ProductVariant, 0, len(in.Variants))
	seen := map[string]bool{}
	for _, v := range in.Variants {
		vid := strings.TrimSpace(v.ID)
		if vid == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "variant id required")
		}
		if seen[vid] {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "duplicate variant id")
		}
		seen[vid] = true

		if v.Discount < 0 || v.Discount > 100 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid variant discount")
		}

		vPrice, err := money.Parse(v.Price)
		if err != nil || vPrice <= 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid variant price")
		}
		var vOriginal money.Money
		if strings.TrimSpace(v.OriginalPrice) != "" {
			vOriginal, err = money.Parse(v.OriginalPrice)
			if err != nil {
				return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid variant original_price")
			}
		}

		variants = append(variants, model.ProductVariant{
			ID:            vid,
			Name:          strings.TrimSpace(v.Name),
			Price:         vPrice,
			OriginalPrice: vOriginal,
			Weight:        v.Weight,
			InStock:       v.InStock,
			Discount:      v.Discount,
			SKU:           v.SKU,
			MaxQuantity:   v.MaxQuantity,
		})
	}

	return model.Product{
		Name:          name,
		Category:      strings.TrimSpace(in.Category),
		Description:   in.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Image:         in.Image,
		Weight:        in.Weight,
		Badge:         in.Badge,
		Rating:        in.Rating,
		Reviews:       in.Reviews,
		InStock:       in.InStock,
		StockStatus:   in.StockStatus,
		Discount:      in.Discount,
		Features:      in.Features,
		Variants:      variants,
	}, nil
}

// AdminCreateProduct は商品を作成してIDを返す。
func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminSaveProductInput) (int64, error) {
	p, err := u.buildProduct(in)
	if err != nil {
		return 0, err
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created.ID, nil
}

// AdminUpdateProduct は商品を全量更新する（バリアントは置き換え）。
func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, id int64, in AdminSaveProductInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.buildProduct(in)
	if err != nil {
		return err
	}
	p.ID = id

	err = u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDeleteProduct はソフトデリート。
func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
