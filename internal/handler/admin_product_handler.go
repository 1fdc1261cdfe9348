package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"
)

// SuccessResponse は { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ProductVariantRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	OriginalPrice string `json:"original_price"`
	Weight        string `json:"weight"`
	InStock       bool   `json:"in_stock"`
	Discount      int    `json:"discount"`
	SKU           string `json:"sku"`
	MaxQuantity   int    `json:"max_quantity"`
}

// 価格は "₹899" 形式の文字列で受ける。
type ProductSaveRequest struct {
	Name          string                  `json:"name"`
	Category      string                  `json:"category"`
	Description   string                  `json:"description"`
	Price         string                  `json:"price"`
	OriginalPrice string                  `json:"original_price"`
	Image         string                  `json:"image"`
	Weight        string                  `json:"weight"`
	Badge         string                  `json:"badge"`
	Rating        float64                 `json:"rating"`
	Reviews       int                     `json:"reviews"`
	InStock       bool                    `json:"in_stock"`
	StockStatus   string                  `json:"stock_status"`
	Discount      int                     `json:"discount"`
	Features      []string                `json:"features"`
	Variants      []ProductVariantRequest `json:"variants"`
}

// /admin/products のHTTP
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// adminを登録
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
}

func toSaveInput(req ProductSaveRequest) usecase.AdminSaveProductInput {
	variants := make([]usecase.ProductVariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, usecase.ProductVariantInput{
			ID:            v.ID,
			Name:          v.Name,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
			Weight:        v.Weight,
			InStock:       v.InStock,
			Discount:      v.Discount,
			SKU:           v.SKU,
			MaxQuantity:   v.MaxQuantity,
		})
	}

	return usecase.AdminSaveProductInput{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Weight:        req.Weight,
		Badge:         req.Badge,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		InStock:       req.InStock,
		StockStatus:   req.StockStatus,
		Discount:      req.Discount,
		Features:      req.Features,
		Variants:      variants,
	}
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AdminCreateProduct(c.Request().Context(), toSaveInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CreatedResponse{ID: id, Message: "created"})
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AdminUpdateProduct(c.Request().Context(), id, toSaveInput(req)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
