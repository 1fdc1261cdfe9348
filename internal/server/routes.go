package server

import (
	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/handler"
)

// RegisterRoutes は全ハンドラのルートをまとめて登録する。
func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	cartH *handler.CartHandler,
	productH *handler.ProductHandler,
	categoryH *handler.CategoryHandler,
	authH *handler.AuthHandler,
	adminProductH *handler.AdminProductHandler,
	adminCategoryH *handler.AdminCategoryHandler,
) {
	cartH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	categoryH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	adminProductH.RegisterRoutes(e, cfg)
	adminCategoryH.RegisterRoutes(e, cfg)
}
