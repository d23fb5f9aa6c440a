package handler

import (
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /productos の公開側
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.GET("/productos", h.list)
}

func (h *CatalogHandler) index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"title": "EcoMarket - Bienvenido"})
}

func (h *CatalogHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("categoria"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":                 "Productos - EcoMarket",
		"productos":             out.Productos,
		"categorias":            out.Categorias,
		"categoriaSeleccionada": out.CategoriaSeleccionada,
	})
}
