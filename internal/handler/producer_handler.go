package handler

import (
	"net/http"
	"strconv"

	"github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /productor 配下の商品管理
type ProducerHandler struct {
	uc *usecase.ProducerProductUsecase
}

// DI
func NewProducerHandler(uc *usecase.ProducerProductUsecase) *ProducerHandler {
	return &ProducerHandler{uc: uc}
}

func (h *ProducerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/productor")
	g.Use(middleware.ProducerGuard())

	g.GET("/productos", h.listOwn)
	g.GET("/nuevo", h.newForm)
	g.POST("/nuevo", h.create)
	g.GET("/editar/:id", h.editForm)
	g.POST("/editar/:id", h.update)
	g.POST("/eliminar/:id", h.delete)
}

func (h *ProducerHandler) listOwn(c echo.Context) error {
	productos, err := h.uc.ListOwn(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":     "Mis Productos",
		"productos": productos,
	})
}

func (h *ProducerHandler) newForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"title": "Nuevo Producto"})
}

// フォーム値からProductInputを作る。precio/stockの解釈失敗はValidationエラー。
func bindProductInput(c echo.Context) (usecase.ProductInput, error) {
	precio, err := decimal.NewFromString(c.FormValue("precio"))
	if err != nil {
		return usecase.ProductInput{}, usecase.NewHTTPError(http.StatusBadRequest, "Precio inválido")
	}

	stock, err := strconv.ParseInt(c.FormValue("stock"), 10, 64)
	if err != nil {
		return usecase.ProductInput{}, usecase.NewHTTPError(http.StatusBadRequest, "Stock inválido")
	}

	return usecase.ProductInput{
		Nombre:      c.FormValue("nombre"),
		Descripcion: c.FormValue("descripcion"),
		Precio:      precio,
		Stock:       stock,
		ImagenURL:   c.FormValue("imagen_url"),
		Categoria:   c.FormValue("categoria"),
	}, nil
}

func (h *ProducerHandler) create(c echo.Context) error {
	in, err := bindProductInput(c)
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.uc.Create(c.Request().Context(), currentUser(c), in); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/productor/productos")
}

func (h *ProducerHandler) editForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Producto no encontrado."})
	}

	producto, err := h.uc.GetOwnForEdit(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":    "Editar Producto",
		"producto": producto,
	})
}

func (h *ProducerHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Producto no encontrado."})
	}

	in, err := bindProductInput(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Update(c.Request().Context(), currentUser(c), id, in); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/productor/productos")
}

func (h *ProducerHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Producto no encontrado."})
	}

	if err := h.uc.Delete(c.Request().Context(), currentUser(c), id); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/productor/productos")
}
