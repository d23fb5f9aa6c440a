package handler

import (
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /carrito のHTTP
type CartHandler struct {
	cartUC     *usecase.CartUsecase
	checkoutUC *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(cartUC *usecase.CartUsecase, checkoutUC *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, checkoutUC: checkoutUC}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/carrito", h.view)
	e.POST("/carrito/agregar", h.add)
	e.POST("/carrito/eliminar", h.remove)
	e.POST("/carrito/confirmar", h.confirm,
		middleware.ClientGuard("Debes iniciar sesión como cliente para confirmar una compra."))
}

func (h *CartHandler) view(c echo.Context) error {
	view := h.cartUC.View(c.Request().Context(), sessionFrom(c))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":   "Tu Carrito",
		"carrito": view.Items,
		"total":   view.Total,
		"mensaje": view.Mensaje,
	})
}

func (h *CartHandler) add(c echo.Context) error {
	ok := h.cartUC.Add(sessionFrom(c), c.FormValue("id"), c.FormValue("cantidad"))
	if !ok {
		// 入力不正は商品一覧へ戻すだけ
		return c.Redirect(http.StatusSeeOther, "/productos")
	}
	return c.Redirect(http.StatusSeeOther, "/carrito")
}

func (h *CartHandler) remove(c echo.Context) error {
	h.cartUC.Remove(sessionFrom(c), c.FormValue("id_producto"))
	return c.Redirect(http.StatusSeeOther, "/carrito")
}

func (h *CartHandler) confirm(c echo.Context) error {
	sess := sessionFrom(c)
	entries := sess.CartEntries()

	if len(entries) == 0 {
		return c.Redirect(http.StatusSeeOther, "/carrito")
	}

	pedidoID, err := h.checkoutUC.Confirm(c.Request().Context(), currentUser(c), entries)
	if err != nil {
		// 失敗時は元のカートにメッセージを付けて再表示（旧実装踏襲）
		if ise, ok := usecase.AsInsufficientStock(err); ok {
			view := h.cartUC.View(c.Request().Context(), sess)
			return c.JSON(http.StatusOK, map[string]interface{}{
				"title":   "Tu Carrito",
				"carrito": view.Items,
				"total":   view.Total,
				"mensaje": ise.Error(),
			})
		}
		return writeError(c, err)
	}

	sess.ClearCart()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":    "Compra Confirmada",
		"pedidoId": pedidoID,
	})
}
