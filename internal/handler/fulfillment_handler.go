package handler

import (
	"net/http"
	"strconv"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	"github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /productor/pedidos：受注一覧と明細の配送状態更新
type FulfillmentHandler struct {
	uc *usecase.FulfillmentUsecase
}

// DI
func NewFulfillmentHandler(uc *usecase.FulfillmentUsecase) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc}
}

func (h *FulfillmentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/productor/pedidos")
	g.Use(middleware.ProducerGuard())

	g.GET("", h.listReceived)
	g.POST("/estado-item/:pedidoId/:productoId", h.updateLineStatus)
}

func (h *FulfillmentHandler) listReceived(c echo.Context) error {
	pedidos, err := h.uc.ListReceived(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":   "Pedidos Recibidos",
		"pedidos": pedidos,
	})
}

func (h *FulfillmentHandler) updateLineStatus(c echo.Context) error {
	pedidoID, err := strconv.ParseInt(c.Param("pedidoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pedido no encontrado."})
	}

	productoID, err := strconv.ParseInt(c.Param("productoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pedido no encontrado."})
	}

	estado := model.Status(c.FormValue("estado_envio"))

	if err := h.uc.UpdateLineStatus(c.Request().Context(), currentUser(c), pedidoID, productoID, estado); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/productor/pedidos")
}
