package handler

import (
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /historial：購入履歴（読み取り専用）
type HistoryHandler struct {
	uc *usecase.HistoryUsecase
}

// DI
func NewHistoryHandler(uc *usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

func (h *HistoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/historial", h.list,
		middleware.ClientGuard("Debes iniciar sesión como cliente para ver tu historial."))
}

func (h *HistoryHandler) list(c echo.Context) error {
	pedidos, err := h.uc.List(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":   "Historial de Compras",
		"pedidos": pedidos,
	})
}
