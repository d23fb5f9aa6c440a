package middleware

import (
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ProducerGuard はセッションのユーザーが生産者かを確認します。
func ProducerGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if sess == nil {
				return c.JSON(http.StatusForbidden, errorResponse{Error: "Acceso restringido solo a productores."})
			}

			user, ok := sess.User()
			if !ok || user.Rol != model.RoleProductor {
				return c.JSON(http.StatusForbidden, errorResponse{Error: "Acceso restringido solo a productores."})
			}

			return next(c)
		}
	}
}

// ClientGuard はセッションのユーザーが購入者かを確認します。
// ルートごとに文言が違うのでメッセージを受け取る。
func ClientGuard(message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if sess == nil {
				return c.JSON(http.StatusForbidden, errorResponse{Error: message})
			}

			user, ok := sess.User()
			if !ok || user.Rol != model.RoleCliente {
				return c.JSON(http.StatusForbidden, errorResponse{Error: message})
			}

			return next(c)
		}
	}
}
