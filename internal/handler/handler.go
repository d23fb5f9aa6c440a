package handler

import (
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/session"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error interno"})
}

func sessionFrom(c echo.Context) *session.Session {
	return middleware.SessionFrom(c)
}

// ガード通過後に呼ぶ前提（ユーザーは必ずいる）
func currentUser(c echo.Context) session.Identity {
	sess := sessionFrom(c)
	if sess == nil {
		return session.Identity{}
	}
	user, _ := sess.User()
	return user
}
