package handler

import (
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	"github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/session"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 登録・ログイン・ログアウト・email確認
type AuthHandler struct {
	uc    *usecase.AuthUsecase
	store *session.Store
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/registro", h.registerForm)
	e.POST("/registro", h.register)
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login)
	e.GET("/logout", h.logout)
	e.GET("/verificar-email", h.verifyEmail)
}

func (h *AuthHandler) registerForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"title": "Registro - EcoMarket"})
}

func (h *AuthHandler) loginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"title": "Login - EcoMarket"})
}

func (h *AuthHandler) register(c echo.Context) error {
	err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Nombre:   c.FormValue("nombre"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Rol:      model.Role(c.FormValue("rol")),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) login(c echo.Context) error {
	identity, err := h.uc.Login(c.Request().Context(), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		return writeError(c, err)
	}

	sess := sessionFrom(c)
	sess.SetUser(identity)

	// ロールごとの遷移先
	switch identity.Rol {
	case model.RoleCliente:
		return c.Redirect(http.StatusSeeOther, "/productos")
	case model.RoleProductor:
		return c.Redirect(http.StatusSeeOther, "/productor/productos")
	default:
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

func (h *AuthHandler) logout(c echo.Context) error {
	if sess := sessionFrom(c); sess != nil {
		h.store.Destroy(sess.ID)
	}
	middleware.ExpireCookie(c)

	return c.Redirect(http.StatusSeeOther, "/")
}

// 登録フォームのAJAX用。可否のbooleanだけ返す。
func (h *AuthHandler) verifyEmail(c echo.Context) error {
	disponible := h.uc.EmailAvailable(c.Request().Context(), c.QueryParam("email"))
	return c.JSON(http.StatusOK, map[string]bool{"disponible": disponible})
}
