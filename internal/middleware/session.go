package middleware

import (
	"net/http"
	"time"

	"github.com/RafaelReds/EcoMarket/internal/session"

	"github.com/labstack/echo/v4"
)

const CtxSessionKey = "session" // *session.Session

// Session はCookieからセッションを引き当て、無ければ新規発行してcontextに入れる。
func Session(store *session.Store, codec *session.CookieCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *session.Session

			//Cookieがあれば検証してセッションを引く
			if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				if sid, err := codec.Parse(cookie.Value); err == nil {
					if s, ok := store.Get(sid); ok {
						sess = s
					}
				}
			}

			//無効・期限切れ・未発行なら新しいセッション
			if sess == nil {
				sess = store.Create()

				value, err := codec.Issue(sess.ID, time.Now())
				if err != nil {
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error interno"})
				}
				c.SetCookie(&http.Cookie{
					Name:     session.CookieName,
					Value:    value,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(codec.TTL()),
				})
			}

			c.Set(CtxSessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom はcontextからセッションを取り出す。
func SessionFrom(c echo.Context) *session.Session {
	s, _ := c.Get(CtxSessionKey).(*session.Session)
	return s
}

// ExpireCookie はログアウト時にCookieを無効化する。
func ExpireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
