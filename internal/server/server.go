package server

import (
	"github.com/RafaelReds/EcoMarket/internal/handler"
	appmw "github.com/RafaelReds/EcoMarket/internal/middleware"
	"github.com/RafaelReds/EcoMarket/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Catalog     *handler.CatalogHandler
	Producer    *handler.ProducerHandler
	Fulfillment *handler.FulfillmentHandler
	Cart        *handler.CartHandler
	History     *handler.HistoryHandler
}

// New はechoを組み立てる。セッションは全ルート共通（未ログインでもカートを持つ）。
func New(store *session.Store, codec *session.CookieCodec, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(appmw.Session(store, codec))

	RegisterRoutes(e, h)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
