package server

import "github.com/labstack/echo/v4"

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Catalog.RegisterRoutes(e)
	h.Producer.RegisterRoutes(e)
	h.Fulfillment.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.History.RegisterRoutes(e)
}
