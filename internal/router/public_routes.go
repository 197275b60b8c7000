package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/handler"
)

// PublicHandlers bundles the handlers reachable without a token.
type PublicHandlers struct {
	Menu     *handler.MenuHandler
	Wines    *handler.WineHandler
	Specials *handler.SpecialHandler
	Requests *handler.RequestHandler
	Admins   *handler.AdminHandler
}

// RegisterPublic registers the unauthenticated surface: the read-only
// catalog, the contact form and the admin login. The caller supplies
// middleware for the two traffic concerns that differ between reads
// and writes: cacheMW caches catalog GETs, limitMW rate limits the
// write endpoints so the public forms cannot be hammered.
func RegisterPublic(e *echo.Echo, h PublicHandlers, cacheMW, limitMW echo.MiddlewareFunc) {
	e.GET("/api/menu", h.Menu.Public, cacheMW)
	e.GET("/api/wines", h.Wines.Public, cacheMW)
	e.GET("/api/specials", h.Specials.Public, cacheMW)

	e.POST("/api/requests", h.Requests.Create, limitMW)
	e.POST("/api/admins/login", h.Admins.Login, limitMW)
}
