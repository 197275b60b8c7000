package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/handler"
	"github.com/ilnabucco/restaurant-reservation/internal/middleware"
	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// AdminHandlers bundles the handlers behind the JWT gate.
type AdminHandlers struct {
	Reservations *handler.ReservationHandler
	Requests     *handler.RequestHandler
	Menu         *handler.MenuHandler
	Wines        *handler.WineHandler
	Specials     *handler.SpecialHandler
	Admins       *handler.AdminHandler
	Dashboard    *handler.DashboardHandler
}

// RegisterAdmin registers the authenticated surface under /api. Every
// route requires a valid bearer token with the admin or superadmin
// role; account management additionally requires superadmin.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleSuperadmin),
	)

	// ---- Reservations (the core lifecycle) ----
	g.GET("/reservations", h.Reservations.List)
	g.GET("/reservations/today", h.Reservations.Today)
	g.GET("/reservations/:id", h.Reservations.Get)
	g.POST("/reservations", h.Reservations.Create)
	g.PUT("/reservations/:id", h.Reservations.Update)
	g.PATCH("/reservations/:id/status", h.Reservations.SetStatus)
	g.DELETE("/reservations/:id", h.Reservations.Delete)

	// ---- Contact requests + ban list ----
	g.GET("/requests", h.Requests.List)
	g.GET("/requests/banned/list", h.Requests.ListBanned)
	g.POST("/requests/banned", h.Requests.CreateBan)
	g.DELETE("/requests/banned/:id", h.Requests.DeleteBan)
	g.GET("/requests/:id", h.Requests.Get)
	g.DELETE("/requests/:id", h.Requests.Delete)

	// ---- Menu catalog ----
	g.GET("/menu/categories", h.Menu.ListCategories)
	g.POST("/menu/categories", h.Menu.CreateCategory)
	g.PUT("/menu/categories/:id", h.Menu.UpdateCategory)
	g.DELETE("/menu/categories/:id", h.Menu.DeleteCategory)
	g.GET("/menu/items", h.Menu.ListItems)
	g.POST("/menu/items", h.Menu.CreateItem)
	g.PUT("/menu/items/:id", h.Menu.UpdateItem)
	g.DELETE("/menu/items/:id", h.Menu.DeleteItem)

	// ---- Wine list ----
	g.GET("/wines/categories", h.Wines.ListCategories)
	g.POST("/wines/categories", h.Wines.CreateCategory)
	g.GET("/wines/items", h.Wines.ListItems)
	g.POST("/wines/items", h.Wines.CreateItem)
	g.PUT("/wines/items/:id", h.Wines.UpdateItem)
	g.DELETE("/wines/items/:id", h.Wines.DeleteItem)

	// ---- Seasonal specials ----
	g.GET("/specials/all", h.Specials.ListAdmin)
	g.POST("/specials/combos", h.Specials.CreateCombo)
	g.PUT("/specials/combos/:id", h.Specials.UpdateCombo)
	g.DELETE("/specials/combos/:id", h.Specials.DeleteCombo)
	g.POST("/specials/mains", h.Specials.CreateMain)
	g.PUT("/specials/mains/:id", h.Specials.UpdateMain)
	g.DELETE("/specials/mains/:id", h.Specials.DeleteMain)
	g.POST("/specials/customs", h.Specials.CreateCustom)
	g.PUT("/specials/customs/:id", h.Specials.UpdateCustom)
	g.DELETE("/specials/customs/:id", h.Specials.DeleteCustom)

	// ---- Dashboard ----
	g.GET("/dashboard", h.Dashboard.Overview)
	g.GET("/dashboard/weekly-reservations", h.Dashboard.Weekly)

	// ---- Admin accounts ----
	g.GET("/admins/me", h.Admins.Me)

	super := e.Group(
		"/api/admins",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSuperadmin),
	)
	super.GET("", h.Admins.List)
	super.GET("/:id", h.Admins.Get)
	super.POST("", h.Admins.Create)
	super.PUT("/:id", h.Admins.Update)
	super.PUT("/:id/password", h.Admins.UpdatePassword)
	super.DELETE("/:id", h.Admins.Delete)
}
