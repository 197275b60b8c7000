package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/config"
	"github.com/ilnabucco/restaurant-reservation/internal/database"
	"github.com/ilnabucco/restaurant-reservation/internal/handler"
	"github.com/ilnabucco/restaurant-reservation/internal/metrics"
	"github.com/ilnabucco/restaurant-reservation/internal/middleware"
	"github.com/ilnabucco/restaurant-reservation/internal/queue"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
	"github.com/ilnabucco/restaurant-reservation/internal/router"
	"github.com/ilnabucco/restaurant-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	// Redis is optional: without it the cache and rate limit middlewares
	// pass requests straight through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable, cache and rate limit disabled")
	}

	// Repositories.
	reservations := repository.NewReservationRepo(db)
	bans := repository.NewBannedCustomerRepo(db)
	requests := repository.NewContactRequestRepo(db)
	admins := repository.NewAdminRepo(db)
	menu := repository.NewMenuRepo(db)
	wines := repository.NewWineRepo(db)
	specials := repository.NewSpecialRepo(db)

	// Services.
	guard := service.NewDenylistGuard(bans)
	reservationSvc := service.NewReservationService(reservations, guard)
	contactSvc := service.NewContactService(requests, guard)

	// Broker side: best-effort publisher plus the log-writing consumer.
	events := queue.NewPublisher(cfg.AMQPURL, logger)
	go queue.StartStatusConsumer(cfg.AMQPURL, logger)

	// Handlers.
	reservationH := handler.NewReservationHandler(reservationSvc, events)
	adminH := handler.NewAdminHandler(cfg, admins)
	requestH := handler.NewRequestHandler(contactSvc, requests, bans)
	menuH := handler.NewMenuHandler(menu)
	wineH := handler.NewWineHandler(wines)
	specialH := handler.NewSpecialHandler(specials)
	dashboardH := handler.NewDashboardHandler(reservationSvc, reservations, requests, menu)

	collector := metrics.NewCollector()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))
	e.Use(collector.Middleware())

	router.RegisterOps(e, collector)
	router.RegisterPublic(e, router.PublicHandlers{
		Menu:     menuH,
		Wines:    wineH,
		Specials: specialH,
		Requests: requestH,
		Admins:   adminH,
	},
		middleware.ResponseCache(rdb, cfg.CacheTTL),
		middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow),
	)
	router.RegisterAdmin(e, router.AdminHandlers{
		Reservations: reservationH,
		Requests:     requestH,
		Menu:         menuH,
		Wines:        wineH,
		Specials:     specialH,
		Admins:       adminH,
		Dashboard:    dashboardH,
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
