package app

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/Leganyst/room-booking/internal/cache"
	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/controllers"
	"github.com/Leganyst/room-booking/internal/middleware"
	"github.com/Leganyst/room-booking/internal/repository"
	"github.com/Leganyst/room-booking/internal/routes"
	"github.com/Leganyst/room-booking/internal/service"
)

// App holds the wired backend.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client // nil when REDIS_ADDR is unset

	Bookings *service.BookingService
	Rooms    *service.RoomService
}

// New builds repositories and services over an open, migrated database.
func New(cfg *config.Config, gdb *gorm.DB, redisClient *redis.Client, clock calendar.Clock) *App {
	roomRepo := repository.NewGormRoomRepository(gdb)
	bookingRepo := repository.NewGormBookingRepository(gdb)
	eventRepo := repository.NewGormEventRepository(gdb)

	var catalogCache cache.CatalogCache
	if redisClient != nil {
		catalogCache = cache.NewRedisCatalogCache(redisClient)
	} else {
		catalogCache = cache.NewMemoryCatalogCache(clock)
	}

	return &App{
		Config:   cfg,
		DB:       gdb,
		Redis:    redisClient,
		Bookings: service.NewBookingService(gdb, bookingRepo, roomRepo, eventRepo),
		Rooms: service.NewRoomService(
			roomRepo,
			bookingRepo,
			calendar.New(clock, nil),
			catalogCache,
			cfg.Server.CatalogCacheTTL,
		),
	}
}

// Router returns the HTTP handler with every route and middleware mounted.
func (a *App) Router() http.Handler {
	bookingController := controllers.NewBookingController(a.Bookings)
	roomController := controllers.NewRoomController(a.Rooms)
	healthController := controllers.NewHealthController(a.DB)

	router := mux.NewRouter()
	router.Use(middleware.Recover, middleware.RequestLogger)

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	limiter := middleware.NewRateLimiter(a.Config.Server.RateLimitRPS, a.Config.Server.RateLimitBurst)
	api := router.NewRoute().Subrouter()
	api.Use(limiter.Limit)

	api.HandleFunc(routes.Bookings, bookingController.ListHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.Bookings, bookingController.CreateHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.BookingByID, bookingController.GetHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.BookingByID, bookingController.UpdateHandler).Methods(http.MethodPut)
	api.HandleFunc(routes.BookingByID, bookingController.DeleteHandler).Methods(http.MethodDelete)
	api.HandleFunc(routes.BookingHistory, bookingController.HistoryHandler).Methods(http.MethodGet)

	api.HandleFunc(routes.Floors, roomController.FloorsHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.FloorByNumber, roomController.FloorHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.RoomByID, roomController.RoomHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.RoomAvailability, roomController.AvailabilityHandler).Methods(http.MethodGet)

	co := cors.New(cors.Options{
		AllowedOrigins: a.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return co.Handler(router)
}

// Close releases the database pool and the Redis client.
func (a *App) Close(context.Context) error {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
