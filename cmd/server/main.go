package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Leganyst/room-booking/internal/app"
	"github.com/Leganyst/room-booking/internal/cache"
	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/db"
	"github.com/Leganyst/room-booking/internal/model"
	"github.com/Leganyst/room-booking/internal/utils"
)

const (
	shutdownTimeout = 10 * time.Second
	healthInterval  = 15 * time.Second
)

func main() {
	// 1. .env is optional; real env vars win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Logger.WithError(err).Warn("could not read .env")
	}
	utils.InitLogger(config.AppName)

	// 2. Config.
	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatalf("load config: %v", err)
	}

	// 3. Database and migrations.
	gormDB, err := db.NewGormDB(cfg.DB)
	if err != nil {
		utils.Logger.Fatalf("init db: %v", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		utils.Logger.Fatalf("auto migrate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Optional Redis for the room catalog.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			utils.Logger.Fatalf("connect redis: %v", err)
		}
		utils.Logger.Infof("catalog cache: redis at %s", cfg.Redis.Addr)
	} else {
		utils.Logger.Info("catalog cache: in-memory")
	}

	// 5. Services and seed data.
	a := app.New(cfg, gormDB, redisClient, calendar.RealClock{})
	if err := a.SeedRooms(ctx); err != nil {
		utils.Logger.Fatalf("seed rooms: %v", err)
	}

	// 6. HTTP API.
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		utils.Logger.Infof("HTTP API listening on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.Fatalf("http serve: %v", err)
		}
	}()

	// 7. gRPC health and reflection.
	grpcServer, healthServer := a.GRPCServer()
	if cfg.Server.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			utils.Logger.Fatalf("listen %s: %v", cfg.Server.GRPCAddr, err)
		}
		go func() {
			utils.Logger.Infof("gRPC health listening on %s", cfg.Server.GRPCAddr)
			if err := grpcServer.Serve(lis); err != nil {
				utils.Logger.Fatalf("grpc serve: %v", err)
			}
		}()
		go a.WatchHealth(ctx, healthServer, healthInterval)
	}

	// 8. Graceful shutdown on signal.
	<-ctx.Done()
	utils.Logger.Info("shutting down...")

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("http shutdown")
	}
	grpcServer.GracefulStop()
	if err := a.Close(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("close resources")
	}
}
