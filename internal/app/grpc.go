package app

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/utils"
)

// GRPCServer returns a gRPC server exposing the standard health service
// and reflection. The overall status and the config.AppName service start
// as SERVING; WatchHealth keeps them in step with the database.
func (a *App) GRPCServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(config.AppName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return srv, hs
}

// WatchHealth pings the database every interval until ctx is done and
// flips hs to NOT_SERVING while the ping fails.
func (a *App) WatchHealth(ctx context.Context, hs *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_SERVING
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		status := a.dbStatus(ctx)
		if status == last {
			continue
		}
		utils.Logger.Infof("health status changed: %s -> %s", last, status)
		hs.SetServingStatus("", status)
		hs.SetServingStatus(config.AppName, status)
		last = status
	}
}

func (a *App) dbStatus(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		utils.Logger.WithError(err).Warn("database ping failed")
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}
