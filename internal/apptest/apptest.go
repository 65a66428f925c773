// Package apptest starts the backend over in-memory sqlite for tests of the
// HTTP surface and its consumers.
package apptest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Leganyst/room-booking/internal/app"
	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/db"
	"github.com/Leganyst/room-booking/internal/model"
)

// Today is the date the test backend's clock is pinned to.
var Today = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

func Config() *config.Config {
	return &config.Config{
		DB: &config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		Server: config.ServerConfig{
			CORSAllowedOrigins: []string{"http://localhost:5173"},
			SeedRooms:          true,
			CatalogCacheTTL:    time.Minute,
		},
	}
}

// NewApp returns a migrated and seeded backend.
func NewApp(t testing.TB, cfg *config.Config) *app.App {
	t.Helper()
	if cfg == nil {
		cfg = Config()
	}

	gdb, err := db.NewMemoryDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	a := app.New(cfg, gdb, nil, calendar.FixedClock{At: Today})
	if err := a.SeedRooms(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

// NewServer serves NewApp over HTTP. The API base URL is srv.URL + "/api".
func NewServer(t testing.TB) (*httptest.Server, *app.App) {
	t.Helper()
	a := NewApp(t, nil)
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv, a
}
