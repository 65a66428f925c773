package app

import (
	"context"

	"github.com/Leganyst/room-booking/internal/model"
	"github.com/Leganyst/room-booking/internal/utils"
)

// SeedRooms stores the built-in catalog when SEED_ROOMS is on. Rooms
// already present are left untouched.
func (a *App) SeedRooms(ctx context.Context) error {
	if !a.Config.Server.SeedRooms {
		utils.Logger.Debug("room seeding disabled")
		return nil
	}
	added, err := a.Rooms.SeedCatalog(ctx, model.DefaultRooms())
	if err != nil {
		return err
	}
	utils.Logger.Infof("Seeded %d rooms", added)
	return nil
}
