package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Leganyst/room-booking/internal/model"
)

// RoomStore is the part of the room repository booking checks need.
type RoomStore interface {
	GetByID(ctx context.Context, id string) (*model.Room, error)
}

// ValidateBookableRoom loads the room and checks it accepts bookings:
//   - the id is not blank;
//   - the room exists;
//   - its status is Active.
func ValidateBookableRoom(ctx context.Context, store RoomStore, id string) (*model.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrRoomNotFound
	}

	room, err := store.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && room == nil) {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}

	if ok, reason := validateRoomModel(room); !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomUnavailable, reason)
	}
	return room, nil
}

// validateRoomModel returns false and the reason when room cannot take a
// booking.
func validateRoomModel(room *model.Room) (bool, string) {
	if !room.Status.Valid() {
		return false, "unknown room status"
	}
	if !room.Bookable() {
		return false, "room " + room.Descricao + " is " + strings.ToLower(room.Status.String())
	}
	return true, ""
}

// validateCatalogRoom checks a room before it is seeded.
func validateCatalogRoom(room model.Room) error {
	switch {
	case strings.TrimSpace(room.ID) == "":
		return errors.New("room id is empty")
	case room.Andar <= 0:
		return fmt.Errorf("room %s: floor must be positive", room.ID)
	case room.Capacidade <= 0:
		return fmt.Errorf("room %s: capacity must be positive", room.ID)
	case !room.Status.Valid():
		return fmt.Errorf("room %s: unknown status %d", room.ID, room.Status)
	}
	return nil
}
