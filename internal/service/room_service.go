package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/room-booking/internal/cache"
	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/model"
	"github.com/Leganyst/room-booking/internal/repository"
	"github.com/Leganyst/room-booking/internal/utils"
)

// RoomService serves the room catalog (/andares, /salas).
type RoomService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	cal         *calendar.Calendar

	cache    cache.CatalogCache // nil disables caching
	cacheTTL time.Duration
}

func NewRoomService(
	roomRepo repository.RoomRepository,
	bookingRepo repository.BookingRepository,
	cal *calendar.Calendar,
	catalogCache cache.CatalogCache,
	cacheTTL time.Duration,
) *RoomService {
	if cal == nil {
		cal = calendar.New(nil, time.UTC)
	}
	return &RoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cal:         cal,
		cache:       catalogCache,
		cacheTTL:    cacheTTL,
	}
}

// Floors returns every room grouped by floor, ascending. A cache failure
// falls through to the database.
func (s *RoomService) Floors(ctx context.Context) ([]dtos.Floor, error) {
	if s.cache != nil {
		floors, ok, err := s.cache.Floors(ctx)
		if err != nil {
			utils.Logger.WithError(err).Warn("catalog cache read failed")
		}
		if ok {
			return floors, nil
		}
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	floors := groupByFloor(rooms)

	if s.cache != nil {
		if err := s.cache.SetFloors(ctx, floors, s.cacheTTL); err != nil {
			utils.Logger.WithError(err).Warn("catalog cache write failed")
		}
	}
	return floors, nil
}

func (s *RoomService) Floor(ctx context.Context, andar int) (*dtos.Floor, error) {
	rooms, err := s.roomRepo.ListByFloor(ctx, andar)
	if err != nil {
		return nil, fmt.Errorf("list floor %d: %w", andar, err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrFloorNotFound, andar)
	}

	out := dtos.Floor{Andar: andar, Salas: make([]dtos.Room, 0, len(rooms))}
	for i := range rooms {
		out.Salas = append(out.Salas, toRoomDTO(&rooms[i]))
	}
	return &out, nil
}

func (s *RoomService) Room(ctx context.Context, id string) (*dtos.Room, error) {
	room, err := s.getRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRoomDTO(room)
	return &out, nil
}

// Availability reports, per slot, whether the room can be booked on the
// given YYYY-MM-DD date. Rooms that are not Active have no free slot.
func (s *RoomService) Availability(ctx context.Context, id, data string) (*dtos.Availability, error) {
	room, err := s.getRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	date, err := calendar.ParseDateIn(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, data)
	}

	bookings, err := s.bookingRepo.ListByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	taken := make(map[string]string, len(bookings))
	for _, b := range bookings {
		taken[b.Turno] = b.ID.String()
	}

	out := &dtos.Availability{
		SalaID: room.ID,
		Data:   calendar.FormatISO(date),
		Turnos: make([]dtos.SlotAvailability, 0, len(calendar.Slots())),
	}
	if name, ok := s.cal.Holiday(date); ok {
		out.Feriado = name
	}
	for _, slot := range calendar.Slots() {
		bookingID, busy := taken[slot.Code]
		out.Turnos = append(out.Turnos, dtos.SlotAvailability{
			Turno:         slot.Code,
			Nome:          slot.Name(),
			Horario:       slot.Hours(),
			Disponivel:    !busy && room.Bookable(),
			AgendamentoID: bookingID,
		})
	}
	return out, nil
}

// SeedCatalog inserts the rooms not stored yet and drops the cached floors
// when anything changed.
func (s *RoomService) SeedCatalog(ctx context.Context, rooms []model.Room) (int64, error) {
	for _, r := range rooms {
		if err := validateCatalogRoom(r); err != nil {
			return 0, err
		}
	}

	added, err := s.roomRepo.Seed(ctx, rooms)
	if err != nil {
		return 0, fmt.Errorf("seed rooms: %w", err)
	}
	if added > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			utils.Logger.WithError(err).Warn("catalog cache invalidate failed")
		}
	}
	return added, nil
}

func (s *RoomService) getRoom(ctx context.Context, id string) (*model.Room, error) {
	id = strings.TrimSpace(id)
	room, err := s.roomRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}
	return room, nil
}
