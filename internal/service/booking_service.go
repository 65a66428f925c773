package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/model"
	"github.com/Leganyst/room-booking/internal/repository"
	"github.com/Leganyst/room-booking/internal/utils"
)

// BookingService owns the agendamentos resource. Every mutation runs in one
// transaction together with its audit event.
type BookingService struct {
	db          *gorm.DB
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	eventRepo   repository.EventRepository
}

func NewBookingService(
	db *gorm.DB,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	eventRepo repository.EventRepository,
) *BookingService {
	return &BookingService{
		db:          db,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		eventRepo:   eventRepo,
	}
}

func (s *BookingService) List(ctx context.Context, salaID string) ([]dtos.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, repository.BookingFilter{SalaID: strings.TrimSpace(salaID)})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]dtos.Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingDTO(&bookings[i]))
	}
	return out, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*dtos.Booking, error) {
	bid, err := parseBookingID(id)
	if err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, bid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	out := toBookingDTO(b)
	return &out, nil
}

// Create books a free slot of an active room.
func (s *BookingService) Create(ctx context.Context, draft dtos.BookingDraft) (*dtos.Booking, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	date, slot, err := parseKey(draft.Data, draft.Turno)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		SalaID:    strings.TrimSpace(draft.SalaID),
		Data:      model.NewDate(date),
		Turno:     slot.Code,
		Horario:   strings.TrimSpace(draft.Horario),
		Descricao: strings.TrimSpace(draft.Descricao),
	}
	if booking.Horario == "" {
		booking.Horario = slot.Name()
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := s.bookingRepo.WithTx(tx)

		if _, err := ValidateBookableRoom(ctx, s.roomRepo.WithTx(tx), booking.SalaID); err != nil {
			return err
		}
		if err := ensureSlotFree(ctx, bookings, booking.SalaID, date, booking.Turno, uuid.Nil); err != nil {
			return err
		}
		if err := bookings.Create(ctx, booking); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return fmt.Errorf("create booking: %w", err)
		}
		return s.recordEvent(ctx, tx, model.EventTypeBookingCreated, booking, nil)
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"sala_id":    booking.SalaID,
		"data":       draft.Data,
		"turno":      booking.Turno,
	}).Info("booking created")

	out := toBookingDTO(booking)
	return &out, nil
}

// Update applies the non-nil fields of patch. Moving a booking onto an
// occupied slot key fails with ErrSlotTaken.
func (s *BookingService) Update(ctx context.Context, id string, patch dtos.BookingPatch) (*dtos.Booking, error) {
	bid, err := parseBookingID(id)
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *model.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := s.bookingRepo.WithTx(tx)

		current, err := bookings.GetByID(ctx, bid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		before := toBookingDTO(current)

		next, keyChanged, err := applyPatch(ctx, s.roomRepo.WithTx(tx), current, patch)
		if err != nil {
			return err
		}
		if keyChanged {
			if err := ensureSlotFree(ctx, bookings, next.SalaID, next.Date(), next.Turno, next.ID); err != nil {
				return err
			}
		}

		if err := bookings.Update(ctx, next); err != nil {
			switch {
			case errors.Is(err, gorm.ErrDuplicatedKey):
				return ErrSlotTaken
			case errors.Is(err, gorm.ErrRecordNotFound):
				return ErrBookingNotFound
			}
			return fmt.Errorf("update booking: %w", err)
		}

		// Re-read for the timestamps GORM set.
		updated, err = bookings.GetByID(ctx, bid)
		if err != nil {
			return fmt.Errorf("reload booking: %w", err)
		}
		return s.recordEvent(ctx, tx, model.EventTypeBookingUpdated, updated, &before)
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithField("booking_id", bid).Info("booking updated")

	out := toBookingDTO(updated)
	return &out, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	bid, err := parseBookingID(id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := s.bookingRepo.WithTx(tx)

		current, err := bookings.GetByID(ctx, bid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		if err := bookings.Delete(ctx, bid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("delete booking: %w", err)
		}
		return s.recordEvent(ctx, tx, model.EventTypeBookingDeleted, current, nil)
	})
	if err != nil {
		return err
	}

	utils.Logger.WithField("booking_id", bid).Info("booking deleted")
	return nil
}

// History returns the audit events of one booking, oldest first.
func (s *BookingService) History(ctx context.Context, id string) ([]dtos.Event, error) {
	bid, err := parseBookingID(id)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByBooking(ctx, bid)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]dtos.Event, 0, len(events))
	for i := range events {
		out = append(out, toEventDTO(&events[i]))
	}
	return out, nil
}

// applyPatch returns a copy of current with patch applied and whether the
// slot key moved.
func applyPatch(
	ctx context.Context,
	rooms RoomStore,
	current *model.Booking,
	patch dtos.BookingPatch,
) (*model.Booking, bool, error) {
	next := *current
	next.Sala = nil
	keyChanged := false

	if patch.SalaID != nil && strings.TrimSpace(*patch.SalaID) != current.SalaID {
		room, err := ValidateBookableRoom(ctx, rooms, *patch.SalaID)
		if err != nil {
			return nil, false, err
		}
		next.SalaID = room.ID
		keyChanged = true
	}

	if patch.Data != nil {
		date, err := calendar.ParseDateIn(*patch.Data, nil)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s", ErrInvalidDate, *patch.Data)
		}
		if !date.Equal(current.Date()) {
			next.Data = model.NewDate(date)
			keyChanged = true
		}
	}

	if patch.Turno != nil {
		slot, err := calendar.SlotByCode(*patch.Turno)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s", ErrInvalidSlot, *patch.Turno)
		}
		if slot.Code != current.Turno {
			// A horario that only named the old slot follows the new one.
			if old, err := calendar.SlotByCode(current.Turno); err == nil && patch.Horario == nil && current.Horario == old.Name() {
				next.Horario = slot.Name()
			}
			next.Turno = slot.Code
			keyChanged = true
		}
	}

	if patch.Horario != nil {
		next.Horario = strings.TrimSpace(*patch.Horario)
	}
	if patch.Descricao != nil {
		next.Descricao = strings.TrimSpace(*patch.Descricao)
	}

	return &next, keyChanged, nil
}

func (s *BookingService) recordEvent(
	ctx context.Context,
	tx *gorm.DB,
	eventType model.EventType,
	booking *model.Booking,
	before *dtos.Booking,
) error {
	details := map[string]any{"booking": toBookingDTO(booking)}
	if before != nil {
		details["before"] = before
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode event details: %w", err)
	}

	bookingID := booking.ID
	event := &model.Event{
		EventType: eventType,
		BookingID: &bookingID,
		SalaID:    booking.SalaID,
		Details:   datatypes.JSON(raw),
	}
	if err := s.eventRepo.WithTx(tx).Create(ctx, event); err != nil {
		return fmt.Errorf("record %s event: %w", eventType, err)
	}
	return nil
}

// ensureSlotFree fails with ErrSlotTaken when another booking than self
// holds the slot key.
func ensureSlotFree(
	ctx context.Context,
	bookings repository.BookingRepository,
	salaID string,
	date time.Time,
	turno string,
	self uuid.UUID,
) error {
	existing, err := bookings.GetByKey(ctx, salaID, date, turno)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if existing.ID == self {
		return nil
	}
	return ErrSlotTaken
}

func parseKey(data, turno string) (time.Time, calendar.Slot, error) {
	date, err := calendar.ParseDateIn(data, nil)
	if err != nil {
		return time.Time{}, calendar.Slot{}, fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	slot, err := calendar.SlotByCode(turno)
	if err != nil {
		return time.Time{}, calendar.Slot{}, fmt.Errorf("%w: %s", ErrInvalidSlot, turno)
	}
	return date, slot, nil
}

func parseBookingID(id string) (uuid.UUID, error) {
	bid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return bid, nil
}
