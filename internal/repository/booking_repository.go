package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/room-booking/internal/model"
)

// BookingFilter narrows List. Zero values mean "no restriction".
type BookingFilter struct {
	SalaID string
	From   *time.Time
	To     *time.Time
}

type BookingRepository interface {
	// Bind the repository to a transaction.
	WithTx(tx *gorm.DB) BookingRepository
	// All bookings matching the filter, ordered by date then slot.
	List(ctx context.Context, filter BookingFilter) ([]model.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Booking occupying the slot key, or gorm.ErrRecordNotFound.
	GetByKey(ctx context.Context, salaID string, date time.Time, turno string) (*model.Booking, error)
	// Bookings of one room on one day.
	ListByRoomAndDate(ctx context.Context, salaID string, date time.Time) ([]model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	// Persist key fields, horario and descricao of an existing booking.
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) WithTx(tx *gorm.DB) BookingRepository {
	return &GormBookingRepository{db: tx}
}

func (r *GormBookingRepository) List(ctx context.Context, filter BookingFilter) ([]model.Booking, error) {
	q := r.db.WithContext(ctx).Model(&model.Booking{})
	if filter.SalaID != "" {
		q = q.Where("sala_id = ?", filter.SalaID)
	}
	if filter.From != nil {
		q = q.Where("data >= ?", model.NewDate(*filter.From))
	}
	if filter.To != nil {
		q = q.Where("data <= ?", model.NewDate(*filter.To))
	}

	var bookings []model.Booking
	if err := q.Order("data ASC").Order("turno ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) GetByKey(
	ctx context.Context,
	salaID string,
	date time.Time,
	turno string,
) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Where("sala_id = ? AND data = ? AND turno = ?", salaID, model.NewDate(date), turno).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) ListByRoomAndDate(ctx context.Context, salaID string, date time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("sala_id = ? AND data = ?", salaID, model.NewDate(date)).
		Order("turno ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	update := map[string]any{
		"sala_id":   booking.SalaID,
		"data":      booking.Data,
		"turno":     booking.Turno,
		"horario":   booking.Horario,
		"descricao": booking.Descricao,
	}
	tx := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", booking.ID).
		Updates(update)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
