package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/room-booking/internal/model"
)

type RoomRepository interface {
	WithTx(tx *gorm.DB) RoomRepository
	// All rooms ordered by floor and label.
	List(ctx context.Context) ([]model.Room, error)
	ListByFloor(ctx context.Context, andar int) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	// Insert rooms whose id is not stored yet; returns how many were added.
	Seed(ctx context.Context, rooms []model.Room) (int64, error)
}

type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) WithTx(tx *gorm.DB) RoomRepository {
	return &GormRoomRepository{db: tx}
}

func (r *GormRoomRepository) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Order("andar ASC").
		Order("descricao ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) ListByFloor(ctx context.Context, andar int) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Where("andar = ?", andar).
		Order("descricao ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) Seed(ctx context.Context, rooms []model.Room) (int64, error) {
	if len(rooms) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&rooms)
	return tx.RowsAffected, tx.Error
}
