package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// agendamentos
//
// (sala_id, data, turno) is the slot key: at most one booking per room, date
// and slot. The composite unique index enforces it at the storage level.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	SalaID string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_agendamentos_slot_key,priority:1"`
	Data   datatypes.Date `gorm:"not null;uniqueIndex:idx_agendamentos_slot_key,priority:2"`
	Turno  string         `gorm:"type:varchar(1);not null;uniqueIndex:idx_agendamentos_slot_key,priority:3"`

	Horario   string `gorm:"type:varchar(64)"`
	Descricao string `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Sala *Room `gorm:"foreignKey:SalaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Booking) TableName() string { return "agendamentos" }

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Date returns the booking date at midnight UTC.
func (b *Booking) Date() time.Time {
	y, m, d := time.Time(b.Data).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDate normalises t to a UTC midnight date column value so that equal
// calendar days always compare equal in the unique index.
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
