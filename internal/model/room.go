package model

import "time"

// RoomStatus codes match the numeric codes the calendar already sends.
type RoomStatus int

const (
	RoomStatusActive      RoomStatus = 0
	RoomStatusInactive    RoomStatus = 1
	RoomStatusMaintenance RoomStatus = 2
)

func (s RoomStatus) String() string {
	switch s {
	case RoomStatusActive:
		return "Ativa"
	case RoomStatusInactive:
		return "Inativa"
	case RoomStatusMaintenance:
		return "Em Manutenção"
	default:
		return "Status desconhecido"
	}
}

func (s RoomStatus) Valid() bool {
	return s >= RoomStatusActive && s <= RoomStatusMaintenance
}

// salas
type Room struct {
	ID         string     `gorm:"type:varchar(64);primaryKey"`
	Descricao  string     `gorm:"type:varchar(255);not null"`
	Andar      int        `gorm:"not null;index"`
	Capacidade int        `gorm:"not null"`
	Status     RoomStatus `gorm:"type:smallint;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Room) TableName() string { return "salas" }

func (r *Room) Bookable() bool { return r.Status == RoomStatusActive }
