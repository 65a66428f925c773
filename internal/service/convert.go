package service

import (
	"encoding/json"
	"sort"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/model"
)

func toBookingDTO(b *model.Booking) dtos.Booking {
	created, updated := b.CreatedAt, b.UpdatedAt
	out := dtos.Booking{
		ID:        b.ID.String(),
		SalaID:    b.SalaID,
		Data:      calendar.FormatISO(b.Date()),
		Turno:     b.Turno,
		Horario:   b.Horario,
		Descricao: b.Descricao,
	}
	if !created.IsZero() {
		out.CreatedAt = &created
	}
	if !updated.IsZero() {
		out.UpdatedAt = &updated
	}
	return out
}

func toEventDTO(e *model.Event) dtos.Event {
	out := dtos.Event{
		ID:        e.ID.String(),
		Tipo:      string(e.EventType),
		SalaID:    e.SalaID,
		CreatedAt: e.CreatedAt,
		Detalhes:  json.RawMessage(e.Details),
	}
	if e.BookingID != nil {
		out.AgendamentoID = e.BookingID.String()
	}
	return out
}

func toRoomDTO(r *model.Room) dtos.Room {
	return dtos.Room{
		ID:         r.ID,
		Descricao:  r.Descricao,
		Andar:      r.Andar,
		Capacidade: r.Capacidade,
		Status:     int(r.Status),
	}
}

// groupByFloor keeps the repository's room order within each floor.
func groupByFloor(rooms []model.Room) []dtos.Floor {
	index := map[int]int{}
	floors := make([]dtos.Floor, 0)
	for i := range rooms {
		r := &rooms[i]
		pos, ok := index[r.Andar]
		if !ok {
			pos = len(floors)
			index[r.Andar] = pos
			floors = append(floors, dtos.Floor{Andar: r.Andar, Salas: []dtos.Room{}})
		}
		floors[pos].Salas = append(floors[pos].Salas, toRoomDTO(r))
	}
	sort.SliceStable(floors, func(i, j int) bool { return floors[i].Andar < floors[j].Andar })
	return floors
}
