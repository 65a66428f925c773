package model

// DefaultRooms is the built-in catalog: five floors with five rooms each.
// It seeds an empty database and backs the offline demo mode.
func DefaultRooms() []Room {
	type entry struct {
		number     string
		capacidade int
		status     RoomStatus
	}
	floors := [][]entry{
		{{"101", 10, RoomStatusActive}, {"102", 12, RoomStatusActive}, {"103", 8, RoomStatusActive}, {"104", 15, RoomStatusInactive}, {"105", 20, RoomStatusActive}},
		{{"201", 25, RoomStatusActive}, {"202", 30, RoomStatusActive}, {"203", 12, RoomStatusMaintenance}, {"204", 18, RoomStatusActive}, {"205", 22, RoomStatusActive}},
		{{"301", 35, RoomStatusActive}, {"302", 40, RoomStatusActive}, {"303", 28, RoomStatusActive}, {"304", 32, RoomStatusInactive}, {"305", 45, RoomStatusActive}},
		{{"401", 50, RoomStatusActive}, {"402", 55, RoomStatusActive}, {"403", 38, RoomStatusActive}, {"404", 42, RoomStatusMaintenance}, {"405", 48, RoomStatusActive}},
		{{"501", 60, RoomStatusActive}, {"502", 65, RoomStatusActive}, {"503", 52, RoomStatusActive}, {"504", 58, RoomStatusInactive}, {"505", 70, RoomStatusActive}},
	}

	rooms := make([]Room, 0, 25)
	for i, floor := range floors {
		for _, e := range floor {
			rooms = append(rooms, Room{
				ID:         "mock-" + e.number,
				Descricao:  e.number,
				Andar:      i + 1,
				Capacidade: e.capacidade,
				Status:     e.status,
			})
		}
	}
	return rooms
}
