package routes

const (
	// Health
	Health = "/health"

	// Bookings
	Bookings       = "/api/agendamentos"
	BookingByID    = "/api/agendamentos/{id}"
	BookingHistory = "/api/agendamentos/{id}/historico"

	// Catalog
	Floors           = "/api/andares"
	FloorByNumber    = "/api/andares/{andar:[0-9]+}"
	RoomByID         = "/api/salas/{id}"
	RoomAvailability = "/api/salas/{id}/disponibilidade"
)

// Query parameters.
const (
	QueryRoom     = "sala_id"
	QueryPage     = "page"
	QueryPageSize = "page_size"
	QueryDate     = "data"
)
