package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Leganyst/room-booking/internal/routes"
	"github.com/Leganyst/room-booking/internal/service"
	"github.com/Leganyst/room-booking/internal/utils"
)

type RoomController struct {
	roomService *service.RoomService
}

func NewRoomController(rs *service.RoomService) *RoomController {
	return &RoomController{roomService: rs}
}

// FloorsHandler => GET /api/andares
func (c *RoomController) FloorsHandler(w http.ResponseWriter, r *http.Request) {
	floors, err := c.roomService.Floors(r.Context())
	if err != nil {
		respondServiceError(w, err, "Erro ao carregar andares")
		return
	}
	utils.RespondData(w, http.StatusOK, floors, "")
}

// FloorHandler => GET /api/andares/{andar}
func (c *RoomController) FloorHandler(w http.ResponseWriter, r *http.Request) {
	andar, err := strconv.Atoi(mux.Vars(r)["andar"])
	if err != nil {
		respondInvalidPayload(w, err)
		return
	}
	floor, err := c.roomService.Floor(r.Context(), andar)
	if err != nil {
		respondServiceError(w, err, "Erro ao carregar andar")
		return
	}
	utils.RespondData(w, http.StatusOK, floor, "")
}

// RoomHandler => GET /api/salas/{id}
func (c *RoomController) RoomHandler(w http.ResponseWriter, r *http.Request) {
	room, err := c.roomService.Room(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err, "Erro ao carregar sala")
		return
	}
	utils.RespondData(w, http.StatusOK, room, "")
}

// AvailabilityHandler => GET /api/salas/{id}/disponibilidade?data=YYYY-MM-DD
func (c *RoomController) AvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	av, err := c.roomService.Availability(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get(routes.QueryDate))
	if err != nil {
		respondServiceError(w, err, "Erro ao verificar disponibilidade")
		return
	}
	utils.RespondData(w, http.StatusOK, av, "")
}
