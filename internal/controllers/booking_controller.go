package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/routes"
	"github.com/Leganyst/room-booking/internal/service"
	"github.com/Leganyst/room-booking/internal/utils"
)

const maxBodyBytes = 1 << 20

type BookingController struct {
	bookingService *service.BookingService
}

func NewBookingController(bs *service.BookingService) *BookingController {
	return &BookingController{bookingService: bs}
}

// ListHandler => GET /api/agendamentos[?sala_id=&page=&page_size=]
//
// Without page parameters every booking is returned.
func (c *BookingController) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bookings, err := c.bookingService.List(r.Context(), q.Get(routes.QueryRoom))
	if err != nil {
		respondServiceError(w, err, "Erro ao carregar agendamentos")
		return
	}

	if !q.Has(routes.QueryPage) && !q.Has(routes.QueryPageSize) {
		utils.RespondData(w, http.StatusOK, bookings, "")
		return
	}

	page, _ := strconv.Atoi(q.Get(routes.QueryPage))
	size, _ := strconv.Atoi(q.Get(routes.QueryPageSize))
	p := calendar.Paginate(bookings, page, size)
	utils.RespondPage(w, p.Items, dtos.PageMeta{
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext,
		HasPrev:  p.HasPrev,
		Total:    p.Total,
	})
}

// GetHandler => GET /api/agendamentos/{id}
func (c *BookingController) GetHandler(w http.ResponseWriter, r *http.Request) {
	b, err := c.bookingService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err, "Erro ao carregar agendamento")
		return
	}
	utils.RespondData(w, http.StatusOK, b, "")
}

// CreateHandler => POST /api/agendamentos
func (c *BookingController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var draft dtos.BookingDraft
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&draft); err != nil {
		respondInvalidPayload(w, err)
		return
	}

	b, err := c.bookingService.Create(r.Context(), draft)
	if err != nil {
		respondServiceError(w, err, "Erro ao criar agendamento")
		return
	}
	utils.RespondData(w, http.StatusCreated, b, "Agendamento criado com sucesso")
}

// UpdateHandler => PUT /api/agendamentos/{id}
func (c *BookingController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var patch dtos.BookingPatch
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&patch); err != nil {
		respondInvalidPayload(w, err)
		return
	}

	b, err := c.bookingService.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondServiceError(w, err, "Erro ao atualizar agendamento")
		return
	}
	utils.RespondData(w, http.StatusOK, b, "Agendamento atualizado com sucesso")
}

// DeleteHandler => DELETE /api/agendamentos/{id}
func (c *BookingController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.bookingService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err, "Erro ao excluir agendamento")
		return
	}
	utils.RespondData(w, http.StatusOK, nil, "Agendamento excluído com sucesso")
}

// HistoryHandler => GET /api/agendamentos/{id}/historico
//
// Events outlive the booking, so a deleted booking still has a history.
func (c *BookingController) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	events, err := c.bookingService.History(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err, "Erro ao carregar histórico")
		return
	}
	utils.RespondData(w, http.StatusOK, events, "")
}
