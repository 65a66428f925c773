package controllers

import (
	"errors"
	"net/http"

	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/service"
	"github.com/Leganyst/room-booking/internal/utils"
)

// respondServiceError maps service errors to status codes and writes the
// failure envelope.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	utils.HandleAppError(w, toAppError(err, fallback))
}

func toAppError(err error, fallback string) *utils.AppError {
	var verr *dtos.ValidationError
	switch {
	case errors.As(err, &verr):
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    verr.Error(),
			Details:    verr.Messages(),
			Err:        err,
		}
	case errors.Is(err, service.ErrInvalidDate):
		return &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Data inválida", Err: err}
	case errors.Is(err, service.ErrInvalidSlot):
		return &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Turno inválido", Err: err}
	case errors.Is(err, service.ErrBookingNotFound):
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Agendamento não encontrado", Err: err}
	case errors.Is(err, service.ErrRoomNotFound):
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Sala não encontrada", Err: err}
	case errors.Is(err, service.ErrFloorNotFound):
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Andar não encontrado", Err: err}
	case errors.Is(err, service.ErrSlotTaken):
		return &utils.AppError{StatusCode: http.StatusConflict, Code: utils.ErrCodeConflict, Message: "Já existe um agendamento para esta sala, data e turno", Err: err}
	case errors.Is(err, service.ErrRoomUnavailable):
		return &utils.AppError{StatusCode: http.StatusUnprocessableEntity, Code: utils.ErrCodeUnprocessable, Message: "Sala indisponível para agendamento", Err: err}
	default:
		return &utils.AppError{StatusCode: http.StatusInternalServerError, Code: utils.ErrCodeInternal, Message: fallback, Err: err}
	}
}

func respondInvalidPayload(w http.ResponseWriter, err error) {
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Corpo da requisição inválido", nil, err)
}
