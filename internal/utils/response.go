package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Leganyst/room-booking/internal/dtos"
)

// RespondWithJSON writes a raw payload. Used by /health.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondData wraps data in a success envelope.
func RespondData(w http.ResponseWriter, status int, data any, message string) {
	RespondWithJSON(w, status, dtos.Envelope[any]{Success: true, Data: data, Message: message})
}

func RespondPage(w http.ResponseWriter, data any, meta dtos.PageMeta) {
	RespondWithJSON(w, http.StatusOK, dtos.Envelope[any]{Success: true, Data: data, Pagination: &meta})
}

// RespondErrorWithCode writes a failure envelope and logs devErrs, if any.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	details []string,
	devErrs ...error,
) {
	RespondWithJSON(w, status, dtos.Envelope[any]{
		Success: false,
		Code:    errorCode,
		Message: publicMessage,
		Errors:  details,
	})

	fields := logrus.Fields{"status": status, "code": errorCode}
	if len(devErrs) > 0 && devErrs[0] != nil {
		fields["error"] = devErrs[0].Error()
	}
	entry := Logger.WithFields(fields)
	if status >= http.StatusInternalServerError {
		entry.Error(publicMessage)
	} else {
		entry.Warn(publicMessage)
	}
}
