package client

import (
	"errors"
	"fmt"
)

const (
	MsgServerUnavailable = "Servidor indisponível. Verifique se o backend está rodando."
	MsgEndpointNotFound  = "Endpoint não encontrado."
)

// NetworkError is returned when the backend could not be reached or did not
// answer in time.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return MsgServerUnavailable }
func (e *NetworkError) Unwrap() error { return e.Err }

// NotFoundError is returned for HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return MsgEndpointNotFound
}

// ServerMessageError carries a message the server sent, verbatim.
type ServerMessageError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []string
}

func (e *ServerMessageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Falha na requisição (status %d)", e.StatusCode)
}

// Message returns the text to show for err: the server's message when there
// is one, otherwise fallback.
func Message(err error, fallback string) string {
	var (
		netErr *NetworkError
		nfErr  *NotFoundError
		srvErr *ServerMessageError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &netErr):
		return netErr.Error()
	case errors.As(err, &nfErr):
		return nfErr.Error()
	case errors.As(err, &srvErr) && srvErr.Message != "":
		return srvErr.Message
	default:
		return fallback
	}
}
