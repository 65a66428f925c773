package dtos

import (
	"encoding/json"
	"time"
)

// Event is one audit entry of GET /api/agendamentos/{id}/historico.
type Event struct {
	ID            string          `json:"id"`
	Tipo          string          `json:"tipo"`
	AgendamentoID string          `json:"agendamento_id,omitempty"`
	SalaID        string          `json:"sala_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Detalhes      json.RawMessage `json:"detalhes,omitempty"`
}
