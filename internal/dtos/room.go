package dtos

type Room struct {
	ID         string `json:"id"`
	Descricao  string `json:"descricao"`
	Andar      int    `json:"andar"`
	Capacidade int    `json:"capacidade"`
	Status     int    `json:"status"`
}

// Floor is one entry of GET /andares.
type Floor struct {
	Andar int    `json:"andar"`
	Salas []Room `json:"salas"`
}

// SlotAvailability is one slot of GET /salas/{id}/disponibilidade.
type SlotAvailability struct {
	Turno         string `json:"turno"`
	Nome          string `json:"nome"`
	Horario       string `json:"horario"`
	Disponivel    bool   `json:"disponivel"`
	AgendamentoID string `json:"agendamento_id,omitempty"`
}

type Availability struct {
	SalaID  string             `json:"sala_id"`
	Data    string             `json:"data"`
	Feriado string             `json:"feriado,omitempty"`
	Turnos  []SlotAvailability `json:"turnos"`
}
