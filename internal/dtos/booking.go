package dtos

import (
	"time"
)

// Booking is the wire shape of an agendamento.
type Booking struct {
	ID        string     `json:"id"`
	SalaID    string     `json:"sala_id"`
	Data      string     `json:"data"` // YYYY-MM-DD
	Turno     string     `json:"turno"`
	Horario   string     `json:"horario"`
	Descricao string     `json:"descricao"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SlotKey identifies at most one booking.
type SlotKey struct {
	SalaID string
	Data   string
	Turno  string
}

func (b Booking) Key() SlotKey {
	return SlotKey{SalaID: b.SalaID, Data: b.Data, Turno: b.Turno}
}

// Draft returns the editable fields of b.
func (b Booking) Draft() BookingDraft {
	return BookingDraft{
		Descricao: b.Descricao,
		SalaID:    b.SalaID,
		Data:      b.Data,
		Turno:     b.Turno,
		Horario:   b.Horario,
	}
}

// BookingDraft is the body of POST /agendamentos and the form state of the
// booking modal. Field order is the order validation messages are reported.
type BookingDraft struct {
	Descricao string `json:"descricao" validate:"notblank,max=2000"`
	SalaID    string `json:"sala_id" validate:"required,max=64"`
	Data      string `json:"data" validate:"required,isodate"`
	Turno     string `json:"turno" validate:"required,slotcode"`
	Horario   string `json:"horario,omitempty" validate:"max=64"`
}

// BookingPatch is the body of PUT /agendamentos/{id}. Nil fields stay
// unchanged.
type BookingPatch struct {
	Descricao *string `json:"descricao,omitempty" validate:"omitempty,notblank,max=2000"`
	SalaID    *string `json:"sala_id,omitempty" validate:"omitempty,notblank,max=64"`
	Data      *string `json:"data,omitempty" validate:"omitempty,isodate"`
	Turno     *string `json:"turno,omitempty" validate:"omitempty,slotcode"`
	Horario   *string `json:"horario,omitempty" validate:"omitempty,max=64"`
}

func (p BookingPatch) Empty() bool {
	return p.Descricao == nil && p.SalaID == nil && p.Data == nil && p.Turno == nil && p.Horario == nil
}

// PatchFromDraft builds a patch that overwrites every field with the draft.
func PatchFromDraft(d BookingDraft) BookingPatch {
	return BookingPatch{
		Descricao: &d.Descricao,
		SalaID:    &d.SalaID,
		Data:      &d.Data,
		Turno:     &d.Turno,
		Horario:   &d.Horario,
	}
}

// DiffPatch sets only the fields that differ between before and after, so
// the server can keep derived fields such as horario in step with turno.
func DiffPatch(before, after BookingDraft) BookingPatch {
	var p BookingPatch
	if after.Descricao != before.Descricao {
		p.Descricao = StringPtr(after.Descricao)
	}
	if after.SalaID != before.SalaID {
		p.SalaID = StringPtr(after.SalaID)
	}
	if after.Data != before.Data {
		p.Data = StringPtr(after.Data)
	}
	if after.Turno != before.Turno {
		p.Turno = StringPtr(after.Turno)
	}
	if after.Horario != before.Horario {
		p.Horario = StringPtr(after.Horario)
	}
	return p
}

func StringPtr(s string) *string { return &s }
