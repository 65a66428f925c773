package agenda

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
)

const confirmDeletePrompt = "Tem certeza que deseja excluir este agendamento?"

type ModalState int

const (
	Closed ModalState = iota
	Viewing
	Editing
	Creating
)

func (s ModalState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Creating:
		return "creating"
	default:
		return "unknown"
	}
}

// Modal is the booking form for one (date, slot) cell.
//
//	Closed -> Viewing -> Editing -> Viewing | Closed
//	Closed -> Creating -> Closed
type Modal struct {
	store     *Store
	session   *Session
	confirmer Confirmer
	notifier  Notifier

	mu       sync.Mutex
	state    ModalState
	gen      uint64 // bumped on Open and Close
	date     time.Time
	slot     calendar.Slot
	existing *dtos.Booking
	form     dtos.BookingDraft
	errors   []string
}

func NewModal(store *Store, session *Session, confirmer Confirmer, notifier Notifier) *Modal {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Modal{store: store, session: session, confirmer: confirmer, notifier: notifier}
}

// Open shows an existing booking read-only, or a blank form for a new one
// seeded from the selected room, the slot and the date.
func (m *Modal) Open(date time.Time, slot calendar.Slot, existing *dtos.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	m.date = date
	m.slot = slot
	m.errors = nil

	if existing != nil {
		b := *existing
		m.existing = &b
		m.form = b.Draft()
		m.state = Viewing
		return
	}

	m.existing = nil
	m.form = dtos.BookingDraft{
		Data:    calendar.FormatISO(date),
		Turno:   slot.Code,
		Horario: slot.Name(),
	}
	if m.session != nil {
		if room, ok := m.session.Room(); ok {
			m.form.SalaID = room.ID
		}
	}
	m.state = Creating
}

// Edit makes the fields of an open booking writable.
func (m *Modal) Edit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Viewing || m.existing == nil {
		return ErrInvalidTransition
	}
	m.state = Editing
	return nil
}

// Cancel drops unsaved edits. With a booking open it returns to Viewing,
// otherwise the modal closes.
func (m *Modal) Cancel() {
	m.mu.Lock()
	if m.state == Editing && m.existing != nil {
		m.form = m.existing.Draft()
		m.errors = nil
		m.state = Viewing
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.Close()
}

// Close always ends in Closed with editing off.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

func (m *Modal) closeLocked() {
	m.gen++
	m.state = Closed
	m.existing = nil
	m.form = dtos.BookingDraft{}
	m.errors = nil
}

// SetForm replaces the form fields. Only allowed while Creating or Editing.
func (m *Modal) SetForm(d dtos.BookingDraft) error {
	return m.UpdateForm(func(f *dtos.BookingDraft) { *f = d })
}

// UpdateForm edits the form in place. Only allowed while Creating or
// Editing.
func (m *Modal) UpdateForm(fn func(*dtos.BookingDraft)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Creating && m.state != Editing {
		return ErrReadOnly
	}
	fn(&m.form)
	return nil
}

// Save validates the form and creates or updates the booking. Validation
// failures send nothing and keep the modal open with every message in
// Errors. Server failures also keep it open and are notified.
func (m *Modal) Save(ctx context.Context) error {
	m.mu.Lock()
	state, gen, form := m.state, m.gen, m.form
	var (
		id     string
		before dtos.BookingDraft
	)
	if m.existing != nil {
		id, before = m.existing.ID, m.existing.Draft()
	}
	if state != Creating && state != Editing {
		m.mu.Unlock()
		return ErrInvalidTransition
	}
	form.Descricao = strings.TrimSpace(form.Descricao)
	if err := form.Validate(); err != nil {
		msgs := []string{err.Error()}
		var verr *dtos.ValidationError
		if errors.As(err, &verr) {
			msgs = verr.Messages()
		}
		m.errors = msgs
		m.mu.Unlock()
		m.notifier.Error(strings.Join(msgs, "\n"))
		return err
	}
	m.mu.Unlock()

	var err error
	if state == Creating {
		_, err = m.store.Create(ctx, form)
	} else if patch := dtos.DiffPatch(before, form); !patch.Empty() {
		_, err = m.store.Update(ctx, id, patch)
	}
	return m.finish(gen, err)
}

// finish closes the modal after a successful mutation unless it was
// reopened meanwhile. On failure the message is kept and notified.
func (m *Modal) finish(gen uint64, err error) error {
	m.mu.Lock()
	if err != nil {
		msg := err.Error()
		m.errors = []string{msg}
		m.mu.Unlock()
		m.notifier.Error(msg)
		return err
	}
	if m.gen == gen {
		m.closeLocked()
	}
	m.mu.Unlock()
	return nil
}

// Delete removes the open booking after the Confirmer agrees. A declined
// confirmation changes nothing and returns nil.
func (m *Modal) Delete(ctx context.Context) error {
	m.mu.Lock()
	if m.state != Viewing || m.existing == nil {
		m.mu.Unlock()
		return ErrInvalidTransition
	}
	id, gen := m.existing.ID, m.gen
	m.mu.Unlock()

	if m.confirmer == nil || !m.confirmer.Confirm(confirmDeletePrompt) {
		return nil
	}

	return m.finish(gen, m.store.Delete(ctx, id))
}

func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ReadOnly is true while an existing booking is shown without Edit.
func (m *Modal) ReadOnly() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == Viewing || m.state == Closed
}

func (m *Modal) Form() dtos.BookingDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// Existing is the booking the modal was opened on, if any.
func (m *Modal) Existing() (dtos.Booking, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existing == nil {
		return dtos.Booking{}, false
	}
	return *m.existing, true
}

func (m *Modal) Date() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.date
}

func (m *Modal) Slot() calendar.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slot
}

// Errors are the messages of the last failed Save or Delete.
func (m *Modal) Errors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.errors))
	copy(out, m.errors)
	return out
}
