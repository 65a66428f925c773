package agenda

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/Leganyst/room-booking/internal/client"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// fakeAPI is an in-memory backend that counts calls.
type fakeAPI struct {
	mu       sync.Mutex
	bookings []dtos.Booking
	floors   []dtos.Floor
	nextID   int

	calls map[string]int

	listErr     error
	listResult  *client.Result[[]dtos.Booking]
	mutationErr error
	floorsErr   error

	// onCreate runs while a create is in flight.
	onCreate func()
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls: map[string]int{},
		floors: []dtos.Floor{
			{Andar: 2, Salas: []dtos.Room{{ID: "mock-201", Descricao: "201", Capacidade: 25}, {ID: "mock-203", Descricao: "203", Capacidade: 12, Status: StatusMaintenance}}},
			{Andar: 1, Salas: []dtos.Room{{ID: "mock-101", Descricao: "101", Capacidade: 10}, {ID: "mock-104", Descricao: "104", Capacidade: 15, Status: StatusInactive}}},
		},
	}
}

func (f *fakeAPI) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) ListBookings(context.Context) (client.Result[[]dtos.Booking], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++
	if f.listErr != nil {
		return client.Result[[]dtos.Booking]{}, f.listErr
	}
	if f.listResult != nil {
		return *f.listResult, nil
	}
	out := make([]dtos.Booking, len(f.bookings))
	copy(out, f.bookings)
	return client.Result[[]dtos.Booking]{Success: true, Data: out}, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, d dtos.BookingDraft) (client.Result[dtos.Booking], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.mutationErr != nil {
		return client.Result[dtos.Booking]{}, f.mutationErr
	}
	for _, b := range f.bookings {
		if b.SalaID == d.SalaID && b.Data == d.Data && b.Turno == d.Turno {
			return client.Result[dtos.Booking]{}, &client.ServerMessageError{StatusCode: 409, Message: "Já existe um agendamento para esta sala, data e turno"}
		}
	}
	f.nextID++
	b := dtos.Booking{
		ID:        strconv.Itoa(f.nextID),
		SalaID:    d.SalaID,
		Data:      d.Data,
		Turno:     d.Turno,
		Horario:   d.Horario,
		Descricao: d.Descricao,
	}
	f.bookings = append(f.bookings, b)
	return client.Result[dtos.Booking]{Success: true, Data: b}, nil
}

func (f *fakeAPI) UpdateBooking(_ context.Context, id string, p dtos.BookingPatch) (client.Result[dtos.Booking], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	if f.mutationErr != nil {
		return client.Result[dtos.Booking]{}, f.mutationErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID != id {
			continue
		}
		b := &f.bookings[i]
		if p.Descricao != nil {
			b.Descricao = *p.Descricao
		}
		if p.SalaID != nil {
			b.SalaID = *p.SalaID
		}
		if p.Data != nil {
			b.Data = *p.Data
		}
		if p.Turno != nil {
			b.Turno = *p.Turno
		}
		if p.Horario != nil {
			b.Horario = *p.Horario
		}
		return client.Result[dtos.Booking]{Success: true, Data: *b}, nil
	}
	return client.Result[dtos.Booking]{}, &client.NotFoundError{Message: "Agendamento não encontrado"}
}

func (f *fakeAPI) DeleteBooking(_ context.Context, id string) (client.Result[json.RawMessage], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if f.mutationErr != nil {
		return client.Result[json.RawMessage]{}, f.mutationErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return client.Result[json.RawMessage]{Success: true}, nil
		}
	}
	return client.Result[json.RawMessage]{}, &client.NotFoundError{}
}

func (f *fakeAPI) ListFloors(context.Context) (client.Result[[]dtos.Floor], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["floors"]++
	if f.floorsErr != nil {
		return client.Result[[]dtos.Floor]{}, f.floorsErr
	}
	return client.Result[[]dtos.Floor]{Success: true, Data: f.floors}, nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

type answer bool

func (a answer) Confirm(string) bool { return bool(a) }
