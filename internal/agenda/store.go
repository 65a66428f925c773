package agenda

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Leganyst/room-booking/internal/client"
	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/utils"
)

const (
	msgListFailed   = "Erro ao carregar agendamentos"
	msgCreateFailed = "Erro ao criar agendamento"
	msgUpdateFailed = "Erro ao atualizar agendamento"
	msgDeleteFailed = "Erro ao deletar agendamento"

	msgCreated = "Agendamento criado com sucesso!"
	msgUpdated = "Agendamento atualizado com sucesso!"
	msgDeleted = "Agendamento deletado com sucesso!"
)

// Store caches the bookings held by the backend. Mutations go straight to
// the API and are followed by a full ListAll; nothing is patched locally.
//
// Two overlapping ListAll calls both write the cache when they finish, so an
// older response that arrives last wins.
type Store struct {
	api      BookingAPI
	notifier Notifier

	mu       sync.Mutex
	bookings []dtos.Booking
	inflight int
	err      string
}

func NewStore(api BookingAPI, notifier Notifier) *Store {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Store{api: api, notifier: notifier, bookings: []dtos.Booking{}}
}

// ListAll replaces the cache with the server's bookings. On failure the
// cache is emptied and Err reports why. A response flagged success=false
// still fills the cache with whatever data it carried.
func (s *Store) ListAll(ctx context.Context) ([]dtos.Booking, error) {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()

	res, err := s.api.ListBookings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if err != nil {
		s.bookings = []dtos.Booking{}
		s.err = client.Message(err, msgListFailed)
		utils.Logger.WithError(err).Warn("list bookings failed")
		return nil, err
	}

	s.bookings = res.Data
	if s.bookings == nil {
		s.bookings = []dtos.Booking{}
	}
	if !res.Success {
		s.err = res.Message
		if s.err == "" {
			s.err = msgListFailed
		}
	}
	return s.snapshot(), nil
}

// Create validates the draft, sends it and refreshes the cache. An invalid
// draft never reaches the API.
func (s *Store) Create(ctx context.Context, draft dtos.BookingDraft) (*dtos.Booking, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	res, err := s.api.CreateBooking(ctx, draft)
	if err = mutationFailure("create", res.Success, res.Message, err, msgCreateFailed); err != nil {
		return nil, err
	}

	s.notifier.Success(msgCreated)
	s.refresh(ctx)
	created := res.Data
	return &created, nil
}

func (s *Store) Update(ctx context.Context, id string, patch dtos.BookingPatch) (*dtos.Booking, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	res, err := s.api.UpdateBooking(ctx, id, patch)
	if err = mutationFailure("update", res.Success, res.Message, err, msgUpdateFailed); err != nil {
		return nil, err
	}

	s.notifier.Success(msgUpdated)
	s.refresh(ctx)
	updated := res.Data
	return &updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.api.DeleteBooking(ctx, id)
	if err = mutationFailure("delete", res.Success, res.Message, err, msgDeleteFailed); err != nil {
		return err
	}

	s.notifier.Success(msgDeleted)
	s.refresh(ctx)
	return nil
}

// Bookings returns a copy of the cache.
func (s *Store) Bookings() []dtos.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Find returns the cached booking holding key.
func (s *Store) Find(key dtos.SlotKey) (dtos.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.Key() == key {
			return b, true
		}
	}
	return dtos.Booking{}, false
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err is the message of the last failed ListAll, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// refresh re-lists after a mutation. Its failure is recorded in Err and does
// not fail the mutation.
func (s *Store) refresh(ctx context.Context) {
	if _, err := s.ListAll(ctx); err != nil {
		utils.Logger.WithFields(logrus.Fields{"error": err}).Debug("refresh after mutation failed")
	}
}

func (s *Store) snapshot() []dtos.Booking {
	out := make([]dtos.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func mutationFailure(op string, success bool, message string, err error, fallback string) error {
	if err != nil {
		return &MutationError{Op: op, Message: client.Message(err, fallback), Err: err}
	}
	if !success {
		if message == "" {
			message = fallback
		}
		return &MutationError{Op: op, Message: message}
	}
	return nil
}
