package agenda

import (
	"sync"

	"github.com/Leganyst/room-booking/internal/dtos"
)

const defaultFloor = 1

// Session is the floor and room the user is looking at.
type Session struct {
	catalog *Catalog

	mu    sync.Mutex
	floor *int
	room  *dtos.Room
}

// NewSession starts on floor 1 with the first catalog room selected, if the
// catalog has any.
func NewSession(catalog *Catalog) *Session {
	floor := defaultFloor
	s := &Session{catalog: catalog, floor: &floor}
	s.EnsureRoom()
	return s
}

// EnsureRoom selects the first catalog room when no room is selected. Call
// it after the catalog finishes loading.
func (s *Session) EnsureRoom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.room != nil {
		return
	}
	if rooms := s.catalog.Rooms(); len(rooms) > 0 {
		first := rooms[0]
		s.room = &first
	}
}

// SelectFloor opens a floor and selects its first room.
func (s *Session) SelectFloor(andar int) {
	rooms := s.catalog.ByFloor(andar)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.floor = &andar
	if len(rooms) > 0 {
		first := rooms[0]
		s.room = &first
	}
}

// ToggleFloor closes the floor when it is already open, else selects it.
func (s *Session) ToggleFloor(andar int) {
	s.mu.Lock()
	if s.floor != nil && *s.floor == andar {
		s.floor = nil
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.SelectFloor(andar)
}

// SelectRoom selects room and moves to its floor.
func (s *Session) SelectRoom(room dtos.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	floor := room.Andar
	s.floor = &floor
	s.room = &room
}

// SelectRoomByID reports false for ids the catalog does not know.
func (s *Session) SelectRoomByID(id string) bool {
	room, ok := s.catalog.ByID(id)
	if !ok {
		return false
	}
	s.SelectRoom(room)
	return true
}

// Reset clears both selections.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floor = nil
	s.room = nil
}

func (s *Session) Floor() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.floor == nil {
		return 0, false
	}
	return *s.floor, true
}

func (s *Session) Room() (dtos.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.room == nil {
		return dtos.Room{}, false
	}
	return *s.room, true
}

func (s *Session) HasSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.floor != nil || s.room != nil
}
