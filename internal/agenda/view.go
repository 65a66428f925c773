package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// View wires the catalog, selection, store, modal and week navigation of
// the calendar screen.
type View struct {
	Cal     *calendar.Calendar
	Catalog *Catalog
	Session *Session
	Store   *Store
	Modal   *Modal
	Nav     *Navigator
}

type ViewOptions struct {
	Calendar  *calendar.Calendar
	Catalog   CatalogAPI
	Bookings  BookingAPI
	Confirmer Confirmer
	Notifier  Notifier
}

func NewView(opts ViewOptions) *View {
	cal := opts.Calendar
	if cal == nil {
		cal = calendar.New(nil, nil)
	}
	catalog := NewCatalog(opts.Catalog)
	session := NewSession(catalog)
	store := NewStore(opts.Bookings, opts.Notifier)
	return &View{
		Cal:     cal,
		Catalog: catalog,
		Session: session,
		Store:   store,
		Modal:   NewModal(store, session, opts.Confirmer, opts.Notifier),
		Nav:     NewNavigator(cal),
	}
}

// Load fetches the catalog and the bookings. A catalog failure does not stop
// the bookings from loading; the first error is returned.
func (v *View) Load(ctx context.Context) error {
	catErr := v.Catalog.Load(ctx)
	v.Session.EnsureRoom()
	_, listErr := v.Store.ListAll(ctx)
	if catErr != nil {
		return catErr
	}
	return listErr
}

// Grid renders the current week for the selected room.
func (v *View) Grid() (Grid, bool) {
	room, ok := v.Session.Room()
	if !ok {
		return Grid{}, false
	}
	return BuildGrid(v.Cal, v.Nav.Week(), room, v.Store.Bookings(), v.Store.Loading()), true
}

// OpenCell opens the modal on a grid cell: Viewing when the selected room
// has a booking there, Creating when the cell is bookable.
func (v *View) OpenCell(date time.Time, slot calendar.Slot) error {
	room, ok := v.Session.Room()
	if !ok {
		return fmt.Errorf("%w: no room selected", ErrInvalidTransition)
	}

	key := dtos.SlotKey{SalaID: room.ID, Data: calendar.FormatISO(date), Turno: slot.Code}
	if b, found := v.Store.Find(key); found {
		v.Modal.Open(date, slot, &b)
		return nil
	}
	if v.Cal.IsPast(date) || v.Store.Loading() {
		return fmt.Errorf("%w: %s %s is not bookable", ErrInvalidTransition, key.Data, slot.Code)
	}
	v.Modal.Open(date, slot, nil)
	return nil
}
