package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/client"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// Wednesday 2025-03-05.
func fixedCalendar() *calendar.Calendar {
	return calendar.New(calendar.FixedClock{At: time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)}, time.UTC)
}

func cellAt(t *testing.T, g Grid, code string, date time.Time) Cell {
	t.Helper()
	for _, row := range g.Rows {
		if row.Slot.Code != code {
			continue
		}
		for _, c := range row.Cells {
			if c.Date.Equal(date) {
				return c
			}
		}
	}
	t.Fatalf("no cell for %s on %s", code, calendar.FormatISO(date))
	return Cell{}
}

func TestBuildGrid(t *testing.T) {
	cal := fixedCalendar()
	week := cal.WeekOf(cal.Today())
	room := dtos.Room{ID: "mock-101", Andar: 1}
	bookings := []dtos.Booking{
		{ID: "1", SalaID: "mock-101", Data: "2025-03-06", Turno: "B", Descricao: "Planning"},
		{ID: "2", SalaID: "mock-102", Data: "2025-03-07", Turno: "A", Descricao: "Other room"},
	}

	g := BuildGrid(cal, week, room, bookings, false)

	require.Len(t, g.Rows, 5)
	for _, row := range g.Rows {
		require.Len(t, row.Cells, 7)
	}
	require.Equal(t, time.Sunday, g.Week[0].Weekday())

	booked := cellAt(t, g, "B", march(6))
	require.NotNil(t, booked.Booking)
	require.Equal(t, "Planning", booked.Booking.Descricao)
	require.False(t, booked.Bookable)

	require.Nil(t, cellAt(t, g, "A", march(7)).Booking)
	require.True(t, cellAt(t, g, "A", march(7)).Bookable)

	require.False(t, cellAt(t, g, "A", march(4)).Bookable)

	today := cellAt(t, g, "E", march(5))
	require.True(t, today.Today)
	require.False(t, today.Bookable)
	require.True(t, cellAt(t, g, "E", march(6)).Bookable)

	require.True(t, cellAt(t, g, "A", march(8)).Weekend)
	require.True(t, cellAt(t, g, "A", march(2)).Weekend)
}

func TestBuildGrid_LoadingDisablesBooking(t *testing.T) {
	cal := fixedCalendar()
	g := BuildGrid(cal, cal.WeekOf(march(10)), dtos.Room{ID: "mock-101"}, nil, true)
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			require.False(t, c.Bookable)
		}
	}
}

func TestBuildGrid_Holiday(t *testing.T) {
	cal := fixedCalendar()
	tiradentes := time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)
	g := BuildGrid(cal, cal.WeekOf(tiradentes), dtos.Room{ID: "mock-101"}, nil, false)
	require.NotEmpty(t, cellAt(t, g, "A", tiradentes).Holiday)
}

func TestNavigator(t *testing.T) {
	nav := NewNavigator(fixedCalendar())

	require.Equal(t, march(2), nav.Week()[0])
	require.Equal(t, march(9), nav.NextWeek()[0])
	require.Equal(t, march(16), nav.NextWeek()[0])
	require.Equal(t, march(9), nav.PrevWeek()[0])
	require.Equal(t, march(2), nav.Today()[0])

	week := nav.GoTo(time.Date(2025, 6, 18, 9, 30, 0, 0, time.UTC))
	require.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), week[0])
	require.Equal(t, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), week[6])
}

func TestCatalog(t *testing.T) {
	api := newFakeAPI()
	c := NewCatalog(api)
	require.NoError(t, c.Load(context.Background()))

	floors := c.Floors()
	require.Len(t, floors, 2)
	require.Equal(t, 1, floors[0].Andar)

	rooms := c.Rooms()
	require.Equal(t, "mock-101", rooms[0].ID)
	require.Equal(t, 2, c.ByFloor(2)[0].Andar)

	var ids []string
	for _, r := range c.Available() {
		ids = append(ids, r.ID)
	}
	require.ElementsMatch(t, []string{"mock-101", "mock-201"}, ids)

	r, ok := c.ByID("mock-203")
	require.True(t, ok)
	require.Equal(t, "Em Manutenção", StatusLabel(r.Status))
	_, ok = c.ByID("mock-999")
	require.False(t, ok)
}

func TestCatalog_FailedLoadKeepsRooms(t *testing.T) {
	api := newFakeAPI()
	c := NewCatalog(api)
	require.NoError(t, c.Load(context.Background()))

	api.floorsErr = &client.NetworkError{Err: errors.New("dial tcp: refused")}
	require.Error(t, c.Load(context.Background()))
	require.Equal(t, client.MsgServerUnavailable, c.Err())
	require.Len(t, c.Rooms(), 4)
	require.False(t, c.Loading())
}

func TestSession(t *testing.T) {
	api := newFakeAPI()
	c := NewCatalog(api)

	empty := NewSession(c)
	_, ok := empty.Room()
	require.False(t, ok)
	floor, ok := empty.Floor()
	require.True(t, ok)
	require.Equal(t, 1, floor)

	require.NoError(t, c.Load(context.Background()))
	empty.EnsureRoom()
	room, ok := empty.Room()
	require.True(t, ok)
	require.Equal(t, "mock-101", room.ID)

	s := NewSession(c)
	s.SelectFloor(2)
	room, _ = s.Room()
	require.Equal(t, "mock-201", room.ID)

	s.ToggleFloor(2)
	_, ok = s.Floor()
	require.False(t, ok)
	room, _ = s.Room()
	require.Equal(t, "mock-201", room.ID)

	require.True(t, s.SelectRoomByID("mock-104"))
	floor, _ = s.Floor()
	require.Equal(t, 1, floor)
	require.False(t, s.SelectRoomByID("nope"))

	s.Reset()
	require.False(t, s.HasSelection())
}

func TestView_OpenCell(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	v := NewView(ViewOptions{
		Calendar:  fixedCalendar(),
		Catalog:   api,
		Bookings:  api,
		Confirmer: answer(true),
	})
	require.NoError(t, v.Load(ctx))

	_, err := v.Store.Create(ctx, teamSync())
	require.NoError(t, err)

	g, ok := v.Grid()
	require.True(t, ok)
	require.Equal(t, "mock-101", g.Room.ID)

	require.NoError(t, v.OpenCell(march(6), slot(t, "B")))
	require.Equal(t, Creating, v.Modal.State())
	v.Modal.Close()

	require.ErrorIs(t, v.OpenCell(march(5), slot(t, "B")), ErrInvalidTransition)
	require.Equal(t, Closed, v.Modal.State())

	v.Nav.GoTo(march(10))
	require.NoError(t, v.OpenCell(march(10), slot(t, "A")))
	require.Equal(t, Viewing, v.Modal.State())
	b, ok := v.Modal.Existing()
	require.True(t, ok)
	require.Equal(t, "Team sync", b.Descricao)

	v.Session.Reset()
	_, ok = v.Grid()
	require.False(t, ok)
	require.ErrorIs(t, v.OpenCell(march(10), slot(t, "A")), ErrInvalidTransition)
}
