package agenda

import (
	"time"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// Cell is one (slot, date) position of the weekly grid.
type Cell struct {
	Date    time.Time
	Slot    calendar.Slot
	Booking *dtos.Booking
	// Bookable is set on empty cells that accept a new booking.
	Bookable bool
	Today    bool
	Weekend  bool
	Holiday  string
}

type Row struct {
	Slot  calendar.Slot
	Cells []Cell
}

type Grid struct {
	Room dtos.Room
	Week []time.Time
	Rows []Row
}

// BuildGrid lays out the week for room: one row per slot, one cell per day.
// A cell shows the booking whose (sala_id, data, turno) matches; empty cells
// are bookable only on future days while the store is idle.
func BuildGrid(cal *calendar.Calendar, week []time.Time, room dtos.Room, bookings []dtos.Booking, loading bool) Grid {
	index := make(map[dtos.SlotKey]int, len(bookings))
	for i, b := range bookings {
		if b.SalaID == room.ID {
			index[b.Key()] = i
		}
	}

	g := Grid{Room: room, Week: week}
	for _, slot := range calendar.Slots() {
		row := Row{Slot: slot, Cells: make([]Cell, 0, len(week))}
		for _, date := range week {
			cell := Cell{
				Date:    date,
				Slot:    slot,
				Today:   cal.IsToday(date),
				Weekend: cal.IsWeekend(date),
			}
			if name, ok := cal.Holiday(date); ok {
				cell.Holiday = name
			}

			key := dtos.SlotKey{SalaID: room.ID, Data: calendar.FormatISO(date), Turno: slot.Code}
			if i, ok := index[key]; ok {
				b := bookings[i]
				cell.Booking = &b
			} else {
				cell.Bookable = !cal.IsPast(date) && !loading
			}
			row.Cells = append(row.Cells, cell)
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// Navigator tracks the week on screen.
type Navigator struct {
	cal   *calendar.Calendar
	focus time.Time
}

func NewNavigator(cal *calendar.Calendar) *Navigator {
	return &Navigator{cal: cal, focus: cal.Today()}
}

func (n *Navigator) Week() []time.Time { return n.cal.WeekOf(n.focus) }

func (n *Navigator) NextWeek() []time.Time {
	n.focus = n.focus.AddDate(0, 0, 7)
	return n.Week()
}

func (n *Navigator) PrevWeek() []time.Time {
	n.focus = n.focus.AddDate(0, 0, -7)
	return n.Week()
}

// Today jumps back to the current week.
func (n *Navigator) Today() []time.Time {
	n.focus = n.cal.Today()
	return n.Week()
}

// GoTo focuses the week containing date, e.g. from the month picker.
func (n *Navigator) GoTo(date time.Time) []time.Time {
	n.focus = calendar.DateOnly(date)
	return n.Week()
}
