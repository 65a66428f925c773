package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownSlot = errors.New("unknown slot code")

// Period groups slots inside a day.
type Period int

const (
	PeriodMorning Period = iota
	PeriodAfternoon
	PeriodEvening
)

func (p Period) String() string {
	switch p {
	case PeriodMorning:
		return "Manhã"
	case PeriodAfternoon:
		return "Tarde"
	case PeriodEvening:
		return "Noite"
	default:
		return "Turno desconhecido"
	}
}

// Slot is one of the fixed daily intervals a room can be booked for.
type Slot struct {
	Index  int
	Code   string // "A".."E", used on the wire as turno
	Start  string // "HH:MM"
	End    string // "HH:MM"
	Period Period
}

// Name is the display name stored in Booking.horario by default.
func (s Slot) Name() string { return s.Period.String() }

// Hours renders "08:00 - 10:00".
func (s Slot) Hours() string { return s.Start + " - " + s.End }

// Label renders "Manhã (A)".
func (s Slot) Label() string { return fmt.Sprintf("%s (%s)", s.Name(), s.Code) }

// On places the slot on a calendar date in the date's location.
func (s Slot) On(date time.Time) TimeRange {
	day := DateOnly(date)
	return TimeRange{
		Start: day.Add(clockOffset(s.Start)),
		End:   day.Add(clockOffset(s.End)),
	}
}

func clockOffset(hhmm string) time.Duration {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

var slots = [...]Slot{
	{Index: 0, Code: "A", Start: "08:00", End: "10:00", Period: PeriodMorning},
	{Index: 1, Code: "B", Start: "10:00", End: "12:00", Period: PeriodMorning},
	{Index: 2, Code: "C", Start: "13:00", End: "15:00", Period: PeriodAfternoon},
	{Index: 3, Code: "D", Start: "15:00", End: "17:00", Period: PeriodAfternoon},
	{Index: 4, Code: "E", Start: "18:00", End: "20:00", Period: PeriodEvening},
}

// Slots returns the ordered daily slots. The slice is a copy.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots[:])
	return out
}

func SlotByCode(code string) (Slot, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range slots {
		if s.Code == code {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, code)
}

func SlotByIndex(i int) (Slot, error) {
	if i < 0 || i >= len(slots) {
		return Slot{}, fmt.Errorf("%w: index %d", ErrUnknownSlot, i)
	}
	return slots[i], nil
}

// IsSlotCode reports whether code names one of the fixed slots.
func IsSlotCode(code string) bool {
	_, err := SlotByCode(code)
	return err == nil
}
