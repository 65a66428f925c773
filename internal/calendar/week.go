package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISODate is the wire format for every booking date and query parameter.
const ISODate = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Month is one entry of the month picker. Month is the calendar month
// (time.January == 1).
type Month struct {
	Index int
	Name  string
	Year  int
	Month time.Month
}

// Calendar answers date questions relative to its clock's "today".
type Calendar struct {
	clock    Clock
	loc      *time.Location
	holidays *HolidayCalendar
}

// New builds a Calendar. A nil clock means the wall clock; a nil loc means
// time.Local.
func New(clock Clock, loc *time.Location) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{clock: clock, loc: loc, holidays: NewHolidayCalendar()}
}

func (c *Calendar) Location() *time.Location { return c.loc }

// Today is the current date at midnight in the calendar's location.
func (c *Calendar) Today() time.Time {
	return DateOnly(c.clock.Now().In(c.loc))
}

// WeekOf returns the Sunday on or before date followed by the next six days.
func WeekOf(date time.Time) []time.Time {
	start := DateOnly(date)
	start = start.AddDate(0, 0, -int(start.Weekday()))

	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

func (c *Calendar) WeekOf(date time.Time) []time.Time {
	return WeekOf(date.In(c.loc))
}

// Months lists count months starting at the current one. Each entry is
// today plus i months with AddDate's normalisation, so Jan 31 + 1 month
// lands in March.
func (c *Calendar) Months(count int) []Month {
	if count <= 0 {
		count = 6
	}
	now := c.clock.Now().In(c.loc)
	out := make([]Month, 0, count)
	for i := 0; i < count; i++ {
		d := now.AddDate(0, i, 0)
		out = append(out, Month{
			Index: i,
			Name:  MonthName(d.Month()),
			Year:  d.Year(),
			Month: d.Month(),
		})
	}
	return out
}

// IsPast reports whether date is today or earlier. Today counts as past so
// that only future days accept new bookings.
func (c *Calendar) IsPast(date time.Time) bool {
	d := DateOnly(date.In(c.loc))
	return !d.After(c.Today())
}

func (c *Calendar) IsToday(date time.Time) bool {
	return DateOnly(date.In(c.loc)).Equal(c.Today())
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Sunday || wd == time.Saturday
}

func (c *Calendar) IsWeekend(date time.Time) bool {
	return IsWeekend(date.In(c.loc))
}

// Holiday returns the national holiday name for date, if any.
func (c *Calendar) Holiday(date time.Time) (string, bool) {
	return c.holidays.Lookup(date.In(c.loc))
}

// ParseDate parses a YYYY-MM-DD string at midnight in the calendar's
// location.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, c.loc)
}

func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(ISODate, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatISO renders the date part of t as YYYY-MM-DD in t's location.
func FormatISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISODate)
}

func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
