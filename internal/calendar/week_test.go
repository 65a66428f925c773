package calendar

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, year int, month time.Month, day int) time.Time {
	t.Helper()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixedCalendar(t *testing.T, at time.Time) *Calendar {
	t.Helper()
	return New(FixedClock{At: at}, time.UTC)
}

func TestWeekOf_StartsOnSunday(t *testing.T) {
	cases := []time.Time{
		mustDate(t, 2025, 3, 12),                      // Wednesday
		mustDate(t, 2025, 3, 9),                       // Sunday
		mustDate(t, 2025, 3, 15),                      // Saturday
		time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC), // Saturday, late
		mustDate(t, 2024, 12, 31),                     // crosses year
	}

	for _, d := range cases {
		week := WeekOf(d)
		if len(week) != 7 {
			t.Fatalf("WeekOf(%s): expected 7 days, got %d", d, len(week))
		}
		if week[0].Weekday() != time.Sunday {
			t.Fatalf("WeekOf(%s): first day is %s, want Sunday", d, week[0].Weekday())
		}
		for i := 1; i < len(week); i++ {
			if !week[i].Equal(week[i-1].AddDate(0, 0, 1)) {
				t.Fatalf("WeekOf(%s): day %d = %s is not consecutive", d, i, week[i])
			}
		}
		if DateOnly(d).Before(week[0]) || DateOnly(d).After(week[6]) {
			t.Fatalf("WeekOf(%s): date outside returned week %s..%s", d, week[0], week[6])
		}
	}
}

func TestWeekOf_KnownWeek(t *testing.T) {
	week := WeekOf(mustDate(t, 2025, 3, 12))
	if !week[0].Equal(mustDate(t, 2025, 3, 9)) {
		t.Fatalf("expected week to start 2025-03-09, got %s", FormatISO(week[0]))
	}
	if !week[6].Equal(mustDate(t, 2025, 3, 15)) {
		t.Fatalf("expected week to end 2025-03-15, got %s", FormatISO(week[6]))
	}
}

func TestIsPast_TodayIsNotBookable(t *testing.T) {
	c := fixedCalendar(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC))

	if !c.IsPast(mustDate(t, 2025, 3, 9)) {
		t.Fatalf("expected yesterday to be past")
	}
	if !c.IsPast(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected today to count as past")
	}
	if c.IsPast(mustDate(t, 2025, 3, 11)) {
		t.Fatalf("expected tomorrow to be bookable")
	}
}

func TestIsTodayAndWeekend(t *testing.T) {
	c := fixedCalendar(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	if !c.IsToday(time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected same day to be today")
	}
	if c.IsToday(mustDate(t, 2025, 3, 11)) {
		t.Fatalf("tomorrow is not today")
	}
	if !IsWeekend(mustDate(t, 2025, 3, 9)) || !IsWeekend(mustDate(t, 2025, 3, 15)) {
		t.Fatalf("expected Sunday and Saturday to be weekend")
	}
	if c.IsWeekend(mustDate(t, 2025, 3, 12)) {
		t.Fatalf("Wednesday is not weekend")
	}
}

func TestMonths_SixFromCurrent(t *testing.T) {
	c := fixedCalendar(t, time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC))

	months := c.Months(0)
	if len(months) != 6 {
		t.Fatalf("expected default of 6 months, got %d", len(months))
	}
	want := []struct {
		year  int
		month time.Month
		name  string
	}{
		{2025, time.October, "outubro"},
		{2025, time.November, "novembro"},
		{2025, time.December, "dezembro"},
		{2026, time.January, "janeiro"},
		{2026, time.February, "fevereiro"},
		{2026, time.March, "março"},
	}
	for i, m := range months {
		if m.Index != i || m.Year != want[i].year || m.Month != want[i].month || m.Name != want[i].name {
			t.Fatalf("month %d: got %+v, want %+v", i, m, want[i])
		}
	}
}

func TestMonths_RollsOverLikeAddDate(t *testing.T) {
	c := fixedCalendar(t, time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC))

	months := c.Months(2)
	if months[1].Month != time.March {
		t.Fatalf("expected Jan 31 + 1 month to roll into March, got %s", months[1].Month)
	}
}

func TestParseDate(t *testing.T) {
	c := fixedCalendar(t, time.Now())

	d, err := c.ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatISO(d) != "2025-03-10" {
		t.Fatalf("round trip mismatch: %s", FormatISO(d))
	}

	for _, bad := range []string{"", "10/03/2025", "2025-13-01"} {
		if _, err := c.ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestHoliday(t *testing.T) {
	c := fixedCalendar(t, time.Now())

	cases := []struct {
		date time.Time
		name string
	}{
		{mustDate(t, 2025, 4, 21), "Tiradentes"},
		{mustDate(t, 2025, 4, 18), "Sexta-feira Santa"},
		{mustDate(t, 2025, 3, 4), "Carnaval"},
		{mustDate(t, 2025, 12, 25), "Natal"},
	}
	for _, tc := range cases {
		name, ok := c.Holiday(tc.date)
		if !ok || name != tc.name {
			t.Fatalf("Holiday(%s) = %q, %v; want %q", FormatISO(tc.date), name, ok, tc.name)
		}
	}

	if name, ok := c.Holiday(mustDate(t, 2025, 3, 10)); ok {
		t.Fatalf("unexpected holiday %q on 2025-03-10", name)
	}
}
