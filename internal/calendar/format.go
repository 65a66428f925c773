package calendar

import (
	"fmt"
	"time"
)

var ptWeekdays = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

var ptMonths = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

func WeekdayName(d time.Weekday) string { return ptWeekdays[d] }

func MonthName(m time.Month) string { return ptMonths[m] }

// WeekdayShort is the three-letter header used by the grid ("Dom", "Seg"...).
func WeekdayShort(d time.Weekday) string {
	r := []rune(ptWeekdays[d])
	if len(r) < 3 {
		return string(r)
	}
	return string(r[:3])
}

// FormatDate renders dd/mm/yyyy, or "Data inválida" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Data inválida"
	}
	return t.Format("02/01/2006")
}

// FormatSlot renders a slot on a date for people, e.g.
// "Segunda-feira, 10/03/2025, 08:00–10:00 (A)".
func FormatSlot(s Slot, date time.Time) string {
	tr := s.On(date)
	return fmt.Sprintf("%s, %s, %s–%s (%s)",
		WeekdayName(tr.Start.Weekday()),
		tr.Start.Format("02/01/2006"),
		tr.Start.Format("15:04"),
		tr.End.Format("15:04"),
		s.Code,
	)
}
