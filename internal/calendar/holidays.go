package calendar

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// Brazilian national holidays. Carnival and Corpus Christi are optional
// points in most of the country but rooms are usually closed.
var (
	holidayNewYear = &cal.Holiday{
		Name: "Confraternização Universal", Type: cal.ObservancePublic,
		Month: time.January, Day: 1, Func: cal.CalcDayOfMonth,
	}
	holidayCarnival = &cal.Holiday{
		Name: "Carnaval", Type: cal.ObservancePublic,
		Offset: -47, Func: cal.CalcEasterOffset,
	}
	holidayGoodFriday = &cal.Holiday{
		Name: "Sexta-feira Santa", Type: cal.ObservancePublic,
		Offset: -2, Func: cal.CalcEasterOffset,
	}
	holidayTiradentes = &cal.Holiday{
		Name: "Tiradentes", Type: cal.ObservancePublic,
		Month: time.April, Day: 21, Func: cal.CalcDayOfMonth,
	}
	holidayLabourDay = &cal.Holiday{
		Name: "Dia do Trabalhador", Type: cal.ObservancePublic,
		Month: time.May, Day: 1, Func: cal.CalcDayOfMonth,
	}
	holidayCorpusChristi = &cal.Holiday{
		Name: "Corpus Christi", Type: cal.ObservancePublic,
		Offset: 60, Func: cal.CalcEasterOffset,
	}
	holidayIndependence = &cal.Holiday{
		Name: "Independência do Brasil", Type: cal.ObservancePublic,
		Month: time.September, Day: 7, Func: cal.CalcDayOfMonth,
	}
	holidayAparecida = &cal.Holiday{
		Name: "Nossa Senhora Aparecida", Type: cal.ObservancePublic,
		Month: time.October, Day: 12, Func: cal.CalcDayOfMonth,
	}
	holidayAllSouls = &cal.Holiday{
		Name: "Finados", Type: cal.ObservancePublic,
		Month: time.November, Day: 2, Func: cal.CalcDayOfMonth,
	}
	holidayRepublic = &cal.Holiday{
		Name: "Proclamação da República", Type: cal.ObservancePublic,
		Month: time.November, Day: 15, Func: cal.CalcDayOfMonth,
	}
	holidayBlackConsciousness = &cal.Holiday{
		Name: "Dia da Consciência Negra", Type: cal.ObservancePublic,
		Month: time.November, Day: 20, Func: cal.CalcDayOfMonth,
		StartYear: 2024,
	}
	holidayChristmas = &cal.Holiday{
		Name: "Natal", Type: cal.ObservancePublic,
		Month: time.December, Day: 25, Func: cal.CalcDayOfMonth,
	}
)

// HolidayCalendar wraps a business calendar loaded with national holidays.
type HolidayCalendar struct {
	bc *cal.BusinessCalendar
}

func NewHolidayCalendar() *HolidayCalendar {
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(
		holidayNewYear,
		holidayCarnival,
		holidayGoodFriday,
		holidayTiradentes,
		holidayLabourDay,
		holidayCorpusChristi,
		holidayIndependence,
		holidayAparecida,
		holidayAllSouls,
		holidayRepublic,
		holidayBlackConsciousness,
		holidayChristmas,
	)
	return &HolidayCalendar{bc: bc}
}

func (h *HolidayCalendar) Lookup(date time.Time) (string, bool) {
	actual, _, hol := h.bc.IsHoliday(date)
	if !actual || hol == nil {
		return "", false
	}
	return hol.Name, true
}
