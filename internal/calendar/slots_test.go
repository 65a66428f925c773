package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestSlots_FixedOrder(t *testing.T) {
	got := Slots()
	if len(got) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(got))
	}
	codes := ""
	for i, s := range got {
		if s.Index != i {
			t.Fatalf("slot %s has index %d, want %d", s.Code, s.Index, i)
		}
		codes += s.Code
	}
	if codes != "ABCDE" {
		t.Fatalf("expected codes ABCDE, got %s", codes)
	}

	got[0].Code = "Z"
	if Slots()[0].Code != "A" {
		t.Fatalf("Slots must return a copy")
	}
}

func TestSlotByCode(t *testing.T) {
	s, err := SlotByCode(" c ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Code != "C" || s.Period != PeriodAfternoon || s.Hours() != "13:00 - 15:00" {
		t.Fatalf("unexpected slot %+v", s)
	}
	if s.Name() != "Tarde" || s.Label() != "Tarde (C)" {
		t.Fatalf("unexpected labels %q / %q", s.Name(), s.Label())
	}

	if _, err := SlotByCode("F"); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
	if _, err := SlotByIndex(5); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot for index 5, got %v", err)
	}
}

func TestSlotOn(t *testing.T) {
	s, _ := SlotByCode("E")
	tr := s.On(time.Date(2025, 3, 10, 15, 45, 0, 0, time.UTC))

	if !tr.Start.Equal(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %s", tr.Start)
	}
	if !tr.End.Equal(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %s", tr.End)
	}
}

func TestFormatSlot(t *testing.T) {
	s, _ := SlotByCode("A")
	got := FormatSlot(s, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	want := "Segunda-feira, 10/03/2025, 08:00–10:00 (A)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if FormatDate(time.Time{}) != "Data inválida" {
		t.Fatalf("zero date should be invalid")
	}
	if WeekdayShort(time.Saturday) != "Sáb" {
		t.Fatalf("unexpected short weekday %q", WeekdayShort(time.Saturday))
	}
}
