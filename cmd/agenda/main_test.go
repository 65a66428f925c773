package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Leganyst/room-booking/internal/agenda"
	"github.com/Leganyst/room-booking/internal/apptest"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// Far enough ahead that the wall clock never makes it past.
const futureDate = "2099-03-10"

func agendaCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, strings.NewReader(stdin), &out))
	return out.String()
}

func TestAgendaCLI(t *testing.T) {
	srv, _ := apptest.NewServer(t)
	t.Setenv("AGENDA_API_URL", srv.URL+"/api")

	floors := agendaCLI(t, "", "floors")
	require.Contains(t, floors, "mock-101")
	require.Contains(t, floors, "Em Manutenção")

	agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "book", "-slot", "A", "-desc", "Team sync")

	shown := agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "show", "-slot", "A")
	require.Contains(t, shown, "Team sync")
	require.Contains(t, shown, "Manhã")

	week := agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "week")
	require.Contains(t, week, "Team sync")
	require.Contains(t, week, "livre")

	agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "edit", "-slot", "A", "-desc", "Team sync v2")
	require.Contains(t, agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "show", "-slot", "A"), "Team sync v2")

	// Declined prompt keeps the booking.
	out := agendaCLI(t, "n\n", "-room", "mock-101", "-date", futureDate, "delete", "-slot", "A")
	require.Contains(t, out, "Tem certeza")
	require.Contains(t, agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "show", "-slot", "A"), "Team sync v2")

	agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "delete", "-slot", "A", "-yes")
	require.Contains(t, agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "show", "-slot", "A"), "livre")
}

func TestAgendaCLI_Errors(t *testing.T) {
	srv, _ := apptest.NewServer(t)
	t.Setenv("AGENDA_API_URL", srv.URL+"/api")

	var out bytes.Buffer
	ctx := context.Background()
	require.ErrorContains(t, run(ctx, []string{"-room", "mock-999"}, strings.NewReader(""), &out), "sala desconhecida")
	require.Error(t, run(ctx, []string{"-date", "10/03/2099"}, strings.NewReader(""), &out))
	require.Error(t, run(ctx, []string{"-date", futureDate, "book", "-slot", "Z"}, strings.NewReader(""), &out))
	require.Error(t, run(ctx, []string{"-date", futureDate, "book", "-slot", "A"}, strings.NewReader(""), &out))
	require.ErrorContains(t, run(ctx, []string{"nope"}, strings.NewReader(""), &out), "comando desconhecido")
}

func TestCellText(t *testing.T) {
	booked := &dtos.Booking{Descricao: "Planejamento trimestral"}
	cases := []struct {
		name string
		cell agenda.Cell
		want string
	}{
		{"booked", agenda.Cell{Booking: booked}, "Planejamento …"},
		{"bookable holiday", agenda.Cell{Bookable: true, Holiday: "Tiradentes"}, "livre (feriado)"},
		{"past holiday", agenda.Cell{Holiday: "Tiradentes"}, "feriado"},
		{"bookable", agenda.Cell{Bookable: true}, "livre"},
		{"past", agenda.Cell{}, "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cellText(tc.cell))
		})
	}
}

func TestAgendaCLI_EditMovesSlotAndHorario(t *testing.T) {
	srv, _ := apptest.NewServer(t)
	t.Setenv("AGENDA_API_URL", srv.URL+"/api")

	agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "book", "-slot", "A", "-desc", "Team sync")
	agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "edit", "-slot", "A", "-turno", "C")

	moved := agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "show", "-slot", "C")
	require.Contains(t, moved, "Team sync")
	require.Contains(t, moved, "Tarde")
	require.NotContains(t, moved, "Manhã")
	require.Contains(t, agendaCLI(t, "", "-room", "mock-101", "-date", futureDate, "show", "-slot", "A"), "livre")
}
