// Command agenda is a terminal front-end for the room booking API.
//
//	agenda [-room ID] [-date YYYY-MM-DD] week
//	agenda floors
//	agenda -room ID -date D show   -slot A
//	agenda -room ID -date D book   -slot A -desc "Team sync" [-horario "..."]
//	agenda -room ID -date D edit   -slot A [-desc ...] [-turno B] [-horario ...]
//	agenda -room ID -date D delete -slot A [-yes]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/Leganyst/room-booking/internal/agenda"
	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/client"
	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/dtos"
	"github.com/Leganyst/room-booking/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Logger.WithError(err).Warn("could not read .env")
	}
	utils.InitLoggerTo(os.Stderr, "agenda")

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		utils.Logger.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	roomID := fs.String("room", "", "room id (default: first room of floor 1)")
	dateStr := fs.String("date", "", "a date in the target week, YYYY-MM-DD (default: today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}
	api, err := client.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	confirmer := &promptConfirmer{in: bufio.NewReader(in), out: out}

	view := agenda.NewView(agenda.ViewOptions{
		Catalog:   api,
		Bookings:  api,
		Confirmer: confirmer,
		Notifier:  agenda.LogNotifier{},
	})
	if err := view.Load(ctx); err != nil {
		return err
	}

	if *roomID != "" && !view.Session.SelectRoomByID(*roomID) {
		return fmt.Errorf("sala desconhecida %q", *roomID)
	}
	date := view.Cal.Today()
	if *dateStr != "" {
		if date, err = view.Cal.ParseDate(*dateStr); err != nil {
			return err
		}
	}
	view.Nav.GoTo(date)

	cmd, rest := "week", []string(nil)
	if fs.NArg() > 0 {
		cmd, rest = fs.Arg(0), fs.Args()[1:]
	}

	switch cmd {
	case "week":
		return printWeek(out, view)
	case "floors":
		return printFloors(out, view.Catalog)
	case "show", "book", "edit", "delete":
		return cellCommand(ctx, out, view, confirmer, date, cmd, rest)
	default:
		return fmt.Errorf("comando desconhecido %q", cmd)
	}
}

// promptConfirmer asks on the terminal unless assumeYes is set.
type promptConfirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func (p *promptConfirmer) Confirm(prompt string) bool {
	if p.assumeYes {
		return true
	}
	fmt.Fprintf(p.out, "%s [s/N] ", prompt)
	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

func cellCommand(ctx context.Context, out io.Writer, view *agenda.View, confirmer *promptConfirmer, date time.Time, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	slotCode := fs.String("slot", "", "slot code A-E")
	desc := fs.String("desc", "", "description")
	horario := fs.String("horario", "", "free-text time label")
	turno := fs.String("turno", "", "move the booking to another slot")
	yes := fs.Bool("yes", false, "skip the delete confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	slot, err := calendar.SlotByCode(*slotCode)
	if err != nil {
		return err
	}
	if err := view.OpenCell(date, slot); err != nil {
		return err
	}
	modal := view.Modal
	defer modal.Close()

	switch cmd {
	case "show":
		b, ok := modal.Existing()
		if !ok {
			fmt.Fprintf(out, "%s: livre\n", calendar.FormatSlot(slot, date))
			return nil
		}
		printBooking(out, b, slot, date)
		return nil

	case "book":
		if modal.State() != agenda.Creating {
			return errors.New("turno já agendado")
		}
		if err := modal.UpdateForm(func(d *dtos.BookingDraft) {
			d.Descricao = *desc
			if *horario != "" {
				d.Horario = *horario
			}
		}); err != nil {
			return err
		}
		return modal.Save(ctx)

	case "edit":
		if err := modal.Edit(); err != nil {
			return fmt.Errorf("nada para editar: %w", err)
		}
		if err := modal.UpdateForm(func(d *dtos.BookingDraft) {
			if *desc != "" {
				d.Descricao = *desc
			}
			if *turno != "" {
				d.Turno = *turno
			}
			if *horario != "" {
				d.Horario = *horario
			}
		}); err != nil {
			return err
		}
		return modal.Save(ctx)

	case "delete":
		confirmer.assumeYes = *yes
		return modal.Delete(ctx)
	}
	return nil
}

func printWeek(out io.Writer, view *agenda.View) error {
	grid, ok := view.Grid()
	if !ok {
		return errors.New("nenhuma sala disponível")
	}
	if msg := view.Store.Err(); msg != "" {
		fmt.Fprintf(out, "! %s\n", msg)
	}

	fmt.Fprintf(out, "Sala %s (andar %d, %d lugares, %s)\n\n",
		grid.Room.Descricao, grid.Room.Andar, grid.Room.Capacidade, agenda.StatusLabel(grid.Room.Status))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "Turno")
	for _, day := range grid.Week {
		fmt.Fprintf(tw, "\t%s %s", calendar.WeekdayShort(day.Weekday()), day.Format("02/01"))
	}
	fmt.Fprintln(tw)

	for _, row := range grid.Rows {
		fmt.Fprintf(tw, "%s %s", row.Slot.Code, row.Slot.Hours())
		for _, c := range row.Cells {
			fmt.Fprintf(tw, "\t%s", cellText(c))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func cellText(c agenda.Cell) string {
	switch {
	case c.Booking != nil:
		return truncate(c.Booking.Descricao, 14)
	case c.Bookable && c.Holiday != "":
		return "livre (feriado)"
	case c.Bookable:
		return "livre"
	case c.Holiday != "":
		return "feriado"
	default:
		return "-"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func printFloors(out io.Writer, catalog *agenda.Catalog) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Andar\tSala\tCapacidade\tStatus")
	for _, floor := range catalog.Floors() {
		for _, r := range floor.Salas {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", floor.Andar, r.ID, r.Capacidade, agenda.StatusLabel(r.Status))
		}
	}
	return tw.Flush()
}

func printBooking(out io.Writer, b dtos.Booking, slot calendar.Slot, date time.Time) {
	fmt.Fprintf(out, "%s\n", calendar.FormatSlot(slot, date))
	fmt.Fprintf(out, "  id:        %s\n", b.ID)
	fmt.Fprintf(out, "  sala:      %s\n", b.SalaID)
	fmt.Fprintf(out, "  horário:   %s\n", b.Horario)
	fmt.Fprintf(out, "  descrição: %s\n", b.Descricao)
	if b.CreatedAt != nil {
		fmt.Fprintf(out, "  criado em: %s\n", calendar.FormatDate(*b.CreatedAt))
	}
}
