package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/room-booking/internal/db"
	"github.com/Leganyst/room-booking/internal/model"
	"github.com/Leganyst/room-booking/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRoomRepository_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRoomRepository(newTestDB(t))

	n, err := repo.Seed(ctx, model.DefaultRooms())
	require.NoError(t, err)
	require.EqualValues(t, 25, n)

	n, err = repo.Seed(ctx, model.DefaultRooms())
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 25)
	require.Equal(t, "mock-101", rooms[0].ID)

	floor2, err := repo.ListByFloor(ctx, 2)
	require.NoError(t, err)
	require.Len(t, floor2, 5)

	r, err := repo.GetByID(ctx, "mock-203")
	require.NoError(t, err)
	require.Equal(t, model.RoomStatusMaintenance, r.Status)

	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepository_CRUDAndSlotKey(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	_, err := NewGormRoomRepository(gdb).Seed(ctx, model.DefaultRooms())
	require.NoError(t, err)

	repo := NewGormBookingRepository(gdb)

	b := &model.Booking{
		SalaID:    "mock-101",
		Data:      model.NewDate(day(2025, 3, 10)),
		Turno:     "A",
		Horario:   "Manhã",
		Descricao: "Team sync",
	}
	require.NoError(t, repo.Create(ctx, b))
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", b.ID.String())

	got, err := repo.GetByKey(ctx, "mock-101", time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), "A")
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)
	require.Equal(t, day(2025, 3, 10), got.Date())

	dup := &model.Booking{
		SalaID:    "mock-101",
		Data:      model.NewDate(day(2025, 3, 10)),
		Turno:     "A",
		Descricao: "Second",
	}
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected duplicated key, got %v", err)

	got.Descricao = "Team sync v2"
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Team sync v2", reloaded.Descricao)
	require.Equal(t, "A", reloaded.Turno)

	sameDay, err := repo.ListByRoomAndDate(ctx, "mock-101", day(2025, 3, 10))
	require.NoError(t, err)
	require.Len(t, sameDay, 1)

	require.NoError(t, repo.Delete(ctx, b.ID))
	require.ErrorIs(t, repo.Delete(ctx, b.ID), gorm.ErrRecordNotFound)

	all, err := repo.List(ctx, BookingFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestBookingRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	_, err := NewGormRoomRepository(gdb).Seed(ctx, model.DefaultRooms())
	require.NoError(t, err)
	repo := NewGormBookingRepository(gdb)

	seed := []model.Booking{
		{SalaID: "mock-101", Data: model.NewDate(day(2025, 3, 11)), Turno: "B", Descricao: "b"},
		{SalaID: "mock-101", Data: model.NewDate(day(2025, 3, 10)), Turno: "C", Descricao: "c"},
		{SalaID: "mock-102", Data: model.NewDate(day(2025, 3, 10)), Turno: "A", Descricao: "a"},
		{SalaID: "mock-101", Data: model.NewDate(day(2025, 3, 20)), Turno: "A", Descricao: "late"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	from, to := day(2025, 3, 10), day(2025, 3, 15)
	got, err := repo.List(ctx, BookingFilter{SalaID: "mock-101", From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "C", got[0].Turno)
	require.Equal(t, "B", got[1].Turno)
}

func TestBookingRepository_FreeSlotLookupIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	utils.InitLoggerTo(&buf, "repo-test")
	t.Cleanup(func() { utils.InitLoggerTo(&bytes.Buffer{}, "room-booking") })

	repo := NewGormBookingRepository(newTestDB(t))
	_, err := repo.GetByKey(context.Background(), "mock-101", day(2025, 3, 10), "C")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NotContains(t, buf.String(), "record not found")
}
