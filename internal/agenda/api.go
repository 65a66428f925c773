package agenda

import (
	"context"
	"encoding/json"

	"github.com/Leganyst/room-booking/internal/client"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// BookingAPI is the remote side of the Store. *client.Client implements it.
type BookingAPI interface {
	ListBookings(ctx context.Context) (client.Result[[]dtos.Booking], error)
	CreateBooking(ctx context.Context, draft dtos.BookingDraft) (client.Result[dtos.Booking], error)
	UpdateBooking(ctx context.Context, id string, patch dtos.BookingPatch) (client.Result[dtos.Booking], error)
	DeleteBooking(ctx context.Context, id string) (client.Result[json.RawMessage], error)
}

// CatalogAPI is the remote side of the Catalog.
type CatalogAPI interface {
	ListFloors(ctx context.Context) (client.Result[[]dtos.Floor], error)
}

var (
	_ BookingAPI = (*client.Client)(nil)
	_ CatalogAPI = (*client.Client)(nil)
)
