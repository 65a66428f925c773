package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// Client talks to the booking REST API. It never retries.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New builds a client for baseURL (e.g. http://localhost:3000/api).
// timeout <= 0 means 10s.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func NewFromConfig(cfg *config.ClientConfig) (*Client, error) {
	return New(cfg.BaseURL, cfg.Timeout)
}

// Result is a decoded envelope. A 2xx answer with success=false is not an
// error: Success is false and Message holds what the server said.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
}

func (c *Client) ListBookings(ctx context.Context) (Result[[]dtos.Booking], error) {
	return call[[]dtos.Booking](ctx, c, http.MethodGet, "/agendamentos", nil)
}

func (c *Client) GetBooking(ctx context.Context, id string) (Result[dtos.Booking], error) {
	return call[dtos.Booking](ctx, c, http.MethodGet, "/agendamentos/"+url.PathEscape(id), nil)
}

func (c *Client) CreateBooking(ctx context.Context, draft dtos.BookingDraft) (Result[dtos.Booking], error) {
	return call[dtos.Booking](ctx, c, http.MethodPost, "/agendamentos", draft)
}

func (c *Client) UpdateBooking(ctx context.Context, id string, patch dtos.BookingPatch) (Result[dtos.Booking], error) {
	return call[dtos.Booking](ctx, c, http.MethodPut, "/agendamentos/"+url.PathEscape(id), patch)
}

func (c *Client) DeleteBooking(ctx context.Context, id string) (Result[json.RawMessage], error) {
	return call[json.RawMessage](ctx, c, http.MethodDelete, "/agendamentos/"+url.PathEscape(id), nil)
}

// BookingHistory lists the audit events of a booking, oldest first.
func (c *Client) BookingHistory(ctx context.Context, id string) (Result[[]dtos.Event], error) {
	return call[[]dtos.Event](ctx, c, http.MethodGet, "/agendamentos/"+url.PathEscape(id)+"/historico", nil)
}

func (c *Client) ListFloors(ctx context.Context) (Result[[]dtos.Floor], error) {
	return call[[]dtos.Floor](ctx, c, http.MethodGet, "/andares", nil)
}

func (c *Client) GetRoom(ctx context.Context, id string) (Result[dtos.Room], error) {
	return call[dtos.Room](ctx, c, http.MethodGet, "/salas/"+url.PathEscape(id), nil)
}

func (c *Client) Availability(ctx context.Context, roomID, date string) (Result[dtos.Availability], error) {
	path := "/salas/" + url.PathEscape(roomID) + "/disponibilidade?data=" + url.QueryEscape(date)
	return call[dtos.Availability](ctx, c, http.MethodGet, path, nil)
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (Result[T], error) {
	var out Result[T]

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return out, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &NetworkError{Err: err}
	}

	if len(bytes.TrimSpace(raw)) == 0 && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		out.Success = true
		return out, nil
	}

	var env dtos.Envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if decodeErr == nil {
			msg = env.Message
		}
		if resp.StatusCode == http.StatusNotFound {
			return out, &NotFoundError{Message: msg}
		}
		srvErr := &ServerMessageError{StatusCode: resp.StatusCode, Message: msg}
		if decodeErr == nil {
			srvErr.Code = env.Code
			srvErr.Details = env.Errors
		}
		return out, srvErr
	}

	if decodeErr != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(decodeErr, &syntaxErr) || errors.Is(decodeErr, io.ErrUnexpectedEOF) {
			return out, &ServerMessageError{StatusCode: resp.StatusCode, Message: "invalid response from server"}
		}
		return out, fmt.Errorf("decode response: %w", decodeErr)
	}

	out.Success = env.Success
	out.Data = env.Data
	out.Message = env.Message
	return out, nil
}
