package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"kino-cli/model"
)

// CreateBooking submits a booking. The server decides the final price.
func (c *Client) CreateBooking(ctx context.Context, token string, payload model.BookingRequest) (model.Booking, error) {
	if token == "" {
		return model.Booking{}, errTokenRequired
	}
	if payload.SessionId <= 0 || len(payload.SeatIds) == 0 {
		return model.Booking{}, errors.New("session id and seat ids are required")
	}
	var booking model.Booking
	req := request{method: http.MethodPost, path: "/bookings", token: token, body: payload}
	if err := c.doJSON(ctx, req, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

func (c *Client) ListMyBookings(ctx context.Context, token string) ([]model.Booking, error) {
	if token == "" {
		return nil, errTokenRequired
	}
	var bookings []model.Booking
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/bookings/mine", token: token}, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64) (model.Booking, error) {
	if token == "" {
		return model.Booking{}, errTokenRequired
	}
	var booking model.Booking
	req := request{method: http.MethodPatch, path: fmt.Sprintf("/bookings/%d/cancel", bookingID), token: token}
	if err := c.doJSON(ctx, req, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// BookingQR downloads the PNG QR code of a booking.
func (c *Client) BookingQR(ctx context.Context, token string, bookingID int64) (model.Blob, error) {
	if token == "" {
		return model.Blob{}, errTokenRequired
	}
	return c.doBlob(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/bookings/%d/qr", bookingID), token: token})
}

// BookingTicket downloads the PDF ticket of a booking.
func (c *Client) BookingTicket(ctx context.Context, token string, bookingID int64) (model.Blob, error) {
	if token == "" {
		return model.Blob{}, errTokenRequired
	}
	return c.doBlob(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/bookings/%d/ticket", bookingID), token: token})
}
