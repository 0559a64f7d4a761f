package service

import (
	"context"
	"fmt"
	"net/http"

	"kino-cli/model"
)

func (c *Client) CreateMovie(ctx context.Context, token string, payload model.MovieRequest) (model.Movie, error) {
	var movie model.Movie
	req := request{method: http.MethodPost, path: "/admin/movies", token: token, body: payload}
	if err := c.doJSON(ctx, req, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

func (c *Client) UpdateMovie(ctx context.Context, token string, id int64, payload model.MovieRequest) (model.Movie, error) {
	var movie model.Movie
	req := request{method: http.MethodPut, path: fmt.Sprintf("/admin/movies/%d", id), token: token, body: payload}
	if err := c.doJSON(ctx, req, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

func (c *Client) DeleteMovie(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/admin/movies/%d", id), token: token}, nil)
}

func (c *Client) CreateHall(ctx context.Context, token string, payload model.HallRequest) (model.Hall, error) {
	var hall model.Hall
	req := request{method: http.MethodPost, path: "/admin/halls", token: token, body: payload}
	if err := c.doJSON(ctx, req, &hall); err != nil {
		return model.Hall{}, err
	}
	return hall, nil
}

// UpdateHall renames a hall. Row and column counts are fixed after creation.
func (c *Client) UpdateHall(ctx context.Context, token string, id int64, name string) (model.Hall, error) {
	var hall model.Hall
	req := request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/halls/%d", id),
		token:  token,
		body:   model.HallRequest{Name: name},
	}
	if err := c.doJSON(ctx, req, &hall); err != nil {
		return model.Hall{}, err
	}
	return hall, nil
}

func (c *Client) DeleteHall(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/admin/halls/%d", id), token: token}, nil)
}

func (c *Client) CreateSession(ctx context.Context, token string, payload model.SessionRequest) (model.Session, error) {
	var session model.Session
	req := request{method: http.MethodPost, path: "/admin/sessions", token: token, body: payload}
	if err := c.doJSON(ctx, req, &session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (c *Client) UpdateSession(ctx context.Context, token string, id int64, payload model.SessionRequest) (model.Session, error) {
	var session model.Session
	req := request{method: http.MethodPut, path: fmt.Sprintf("/admin/sessions/%d", id), token: token, body: payload}
	if err := c.doJSON(ctx, req, &session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (c *Client) DeleteSession(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/admin/sessions/%d", id), token: token}, nil)
}

// UpdateBookingStatus sets a booking to confirmed or cancelled.
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, id int64, status string) (model.Booking, error) {
	var booking model.Booking
	req := request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/admin/bookings/%d/status", id),
		token:  token,
		body:   model.BookingStatusRequest{Status: status},
	}
	if err := c.doJSON(ctx, req, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}
