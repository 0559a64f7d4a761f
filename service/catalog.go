package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"kino-cli/model"
)

// ListMovies returns the full catalog.
func (c *Client) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return listJSON[model.Movie](ctx, c, request{method: http.MethodGet, path: "/movies"}, "movies")
}

// ListSessions returns sessions for a movie, or every session when movieID is zero.
func (c *Client) ListSessions(ctx context.Context, movieID int64) ([]model.Session, error) {
	req := request{method: http.MethodGet, path: "/sessions"}
	if movieID > 0 {
		req.query = url.Values{"movie_id": []string{strconv.FormatInt(movieID, 10)}}
	}
	return listJSON[model.Session](ctx, c, req, "sessions")
}

func (c *Client) ListHalls(ctx context.Context) ([]model.Hall, error) {
	return listJSON[model.Hall](ctx, c, request{method: http.MethodGet, path: "/halls"}, "halls")
}

// ListSeats fetches the static seat layout of a hall.
func (c *Client) ListSeats(ctx context.Context, hallID int64) ([]model.Seat, error) {
	if hallID <= 0 {
		return nil, errors.New("hall id is required")
	}
	var seats []model.Seat
	req := request{method: http.MethodGet, path: fmt.Sprintf("/halls/%d/seats", hallID)}
	if err := c.doJSON(ctx, req, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// GetAvailability fetches the seat ids already booked for a session.
func (c *Client) GetAvailability(ctx context.Context, sessionID int64) (model.Availability, error) {
	if sessionID <= 0 {
		return model.Availability{}, errors.New("session id is required")
	}
	var availability model.Availability
	req := request{method: http.MethodGet, path: fmt.Sprintf("/sessions/%d/availability", sessionID)}
	if err := c.doJSON(ctx, req, &availability); err != nil {
		return model.Availability{}, err
	}
	return availability, nil
}
