package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"kino-cli/app"
	"kino-cli/config"
	"kino-cli/model"
)

func newBookingApp(t *testing.T) (*app.App, *atomic.Int32) {
	t.Helper()
	var posts atomic.Int32
	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	start := time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC)
	mux.HandleFunc("GET /api/movies", func(w http.ResponseWriter, r *http.Request) {
		reply(w, []model.Movie{{Id: 1, Title: "Дюна", TitleEn: "Dune", DurationMins: 155}})
	})
	mux.HandleFunc("GET /api/sessions", func(w http.ResponseWriter, r *http.Request) {
		reply(w, []model.Session{{Id: 10, MovieId: 1, HallId: 100, StartTime: start, BasePrice: 450}})
	})
	mux.HandleFunc("GET /api/halls/{id}/seats", func(w http.ResponseWriter, r *http.Request) {
		reply(w, []model.Seat{
			{Id: 5, HallId: 100, Row: 1, Number: 1},
			{Id: 6, HallId: 100, Row: 1, Number: 2},
			{Id: 7, HallId: 100, Row: 1, Number: 3},
		})
	})
	mux.HandleFunc("GET /api/sessions/{id}/availability", func(w http.ResponseWriter, r *http.Request) {
		reply(w, model.Availability{BookedSeatIds: []int64{5}})
	})
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		w.WriteHeader(http.StatusCreated)
		reply(w, model.Booking{Id: 1})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	a, err := app.New(config.Config{
		APIBaseURL: config.NormalizeAPIBase(server.URL),
		ConfigDir:  t.TempDir(),
		Language:   "en",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := openSession(context.Background(), a.Booking, a.API, 10); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return a, &posts
}

func TestChooseSeats_RejectsBookedSeat(t *testing.T) {
	a, posts := newBookingApp(t)

	err := chooseSeats(a, []string{"5", "7"})
	if err == nil {
		t.Fatal("expected an error for a booked seat")
	}
	if chosen := a.Booking.Snapshot().Chosen; len(chosen) != 0 {
		t.Fatalf("expected nothing chosen, got %v", chosen)
	}
	if got := outcome(bookCmd, a, err).Error(); !strings.Contains(got, "Seat is not available") {
		t.Fatalf("unexpected error text %q", got)
	}
	if posts.Load() != 0 {
		t.Fatalf("expected no booking request, got %d", posts.Load())
	}
}

func TestChooseSeats_RejectsUnknownAndRepeatedSeats(t *testing.T) {
	a, _ := newBookingApp(t)

	if err := chooseSeats(a, []string{"7", "99"}); err == nil {
		t.Fatal("expected an error for an unknown seat")
	}
	if err := chooseSeats(a, []string{"7", "7"}); err == nil {
		t.Fatal("expected an error for a repeated seat")
	}
	if got := outcome(bookCmd, a, errSeatChoice).Error(); !strings.Contains(got, "Seat is listed twice") {
		t.Fatalf("unexpected error text %q", got)
	}
	if chosen := a.Booking.Snapshot().Chosen; len(chosen) != 0 {
		t.Fatalf("expected nothing chosen, got %v", chosen)
	}
}

func TestChooseSeats_SelectsRequestedSeats(t *testing.T) {
	a, _ := newBookingApp(t)

	if err := chooseSeats(a, []string{"6", "7"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	chosen := a.Booking.Snapshot().Chosen
	if len(chosen) != 2 || chosen[0] != 6 || chosen[1] != 7 {
		t.Fatalf("expected seats [6 7], got %v", chosen)
	}
}
