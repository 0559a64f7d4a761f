package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"kino-cli/model"
)

func newTestClient(server *httptest.Server, attempts int) *Client {
	client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client(), MaxAttempts: attempts})
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestDoJSON_Non2xxReturnsServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"error":"seats already booked"}`)
	}))
	defer server.Close()

	client := newTestClient(server, 1)
	var out map[string]any
	err := client.doJSON(context.Background(), request{method: http.MethodGet, path: "/fail"}, &out)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Message != "seats already booked" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestDoJSON_Non2xxWithoutErrorFieldFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail":"nope"}`)
	}))
	defer server.Close()

	err := newTestClient(server, 1).doJSON(context.Background(), request{method: http.MethodGet, path: "/x"}, nil)
	if err == nil || err.Error() != "Request failed" {
		t.Fatalf("expected fallback message, got %v", err)
	}
}

func TestDoJSON_Non2xxWithoutJSONIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	var out map[string]any
	err := newTestClient(server, 1).doJSON(context.Background(), request{method: http.MethodGet, path: "/x"}, &out)

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
	if respErr.Kind != KindTransport {
		t.Fatalf("expected transport kind, got %v", respErr.Kind)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDoJSON_SuccessWithoutJSONIsContentTypeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<!doctype html><html></html>"))
	}))
	defer server.Close()

	var out []model.Movie
	err := newTestClient(server, 1).doJSON(context.Background(), request{method: http.MethodGet, path: "/movies"}, &out)

	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.Kind != KindContentType {
		t.Fatalf("expected content type error, got %v", err)
	}
	if err.Error() != "API misconfigured: expected JSON response" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestGet_RetriesTransientServerErrorsWhenEnabled(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, `{"error":"retry later"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer server.Close()

	if _, err := newTestClient(server, 3).ListMovies(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestGet_DoesNotRetryByDefault(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		writeJSON(w, http.StatusServiceUnavailable, `{"error":"down"}`)
	}))
	defer server.Close()

	if _, err := newTestClient(server, 0).ListMovies(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestPost_NeverRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		writeJSON(w, http.StatusInternalServerError, `{"error":"boom"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server, 3).CreateBooking(context.Background(), "tok", model.BookingRequest{SessionId: 1, SeatIds: []int64{2}})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestListMovies_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("expected request id header")
		}
		if r.Header.Get("Authorization") != "" {
			t.Fatal("public endpoint should not carry a token")
		}
		writeJSON(w, http.StatusOK, `[{"id":3,"title":"Кочевник","title_en":"Nomad","duration_mins":112}]`)
	}))
	defer server.Close()

	movies, err := newTestClient(server, 1).ListMovies(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(movies) != 1 || movies[0].Id != 3 {
		t.Fatalf("unexpected movies: %+v", movies)
	}
	if got := movies[0].LocalizedTitle("en"); got != "Nomad" {
		t.Fatalf("unexpected english title: %s", got)
	}
	if got := movies[0].LocalizedTitle("kk"); got != "Кочевник" {
		t.Fatalf("expected fallback title, got %s", got)
	}
}

func TestListMovies_NotArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"movies":[]}`)
	}))
	defer server.Close()

	_, err := newTestClient(server, 1).ListMovies(context.Background())
	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.Kind != KindShape {
		t.Fatalf("expected shape error, got %v", err)
	}
	if err.Error() != "API misconfigured: movies payload is not an array" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestListSessions_FiltersByMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "movie_id=3" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, `[
  {"id":10,"movie_id":3,"hall_id":1,"start_time":"2026-02-03T19:30:00Z","base_price":2500},
  {"id":11,"movie_id":3,"hall_id":2,"start_time":"2026-02-03T22:00:00Z","base_price":3000}
]`)
	}))
	defer server.Close()

	sessions, err := newTestClient(server, 1).ListSessions(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(sessions) != 2 || sessions[1].HallId != 2 {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
	if sessions[0].StartTime.Hour() != 19 {
		t.Fatalf("unexpected start time: %s", sessions[0].StartTime)
	}
}

func TestGetAvailability_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions/10/availability" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"booked_seat_ids":[5,6]}`)
	}))
	defer server.Close()

	availability, err := newTestClient(server, 1).GetAvailability(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(availability.BookedSeatIds) != 2 || availability.BookedSeatIds[0] != 5 {
		t.Fatalf("unexpected availability: %+v", availability)
	}
}

func TestCreateBooking_SendsBearerAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("unexpected authorization: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type: %q", got)
		}
		var body model.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.SessionId != 10 || len(body.SeatIds) != 2 || body.PaymentMethod != "card" {
			t.Fatalf("unexpected body: %+v", body)
		}
		writeJSON(w, http.StatusCreated, `{"id":99,"session_id":10,"status":"confirmed","total_price":5000,"seats":[{"id":7},{"id":8}]}`)
	}))
	defer server.Close()

	booking, err := newTestClient(server, 1).CreateBooking(context.Background(), "secret", model.BookingRequest{
		SessionId:     10,
		SeatIds:       []int64{7, 8},
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if booking.Id != 99 || booking.TotalPrice != 5000 || len(booking.Seats) != 2 {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}

func TestCreateBooking_RequiresToken(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"})
	if _, err := client.CreateBooking(context.Background(), "", model.BookingRequest{SessionId: 1, SeatIds: []int64{1}}); err == nil {
		t.Fatal("expected error without token")
	}
}

func TestBookingQR_ReturnsBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/99/qr" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer server.Close()

	blob, err := newTestClient(server, 1).BookingQR(context.Background(), "tok", 99)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if blob.ContentType != "image/png" || len(blob.Data) != 4 {
		t.Fatalf("unexpected blob: %+v", blob)
	}
}

func TestBookingTicket_ErrorUsesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":"booking not found"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server, 1).BookingTicket(context.Background(), "tok", 1)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if Message(err, "fallback") != "booking not found" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDeleteMovie_AcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/admin/movies/4" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := newTestClient(server, 1).DeleteMovie(context.Background(), "tok", 4); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestUpdateHall_SendsNameOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if string(data) != `{"name":"Red"}` {
			t.Fatalf("unexpected body: %s", data)
		}
		writeJSON(w, http.StatusOK, `{"id":2,"name":"Red","rows":8,"cols":12}`)
	}))
	defer server.Close()

	hall, err := newTestClient(server, 1).UpdateHall(context.Background(), "tok", 2, "Red")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if hall.Rows != 8 {
		t.Fatalf("unexpected hall: %+v", hall)
	}
}

func TestMe_UnauthorizedIsDetected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"invalid token"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server, 1).Me(context.Background(), "expired")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRetryDelay_Capped(t *testing.T) {
	client := NewClient(Config{})
	if got := client.retryDelay(1); got != defaultRetryBase {
		t.Fatalf("unexpected first delay: %s", got)
	}
	if got := client.retryDelay(10); got != defaultRetryCap {
		t.Fatalf("expected cap, got %s", got)
	}
}

func TestMessage_FallbackForTransportErrors(t *testing.T) {
	err := errors.New("request failed: dial tcp: connection refused")
	if got := Message(err, "Unable to book"); got != "Unable to book" {
		t.Fatalf("unexpected message: %s", got)
	}
	shape := &ResponseError{Kind: KindShape, Detail: "halls"}
	if got := Message(shape, "x"); got != "API misconfigured: halls payload is not an array" {
		t.Fatalf("unexpected message: %s", got)
	}
}
