package admin

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"kino-cli/flash"
	"kino-cli/i18n"
	"kino-cli/model"
	"kino-cli/service"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	movies   []model.Movie
	halls    []model.Hall
	sessions []model.Session

	lastMovie       model.MovieRequest
	lastHall        model.HallRequest
	lastHallName    string
	lastSession     model.SessionRequest
	lastSessionID   int64
	lastStatus      string
	createMovieErr  error
	deleteHallErr   error
	listSessionsArg []int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:    map[string]int{},
		movies:   []model.Movie{{Id: 1, Title: "Дюна", DurationMins: 155}, {Id: 2, Title: "Оппенгеймер"}},
		halls:    []model.Hall{{Id: 100, Name: "Зал 1", Rows: 8, Cols: 12}},
		sessions: []model.Session{{Id: 10, MovieId: 1, HallId: 100, BasePrice: 500, StartTime: time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)}},
	}
}

func (f *fakeAPI) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) ListMovies(context.Context) ([]model.Movie, error) {
	f.count("list_movies")
	return f.movies, nil
}

func (f *fakeAPI) ListHalls(context.Context) ([]model.Hall, error) {
	f.count("list_halls")
	return f.halls, nil
}

func (f *fakeAPI) ListSessions(_ context.Context, movieID int64) ([]model.Session, error) {
	f.count("list_sessions")
	f.mu.Lock()
	f.listSessionsArg = append(f.listSessionsArg, movieID)
	f.mu.Unlock()
	return f.sessions, nil
}

func (f *fakeAPI) CreateMovie(_ context.Context, _ string, payload model.MovieRequest) (model.Movie, error) {
	f.count("create_movie")
	f.lastMovie = payload
	if f.createMovieErr != nil {
		return model.Movie{}, f.createMovieErr
	}
	movie := model.Movie{Id: 3, Title: payload.Title}
	f.movies = append(f.movies, movie)
	return movie, nil
}

func (f *fakeAPI) UpdateMovie(_ context.Context, _ string, id int64, payload model.MovieRequest) (model.Movie, error) {
	f.count("update_movie")
	f.lastMovie = payload
	return model.Movie{Id: id, Title: payload.Title}, nil
}

func (f *fakeAPI) DeleteMovie(context.Context, string, int64) error {
	f.count("delete_movie")
	return nil
}

func (f *fakeAPI) CreateHall(_ context.Context, _ string, payload model.HallRequest) (model.Hall, error) {
	f.count("create_hall")
	f.lastHall = payload
	return model.Hall{Id: 101, Name: payload.Name, Rows: payload.Rows, Cols: payload.Cols}, nil
}

func (f *fakeAPI) UpdateHall(_ context.Context, _ string, id int64, name string) (model.Hall, error) {
	f.count("update_hall")
	f.lastHallName = name
	return model.Hall{Id: id, Name: name}, nil
}

func (f *fakeAPI) DeleteHall(context.Context, string, int64) error {
	f.count("delete_hall")
	return f.deleteHallErr
}

func (f *fakeAPI) CreateSession(_ context.Context, _ string, payload model.SessionRequest) (model.Session, error) {
	f.count("create_session")
	f.lastSession = payload
	return model.Session{Id: 11}, nil
}

func (f *fakeAPI) UpdateSession(_ context.Context, _ string, id int64, payload model.SessionRequest) (model.Session, error) {
	f.count("update_session")
	f.lastSession = payload
	f.lastSessionID = id
	return model.Session{Id: id}, nil
}

func (f *fakeAPI) DeleteSession(context.Context, string, int64) error {
	f.count("delete_session")
	return nil
}

func (f *fakeAPI) UpdateBookingStatus(_ context.Context, _ string, id int64, status string) (model.Booking, error) {
	f.count("booking_status")
	f.lastStatus = status
	return model.Booking{Id: id, Status: status}, nil
}

type fakeCreds struct {
	token string
	admin bool
}

func (c fakeCreds) Token() string { return c.token }
func (c fakeCreds) IsAdmin() bool { return c.admin }

func newPanel(api *fakeAPI, creds fakeCreds) (*Panel, *flash.Board) {
	board := &flash.Board{}
	p := New(api, creds, board, i18n.NewSelector(i18n.English))
	p.location = time.UTC
	return p, board
}

func loadedPanel(t *testing.T, api *fakeAPI) (*Panel, *flash.Board) {
	t.Helper()
	p, board := newPanel(api, fakeCreds{token: "tok", admin: true})
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return p, board
}

func TestLoad_RequiresAdmin(t *testing.T) {
	api := newFakeAPI()
	p, board := newPanel(api, fakeCreds{token: "tok", admin: false})

	if err := p.Load(context.Background()); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
	if api.total() != 0 {
		t.Fatalf("expected no requests, got %v", api.calls)
	}
	if msg, _ := board.Current(); msg.Kind != flash.Error {
		t.Fatalf("expected error flash, got %+v", msg)
	}
}

func TestLoad_DefaultsSessionForm(t *testing.T) {
	api := newFakeAPI()
	p, _ := loadedPanel(t, api)

	view := p.View()
	if len(view.Halls) != 1 || len(view.Sessions) != 1 || len(view.Movies) != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.SessionForm.HallID != 100 || view.SessionForm.MovieID != 1 || view.SessionForm.Price != DefaultPrice {
		t.Fatalf("unexpected session form defaults: %+v", view.SessionForm)
	}
	if len(api.listSessionsArg) != 1 || api.listSessionsArg[0] != 0 {
		t.Fatalf("expected all sessions requested, got %v", api.listSessionsArg)
	}
	if view.MovieForm.DurationMins != DefaultDurationMins || view.HallForm.Rows != DefaultRows || view.HallForm.Cols != DefaultCols {
		t.Fatalf("unexpected form defaults: %+v %+v", view.MovieForm, view.HallForm)
	}
}

func TestSaveMovie_CreatesAndPropagates(t *testing.T) {
	api := newFakeAPI()
	p, board := loadedPanel(t, api)

	var propagated []model.Movie
	p.OnMovies(func(movies []model.Movie) { propagated = movies })

	p.SetMovieForm(MovieForm{Title: " Interstellar ", Description: "Space", DurationMins: 169})
	if err := p.SaveMovie(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if api.lastMovie.Title != "Interstellar" || api.lastMovie.DurationMins != 169 {
		t.Fatalf("unexpected payload: %+v", api.lastMovie)
	}
	if len(propagated) != 3 {
		t.Fatalf("expected catalog propagated, got %d movies", len(propagated))
	}
	if form := p.View().MovieForm; form != NewMovieForm() {
		t.Fatalf("expected form reset, got %+v", form)
	}
	if msg, _ := board.Current(); msg.Text != "Movie saved." {
		t.Fatalf("unexpected flash: %+v", msg)
	}
}

func TestSaveMovie_EditUpdates(t *testing.T) {
	api := newFakeAPI()
	p, _ := loadedPanel(t, api)

	if !p.EditMovie(1) {
		t.Fatal("expected movie found")
	}
	if form := p.View().MovieForm; form.EditingID != 1 || form.DurationMins != 155 {
		t.Fatalf("unexpected edit form: %+v", form)
	}
	if err := p.SaveMovie(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if api.calls["update_movie"] != 1 || api.calls["create_movie"] != 0 {
		t.Fatalf("expected update, got %v", api.calls)
	}
}

func TestSaveMovie_FailureKeepsForm(t *testing.T) {
	api := newFakeAPI()
	api.createMovieErr = &service.APIError{StatusCode: 400, Message: "title required"}
	p, board := loadedPanel(t, api)

	p.SetMovieForm(MovieForm{DurationMins: 90, Description: "x"})
	if err := p.SaveMovie(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if p.View().MovieForm.Description != "x" {
		t.Fatal("expected form kept after failure")
	}
	if msg, _ := board.Current(); msg.Text != "title required" {
		t.Fatalf("unexpected flash: %+v", msg)
	}
}

func TestSaveHall_EditSendsNameOnly(t *testing.T) {
	api := newFakeAPI()
	p, _ := loadedPanel(t, api)

	if !p.EditHall(100) {
		t.Fatal("expected hall found")
	}
	form := p.View().HallForm
	if !form.SizeLocked() {
		t.Fatal("expected size locked while editing")
	}
	form.Name = "IMAX"
	form.Rows = 20
	p.SetHallForm(form)
	if got := p.View().HallForm; got.Rows != 8 {
		t.Fatalf("rows must stay locked, got %d", got.Rows)
	}

	if err := p.SaveHall(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if api.calls["update_hall"] != 1 || api.lastHallName != "IMAX" {
		t.Fatalf("expected rename, got %v name=%q", api.calls, api.lastHallName)
	}
	if p.View().HallForm.SizeLocked() {
		t.Fatal("expected form reset after save")
	}
}

func TestSaveHall_CreateSendsLayout(t *testing.T) {
	api := newFakeAPI()
	p, _ := loadedPanel(t, api)

	p.SetHallForm(HallForm{Name: "Зал 2", Rows: 5, Cols: 6})
	if err := p.SaveHall(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if api.lastHall.Rows != 5 || api.lastHall.Cols != 6 {
		t.Fatalf("unexpected payload: %+v", api.lastHall)
	}
}

func TestDeleteHall_FailureFlashesFallback(t *testing.T) {
	api := newFakeAPI()
	api.deleteHallErr = errors.New("dial tcp: refused")
	p, board := loadedPanel(t, api)

	if err := p.DeleteHall(context.Background(), 100); err == nil {
		t.Fatal("expected error")
	}
	if msg, _ := board.Current(); msg.Text != "Unable to delete hall" {
		t.Fatalf("unexpected flash: %+v", msg)
	}
}

func TestSaveSession_MissingFieldsMakesNoRequest(t *testing.T) {
	api := newFakeAPI()
	p, board := loadedPanel(t, api)
	before := api.total()

	p.SetSessionForm(SessionForm{MovieID: 1, HallID: 100, Price: 450})
	if err := p.SaveSession(context.Background()); !errors.Is(err, ErrSessionFieldsMissing) {
		t.Fatalf("expected ErrSessionFieldsMissing, got %v", err)
	}
	if api.total() != before {
		t.Fatalf("expected no requests, got %v", api.calls)
	}
	if msg, _ := board.Current(); msg.Text != "Fill movie, hall, and session date." {
		t.Fatalf("unexpected flash: %+v", msg)
	}
}

func TestSaveSession_CreatesWithRFC3339Start(t *testing.T) {
	api := newFakeAPI()
	p, board := loadedPanel(t, api)

	form := p.View().SessionForm
	form.Start = "2025-03-14 19:30"
	p.SetSessionForm(form)
	if err := p.SaveSession(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if api.lastSession.StartTime != "2025-03-14T19:30:00Z" {
		t.Fatalf("unexpected start: %q", api.lastSession.StartTime)
	}
	if api.lastSession.BasePrice != 450 || api.lastSession.MovieId != 1 || api.lastSession.HallId != 100 {
		t.Fatalf("unexpected payload: %+v", api.lastSession)
	}
	if msg, _ := board.Current(); msg.Text != "Session saved." {
		t.Fatalf("unexpected flash: %+v", msg)
	}
	if got := p.View().SessionForm; got.Start != "" || got.HallID != 100 {
		t.Fatalf("expected form reset with defaults, got %+v", got)
	}
}

func TestEditSession_PrefillsLocalStart(t *testing.T) {
	api := newFakeAPI()
	p, _ := loadedPanel(t, api)

	if !p.EditSession(10) {
		t.Fatal("expected session found")
	}
	form := p.View().SessionForm
	if form.Start != "2025-03-14 14:00" || form.Price != 500 {
		t.Fatalf("unexpected form: %+v", form)
	}
	if err := p.SaveSession(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if api.lastSessionID != 10 {
		t.Fatalf("expected update of session 10, got %d", api.lastSessionID)
	}
}

func TestSetBookingStatus(t *testing.T) {
	api := newFakeAPI()
	p, board := loadedPanel(t, api)

	booking, err := p.SetBookingStatus(context.Background(), 5, model.BookingCancelled)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if booking.Status != model.BookingCancelled || api.lastStatus != model.BookingCancelled {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if msg, _ := board.Current(); msg.Kind != flash.Success {
		t.Fatalf("unexpected flash: %+v", msg)
	}
}

func TestReset(t *testing.T) {
	api := newFakeAPI()
	p, _ := loadedPanel(t, api)
	p.SetTab(TabSessions)
	p.Reset()

	view := p.View()
	if view.Tab != TabMovies || len(view.Halls) != 0 || view.SessionForm.HallID != 0 {
		t.Fatalf("expected cleared panel, got %+v", view)
	}
}

func TestParseStart(t *testing.T) {
	ts, err := ParseStart("2025-03-14T19:30", time.UTC)
	if err != nil || ts.Hour() != 19 {
		t.Fatalf("unexpected result: %v %v", ts, err)
	}
	if _, err := ParseStart("tomorrow", time.UTC); !errors.Is(err, ErrInvalidStart) {
		t.Fatalf("expected ErrInvalidStart, got %v", err)
	}
}
