// Package admin implements the catalog management panels available to
// administrators: movies, halls, sessions and booking status.
package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	"kino-cli/flash"
	"kino-cli/i18n"
	"kino-cli/logger"
	"kino-cli/model"
	"kino-cli/service"
)

var (
	ErrNotAdmin             = errors.New("admin access required")
	ErrSessionFieldsMissing = errors.New("movie, hall and start are required")
	ErrInvalidStart         = errors.New("start time must look like 2006-01-02 15:04")
)

type Tab int

const (
	TabMovies Tab = iota
	TabHalls
	TabSessions
)

var Tabs = []Tab{TabMovies, TabHalls, TabSessions}

// LabelKey is the translation key of the tab title.
func (t Tab) LabelKey() string {
	switch t {
	case TabHalls:
		return "admin_halls"
	case TabSessions:
		return "admin_sessions"
	default:
		return "admin_movies"
	}
}

type API interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	ListHalls(ctx context.Context) ([]model.Hall, error)
	ListSessions(ctx context.Context, movieID int64) ([]model.Session, error)
	CreateMovie(ctx context.Context, token string, payload model.MovieRequest) (model.Movie, error)
	UpdateMovie(ctx context.Context, token string, id int64, payload model.MovieRequest) (model.Movie, error)
	DeleteMovie(ctx context.Context, token string, id int64) error
	CreateHall(ctx context.Context, token string, payload model.HallRequest) (model.Hall, error)
	UpdateHall(ctx context.Context, token string, id int64, name string) (model.Hall, error)
	DeleteHall(ctx context.Context, token string, id int64) error
	CreateSession(ctx context.Context, token string, payload model.SessionRequest) (model.Session, error)
	UpdateSession(ctx context.Context, token string, id int64, payload model.SessionRequest) (model.Session, error)
	DeleteSession(ctx context.Context, token string, id int64) error
	UpdateBookingStatus(ctx context.Context, token string, id int64, status string) (model.Booking, error)
}

// Credentials is satisfied by account.State.
type Credentials interface {
	Token() string
	IsAdmin() bool
}

type Localizer interface {
	Translator() i18n.Translator
}

// Panel is safe for concurrent use; requests run without the lock held.
type Panel struct {
	api      API
	creds    Credentials
	board    *flash.Board
	loc      Localizer
	location *time.Location

	mu          sync.Mutex
	tab         Tab
	movies      []model.Movie
	halls       []model.Hall
	sessions    []model.Session
	movieForm   MovieForm
	hallForm    HallForm
	sessionForm SessionForm
	onMovies    []func([]model.Movie)
}

func New(api API, creds Credentials, board *flash.Board, loc Localizer) *Panel {
	return &Panel{
		api:         api,
		creds:       creds,
		board:       board,
		loc:         loc,
		location:    time.Local,
		movieForm:   NewMovieForm(),
		hallForm:    NewHallForm(),
		sessionForm: NewSessionForm(),
	}
}

// OnMovies registers a hook that receives the catalog after every movie save
// or delete.
func (p *Panel) OnMovies(fn func([]model.Movie)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onMovies = append(p.onMovies, fn)
}

// Load fetches movies, halls and all sessions in parallel and defaults the
// session form to the first movie and hall.
func (p *Panel) Load(ctx context.Context) error {
	if _, err := p.requireAdmin(); err != nil {
		return err
	}

	var (
		wg          sync.WaitGroup
		movies      []model.Movie
		halls       []model.Hall
		sessions    []model.Session
		moviesErr   error
		hallsErr    error
		sessionsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		movies, moviesErr = p.api.ListMovies(ctx)
	}()
	go func() {
		defer wg.Done()
		halls, hallsErr = p.api.ListHalls(ctx)
	}()
	go func() {
		defer wg.Done()
		sessions, sessionsErr = p.api.ListSessions(ctx, 0)
	}()
	wg.Wait()

	for _, err := range []error{moviesErr, hallsErr, sessionsErr} {
		if err != nil {
			p.fail(err, "flash_load_failed")
			return err
		}
	}

	p.mu.Lock()
	p.movies = movies
	p.halls = halls
	p.sessions = sessions
	p.applySessionDefaultsLocked()
	p.mu.Unlock()
	return nil
}

// Reset forgets everything loaded, e.g. after logout.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tab = TabMovies
	p.movies = nil
	p.halls = nil
	p.sessions = nil
	p.movieForm = NewMovieForm()
	p.hallForm = NewHallForm()
	p.sessionForm = NewSessionForm()
}

func (p *Panel) SetTab(tab Tab) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tab = tab
}

func (p *Panel) SetMovieForm(form MovieForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movieForm = form
}

// SetHallForm replaces the hall form. Rows and cols of a hall being edited
// are kept as loaded.
func (p *Panel) SetHallForm(form HallForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hallForm.SizeLocked() && form.EditingID == p.hallForm.EditingID {
		form.Rows = p.hallForm.Rows
		form.Cols = p.hallForm.Cols
	}
	p.hallForm = form
}

func (p *Panel) SetSessionForm(form SessionForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessionForm = form
}

func (p *Panel) EditMovie(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, movie := range p.movies {
		if movie.Id == id {
			p.movieForm = MovieForm{
				EditingID:    movie.Id,
				Title:        movie.Title,
				Description:  movie.Description,
				DurationMins: movie.DurationMins,
				PosterURL:    movie.PosterURL,
			}
			return true
		}
	}
	return false
}

func (p *Panel) EditHall(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, hall := range p.halls {
		if hall.Id == id {
			p.hallForm = HallForm{EditingID: hall.Id, Name: hall.Name, Rows: hall.Rows, Cols: hall.Cols}
			return true
		}
	}
	return false
}

func (p *Panel) EditSession(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, session := range p.sessions {
		if session.Id == id {
			p.sessionForm = SessionForm{
				EditingID: session.Id,
				MovieID:   session.MovieId,
				HallID:    session.HallId,
				Start:     FormatStart(session.StartTime, p.location),
				Price:     session.BasePrice,
			}
			return true
		}
	}
	return false
}

// CancelEdit resets the form of the current tab.
func (p *Panel) CancelEdit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.tab {
	case TabHalls:
		p.hallForm = NewHallForm()
	case TabSessions:
		p.sessionForm = NewSessionForm()
		p.applySessionDefaultsLocked()
	default:
		p.movieForm = NewMovieForm()
	}
}

func (p *Panel) SaveMovie(ctx context.Context) error {
	token, err := p.requireAdmin()
	if err != nil {
		return err
	}
	p.mu.Lock()
	form := p.movieForm
	p.mu.Unlock()

	if form.EditingID != 0 {
		_, err = p.api.UpdateMovie(ctx, token, form.EditingID, form.request())
	} else {
		_, err = p.api.CreateMovie(ctx, token, form.request())
	}
	if err != nil {
		p.fail(err, "flash_movie_save_failed")
		return err
	}
	if err := p.reloadMovies(ctx, "flash_movie_save_failed"); err != nil {
		return err
	}

	p.mu.Lock()
	p.movieForm = NewMovieForm()
	p.mu.Unlock()
	p.board.Success(p.tr().T("flash_movie_saved"))
	return nil
}

func (p *Panel) DeleteMovie(ctx context.Context, id int64) error {
	token, err := p.requireAdmin()
	if err != nil {
		return err
	}
	if err := p.api.DeleteMovie(ctx, token, id); err != nil {
		p.fail(err, "flash_movie_delete_failed")
		return err
	}
	if err := p.reloadMovies(ctx, "flash_movie_delete_failed"); err != nil {
		return err
	}
	p.mu.Lock()
	if p.movieForm.EditingID == id {
		p.movieForm = NewMovieForm()
	}
	p.mu.Unlock()
	p.board.Success(p.tr().T("flash_movie_deleted"))
	return nil
}

// SaveHall creates a hall with its layout, or renames an existing one.
func (p *Panel) SaveHall(ctx context.Context) error {
	token, err := p.requireAdmin()
	if err != nil {
		return err
	}
	p.mu.Lock()
	form := p.hallForm
	p.mu.Unlock()

	if form.SizeLocked() {
		_, err = p.api.UpdateHall(ctx, token, form.EditingID, form.Name)
	} else {
		_, err = p.api.CreateHall(ctx, token, model.HallRequest{Name: form.Name, Rows: form.Rows, Cols: form.Cols})
	}
	if err != nil {
		p.fail(err, "flash_hall_save_failed")
		return err
	}
	if err := p.reloadHalls(ctx, "flash_hall_save_failed"); err != nil {
		return err
	}

	p.mu.Lock()
	p.hallForm = NewHallForm()
	p.mu.Unlock()
	p.board.Success(p.tr().T("flash_hall_saved"))
	return nil
}

func (p *Panel) DeleteHall(ctx context.Context, id int64) error {
	token, err := p.requireAdmin()
	if err != nil {
		return err
	}
	if err := p.api.DeleteHall(ctx, token, id); err != nil {
		p.fail(err, "flash_hall_delete_failed")
		return err
	}
	if err := p.reloadHalls(ctx, "flash_hall_delete_failed"); err != nil {
		return err
	}
	p.mu.Lock()
	if p.hallForm.EditingID == id {
		p.hallForm = NewHallForm()
	}
	p.mu.Unlock()
	p.board.Success(p.tr().T("flash_hall_deleted"))
	return nil
}

// SaveSession validates the form locally before any request is made.
func (p *Panel) SaveSession(ctx context.Context) error {
	token, err := p.requireAdmin()
	if err != nil {
		return err
	}
	p.mu.Lock()
	form := p.sessionForm
	location := p.location
	p.mu.Unlock()

	if !form.complete() {
		p.board.Error(p.tr().T("flash_session_missing"))
		return ErrSessionFieldsMissing
	}
	payload, err := form.request(location)
	if err != nil {
		p.board.Error(p.tr().T("flash_session_missing"))
		return err
	}

	if form.EditingID != 0 {
		_, err = p.api.UpdateSession(ctx, token, form.EditingID, payload)
	} else {
		_, err = p.api.CreateSession(ctx, token, payload)
	}
	if err != nil {
		p.fail(err, "flash_session_save_failed")
		return err
	}
	if err := p.reloadSessions(ctx, "flash_session_save_failed"); err != nil {
		return err
	}

	p.mu.Lock()
	p.sessionForm = NewSessionForm()
	p.applySessionDefaultsLocked()
	p.mu.Unlock()
	p.board.Success(p.tr().T("flash_session_saved"))
	return nil
}

func (p *Panel) DeleteSession(ctx context.Context, id int64) error {
	token, err := p.requireAdmin()
	if err != nil {
		return err
	}
	if err := p.api.DeleteSession(ctx, token, id); err != nil {
		p.fail(err, "flash_session_delete_failed")
		return err
	}
	if err := p.reloadSessions(ctx, "flash_session_delete_failed"); err != nil {
		return err
	}
	p.mu.Lock()
	if p.sessionForm.EditingID == id {
		p.sessionForm = NewSessionForm()
		p.applySessionDefaultsLocked()
	}
	p.mu.Unlock()
	p.board.Success(p.tr().T("flash_session_deleted"))
	return nil
}

// SetBookingStatus overrides the status of any booking.
func (p *Panel) SetBookingStatus(ctx context.Context, id int64, status string) (model.Booking, error) {
	token, err := p.requireAdmin()
	if err != nil {
		return model.Booking{}, err
	}
	booking, err := p.api.UpdateBookingStatus(ctx, token, id, status)
	if err != nil {
		p.fail(err, "flash_status_failed")
		return model.Booking{}, err
	}
	logger.Get().Info("booking status updated", "booking_id", id, "status", status)
	p.board.Success(p.tr().T("flash_status_updated"))
	return booking, nil
}

func (p *Panel) reloadMovies(ctx context.Context, fallbackKey string) error {
	movies, err := p.api.ListMovies(ctx)
	if err != nil {
		p.fail(err, fallbackKey)
		return err
	}
	p.mu.Lock()
	p.movies = movies
	p.applySessionDefaultsLocked()
	hooks := append([]func([]model.Movie){}, p.onMovies...)
	p.mu.Unlock()

	for _, fn := range hooks {
		fn(append([]model.Movie(nil), movies...))
	}
	return nil
}

func (p *Panel) reloadHalls(ctx context.Context, fallbackKey string) error {
	halls, err := p.api.ListHalls(ctx)
	if err != nil {
		p.fail(err, fallbackKey)
		return err
	}
	p.mu.Lock()
	p.halls = halls
	p.applySessionDefaultsLocked()
	p.mu.Unlock()
	return nil
}

func (p *Panel) reloadSessions(ctx context.Context, fallbackKey string) error {
	sessions, err := p.api.ListSessions(ctx, 0)
	if err != nil {
		p.fail(err, fallbackKey)
		return err
	}
	p.mu.Lock()
	p.sessions = sessions
	p.mu.Unlock()
	return nil
}

// applySessionDefaultsLocked fills unset movie and hall with the first
// entries, but only for a new session.
func (p *Panel) applySessionDefaultsLocked() {
	if p.sessionForm.EditingID != 0 {
		return
	}
	if p.sessionForm.HallID == 0 && len(p.halls) > 0 {
		p.sessionForm.HallID = p.halls[0].Id
	}
	if p.sessionForm.MovieID == 0 && len(p.movies) > 0 {
		p.sessionForm.MovieID = p.movies[0].Id
	}
}

func (p *Panel) requireAdmin() (string, error) {
	token := p.creds.Token()
	if token == "" || !p.creds.IsAdmin() {
		p.board.Error(p.tr().T("flash_admin_required"))
		return "", ErrNotAdmin
	}
	return token, nil
}

func (p *Panel) fail(err error, fallbackKey string) {
	p.board.Error(service.Message(err, p.tr().T(fallbackKey)))
}

func (p *Panel) tr() i18n.Translator {
	if p.loc == nil {
		return i18n.New(i18n.Default)
	}
	return p.loc.Translator()
}
