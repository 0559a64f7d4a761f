// Package booking drives the browse-and-book workflow: movie, session, seats,
// submission, and the signed-in user's booking list.
package booking

import (
	"context"
	"errors"
	"sync"

	"kino-cli/flash"
	"kino-cli/i18n"
	"kino-cli/logger"
	"kino-cli/model"
	"kino-cli/service"
)

const DefaultPaymentMethod = "card"

var (
	ErrNotAuthenticated = errors.New("sign in to book seats")
	ErrNoSession        = errors.New("no session selected")
	ErrNoSeats          = errors.New("no seats chosen")
	ErrSubmitting       = errors.New("booking already in progress")
	ErrUnknownMovie     = errors.New("movie is not in the catalog")
	ErrUnknownSession   = errors.New("session is not listed for the selected movie")
)

type Phase int

const (
	PhaseNoMovie Phase = iota
	PhaseMovieSelected
	PhaseSessionSelected
	PhaseSeatsChosen
	PhaseSubmitting
	PhaseConfirmed
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseMovieSelected:
		return "movie_selected"
	case PhaseSessionSelected:
		return "session_selected"
	case PhaseSeatsChosen:
		return "seats_chosen"
	case PhaseSubmitting:
		return "submitting"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseFailed:
		return "failed"
	default:
		return "no_movie"
	}
}

// API is the subset of the backend client used by the workflow.
type API interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	ListSessions(ctx context.Context, movieID int64) ([]model.Session, error)
	ListSeats(ctx context.Context, hallID int64) ([]model.Seat, error)
	GetAvailability(ctx context.Context, sessionID int64) (model.Availability, error)
	CreateBooking(ctx context.Context, token string, payload model.BookingRequest) (model.Booking, error)
	ListMyBookings(ctx context.Context, token string) ([]model.Booking, error)
	CancelBooking(ctx context.Context, token string, bookingID int64) (model.Booking, error)
}

// Credentials supplies the bearer token of the signed-in user, or "".
type Credentials interface {
	Token() string
}

type Localizer interface {
	Translator() i18n.Translator
}

// Controller is safe for concurrent use. It never holds its lock while a
// request is in flight; responses that arrive after a newer selection are
// dropped.
type Controller struct {
	api   API
	creds Credentials
	board *flash.Board
	loc   Localizer

	mu          sync.Mutex
	phase       Phase
	movies      []model.Movie
	movie       *model.Movie
	sessions    []model.Session
	session     *model.Session
	seats       []model.Seat
	booked      map[int64]bool
	chosen      []int64
	bookings    []model.Booking
	lastBooking *model.Booking
	movieGen    uint64
	sessionGen  uint64
	bookingsGen uint64
}

func New(api API, creds Credentials, board *flash.Board, loc Localizer) *Controller {
	return &Controller{
		api:    api,
		creds:  creds,
		board:  board,
		loc:    loc,
		booked: map[int64]bool{},
	}
}

// LoadMovies fetches the catalog and selects its first movie.
func (c *Controller) LoadMovies(ctx context.Context) error {
	movies, err := c.api.ListMovies(ctx)
	if err != nil {
		c.fail(err, "flash_load_failed")
		return err
	}
	c.SetMovies(movies)
	if len(movies) == 0 {
		return nil
	}
	return c.SelectMovie(ctx, movies[0].Id)
}

// SetMovies replaces the catalog, keeping the current selection when the
// movie is still listed.
func (c *Controller) SetMovies(movies []model.Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies = append([]model.Movie(nil), movies...)
	if c.movie == nil {
		return
	}
	for i := range c.movies {
		if c.movies[i].Id == c.movie.Id {
			movie := c.movies[i]
			c.movie = &movie
			return
		}
	}
	c.movieGen++
	c.sessionGen++
	c.movie = nil
	c.resetSessionLocked()
	c.sessions = nil
	c.phase = PhaseNoMovie
}

// SelectMovie makes id the current movie and loads its sessions. Any chosen
// session and seats are dropped.
func (c *Controller) SelectMovie(ctx context.Context, id int64) error {
	c.mu.Lock()
	var movie *model.Movie
	for i := range c.movies {
		if c.movies[i].Id == id {
			m := c.movies[i]
			movie = &m
			break
		}
	}
	if movie == nil {
		c.mu.Unlock()
		return ErrUnknownMovie
	}
	c.movieGen++
	c.sessionGen++
	gen := c.movieGen
	c.movie = movie
	c.sessions = nil
	c.resetSessionLocked()
	c.phase = PhaseMovieSelected
	c.mu.Unlock()

	sessions, err := c.api.ListSessions(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.movieGen {
		logger.Get().Debug("dropping stale sessions", "movie_id", id)
		return nil
	}
	if err != nil {
		c.fail(err, "flash_load_failed")
		return err
	}
	c.sessions = sessions
	return nil
}

// SelectSession clears the chosen seats and loads the hall layout and the
// current availability in parallel.
func (c *Controller) SelectSession(ctx context.Context, id int64) error {
	c.mu.Lock()
	var session *model.Session
	for i := range c.sessions {
		if c.sessions[i].Id == id {
			s := c.sessions[i]
			session = &s
			break
		}
	}
	if session == nil {
		c.mu.Unlock()
		return ErrUnknownSession
	}
	c.sessionGen++
	gen := c.sessionGen
	c.resetSessionLocked()
	c.session = session
	c.phase = PhaseSessionSelected
	c.mu.Unlock()

	var (
		wg           sync.WaitGroup
		seats        []model.Seat
		availability model.Availability
		seatsErr     error
		availErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		seats, seatsErr = c.api.ListSeats(ctx, session.HallId)
	}()
	go func() {
		defer wg.Done()
		availability, availErr = c.api.GetAvailability(ctx, session.Id)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.sessionGen {
		logger.Get().Debug("dropping stale seat map", "session_id", id)
		return nil
	}
	if err := firstErr(seatsErr, availErr); err != nil {
		c.fail(err, "flash_load_failed")
		return err
	}
	c.seats = seats
	c.booked = bookedSet(availability)
	return nil
}

// ToggleSeat adds or removes a seat from the chosen set. Booked and unknown
// seats are ignored.
func (c *Controller) ToggleSeat(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil || c.phase == PhaseSubmitting || c.booked[id] || !c.hasSeatLocked(id) {
		return
	}
	for i, chosen := range c.chosen {
		if chosen == id {
			c.chosen = append(c.chosen[:i:i], c.chosen[i+1:]...)
			c.updateSeatPhaseLocked()
			return
		}
	}
	c.chosen = append(c.chosen, id)
	c.updateSeatPhaseLocked()
}

// Submit books the chosen seats. Preconditions are checked in order without
// touching the network.
func (c *Controller) Submit(ctx context.Context, paymentMethod string) (model.Booking, error) {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	token := c.token()

	c.mu.Lock()
	switch {
	case token == "":
		c.mu.Unlock()
		c.board.Error(c.tr().T("flash_login_required"))
		return model.Booking{}, ErrNotAuthenticated
	case c.session == nil:
		c.mu.Unlock()
		c.board.Error(c.tr().T("flash_select_session"))
		return model.Booking{}, ErrNoSession
	case len(c.chosen) == 0:
		c.mu.Unlock()
		c.board.Error(c.tr().T("flash_select_seats"))
		return model.Booking{}, ErrNoSeats
	case c.phase == PhaseSubmitting:
		c.mu.Unlock()
		return model.Booking{}, ErrSubmitting
	}
	session := *c.session
	gen := c.sessionGen
	seatIDs := append([]int64(nil), c.chosen...)
	c.phase = PhaseSubmitting
	c.mu.Unlock()

	log := logger.WithFields("session_id", session.Id, "seats", len(seatIDs))
	created, err := c.api.CreateBooking(ctx, token, model.BookingRequest{
		SessionId:     session.Id,
		SeatIds:       seatIDs,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		log.Warn("booking failed", "error", err)
		c.mu.Lock()
		if gen == c.sessionGen {
			c.phase = PhaseFailed
		}
		c.fail(err, "flash_booking_failed")
		c.mu.Unlock()
		return model.Booking{}, err
	}
	log.Info("booking confirmed", "booking_id", created.Id)
	c.board.Success(c.tr().T("flash_booking_confirmed"))

	c.mu.Lock()
	if gen == c.sessionGen {
		for _, id := range seatIDs {
			c.booked[id] = true
		}
		c.chosen = nil
		c.phase = PhaseConfirmed
	}
	booking := created
	c.lastBooking = &booking
	c.mu.Unlock()

	if err := c.refreshAvailability(ctx, session.Id, gen); err != nil {
		c.fail(err, "flash_load_failed")
	}
	_ = c.RefreshBookings(ctx)
	return created, nil
}

// Cancel cancels one of the user's bookings and reloads the list.
func (c *Controller) Cancel(ctx context.Context, bookingID int64) error {
	token := c.token()
	if token == "" {
		c.board.Error(c.tr().T("flash_login_required"))
		return ErrNotAuthenticated
	}
	cancelled, err := c.api.CancelBooking(ctx, token, bookingID)
	if err != nil {
		c.fail(err, "flash_cancel_failed")
		return err
	}
	if err := c.RefreshBookings(ctx); err != nil {
		return err
	}
	c.board.Success(c.tr().T("flash_booking_cancelled"))

	c.mu.Lock()
	sessionID, gen := int64(0), c.sessionGen
	if c.session != nil && c.session.Id == cancelled.SessionId {
		sessionID = c.session.Id
	}
	c.mu.Unlock()
	if sessionID != 0 {
		if err := c.refreshAvailability(ctx, sessionID, gen); err != nil {
			logger.Get().Warn("refresh availability after cancel", "error", err)
		}
	}
	return nil
}

// RefreshBookings reloads the signed-in user's bookings. Without a token the
// list is emptied.
func (c *Controller) RefreshBookings(ctx context.Context) error {
	token := c.token()
	c.mu.Lock()
	c.bookingsGen++
	gen := c.bookingsGen
	if token == "" {
		c.bookings = nil
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	bookings, err := c.api.ListMyBookings(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.bookingsGen {
		return nil
	}
	if err != nil {
		c.fail(err, "flash_load_failed")
		return err
	}
	c.bookings = bookings
	return nil
}

// ClearBookings forgets user-specific state after logout.
func (c *Controller) ClearBookings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookingsGen++
	c.bookings = nil
	c.lastBooking = nil
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) refreshAvailability(ctx context.Context, sessionID int64, gen uint64) error {
	availability, err := c.api.GetAvailability(ctx, sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.sessionGen {
		return nil
	}
	if err != nil {
		return err
	}
	c.booked = bookedSet(availability)
	kept := c.chosen[:0]
	for _, id := range c.chosen {
		if !c.booked[id] {
			kept = append(kept, id)
		}
	}
	c.chosen = kept
	if c.phase == PhaseSeatsChosen || c.phase == PhaseSessionSelected {
		c.updateSeatPhaseLocked()
	}
	return nil
}

func (c *Controller) resetSessionLocked() {
	c.session = nil
	c.seats = nil
	c.booked = map[int64]bool{}
	c.chosen = nil
}

func (c *Controller) updateSeatPhaseLocked() {
	if len(c.chosen) > 0 {
		c.phase = PhaseSeatsChosen
		return
	}
	c.phase = PhaseSessionSelected
}

func (c *Controller) hasSeatLocked(id int64) bool {
	for _, seat := range c.seats {
		if seat.Id == id {
			return true
		}
	}
	return false
}

func (c *Controller) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

func (c *Controller) fail(err error, fallbackKey string) {
	c.board.Error(service.Message(err, c.tr().T(fallbackKey)))
}

func (c *Controller) tr() i18n.Translator {
	if c.loc == nil {
		return i18n.New(i18n.Default)
	}
	return c.loc.Translator()
}

func bookedSet(availability model.Availability) map[int64]bool {
	booked := make(map[int64]bool, len(availability.BookedSeatIds))
	for _, id := range availability.BookedSeatIds {
		booked[id] = true
	}
	return booked
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
