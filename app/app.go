// Package app wires the client, persisted preferences and controllers into
// the single state the presentation layers drive.
package app

import (
	"context"
	"sync"

	"kino-cli/account"
	"kino-cli/admin"
	"kino-cli/booking"
	"kino-cli/config"
	"kino-cli/flash"
	"kino-cli/i18n"
	"kino-cli/logger"
	"kino-cli/model"
	"kino-cli/service"
	"kino-cli/store"
	"kino-cli/ticket"
)

// API is everything the controllers need from the backend.
type API interface {
	account.API
	booking.API
	admin.API
	BookingQR(ctx context.Context, token string, bookingID int64) (model.Blob, error)
	BookingTicket(ctx context.Context, token string, bookingID int64) (model.Blob, error)
}

type App struct {
	Config  config.Config
	API     API
	Store   *store.Store
	Lang    *i18n.Selector
	Flash   *flash.Board
	Account *account.State
	Booking *booking.Controller
	Admin   *admin.Panel
	QR      *ticket.Viewer

	mu    sync.Mutex
	theme string
}

// New builds the application against the configured backend.
func New(cfg config.Config) (*App, error) {
	st, err := store.New(cfg.ConfigDir)
	if err != nil {
		return nil, err
	}
	client := service.NewClient(service.Config{
		BaseURL:     cfg.APIBaseURL,
		Timeout:     cfg.RequestTimeout,
		MaxAttempts: cfg.MaxAttempts,
	})
	return NewWithAPI(cfg, client, st), nil
}

// NewWithAPI wires the controllers around api and st. Stored preferences
// win over the configured language.
func NewWithAPI(cfg config.Config, api API, st *store.Store) *App {
	prefs, err := st.LoadPreferences()
	if err != nil {
		logger.Get().Warn("load preferences", "error", err)
	}

	lang := i18n.Default
	if configured, ok := i18n.Parse(cfg.Language); ok {
		lang = configured
	}
	if stored, ok := i18n.Parse(prefs.Language); ok {
		lang = stored
	}
	theme := prefs.Theme
	if theme == "" {
		theme = store.ThemeDark
	}

	a := &App{
		Config: cfg,
		API:    api,
		Store:  st,
		Lang:   i18n.NewSelector(lang),
		Flash:  &flash.Board{},
		QR:     &ticket.Viewer{},
		theme:  theme,
	}
	a.Account = account.New(api, st, a.Flash, a.Lang)
	a.Booking = booking.New(api, a.Account, a.Flash, a.Lang)
	a.Admin = admin.New(api, a.Account, a.Flash, a.Lang)

	a.Account.OnLogout(a.Booking.ClearBookings)
	a.Account.OnLogout(a.Admin.Reset)
	a.Account.OnLogout(a.QR.Close)
	a.Admin.OnMovies(a.Booking.SetMovies)
	return a
}

// Start restores a saved session and loads the catalog.
func (a *App) Start(ctx context.Context) error {
	a.Account.Restore(ctx)
	if a.Account.Authenticated() {
		_ = a.Booking.RefreshBookings(ctx)
	}
	return a.Booking.LoadMovies(ctx)
}

func (a *App) Login(ctx context.Context, email string, password string) error {
	if err := a.Account.Login(ctx, email, password); err != nil {
		return err
	}
	_ = a.Booking.RefreshBookings(ctx)
	return nil
}

func (a *App) Register(ctx context.Context, name string, email string, password string) error {
	if err := a.Account.Register(ctx, name, email, password); err != nil {
		return err
	}
	_ = a.Booking.RefreshBookings(ctx)
	return nil
}

func (a *App) Logout() {
	a.Account.Logout()
}

func (a *App) Translator() i18n.Translator {
	return a.Lang.Translator()
}

// SetLanguage switches the interface language and remembers it.
func (a *App) SetLanguage(lang i18n.Lang) {
	a.Lang.Set(lang)
	if err := a.Store.SaveLanguage(string(a.Lang.Lang())); err != nil {
		logger.Get().Warn("save language", "error", err)
	}
}

func (a *App) Theme() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

// ToggleTheme flips between light and dark and remembers the choice.
func (a *App) ToggleTheme() string {
	a.mu.Lock()
	if a.theme == store.ThemeDark {
		a.theme = store.ThemeLight
	} else {
		a.theme = store.ThemeDark
	}
	theme := a.theme
	a.mu.Unlock()

	if err := a.Store.SaveTheme(theme); err != nil {
		logger.Get().Warn("save theme", "error", err)
	}
	return theme
}
