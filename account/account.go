// Package account tracks who is signed in: the bearer token, the profile it
// belongs to, and the transitions between guest and authenticated.
package account

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kino-cli/flash"
	"kino-cli/i18n"
	"kino-cli/logger"
	"kino-cli/model"
	"kino-cli/service"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// API is the part of the backend client the account state needs.
type API interface {
	Register(ctx context.Context, payload model.RegisterRequest) (model.AuthResult, error)
	Login(ctx context.Context, payload model.LoginRequest) (model.AuthResult, error)
	Me(ctx context.Context, token string) (model.User, error)
	UpdateProfile(ctx context.Context, token string, payload model.ProfileRequest) (model.User, error)
	ChangePassword(ctx context.Context, token string, payload model.PasswordRequest) error
}

// TokenStore persists the bearer token across runs.
type TokenStore interface {
	LoadToken() (string, error)
	SaveToken(token string) error
	ClearToken() error
}

type Localizer interface {
	Translator() i18n.Translator
}

// State is safe for concurrent use. Network calls run without the lock held.
type State struct {
	api    API
	tokens TokenStore
	board  *flash.Board
	loc    Localizer
	now    func() time.Time

	mu       sync.Mutex
	token    string
	user     *model.User
	onLogout []func()
}

func New(api API, tokens TokenStore, board *flash.Board, loc Localizer) *State {
	return &State{
		api:    api,
		tokens: tokens,
		board:  board,
		loc:    loc,
		now:    time.Now,
	}
}

// OnLogout registers a hook run after the session is dropped, e.g. to clear
// bookings or leave the admin view.
func (s *State) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Restore revalidates a persisted token. Any failure leaves the state
// unauthenticated and the stored token removed.
func (s *State) Restore(ctx context.Context) {
	log := logger.Get()
	token, err := s.tokens.LoadToken()
	if err != nil {
		log.Warn("load stored token", "error", err)
		s.discardToken()
		return
	}
	if token == "" {
		return
	}
	if expired(token, s.now()) {
		log.Info("stored token expired")
		s.discardToken()
		return
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		log.Info("stored token rejected", "error", err)
		s.discardToken()
		return
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	log.Debug("session restored", "user_id", user.Id)
}

func (s *State) Login(ctx context.Context, email string, password string) error {
	result, err := s.api.Login(ctx, model.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		s.board.Error(service.Message(err, s.tr().T("flash_auth_error")))
		return err
	}
	s.adopt(result)
	s.board.Success(s.tr().T("flash_logged_in"))
	return nil
}

func (s *State) Register(ctx context.Context, name string, email string, password string) error {
	result, err := s.api.Register(ctx, model.RegisterRequest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		s.board.Error(service.Message(err, s.tr().T("flash_auth_error")))
		return err
	}
	s.adopt(result)
	s.board.Success(s.tr().T("flash_account_created"))
	return nil
}

// Logout drops the session locally; the backend keeps no session to end.
func (s *State) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	if err := s.tokens.ClearToken(); err != nil {
		logger.Get().Warn("clear stored token", "error", err)
	}
	for _, fn := range hooks {
		fn()
	}
}

func (s *State) UpdateProfile(ctx context.Context, name string) error {
	token := s.Token()
	if token == "" {
		s.board.Error(s.tr().T("flash_login_required"))
		return ErrNotAuthenticated
	}
	user, err := s.api.UpdateProfile(ctx, token, model.ProfileRequest{Name: strings.TrimSpace(name)})
	if err != nil {
		s.board.Error(service.Message(err, s.tr().T("flash_profile_failed")))
		return err
	}
	s.mu.Lock()
	if s.token == token {
		s.user = &user
	}
	s.mu.Unlock()
	s.board.Success(s.tr().T("flash_profile_saved"))
	return nil
}

func (s *State) ChangePassword(ctx context.Context, current string, next string) error {
	token := s.Token()
	if token == "" {
		s.board.Error(s.tr().T("flash_login_required"))
		return ErrNotAuthenticated
	}
	err := s.api.ChangePassword(ctx, token, model.PasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		s.board.Error(service.Message(err, s.tr().T("flash_password_failed")))
		return err
	}
	s.board.Success(s.tr().T("flash_password_changed"))
	return nil
}

func (s *State) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the signed-in profile.
func (s *State) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *State) Authenticated() bool {
	return s.Token() != ""
}

func (s *State) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil && s.user.IsAdmin
}

func (s *State) adopt(result model.AuthResult) {
	user := result.User
	s.mu.Lock()
	s.token = result.Token
	s.user = &user
	s.mu.Unlock()

	if err := s.tokens.SaveToken(result.Token); err != nil {
		logger.Get().Warn("persist token", "error", err)
	}
}

func (s *State) discardToken() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.tokens.ClearToken(); err != nil {
		logger.Get().Warn("clear stored token", "error", err)
	}
}

func (s *State) tr() i18n.Translator {
	if s.loc == nil {
		return i18n.New(i18n.Default)
	}
	return s.loc.Translator()
}

// expired reads the exp claim without verifying the signature.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Get().Debug("token is not a parseable jwt", "error", err)
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
