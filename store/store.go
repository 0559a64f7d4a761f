package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	authFile        = "auth.json"
	preferencesFile = "preferences.json"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences are display settings reapplied on every start.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

type authState struct {
	Token string `json:"token"`
}

// Store persists client state as JSON files in one directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. An empty dir resolves to the user's
// config directory.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "kino-cli")
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// LoadToken returns the persisted bearer token, or "" when none is stored.
func (s *Store) LoadToken() (string, error) {
	var state authState
	found, err := s.readJSON(authFile, &state)
	if err != nil || !found {
		return "", err
	}
	return strings.TrimSpace(state.Token), nil
}

func (s *Store) SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}
	return s.writeJSON(authFile, authState{Token: token}, 0o600)
}

func (s *Store) ClearToken() error {
	err := os.Remove(s.path(authFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadPreferences returns stored preferences; unknown values are dropped so
// the caller's defaults apply.
func (s *Store) LoadPreferences() (Preferences, error) {
	var prefs Preferences
	if _, err := s.readJSON(preferencesFile, &prefs); err != nil {
		return Preferences{}, err
	}
	switch prefs.Language {
	case "ru", "en", "kk":
	default:
		prefs.Language = ""
	}
	if prefs.Theme != ThemeLight && prefs.Theme != ThemeDark {
		prefs.Theme = ""
	}
	return prefs, nil
}

func (s *Store) SavePreferences(prefs Preferences) error {
	return s.writeJSON(preferencesFile, prefs, 0o644)
}

func (s *Store) SaveLanguage(lang string) error {
	prefs, err := s.LoadPreferences()
	if err != nil {
		prefs = Preferences{}
	}
	prefs.Language = lang
	return s.SavePreferences(prefs)
}

func (s *Store) SaveTheme(theme string) error {
	prefs, err := s.LoadPreferences()
	if err != nil {
		prefs = Preferences{}
	}
	prefs.Theme = theme
	return s.SavePreferences(prefs)
}

func (s *Store) readJSON(name string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.New("invalid " + name + " format")
	}
	return true, nil
}

func (s *Store) writeJSON(name string, value any, perm os.FileMode) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), payload, perm)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
