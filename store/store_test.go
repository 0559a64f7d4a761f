package store

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return s
}

func TestToken_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	token, err := s.LoadToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token, got %q", token)
	}

	if err := s.SaveToken("abc.def.ghi"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	token, err = s.LoadToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", token)
	}

	info, err := os.Stat(filepath.Join(s.Dir(), authFile))
	if err != nil {
		t.Fatalf("expected auth file, got %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected auth file mode: %v", info.Mode().Perm())
	}

	if err := s.ClearToken(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := s.ClearToken(); err != nil {
		t.Fatalf("clearing twice should be a no-op, got %v", err)
	}
	token, _ = s.LoadToken()
	if token != "" {
		t.Fatalf("expected token cleared, got %q", token)
	}
}

func TestSaveToken_InvalidInput(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveToken("   "); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestPreferences_LanguageAndTheme(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveLanguage("kk"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := s.SaveTheme(ThemeDark); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if prefs.Language != "kk" || prefs.Theme != ThemeDark {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}
}

func TestPreferences_UnknownValuesDropped(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePreferences(Preferences{Language: "de", Theme: "neon"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if prefs.Language != "" || prefs.Theme != "" {
		t.Fatalf("expected unknown values dropped, got %+v", prefs)
	}
}

func TestLoadToken_InvalidFormat(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Dir(), authFile), []byte("not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.LoadToken(); err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestNew_DefaultsToUserConfigDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)

	s, err := New("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if s.Dir() != filepath.Join(root, "kino-cli") {
		t.Fatalf("unexpected dir: %s", s.Dir())
	}
}
