package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"kino-cli/app"
	"kino-cli/config"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(config.Config{APIBaseURL: "http://127.0.0.1:1/api", ConfigDir: t.TempDir()})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return a
}

func TestVersionCommand(t *testing.T) {
	version, commit = "1.2.3", "abc123"
	t.Cleanup(func() { version, commit = "dev", "none" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "kino 1.2.3 (abc123)" {
		t.Fatalf("unexpected version output %q", got)
	}
}

func TestRootRejectsUnknownLanguage(t *testing.T) {
	rootCmd.SetArgs([]string{"--lang", "de", "version"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		langFlag = ""
	})

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "de") {
		t.Fatalf("expected unknown language error, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("#42"); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, err)
	}
	for _, raw := range []string{"", "abc", "0", "-3"} {
		if _, err := parseID(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestOutcomeUsesFlashText(t *testing.T) {
	a := newTestApp(t)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	a.Flash.Error("Места уже заняты")
	err := outcome(cmd, a, errors.New("status 409"))
	if err == nil || err.Error() != "Места уже заняты" {
		t.Fatalf("expected flash text, got %v", err)
	}

	a.Flash.Success("Бронирование подтверждено")
	if err := outcome(cmd, a, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Бронирование подтверждено" {
		t.Fatalf("unexpected output %q", got)
	}
}
