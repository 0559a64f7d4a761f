package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestInit_JSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json", &buf)

	Get().Info("hidden")
	WithRequestID("abc").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"request_id":"abc"`) {
		t.Fatalf("expected request id field, got %s", out)
	}
}

func TestNewRequestID_IsUUID(t *testing.T) {
	id := NewRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid, got %q: %v", id, err)
	}
}
