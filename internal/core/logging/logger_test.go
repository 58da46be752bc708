package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })

	logger := Component("api")
	ctx := WithVideoRef(context.Background(), "abc123")
	logger.Info().Ctx(ctx).Msg("test message")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if cmp := logEntry["cmp"]; cmp != "api" {
		t.Errorf("Component() cmp = %v, want %q", cmp, "api")
	}

	if ref := logEntry["video_ref"]; ref != "abc123" {
		t.Errorf("Component() video_ref = %v, want %q", ref, "abc123")
	}

	if msg := logEntry["message"]; msg != "test message" {
		t.Errorf("Component() message = %v, want %q", msg, "test message")
	}
}
