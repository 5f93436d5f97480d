package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn line missing")
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "chatty")

	log.Debug().Msg("hidden")
	log.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at fallback level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info line missing at fallback level")
	}
}

func TestComponent_TagsLines(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, "info"), "hub")

	log.Info().Msg("tagged")

	if !strings.Contains(buf.String(), `"component":"hub"`) {
		t.Errorf("component tag missing: %s", buf.String())
	}
}

func TestNew_NilWriter(t *testing.T) {
	log := New(nil, "info")
	log.Info().Msg("discarded") // must not panic
}
