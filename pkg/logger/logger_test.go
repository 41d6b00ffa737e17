package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_FirstCallWins(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Debug().Msg("first")

	// A second Init must not rebuild the logger or redirect its output.
	other := Init(Options{Level: "error", Output: &bytes.Buffer{}})
	other.Debug().Msg("second")

	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("both events must reach the first writer, got %q", out)
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "loud", Output: &buf})
	log.Debug().Msg("hidden")
	log.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug events must be filtered at info level, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info events must pass, got %q", out)
	}
}

func TestGet_ReturnsTheInitLogger(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Output: &buf})
	got := Get()
	got.Info().Msg("via get")

	if !strings.Contains(buf.String(), "via get") {
		t.Errorf("Get must hand back the initialized logger, got %q", buf.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	defer func() {
		if recover() == nil {
			t.Error("Get before Init must panic")
		}
	}()
	Get()
}
