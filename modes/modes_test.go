package modes

import (
	"log/slog"
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if tt != nil {
			t.Fatal("production scope should not carry a *testing.T")
		}
		if mode.LogLevel() != slog.LevelInfo {
			t.Fatalf("got %v", mode.LogLevel())
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if tt != t {
			t.Fatal()
		}
		if mode.LogLevel() != slog.LevelDebug {
			t.Fatalf("got %v", mode.LogLevel())
		}
	})
}

func TestModeString(t *testing.T) {
	if s := ModeProduction.String(); s != "production" {
		t.Fatalf("got %s", s)
	}
	if s := Mode(0).String(); s != "Mode(0)" {
		t.Fatalf("got %s", s)
	}
}
