package modes

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/reusee/dscope"
)

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// LogLevel is the level a logger starts at when no level command is given.
func (m Mode) LogLevel() slog.Level {
	if m == ModeDevelopment {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
