package logs

import (
	"log/slog"

	"github.com/reusee/peopl/cmds"
	"github.com/reusee/peopl/modes"
)

// Level is the minimum level of records the Logger emits.
type Level = *slog.LevelVar

var levelFlag *slog.Level

func init() {
	for name, level := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			levelFlag = &level
		}).Desc("set log level to "+level.String()))
	}
}

func (Module) Level(
	mode modes.Mode,
) Level {
	ret := new(slog.LevelVar)
	if levelFlag != nil {
		ret.Set(*levelFlag)
	} else {
		ret.Set(mode.LogLevel())
	}
	return ret
}
