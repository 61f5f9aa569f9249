package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	level Level,
) Logger {
	var handlers []slog.Handler

	if !isSystemdService() {
		handlers = append(handlers, slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		))
		return slog.New(&Handler{
			Handler: slogmulti.Fanout(handlers...),
		})
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		// no journal socket, keep logging to the writer
		fallback := slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
		record.Add("error", err)
		_ = fallback.Handle(context.Background(), record)
		handlers = append(handlers, fallback)
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// toJournalKey maps an attribute key to the upper case form journald accepts.
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
