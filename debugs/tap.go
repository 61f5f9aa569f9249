package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/peopl/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap opens an interactive Starlark session on the terminal with values
// bound as globals. It returns when the input ends.
type Tap func(ctx context.Context, what string, values map[string]any)

func (Module) Tap(
	logger logs.Logger,
	globals Globals,
) Tap {
	return func(ctx context.Context, what string, values map[string]any) {
		names := slices.Sorted(maps.Keys(values))
		logger.InfoContext(ctx, "tap: "+what, "globals", names)
		defer logger.InfoContext(ctx, "tap end: "+what)

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, globals(ctx, values))
	}
}
