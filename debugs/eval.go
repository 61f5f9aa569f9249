package debugs

import (
	"context"

	"github.com/reusee/peopl/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Eval evaluates one Starlark expression against values and the builtins of
// Globals.
type Eval func(ctx context.Context, expr string, values map[string]any) (starlark.Value, error)

func (Module) Eval(
	globals Globals,
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, values map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "eval",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "starlark print", "msg", msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()
		return starlark.EvalOptions(fileOptions, thread, "<eval>", expr, globals(ctx, values))
	}
}
