package debugs

import (
	"context"

	"github.com/reusee/peopl/parses"
	"github.com/reusee/peopl/syntax"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Globals builds the names bound in every Starlark session: the given values
// plus the parse and sexpr builtins.
type Globals func(ctx context.Context, values map[string]any) starlark.StringDict

func (Module) Globals(
	parse parses.Parse,
) Globals {
	return func(ctx context.Context, values map[string]any) starlark.StringDict {
		ret := make(starlark.StringDict, len(values)+2)

		ret["parse"] = starlark.NewBuiltin("parse", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var source string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &source); err != nil {
				return nil, err
			}
			expr, err := parse(ctx, "<starlark>", source)
			if err != nil {
				return nil, err
			}
			return ToStarlark(expr), nil
		})

		ret["sexpr"] = starlarkutil.MakeFunc("sexpr", func(source string) (string, error) {
			expr, err := parse(ctx, "<starlark>", source)
			if err != nil {
				return "", err
			}
			return syntax.Format(expr), nil
		})

		for name, value := range values {
			ret[name] = ToStarlark(value)
		}
		return ret
	}
}
