package parses

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/peopl/configs"
	"github.com/reusee/peopl/logs"
	"github.com/reusee/peopl/syntax"
)

// Parse parses one named source with the configured nesting limit.
type Parse func(ctx context.Context, name string, source string) (syntax.Expression, error)

func (Module) Parse(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxDepth configs.MaxDepth,
) Parse {
	options := syntax.Options{
		MaxDepth: int(maxDepth),
	}

	return func(ctx context.Context, name string, source string) (syntax.Expression, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ctx, _ = newSpan(ctx, "parse", "source", name)

		tokens := syntax.Tokenize(source)
		logger.DebugContext(ctx, "tokenized",
			"bytes", len(source),
			"tokens", len(tokens),
		)

		expr, err := syntax.NewParser(tokens, options).Parse()
		if err != nil {
			var parseErr *syntax.ParseError
			if errors.As(err, &parseErr) {
				logger.WarnContext(ctx, "parse error",
					"pos", parseErr.Pos.String(),
					"error", parseErr.Err,
				)
			}
			return nil, logs.WrapSpan(ctx, fmt.Errorf("parse %s: %w", name, err))
		}

		logger.DebugContext(ctx, "parsed",
			"nodes", syntax.Count(expr),
		)
		return expr, nil
	}
}
