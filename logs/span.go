package logs

import (
	"context"
	"crypto/rand"
	"fmt"
)

type Span string

type spanKey struct{}

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanKey{}).(Span)
	return span, ok
}

// NewSpan derives a context tagged with a fresh span. The span already in ctx,
// if any, is logged as the parent.
type NewSpan func(ctx context.Context, what string, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string, args ...any) (context.Context, Span) {
		parent, hasParent := SpanFrom(ctx)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, spanKey{}, span)
		if hasParent {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "span: "+what, args...)
		return ctx, span
	}
}

// WrapSpan annotates err with the span carried by ctx.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}
