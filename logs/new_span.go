package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span named what under the span carried by ctx.
type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		var parent Span
		if v := ctx.Value(SpanKey); v != nil {
			parent = v.(Span)
		}

		span := Span(what + "-" + rand.Text()[:8])
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
