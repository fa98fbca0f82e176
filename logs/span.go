package logs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type Span string

type spanKey struct{}

var SpanKey = spanKey{}

func spanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok && span != ""
}

// WrapSpan annotates err with the span of ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := spanFrom(ctx)
	if !ok || err == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}

// Handler adds the span of the record's context as the logs.span attribute.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := spanFrom(ctx); ok {
		record.Add("logs.span", span)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}
