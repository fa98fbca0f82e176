package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bff/modes"
	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		logger.Debug("debug is enabled in tests")
	})
}

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "batch")
		if !strings.HasPrefix(string(span1), "batch-") {
			t.Fatalf("got %v", span1)
		}

		_, span2 := newSpan(ctx1, "run")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("foo")
	if WrapSpan(context.Background(), err) != err {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("bar"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatal()
	}
	if !strings.Contains(wrapped.Error(), "span: bar") {
		t.Fatalf("got %v", wrapped)
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %v", got)
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("vm", "bff").InfoContext(ctx, "run")
		if !strings.Contains(buf.String(), "logs.span=foo") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "vm=bff") {
			t.Fatalf("got %s", buf.String())
		}
	})
}
