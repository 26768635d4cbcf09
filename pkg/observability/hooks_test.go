package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, "ies", "a.ies")
	p.OnParseComplete(ctx, "ies", "a.ies", 36, time.Second, nil)
	p.OnAverageStart(ctx, 3)
	p.OnAverageComplete(ctx, 3, time.Second, nil)
	p.OnRenderStart(ctx, "svg")
	p.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "web")
	c.OnCacheMiss(ctx, "avg")
	c.OnCacheSet(ctx, "chart", 1024)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/healthz")
	s.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	hooks := NewLogHooks(log.New(&bytes.Buffer{}))
	SetPipelineHooks(hooks)
	SetCacheHooks(hooks)
	SetServerHooks(hooks)
	if Pipeline() != hooks || Cache() != hooks || Server() != hooks {
		t.Error("Set*Hooks should register custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnParseComplete(ctx, "eulumdat", "a.ldt", 36, time.Millisecond, nil)
	h.OnAverageComplete(ctx, 2, 0, errors.New("plane counts differ"))
	h.OnCacheHit(ctx, "web")

	out := buf.String()
	for _, want := range []string{"parse done", "planes=36", "average failed", "plane counts differ", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
