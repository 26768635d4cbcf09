package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a structured logger at debug level.
// Failures are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("obs")}
}

func (h *LogHooks) OnParseStart(_ context.Context, format, source string) {
	h.logger.Debug("parse start", "format", format, "source", source)
}

func (h *LogHooks) OnParseComplete(_ context.Context, format, source string, planes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("parse failed", "format", format, "source", source, "err", err)
		return
	}
	h.logger.Debug("parse done", "format", format, "source", source, "planes", planes, "took", d)
}

func (h *LogHooks) OnAverageStart(_ context.Context, webs int) {
	h.logger.Debug("average start", "webs", webs)
}

func (h *LogHooks) OnAverageComplete(_ context.Context, webs int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("average failed", "webs", webs, "err", err)
		return
	}
	h.logger.Debug("average done", "webs", webs, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", size, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "took", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
