package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lidkit/pkg/cache"
	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/formats"
	webio "github.com/matzehuels/lidkit/pkg/io"
	"github.com/matzehuels/lidkit/pkg/observability"
	"github.com/matzehuels/lidkit/pkg/ops"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Runner executes pipeline stages with caching.
// Both CLI and API use it so neither duplicates the caching logic.
//
// The Runner holds no results of its own; several goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// LoadFile reads path and loads it as a [Source].
func (r *Runner) LoadFile(ctx context.Context, path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return r.Load(ctx, Source{Name: path, Data: data})
}

// Load parses src into a web. The format comes from src.Format when set,
// otherwise from the extension of src.Name.
func (r *Runner) Load(ctx context.Context, src Source) (*Loaded, error) {
	start := time.Now()

	f, err := resolveFormat(src)
	if err != nil {
		return nil, err
	}

	hash := cache.Hash(src.Data)
	key := r.Keyer.WebKey(hash, f.Name())
	loaded := &Loaded{Source: src.Name, Format: f.Name(), Hash: hash, Key: key}

	if web, ok := r.cachedWeb(ctx, key, "web"); ok {
		loaded.Web = web
		loaded.CacheHit = true
		loaded.Duration = time.Since(start)
		r.Logger.Debug("web from cache", "source", src.Name, "key", key)
		return loaded, nil
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, f.Name(), src.Name)
	web, err := f.Decode(src.Data)
	planes := 0
	if web != nil {
		planes = web.NPlanes()
	}
	hooks.OnParseComplete(ctx, f.Name(), src.Name, planes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.storeWeb(ctx, key, "web", web, webio.Meta{Source: src.Name, Format: f.Name()}, cache.WebTTL)

	loaded.Web = web
	loaded.Duration = time.Since(start)
	r.Logger.Info("parsed photometry",
		"source", src.Name,
		"format", f.Name(),
		"planes", web.NPlanes(),
		"duration", loaded.Duration)
	return loaded, nil
}

// Average combines loaded webs into their mean. The cache key is derived
// from the member hashes in order.
func (r *Runner) Average(ctx context.Context, members ...*Loaded) (*Loaded, error) {
	start := time.Now()
	if len(members) == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "no webs to average")
	}

	hashes := make([]string, len(members))
	webs := make([]*photweb.Web, len(members))
	for i, m := range members {
		hashes[i] = m.Hash
		webs[i] = m.Web
	}
	key := r.Keyer.AverageKey(hashes)
	avg := &Loaded{Source: "average", Format: "average", Hash: cache.Hash([]byte(key)), Key: key}

	if web, ok := r.cachedWeb(ctx, key, "avg"); ok {
		avg.Web = web
		avg.CacheHit = true
		avg.Duration = time.Since(start)
		return avg, nil
	}

	hooks := observability.Pipeline()
	hooks.OnAverageStart(ctx, len(webs))
	web, err := ops.Average(webs...)
	hooks.OnAverageComplete(ctx, len(webs), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.storeWeb(ctx, key, "avg", web, webio.Meta{Source: "average", Format: "average"}, cache.AverageTTL)

	avg.Web = web
	avg.Duration = time.Since(start)
	r.Logger.Info("averaged webs", "count", len(webs), "planes", web.NPlanes(), "duration", avg.Duration)
	return avg, nil
}

// Render draws a loaded web. Results are cached per web and options.
func (r *Runner) Render(ctx context.Context, l *Loaded, opts RenderOptions) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()
	key := r.Keyer.ChartKey(l.Key, opts.ChartKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "chart")
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "chart")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	data, err := renderWeb(ctx, l.Web, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.ChartTTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "chart", len(data))
	}

	r.Logger.Info("rendered chart",
		"kind", opts.Kind,
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func resolveFormat(src Source) (formats.Format, error) {
	if src.Format != "" {
		return formats.ByName(src.Format)
	}
	if src.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "source needs a name or a format")
	}
	return formats.Detect(filepath.Base(src.Name))
}

// cachedWeb returns the web stored under key. Undecodable entries count as
// misses and are recomputed.
func (r *Runner) cachedWeb(ctx context.Context, key, keyType string) (*photweb.Web, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	doc, err := webio.Read(bytes.NewReader(data), webio.JSON)
	if err != nil {
		r.Logger.Debug("discarding cache entry", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	web, err := doc.Web()
	if err != nil {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return web, true
}

func (r *Runner) storeWeb(ctx context.Context, key, keyType string, web *photweb.Web, meta webio.Meta, ttl time.Duration) {
	var buf bytes.Buffer
	if err := webio.Write(webio.NewDocument(web, meta), webio.JSON, &buf); err != nil {
		r.Logger.Warn("encode web for cache", "key", key, "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, buf.Len())
}
