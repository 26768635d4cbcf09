// Package pipeline provides the load → average → render flow shared by the
// lidkit CLI and HTTP API.
//
// By centralizing this logic, both entry points get the same format
// detection, caching and observability events.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Load: detect the file format, parse and expand the file into a web
//  2. Average: combine several loaded webs into their element-wise mean
//  3. Render: draw a web as an intensity chart or a plane ring diagram
//
// Each stage caches its result under a content-derived key, so repeating a
// request with the same bytes and options is served from the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	a, err := runner.LoadFile(ctx, "a.ies")
//	b, err := runner.LoadFile(ctx, "b.ldt")
//	avg, err := runner.Average(ctx, a, b)
//	svg, err := runner.Render(ctx, avg, pipeline.RenderOptions{Kind: "curve", Format: "svg"})
package pipeline

import (
	"slices"
	"time"

	"github.com/matzehuels/lidkit/pkg/cache"
	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
	"github.com/matzehuels/lidkit/pkg/render"
	"github.com/matzehuels/lidkit/pkg/render/curve"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultKind is the default visualization.
	DefaultKind = KindCurve

	// DefaultFormat is the default output format.
	DefaultFormat = render.FormatSVG
)

// Visualization kinds.
const (
	KindCurve = "curve"
	KindRing  = "ring"
)

// validFormats lists the output formats each kind supports.
var validFormats = map[string][]string{
	KindCurve: {render.FormatSVG, render.FormatPNG, render.FormatPDF, render.FormatHTML},
	KindRing:  {render.FormatSVG, render.FormatPNG, render.FormatPDF, render.FormatDOT},
}

// =============================================================================
// Inputs and Results
// =============================================================================

// Source is raw photometric file content.
type Source struct {
	// Name is the file path or upload name. Its extension selects the
	// format when Format is empty.
	Name string
	// Data is the file content.
	Data []byte
	// Format optionally names the format ("ies", "eulumdat").
	Format string
}

// Loaded is a web together with the identity it was cached under.
type Loaded struct {
	Web    *photweb.Web
	Source string
	Format string
	// Hash is the content hash of the source bytes, or of the member
	// hashes for an average.
	Hash string
	// Key is the cache key of the web.
	Key string
	// CacheHit reports whether the web came from the cache.
	CacheHit bool
	// Duration is the time spent in the stage.
	Duration time.Duration
}

// RenderOptions configures the render stage.
type RenderOptions struct {
	Kind     string    `json:"kind,omitempty"`
	Format   string    `json:"format,omitempty"`
	Title    string    `json:"title,omitempty"`
	Planes   []float64 `json:"planes,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Detailed bool      `json:"detailed,omitempty"`
	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"-"`
}

// ValidateAndSetDefaults fills in the kind and format and checks that the
// format suits the kind.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	allowed, ok := validFormats[o.Kind]
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid kind %q (must be one of: curve, ring)", o.Kind)
	}
	if o.Kind == KindCurve {
		if o.Width == 0 {
			o.Width = curve.DefaultWidth
		}
		if o.Height == 0 {
			o.Height = curve.DefaultHeight
		}
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must not be negative")
	}
	return render.ValidateFormat(o.Format, allowed...)
}

// ChartKeyOpts returns the cache key options for the render stage.
func (o RenderOptions) ChartKeyOpts() cache.ChartKeyOpts {
	return cache.ChartKeyOpts{
		Kind:     o.Kind,
		Format:   o.Format,
		Title:    o.Title,
		Planes:   slices.Clone(o.Planes),
		Width:    o.Width,
		Height:   o.Height,
		Detailed: o.Detailed,
	}
}

// FormatsFor returns the output formats a visualization kind supports.
func FormatsFor(kind string) []string {
	return slices.Clone(validFormats[kind])
}
