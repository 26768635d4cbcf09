package pipeline

import (
	"context"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
	"github.com/matzehuels/lidkit/pkg/render/curve"
	"github.com/matzehuels/lidkit/pkg/render/ring"
)

// renderWeb dispatches to the renderer for opts.Kind. opts must already be
// validated.
func renderWeb(ctx context.Context, web *photweb.Web, opts RenderOptions) ([]byte, error) {
	if web == nil {
		return nil, errors.New(errors.ErrCodeNoWebs, "nothing to render")
	}
	switch opts.Kind {
	case KindRing:
		return ring.Render(ctx, web, opts.Format, ring.Options{Detailed: opts.Detailed})
	default:
		return curve.Render(web, opts.Format, curve.Options{
			Title:  opts.Title,
			Planes: opts.Planes,
			Width:  opts.Width,
			Height: opts.Height,
		})
	}
}
