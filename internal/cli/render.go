package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/pipeline"
)

// renderFlags holds the flags shared by plot and ring.
type renderFlags struct {
	output   string
	format   string
	title    string
	planes   []float64
	width    int
	height   int
	detailed bool
	refresh  bool
}

func (c *CLI) plotCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "plot <file>...",
		Short: "Plot polar intensity curves",
		Long: `Plot the intensity of selected C-planes as a polar curve chart.

Several inputs are averaged before plotting. The output format follows the
extension of --output (svg, png, pdf, html) unless --format is given.`,
		Example: `  lidkit plot downlight.ies -o chart.svg
  lidkit plot a.ldt b.ldt --planes 0,45,90 -o chart.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), pipeline.KindCurve, args, cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: svg, png, pdf, html")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title (default: file name)")
	cmd.Flags().Float64SliceVar(&f.planes, "planes", nil, "C-plane angles to plot in degrees (default from config)")
	cmd.Flags().IntVar(&f.width, "width", 0, "chart width in pixels (default from config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "chart height in pixels (default from config)")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached charts")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) ringCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "ring <file>",
		Short: "Draw the C-plane ring of a web",
		Long: `Draw each C-plane as a node on a ring, linked to its neighbour, with
its angle and angular width. The output format follows the extension of
--output (svg, png, pdf, dot) unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), pipeline.KindRing, args, cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: svg, png, pdf, dot")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "label planes with widths, sample counts and peaks")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached charts")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, kind string, paths []string, cmd *cobra.Command, f renderFlags) error {
	opts, err := c.renderOptions(kind, cmd, f, paths)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	members, err := loadAll(ctx, runner, paths)
	if err != nil {
		return err
	}
	l := members[0]
	if len(members) > 1 {
		if l, err = runner.Average(ctx, members...); err != nil {
			return err
		}
	}

	prog := newProgress(loggerFromContext(ctx))
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s %s...", kind, opts.Format))
	spin.Start()
	data, err := runner.Render(ctx, l, opts)
	spin.Stop()
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", f.output)
	}
	prog.done("rendered", "kind", kind, "format", opts.Format, "bytes", len(data))

	printSuccess("Rendered %s", kind)
	printWebStats(l.Web.NPlanes(), 0, l.CacheHit)
	printFile(f.output)
	return nil
}

// renderOptions layers flags over the config defaults. Flags the user did
// not set keep the config values.
func (c *CLI) renderOptions(kind string, cmd *cobra.Command, f renderFlags, paths []string) (pipeline.RenderOptions, error) {
	opts := c.renderDefaults(kind)
	opts.Refresh = f.refresh
	opts.Detailed = f.detailed

	opts.Format = strings.ToLower(f.format)
	if opts.Format == "" {
		opts.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(f.output)), ".")
	}

	if kind == pipeline.KindCurve {
		opts.Title = f.title
		if opts.Title == "" {
			opts.Title = filepath.Base(paths[0])
			if len(paths) > 1 {
				opts.Title = fmt.Sprintf("Average of %d files", len(paths))
			}
		}
		flags := cmd.Flags()
		if flags.Changed("planes") {
			opts.Planes = f.planes
		}
		if flags.Changed("width") {
			opts.Width = f.width
		}
		if flags.Changed("height") {
			opts.Height = f.height
		}
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}
