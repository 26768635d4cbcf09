package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lidkit/pkg/formats"
	"github.com/matzehuels/lidkit/pkg/formats/eulumdat"
	"github.com/matzehuels/lidkit/pkg/formats/ies"
	"github.com/matzehuels/lidkit/pkg/pipeline"
)

type infoOpts struct {
	json   bool
	header bool
	widths bool
}

func (c *CLI) infoCommand() *cobra.Command {
	var opts infoOpts

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a photometric file",
		Long: `Parse an IES or EULUMDAT file and print the shape of the resulting web:
plane count and range, sample count, symmetry, total and peak intensity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the summary as JSON")
	cmd.Flags().BoolVar(&opts.header, "header", false, "also print the file's header fields")
	cmd.Flags().BoolVar(&opts.widths, "widths", false, "also print each plane's angular width")

	return cmd
}

func (c *CLI) runInfo(ctx context.Context, path string, opts infoOpts) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	l, err := runner.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	s := pipeline.Summarize(l)

	if opts.json {
		return writeIndentedJSON(s)
	}

	fmt.Fprintln(stdout, StyleTitle.Render(filepath.Base(path)))
	printWebStats(s.Planes, s.Samples, l.CacheHit)
	printNewline()

	printKeyValue("format", s.Format)
	printKeyValue("C-planes", fmt.Sprintf("%s … %s", formatDeg(s.MinAngle), formatDeg(s.MaxAngle)))
	spacing := "uniform"
	if !s.Uniform {
		spacing = "non-uniform"
	}
	printKeyValue("spacing", spacing)
	if s.Spherical {
		printKeyValue("symmetry", "rotationally symmetric")
	}
	printKeyValue("total", StyleNumber.Render(fmt.Sprintf("%.6g", s.TotalIntensity))+" cd·sr")
	printKeyValue("peak", StyleNumber.Render(fmt.Sprintf("%.6g", s.MaxIntensity))+" cd")

	if opts.widths {
		printNewline()
		for i, w := range pipeline.Widths(l.Web) {
			printDetail("C %-8s -%s / +%s", formatDeg(l.Web.Plane(i).AngleDeg()), formatDeg(w[0]), formatDeg(w[1]))
		}
	}

	if opts.header {
		printNewline()
		if err := printHeader(path); err != nil {
			return err
		}
	}

	printNewline()
	printNextStep("Plot it", fmt.Sprintf("%s plot %s -o chart.svg", appName, path))
	return nil
}

// printHeader prints the descriptive fields the web does not carry.
func printHeader(path string) error {
	f, err := formats.Detect(path)
	if err != nil {
		return err
	}
	switch f.Name() {
	case "ies":
		doc, err := ies.ParseFile(path)
		if err != nil {
			return err
		}
		printKeyValue("standard", doc.Standard.String())
		for _, kw := range doc.Keywords {
			if kw.Key == "" {
				printDetail("%s", kw.Value)
				continue
			}
			printKeyValue(kw.Key, kw.Value)
		}
	case "eulumdat":
		doc, err := eulumdat.ParseFile(path)
		if err != nil {
			return err
		}
		printKeyValue("company", doc.Header)
		printKeyValue("luminaire", doc.LuminaireName)
		printKeyValue("number", doc.LuminaireNumber)
		printKeyValue("symmetry", doc.Symmetry.String())
		printKeyValue("LOR", fmt.Sprintf("%g %%", doc.LightOutputRatio))
		for _, lamp := range doc.Lamps {
			printDetail("%d × %s, %g lm, %g W", lamp.Count, lamp.Type, lamp.Flux, lamp.Wattage)
		}
	}
	return nil
}

// formatDeg renders an angle in degrees without float noise.
func formatDeg(deg float64) string {
	return fmt.Sprintf("%g°", float64(int64(deg*1e6+sign(deg)*0.5))/1e6)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
