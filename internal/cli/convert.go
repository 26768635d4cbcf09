package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/formats"
	webio "github.com/matzehuels/lidkit/pkg/io"
	"github.com/matzehuels/lidkit/pkg/photweb"
	"github.com/matzehuels/lidkit/pkg/pipeline"
)

// =============================================================================
// export
// =============================================================================

func (c *CLI) exportCommand() *cobra.Command {
	var output, encoding string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a photometric file's web as JSON or YAML",
		Long: `Parse a photometric file and write the expanded web as a JSON or YAML
document. Without --output the document goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], output, encoding)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .yaml, .yml)")
	cmd.Flags().StringVarP(&encoding, "format", "f", "", "document encoding: json (default), yaml")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, path, output, encoding string) error {
	enc, err := exportEncoding(output, encoding)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	l, err := runner.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	doc := webio.NewDocument(l.Web, meta(l))

	if output == "" {
		return webio.Write(doc, enc, stdout)
	}
	if err := webio.Export(l.Web, meta(l), output); err != nil {
		return err
	}
	printSuccess("Exported %s", filepath.Base(path))
	printFile(output)
	return nil
}

// exportEncoding resolves the encoding from --format, then the output
// extension, falling back to JSON.
func exportEncoding(output, encoding string) (webio.Encoding, error) {
	if encoding != "" {
		enc, err := webio.ParseEncoding(encoding)
		if err != nil {
			return "", err
		}
		if output != "" {
			if ext, err := webio.EncodingFor(output); err != nil || ext != enc {
				return "", errors.New(errors.ErrCodeInvalidInput, "--format %s does not match output %s", enc, output)
			}
		}
		return enc, nil
	}
	if output != "" {
		return webio.EncodingFor(output)
	}
	return webio.JSON, nil
}

// =============================================================================
// convert
// =============================================================================

func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between IES, EULUMDAT, JSON and YAML",
		Long: `Read a photometric file and write it in the format named by the output
extension (.ies, .ldt, .json, .yaml). The web is written in its expanded form,
so the output never declares a symmetry the input used to save space.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(ctx))
			l, err := runner.LoadFile(ctx, args[0])
			if err != nil {
				return err
			}
			if err := writeWeb(l.Web, meta(l), args[1]); err != nil {
				return err
			}
			prog.done("converted", "from", l.Format, "to", filepath.Ext(args[1]))

			printSuccess("Converted %s", filepath.Base(args[0]))
			printWebStats(l.Web.NPlanes(), pipeline.Summarize(l).Samples, l.CacheHit)
			printFile(args[1])
			return nil
		},
	}
}

// =============================================================================
// average
// =============================================================================

func (c *CLI) averageCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "average <file> <file>...",
		Short: "Average several photometric files into one",
		Long: `Average the intensities of several webs plane by plane and sample by
sample. All inputs must expand to the same planes at the same angles.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAverage(cmd.Context(), args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.ies, .ldt, .json, .yaml)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runAverage(ctx context.Context, paths []string, output string) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	members, err := loadAll(ctx, runner, paths)
	if err != nil {
		return err
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Averaging %d webs...", len(members)))
	spin.Start()
	avg, err := runner.Average(ctx, members...)
	spin.Stop()
	if err != nil {
		return err
	}

	if err := writeWeb(avg.Web, meta(avg), output); err != nil {
		return err
	}
	printSuccess("Averaged %d files", len(members))
	printWebStats(avg.Web.NPlanes(), pipeline.Summarize(avg).Samples, avg.CacheHit)
	printFile(output)
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

func loadAll(ctx context.Context, runner *pipeline.Runner, paths []string) ([]*pipeline.Loaded, error) {
	out := make([]*pipeline.Loaded, 0, len(paths))
	for _, p := range paths {
		l, err := runner.LoadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// writeWeb writes a document for .json/.yaml paths and a photometric file
// for any extension a format claims.
func writeWeb(web *photweb.Web, m webio.Meta, path string) error {
	if _, err := webio.EncodingFor(path); err == nil {
		return webio.Export(web, m, path)
	}
	return formats.Write(web, path)
}

func meta(l *pipeline.Loaded) webio.Meta {
	return webio.Meta{Source: l.Source, Format: l.Format}
}
