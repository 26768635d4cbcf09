package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lidkit/pkg/catalog"
	"github.com/matzehuels/lidkit/pkg/errors"
	webio "github.com/matzehuels/lidkit/pkg/io"
)

func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local luminaire catalog",
		Long: `The catalog is a SQLite database of parsed webs. Entries are addressed
by their id or any unique prefix of it.`,
	}

	cmd.AddCommand(c.catalogAddCommand())
	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogShowCommand())
	cmd.AddCommand(c.catalogRemoveCommand())

	return cmd
}

// withCatalog opens the catalog for the duration of fn.
func (c *CLI) withCatalog(fn func(*catalog.Catalog) error) error {
	cat, err := c.openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()
	return fn(cat)
}

func (c *CLI) catalogAddCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Parse files and add them to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" && len(args) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--name applies to a single file")
			}
			return c.withCatalog(func(cat *catalog.Catalog) error {
				return c.runCatalogAdd(cmd.Context(), cat, args, name)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "entry name (default: file name)")

	return cmd
}

func (c *CLI) runCatalogAdd(ctx context.Context, cat *catalog.Catalog, paths []string, name string) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	for _, p := range paths {
		l, err := runner.LoadFile(ctx, p)
		if err != nil {
			return err
		}
		entryName := name
		if entryName == "" {
			entryName = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		e, err := cat.Add(ctx, catalog.Record{Name: entryName, Source: p, Format: l.Format, Hash: l.Hash}, l.Web)
		if err != nil {
			return err
		}
		printSuccess("%s %s", StyleHighlight.Render(shortID(e.ID)), e.Name)
		printWebStats(e.Planes, 0, l.CacheHit)
	}
	return nil
}

func (c *CLI) catalogListCommand() *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(func(cat *catalog.Catalog) error {
				entries, err := cat.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeIndentedJSON(entries)
				}
				if len(entries) == 0 {
					printInfo("Catalog is empty")
					printNextStep("Add a file", appName+" catalog add downlight.ies")
					return nil
				}
				fmt.Fprintln(stdout, entryTable(entries))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum entries to list (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")

	return cmd
}

func (c *CLI) catalogShowCommand() *cobra.Command {
	var output string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog entry, optionally writing its web",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withCatalog(func(cat *catalog.Catalog) error {
				e, err := cat.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeIndentedJSON(e)
				}

				fmt.Fprintln(stdout, StyleTitle.Render(e.Name))
				printKeyValue("id", e.ID)
				printKeyValue("source", e.Source)
				printKeyValue("format", e.Format)
				printKeyValue("planes", fmt.Sprint(e.Planes))
				printKeyValue("total", fmt.Sprintf("%.6g cd·sr", e.TotalIntensity))
				printKeyValue("peak", fmt.Sprintf("%.6g cd", e.MaxIntensity))
				printKeyValue("added", e.Added.Local().Format("2006-01-02 15:04"))

				if output == "" {
					return nil
				}
				web, err := cat.Web(ctx, e.ID)
				if err != nil {
					return err
				}
				if err := writeWeb(web, catalogMeta(e), output); err != nil {
					return err
				}
				printFile(output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the entry's web (.ies, .ldt, .json, .yaml)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entry as JSON")

	return cmd
}

func (c *CLI) catalogRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a catalog entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(func(cat *catalog.Catalog) error {
				e, err := cat.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printSuccess("Removed %s %s", StyleHighlight.Render(shortID(e.ID)), e.Name)
				return nil
			})
		},
	}
}

// entryTable renders catalog entries as a bordered table.
func entryTable(entries []catalog.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			shortID(e.ID),
			e.Name,
			e.Format,
			fmt.Sprint(e.Planes),
			fmt.Sprintf("%.5g", e.MaxIntensity),
			e.Added.Local().Format("2006-01-02"),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Format", "Planes", "Peak cd", "Added").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col >= 3:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// shortID abbreviates a UUID for display; any unique prefix resolves.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func catalogMeta(e catalog.Entry) webio.Meta {
	return webio.Meta{Source: e.Source, Format: e.Format}
}

func writeIndentedJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
