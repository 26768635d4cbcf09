package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lidkit/pkg/buildinfo"
	"github.com/matzehuels/lidkit/pkg/config"
	"github.com/matzehuels/lidkit/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root loads the configuration file
// (--config, or the per-user default when present), applies its log level
// unless --verbose is given, registers log-backed observability hooks and
// attaches the logger to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "lidkit reads, converts and plots luminaire photometry",
		Long: `lidkit parses IES LM-63 and EULUMDAT photometric files into a common
photometric web, then converts, averages, catalogues and plots them.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: user config dir/lidkit/config.toml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.averageCommand())
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.ringCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) setup(cmd *cobra.Command) error {
	path, optional := c.configPath, c.configPath == ""
	if optional {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no default config path", "err", err)
		}
		path = p
	}

	if path != "" {
		cfg, warnings, err := config.Load(path, optional)
		if err != nil {
			return err
		}
		c.Config = cfg
		for _, w := range warnings {
			c.Logger.Warn(w, "file", path)
		}
	}

	if level, err := log.ParseLevel(c.Config.Log.Level); err == nil {
		c.SetLogLevel(level)
	}
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetServerHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
