package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/whisker/pkg/buildinfo"
	"github.com/matzehuels/whisker/pkg/config"
	"github.com/matzehuels/whisker/pkg/face"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, whisker shows the interactive face.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Whisker draws a cat face in your terminal",
		Long:         `Whisker rasterizes a small vector cat face and draws it with half-block characters, two pixels per cell, resizing with the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/whisker/config.toml)")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&c.flags.expression, "expression", "e", "", "face expression (neutral, happy, angry)")
	pf.IntVar(&c.flags.cacheSize, "cache-size", 0, "rasterization cache slots (0 disables caching)")
	pf.StringVar(&c.flags.background, "background", "", "background color (hex or SVG color name)")
	pf.StringVar(&c.flags.logFile, "log-file", "", "append logs to this file")

	_ = root.RegisterFlagCompletionFunc("expression", completeExpressions)

	// Register all subcommands
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.printCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.expressionsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, applies flag overrides and configures logging.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, path, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := c.applyFlags(cmd, &cfg); err != nil {
		return err
	}
	c.Config = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.flags.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	if cfg.LogFile != "" {
		if err := c.openLogFile(cfg.LogFile); err != nil {
			return err
		}
	}

	c.Logger = c.Logger.With("session", c.SessionID[:8])
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	if level <= LogDebug {
		installDebugHooks(c.Logger)
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return nil
}

func (c *CLI) loadConfig() (config.Config, string, error) {
	if c.flags.configPath != "" {
		cfg, err := config.Load(c.flags.configPath)
		return cfg, c.flags.configPath, err
	}
	return config.LoadDefault()
}

// applyFlags copies explicitly set flags over cfg and revalidates.
func (c *CLI) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("expression") {
		expr, err := face.ParseExpression(c.flags.expression)
		if err != nil {
			return err
		}
		cfg.Expression = expr
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = c.flags.cacheSize
	}
	if flags.Changed("background") {
		cfg.Background = c.flags.background
	}
	if flags.Changed("log-file") {
		cfg.LogFile = c.flags.logFile
	}
	return cfg.Validate()
}

func completeExpressions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	exprs := face.Expressions()
	names := make([]string, len(exprs))
	for i, e := range exprs {
		names[i] = e.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
