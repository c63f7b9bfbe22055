package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/config"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

// appContext carries what PersistentPreRunE loads for the subcommands.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "huepick",
		Short:         "huepick parses, converts and interactively picks colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default: user config dir)")

	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newAdjustCmd(app))
	cmd.AddCommand(newNearestCmd(app))
	cmd.AddCommand(newSwatchesCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appContext) load(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return newCommandError("load configuration", flags.configPath, err, "Fix the reported field or pass --config with a valid file.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return newCommandError("create logger", level, err, "Use one of trace, debug, info, warn or error for log.level.")
	}

	a.cfg = cfg
	a.log = log.WithFields(map[string]any{"command": cmd.Name()})
	a.log.Debug("configuration loaded", "path", flags.configPath, "swatches", len(cfg.Swatches))
	return nil
}
