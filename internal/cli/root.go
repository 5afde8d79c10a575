// Package cli implements the sprig command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/sprig"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
}

// NewRootCommand builds the sprig command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:           "sprig",
		Short:         "Render declarative scene templates",
		Long:          "sprig renders JSON scene templates in a window or a terminal and maps arrow keys, Enter, Escape and Backspace to navigation events.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./sprig.{yaml,json,toml})")
	root.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(a.runCommand(), a.checkCommand())
	return root
}

// load merges flags into the config and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := readConfigFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := decodeConfig(a.v)
	if err != nil {
		return err
	}
	lvl, err := cfg.logLevel()
	if err != nil {
		return err
	}
	a.cfg = cfg
	sprig.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))
	return nil
}
