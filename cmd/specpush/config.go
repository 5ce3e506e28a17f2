// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/specpush/specpush/internal/config"
)

// newConfigCommand creates the `specpush config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect specpush configuration",
		Long: `Inspect specpush configuration.

Configuration is stored in:
  - Linux: ~/.config/specpush/config.cue
  - macOS: ~/Library/Application Support/specpush/config.cue
  - Windows: %APPDATA%\specpush\config.cue

Any key can be overridden with a SPECPUSH_ environment variable, for
example SPECPUSH_GIT_REMOTE=upstream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: app.configPath})
			if err != nil {
				return app.fail(nil, err, "load configuration", app.configPath)
			}
			if path == "" {
				path = "(none, defaults and environment only)"
			}
			fmt.Fprintf(app.stdout, "// Loaded from: %s\n", path)
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return app.fail(nil, err, "determine the configuration directory", "")
			}
			fmt.Fprintln(app.stdout, filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	return cfgCmd
}
