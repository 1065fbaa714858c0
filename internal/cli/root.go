// Package cli provides the command-line interface for dynatint.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/dynatint/internal/config"
	"github.com/jmylchreest/dynatint/internal/theme"
	"github.com/jmylchreest/dynatint/internal/version"
)

// app carries state shared by all subcommands of one invocation.
// It is populated by the root command's PersistentPreRunE.
type app struct {
	configPath string

	settings *config.Settings
	logger   hclog.Logger
	theme    theme.Theme
}

// NewRootCmd builds the dynatint command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dynatint",
		Short: "Background-aware colour resolution for themed widgets",
		Long: `dynatint resolves widget colours from a theme and keeps them legible
against the background they are drawn on.

Colours can be given as #RGB, #ARGB, #RRGGBB, #AARRGGBB, 0xAARRGGBB,
SVG colour names (e.g. "coral") or "unknown".`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/dynatint/config.yaml)")
	rootCmd.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP(config.KeyQuiet, "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().String(config.KeyThemeFile, "", "YAML theme file (default: built-in theme)")
	rootCmd.PersistentFlags().StringP(config.KeyFormat, "f", config.FormatText, "output format (text, json)")
	rootCmd.PersistentFlags().String(config.KeyPreview, config.PreviewAuto, "colour swatches (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newTintCmd(a))
	rootCmd.AddCommand(newContrastCmd(a))
	rootCmd.AddCommand(newThemeCmd(a))
	rootCmd.AddCommand(newWidgetCmd(a))
	rootCmd.AddCommand(newSwatchesCmd(a))

	return rootCmd
}

// setup loads settings, the logger and the theme.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = newLogger(settings, cmd.ErrOrStderr())

	if settings.ConfigFile != "" {
		a.logger.Debug("loaded config", "path", settings.ConfigFile)
	}

	a.theme = theme.Default()
	if settings.ThemeFile != "" {
		th, err := theme.Load(settings.ThemeFile)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
		a.theme = th
	}
	a.logger.Debug("using theme", "name", a.theme.Name, "background_aware", a.theme.BackgroundAware)

	return nil
}

// newLogger returns a debug logger on w when verbose, and a silent one otherwise.
func newLogger(s *config.Settings, w io.Writer) hclog.Logger {
	if !s.Verbose || s.Quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "dynatint",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "dynatint",
		Output: w,
		Level:  hclog.Debug,
	})
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
