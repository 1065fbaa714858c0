package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
)

type themeEntry struct {
	Type    theme.ColorType `json:"type"`
	Color   colour.Color    `json:"color"`
	Legible bool            `json:"legible_on_background"`
}

type themeResult struct {
	Name            string       `json:"name"`
	BackgroundAware colour.Mode  `json:"background_aware"`
	HideDividers    bool         `json:"hide_dividers"`
	Colors          []themeEntry `json:"colors"`
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and export themes",
	}
	cmd.AddCommand(newThemeShowCmd(a))
	cmd.AddCommand(newThemeExportCmd(a))
	return cmd
}

func newThemeShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every colour type of the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := a.theme
			result := themeResult{
				Name:            th.Name,
				BackgroundAware: th.BackgroundAware,
				HideDividers:    th.HideDividers,
			}
			for _, ct := range theme.ColorTypes() {
				c := th.Resolve(ct)
				result.Colors = append(result.Colors, themeEntry{
					Type:    ct,
					Color:   c,
					Legible: colour.Legible(c, th.Background),
				})
			}

			p := a.printer(cmd.OutOrStdout())
			if p.json() {
				return p.writeJSON(result)
			}

			if !a.settings.Quiet {
				fmt.Fprintf(p.w, "Theme: %s (background aware: %s)\n\n", th.Name, th.BackgroundAware)
			}
			table := NewTable([]string{"Type", "Colour", "Legible", "Preview"})
			for _, e := range result.Colors {
				table.AddRow([]string{e.Type.String(), e.Color.Hex(), verdict(e.Legible), p.swatch(e.Color)})
			}
			_, err := fmt.Fprint(p.w, table.Render())
			return err
		},
	}
}

func newThemeExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current theme as YAML",
		Long: `Write the current theme as YAML. The result can be edited and passed
back with --theme-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return theme.Encode(cmd.OutOrStdout(), a.theme)
			}

			f, err := os.Create(output) // #nosec G304 -- output path is chosen by the user
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			if err := theme.Encode(f, a.theme); err != nil {
				return err
			}
			a.logger.Debug("exported theme", "path", output)
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
