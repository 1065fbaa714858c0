package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
	"github.com/jmylchreest/dynatint/internal/widget"
)

type swatchResult struct {
	Color    colour.Color `json:"color"`
	Selected bool         `json:"selected"`
	Border   colour.Color `json:"border"`
}

func newSwatchesCmd(a *app) *cobra.Command {
	var (
		selected     string
		contrastWith string
	)

	cmd := &cobra.Command{
		Use:   "swatches <color>...",
		Short: "Lay out a colour picker grid",
		Long: `Lay out a colour picker grid on a container colour. Every swatch gets a
border kept legible on the container so that swatches matching the
container stay visible.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := widget.Swatches{ContrastWith: a.theme.Resolve(theme.Surface)}
			for _, arg := range args {
				c, err := colour.Parse(arg)
				if err != nil {
					return err
				}
				s.Colors = append(s.Colors, c)
			}

			if contrastWith != "" {
				c, err := colour.Parse(contrastWith)
				if err != nil {
					return err
				}
				s.ContrastWith = c
			}
			if selected != "" {
				c, err := colour.Parse(selected)
				if err != nil {
					return err
				}
				if !s.Select(c) {
					return fmt.Errorf("selected colour %s is not one of the swatches", c)
				}
			}

			items := s.Items()
			p := a.printer(cmd.OutOrStdout())
			if p.json() {
				results := make([]swatchResult, len(items))
				for i, it := range items {
					results[i] = swatchResult(it)
				}
				return p.writeJSON(results)
			}

			table := NewTable([]string{"Colour", "Border", "Selected", "Preview"})
			for _, it := range items {
				mark := ""
				if it.Selected {
					mark = "*"
				}
				table.AddRow([]string{it.Color.Hex(), it.Border.Hex(), mark, p.swatch(it.Color) + p.swatch(it.Border)})
			}
			_, err := fmt.Fprint(p.w, table.Render())
			return err
		},
	}

	cmd.Flags().StringVar(&selected, "selected", "", "colour to mark as selected")
	cmd.Flags().StringVar(&contrastWith, "contrast-with", "", "container colour (default: theme surface)")
	return cmd
}
