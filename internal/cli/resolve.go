package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
)

// resolveResult is the JSON form of a resolve run.
type resolveResult struct {
	Color        colour.Color `json:"color"`
	ContrastWith colour.Color `json:"contrast_with"`
	Mode         colour.Mode  `json:"mode"`
	Resolved     colour.Color `json:"resolved"`
	Changed      bool         `json:"changed"`
	RatioBefore  float64      `json:"ratio_before,omitempty"`
	RatioAfter   float64      `json:"ratio_after,omitempty"`
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		mode             string
		contrastWithType string
	)

	cmd := &cobra.Command{
		Use:   "resolve <color> [contrast-with]",
		Short: "Resolve a colour so it stays legible on a background",
		Long: `Resolve a colour against a background colour.

If the pair is below the legibility threshold (WCAG contrast 4.5:1) the
colour's lightness is moved towards white or black until it is legible.
Hue, saturation and alpha are kept.

When the background is omitted the theme colour named by
--contrast-with-type is used.

Examples:
  # Black text on a black background becomes a light grey
  dynatint resolve '#000000' '#000000'

  # Resolve against the theme surface
  dynatint resolve --contrast-with-type surface '#303030'

  # Only adjust when drawn on the theme background
  dynatint resolve --mode same-background coral '#121212'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}

			var with colour.Color
			if len(args) == 2 {
				if with, err = colour.Parse(args[1]); err != nil {
					return err
				}
			} else {
				ct, err := theme.ParseColorType(contrastWithType)
				if err != nil {
					return err
				}
				with = a.theme.Resolve(ct)
			}

			m, err := colour.ParseMode(mode)
			if err != nil {
				return err
			}

			result := runResolve(a.theme, c, with, m)
			a.logger.Debug("resolved colour",
				"color", result.Color, "contrast_with", result.ContrastWith,
				"mode", result.Mode, "resolved", result.Resolved,
				"ratio_before", result.RatioBefore, "ratio_after", result.RatioAfter)

			p := a.printer(cmd.OutOrStdout())
			if p.json() {
				return p.writeJSON(result)
			}
			_, err = fmt.Fprintln(p.w, p.colourLine(result.Resolved))
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", colour.ModeAuto.String(), "background aware mode (auto, disable, enable, same-background)")
	cmd.Flags().StringVar(&contrastWithType, "contrast-with-type", theme.Background.String(), "theme colour type used when no background is given")

	return cmd
}

// runResolve resolves c against with through the theme's view of mode.
func runResolve(th theme.Theme, c, with colour.Color, mode colour.Mode) resolveResult {
	effective := th.ResolveMode(mode, with)
	resolved := colour.ResolveContrast(c, with, effective)

	result := resolveResult{
		Color:        c,
		ContrastWith: with,
		Mode:         effective,
		Resolved:     resolved,
		Changed:      resolved != c,
	}
	if c.Known() && with.Known() {
		result.RatioBefore = colour.ContrastRatio(c, with)
		result.RatioAfter = colour.ContrastRatio(resolved, with)
	}
	return result
}
