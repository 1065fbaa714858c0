package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dynatint/internal/colour"
)

type tintResult struct {
	Color colour.Color `json:"color"`
	Tint  colour.Color `json:"tint"`
}

func newTintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tint <color>...",
		Short: "Print the opposite-lightness tint of colours",
		Long: `Print a tint of each colour with the opposite lightness: a light tint
for dark colours and a dark shade for light ones. Widgets use these for
secondary surfaces such as button bodies.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]tintResult, 0, len(args))
			for _, arg := range args {
				c, err := colour.Parse(arg)
				if err != nil {
					return err
				}
				results = append(results, tintResult{Color: c, Tint: colour.TintColor(c)})
			}

			p := a.printer(cmd.OutOrStdout())
			if p.json() {
				return p.writeJSON(results)
			}
			for _, r := range results {
				if _, err := fmt.Fprintln(p.w, p.colourLine(r.Tint)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
