package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dynatint/internal/colour"
)

// WCAG 2.0 thresholds.
const (
	ratioAALarge  = 3.0
	ratioAA       = colour.MinContrastRatio
	ratioAAA      = 7.0
	ratioAAALarge = 4.5
)

type contrastResult struct {
	A          colour.Color `json:"a"`
	B          colour.Color `json:"b"`
	Ratio      float64      `json:"ratio"`
	AA         bool         `json:"aa"`
	AALarge    bool         `json:"aa_large"`
	AAA        bool         `json:"aaa"`
	AAALarge   bool         `json:"aaa_large"`
	Legible    bool         `json:"legible"`
	LuminanceA float64      `json:"luminance_a"`
	LuminanceB float64      `json:"luminance_b"`
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <color> <color>",
		Short: "Print the WCAG contrast ratio of two colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ca, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			cb, err := colour.Parse(args[1])
			if err != nil {
				return err
			}
			if !ca.Known() || !cb.Known() {
				return fmt.Errorf("%w: contrast needs two known colours", colour.ErrInvalidColor)
			}

			ratio := colour.ContrastRatio(ca, cb)
			result := contrastResult{
				A:          ca,
				B:          cb,
				Ratio:      ratio,
				AA:         ratio >= ratioAA,
				AALarge:    ratio >= ratioAALarge,
				AAA:        ratio >= ratioAAA,
				AAALarge:   ratio >= ratioAAALarge,
				Legible:    colour.Legible(ca, cb),
				LuminanceA: colour.Luminance(ca),
				LuminanceB: colour.Luminance(cb),
			}

			p := a.printer(cmd.OutOrStdout())
			if p.json() {
				return p.writeJSON(result)
			}

			fmt.Fprintf(p.w, "%s on %s: %.2f:1\n", p.colourLine(ca), p.colourLine(cb), ratio)
			if a.settings.Quiet {
				return nil
			}
			table := NewTable([]string{"Level", "Normal", "Large"})
			table.AddRow([]string{"AA", verdict(result.AA), verdict(result.AALarge)})
			table.AddRow([]string{"AAA", verdict(result.AAA), verdict(result.AAALarge)})
			_, err = fmt.Fprint(p.w, table.Render())
			return err
		},
	}
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
