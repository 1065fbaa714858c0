package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
	"github.com/jmylchreest/dynatint/internal/widget"
)

type slotResult struct {
	Name  string       `json:"name"`
	Color colour.Color `json:"color"`
}

type widgetResult struct {
	Kind            string       `json:"kind"`
	BackgroundAware bool         `json:"background_aware"`
	Color           colour.Color `json:"color"`
	ContrastWith    colour.Color `json:"contrast_with"`
	Slots           []slotResult `json:"slots"`
}

// widgetFlags holds overrides for a widget.Config.
type widgetFlags struct {
	colorType        string
	contrastWithType string
	color            string
	contrastWith     string
	mode             string
}

func (wf *widgetFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&wf.colorType, "color-type", "", "theme colour type the widget follows")
	fs.StringVar(&wf.contrastWithType, "contrast-with-type", "", "theme colour type of the background")
	fs.StringVar(&wf.color, "color", "", "explicit widget colour (sets colour type to custom)")
	fs.StringVar(&wf.contrastWith, "contrast-with", "", "explicit background colour (sets contrast type to custom)")
	fs.StringVarP(&wf.mode, "mode", "m", "", "background aware mode (auto, disable, enable, same-background)")
}

// apply overrides fields of cfg for every flag the user set.
func (wf *widgetFlags) apply(fs *pflag.FlagSet, cfg widget.Config) (widget.Config, error) {
	var err error
	if fs.Changed("color-type") {
		if cfg.ColorType, err = theme.ParseColorType(wf.colorType); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("contrast-with-type") {
		if cfg.ContrastWithColorType, err = theme.ParseColorType(wf.contrastWithType); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("color") {
		if cfg.Color, err = colour.Parse(wf.color); err != nil {
			return cfg, err
		}
		cfg.ColorType = theme.Custom
	}
	if fs.Changed("contrast-with") {
		if cfg.ContrastWithColor, err = colour.Parse(wf.contrastWith); err != nil {
			return cfg, err
		}
		cfg.ContrastWithColorType = theme.Custom
	}
	if fs.Changed("mode") {
		if cfg.BackgroundAware, err = colour.ParseMode(wf.mode); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newWidgetCmd(a *app) *cobra.Command {
	var wf widgetFlags

	cmd := &cobra.Command{
		Use:   "widget <kind>",
		Short: "Resolve the colours a widget draws with",
		Long: fmt.Sprintf(`Resolve the colours a widget draws with under the current theme.

Kinds: %s

Examples:
  # Button colours under the default theme
  dynatint widget button

  # An accent image button on the theme surface
  dynatint widget image-button --contrast-with-type surface

  # A custom coloured text field with awareness disabled
  dynatint widget text-field --color '#202020' --mode disable`, strings.Join(widget.Kinds(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: widget.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			cfg, err := widget.ConfigFor(kind)
			if err != nil {
				return err
			}
			if cfg, err = wf.apply(cmd.Flags(), cfg); err != nil {
				return err
			}

			w, err := widget.New(kind, cfg, a.theme)
			if err != nil {
				return err
			}

			result := widgetResult{
				Kind:            kind,
				BackgroundAware: a.theme.ResolveMode(cfg.BackgroundAware, w.ContrastWithColor()) != colour.ModeDisable,
				Color:           w.Color(true),
				ContrastWith:    w.ContrastWithColor(),
			}
			for _, s := range w.Slots() {
				result.Slots = append(result.Slots, slotResult{Name: s.Name, Color: s.Color})
			}
			a.logger.Debug("resolved widget", "kind", kind, "color", w.Color(false), "applied", w.Color(true))

			p := a.printer(cmd.OutOrStdout())
			if p.json() {
				return p.writeJSON(result)
			}

			if !a.settings.Quiet {
				fmt.Fprintf(p.w, "%s on %s (background aware: %t)\n\n", kind, result.ContrastWith.Hex(), result.BackgroundAware)
			}
			table := NewTable([]string{"Slot", "Colour", "Preview"})
			for _, s := range result.Slots {
				table.AddRow([]string{s.Name, s.Color.Hex(), p.swatch(s.Color)})
			}
			_, err = fmt.Fprint(p.w, table.Render())
			return err
		},
	}

	wf.register(cmd.Flags())
	return cmd
}
