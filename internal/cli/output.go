package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/config"
)

// swatchWidth is the number of cells a colour preview occupies.
const swatchWidth = 4

// printer writes command output in the configured format.
type printer struct {
	w        io.Writer
	format   string
	renderer *lipgloss.Renderer
	preview  bool
}

func (a *app) printer(w io.Writer) *printer {
	p := &printer{
		w:        w,
		format:   a.settings.Format,
		renderer: lipgloss.NewRenderer(w),
	}

	switch a.settings.Preview {
	case config.PreviewAlways:
		p.preview = true
		p.renderer.SetColorProfile(termenv.TrueColor)
	case config.PreviewNever:
		p.preview = false
	default:
		f, ok := w.(*os.File)
		p.preview = ok && term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *printer) json() bool {
	return p.format == config.FormatJSON
}

// writeJSON writes v as indented JSON.
func (p *printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

// swatch renders a block of c, or blanks when previews are off or c is Unknown.
// Alpha is dropped since terminals cannot show it.
func (p *printer) swatch(c colour.Color) string {
	if !p.preview {
		return ""
	}
	block := p.renderer.NewStyle().Width(swatchWidth)
	if !c.Known() {
		return block.Render("")
	}
	return block.Background(lipgloss.Color(c.WithAlpha(0xFF).Hex())).Render("")
}

// colourLine formats c with an optional leading swatch.
func (p *printer) colourLine(c colour.Color) string {
	if s := p.swatch(c); s != "" {
		return s + " " + c.Hex()
	}
	return c.Hex()
}
