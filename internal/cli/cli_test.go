package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
	"github.com/jmylchreest/dynatint/internal/widget"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"already legible", []string{"resolve", "#ffffff", "#000000"}, "#ffffff"},
		{"disabled", []string{"resolve", "--mode", "disable", "#000000", "#000000"}, "#000000"},
		{"unknown background", []string{"resolve", "#000000", "unknown"}, "#000000"},
		{"unknown colour", []string{"resolve", "unknown", "#000000"}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestResolveCommandAdjusts(t *testing.T) {
	out, err := run(t, "resolve", "#000000", "#000000")
	require.NoError(t, err)

	got, err := colour.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.NotEqual(t, colour.Black, got)
	assert.True(t, colour.Legible(got, colour.Black))
}

func TestResolveCommandThemeBackground(t *testing.T) {
	out, err := run(t, "resolve", "-f", "json", "#000000")
	require.NoError(t, err)

	var result resolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, theme.Default().Background, result.ContrastWith)
	assert.Equal(t, colour.ModeEnable, result.Mode)
	assert.True(t, result.Changed)
	assert.GreaterOrEqual(t, result.RatioAfter, colour.MinContrastRatio)
	assert.Less(t, result.RatioBefore, colour.MinContrastRatio)
}

func TestResolveCommandSameBackground(t *testing.T) {
	out, err := run(t, "resolve", "-f", "json", "--mode", "same-background", "#000000", "#000000")
	require.NoError(t, err)

	var result resolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, colour.ModeDisable, result.Mode)
	assert.False(t, result.Changed)
}

func TestResolveCommandErrors(t *testing.T) {
	_, err := run(t, "resolve", "#zz")
	assert.ErrorIs(t, err, colour.ErrInvalidColor)

	_, err = run(t, "resolve", "--mode", "sometimes", "#000")
	assert.ErrorIs(t, err, colour.ErrInvalidMode)

	_, err = run(t, "resolve", "--contrast-with-type", "chartreuse", "#000")
	assert.ErrorIs(t, err, theme.ErrUnknownColorType)
}

func TestTintCommand(t *testing.T) {
	out, err := run(t, "tint", "black", "white")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, colour.TintColor(colour.Black).Hex(), lines[0])
	assert.Equal(t, colour.TintColor(colour.White).Hex(), lines[1])
}

func TestContrastCommand(t *testing.T) {
	out, err := run(t, "contrast", "black", "white")
	require.NoError(t, err)
	assert.Contains(t, out, "21.00:1")
	assert.NotContains(t, out, "fail")

	out, err = run(t, "-f", "json", "contrast", "#777777", "#ffffff")
	require.NoError(t, err)
	var result contrastResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.AALarge)
	assert.False(t, result.AAA)

	_, err = run(t, "contrast", "unknown", "white")
	assert.ErrorIs(t, err, colour.ErrInvalidColor)
}

func TestThemeShowCommand(t *testing.T) {
	out, err := run(t, "theme", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: default")
	assert.Contains(t, out, "tint-accent-dark")

	out, err = run(t, "theme", "show", "--format", "json")
	require.NoError(t, err)
	var result themeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Colors, len(theme.ColorTypes()))
	assert.Equal(t, colour.ModeEnable, result.BackgroundAware)
}

func TestThemeExportAndLoad(t *testing.T) {
	dir := t.TempDir()
	exported := filepath.Join(dir, "exported.yaml")

	_, err := run(t, "theme", "export", "-o", exported)
	require.NoError(t, err)

	th, err := theme.Load(exported)
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), th)

	custom := filepath.Join(dir, "light.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("name: light\nbackground: white\nsurface: '#fafafa'\n"), 0o600))

	out, err := run(t, "--theme-file", custom, "resolve", "#ffffff")
	require.NoError(t, err)
	got, err := colour.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, colour.Legible(got, colour.White))

	_, err = run(t, "--theme-file", filepath.Join(dir, "missing.yaml"), "theme", "show")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\n"), 0o600))

	out, err := run(t, "--config", cfg, "tint", "black")
	require.NoError(t, err)
	var results []tintResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, colour.Black, results[0].Color)
}

func TestWidgetCommand(t *testing.T) {
	out, err := run(t, "widget", "button")
	require.NoError(t, err)
	assert.Contains(t, out, "text.normal")

	out, err = run(t, "widget", "-f", "json", "text-field", "--color", "#202020", "--mode", "disable")
	require.NoError(t, err)
	var result widgetResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.BackgroundAware)
	assert.Equal(t, colour.ARGB(0xFF202020), result.Color)

	out, err = run(t, "widget", "-f", "json", "image-button", "--contrast-with-type", "surface")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, theme.Default().Surface, result.ContrastWith)

	_, err = run(t, "widget", "slider")
	assert.ErrorIs(t, err, widget.ErrUnknownWidget)

	_, err = run(t, "widget", "button", "--color-type", "chartreuse")
	assert.ErrorIs(t, err, theme.ErrUnknownColorType)
}

func TestSwatchesCommand(t *testing.T) {
	out, err := run(t, "swatches", "-f", "json", "--contrast-with", "black", "--selected", "white", "black", "white")
	require.NoError(t, err)

	var results []swatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.False(t, results[0].Selected)
	assert.True(t, results[1].Selected)
	assert.True(t, colour.Legible(results[0].Border, colour.Black))

	_, err = run(t, "swatches", "--selected", "red", "black")
	assert.Error(t, err)
}

func TestPreviewAlways(t *testing.T) {
	out, err := run(t, "--preview", "always", "tint", "black")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, colour.TintColor(colour.Black).Hex())
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dynatint version")
}
