package theme

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML theme. Keys that are absent keep their Default value,
// so a theme file only needs to list what it changes.
//
//	name: ocean
//	background: "#0b1d2a"
//	accent: coral
//	background_aware: same-background
func Decode(r io.Reader) (Theme, error) {
	t := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("failed to decode theme: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Load reads a YAML theme file. See Decode.
func Load(path string) (Theme, error) {
	// #nosec G304 -- path comes from the --theme-file flag or config
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to open theme file: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode writes t as YAML.
func Encode(w io.Writer, t Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	return enc.Close()
}
