// Package config loads dynatint settings.
//
// Precedence, lowest first: defaults < config file < DYNATINT_* environment
// variables < command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyThemeFile = "theme-file"
	KeyFormat    = "format"
	KeyPreview   = "preview"
	KeyVerbose   = "verbose"
	KeyQuiet     = "quiet"
)

const envPrefix = "DYNATINT"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Preview modes for terminal colour swatches.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// ErrInvalidSetting is returned when a setting has an unsupported value.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings is the resolved configuration for one invocation.
type Settings struct {
	ThemeFile string
	Format    string
	Preview   string
	Verbose   bool
	Quiet     bool

	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string
}

// Load resolves settings. When path is empty the user config directory is
// searched for dynatint/config.yaml and a missing file is not an error.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyPreview, PreviewAuto)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "dynatint"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	s := &Settings{
		ThemeFile:  v.GetString(KeyThemeFile),
		Format:     strings.ToLower(v.GetString(KeyFormat)),
		Preview:    strings.ToLower(v.GetString(KeyPreview)),
		Verbose:    v.GetBool(KeyVerbose),
		Quiet:      v.GetBool(KeyQuiet),
		ConfigFile: v.ConfigFileUsed(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks enumerated settings.
func (s *Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (valid: text, json)", ErrInvalidSetting, s.Format)
	}
	switch s.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("%w: preview %q (valid: auto, always, never)", ErrInvalidSetting, s.Preview)
	}
	return nil
}
