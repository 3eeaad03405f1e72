// Package settings holds the program wide defaults used when resolving and
// generating item cfg files.
package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/jlrickert/itemcfg/pkg/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is where settings are read from when no path is given.
	DefaultPath = "~/.config/itemcfg/config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. ITEMCFG_GAMENUMBER.
	EnvPrefix = "ITEMCFG"
)

// ErrInvalidSettings indicates the settings fail validation.
var ErrInvalidSettings = errors.New("settings: invalid settings")

// Settings are the values the cfg tooling takes from outside a cfg file.
type Settings struct {
	// GameNumber selects the default cfg name, itemV<GameNumber>.cfg.
	GameNumber int `mapstructure:"gameNumber" yaml:"gameNumber"`
	// ItemPreview is written as the preview of every generated cfg.
	ItemPreview string `mapstructure:"itemPreview" yaml:"itemPreview"`
	// DefaultBundleDir is the content dir used when none is given.
	DefaultBundleDir string `mapstructure:"defaultBundleDir" yaml:"defaultBundleDir"`
	// ModsDir is the directory holding one directory per mod.
	ModsDir    string `mapstructure:"modsDir" yaml:"modsDir"`
	Language   string `mapstructure:"language" yaml:"language"`
	Visibility string `mapstructure:"visibility" yaml:"visibility"`
}

// Default returns the built in settings.
func Default() Settings {
	return Settings{
		GameNumber:       2,
		ItemPreview:      "item_preview.png",
		DefaultBundleDir: "bundleV2",
		ModsDir:          ".",
		Language:         "english",
		Visibility:       "private",
	}
}

// Reader reads a whole file. *toolkit.Runtime satisfies it.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// Env looks up environment variables. *toolkit.Runtime satisfies it.
type Env interface {
	Get(key string) string
}

// keys are the settings names; each has an override named
// EnvPrefix + "_" + upper case key.
var keys = []string{"gameNumber", "itemPreview", "defaultBundleDir", "modsDir", "language", "visibility"}

// EnvKey returns the environment variable overriding key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// Load layers built in defaults, the YAML file at path and ITEMCFG_*
// variables from env. A nil env skips overrides. A missing file is only an
// error when required is true.
func Load(ctx context.Context, fs Reader, env Env, path string, required bool) (*Settings, error) {
	lg := log.FromContext(ctx)

	v := viper.New()
	def := Default()
	v.SetDefault("gameNumber", def.GameNumber)
	v.SetDefault("itemPreview", def.ItemPreview)
	v.SetDefault("defaultBundleDir", def.DefaultBundleDir)
	v.SetDefault("modsDir", def.ModsDir)
	v.SetDefault("language", def.Language)
	v.SetDefault("visibility", def.Visibility)

	if path != "" {
		data, err := fs.ReadFile(path)
		switch {
		case err == nil:
			v.SetConfigType("yaml")
			if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
				lg.Error("failed to parse settings", "path", path, "err", err)
				return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
			}
			lg.Debug("settings read", "path", path)
		case errors.Is(err, os.ErrNotExist) && !required:
			lg.Debug("no settings file, using defaults", "path", path)
		default:
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	if env != nil {
		for _, key := range keys {
			if value := strings.TrimSpace(env.Get(EnvKey(key))); value != "" {
				lg.Debug("settings override from env", "key", key, "env", EnvKey(key))
				v.Set(key, value)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings for values that cannot produce a usable cfg.
func (s *Settings) Validate() error {
	if s.GameNumber < 0 {
		return fmt.Errorf("%w: gameNumber must not be negative, got %d", ErrInvalidSettings, s.GameNumber)
	}
	if strings.TrimSpace(s.ModsDir) == "" {
		return fmt.Errorf("%w: modsDir is empty", ErrInvalidSettings)
	}
	return nil
}

// CfgDefaults returns the values the serializer falls back to.
func (s *Settings) CfgDefaults() cfg.Defaults {
	return cfg.Defaults{
		Preview:   s.ItemPreview,
		BundleDir: s.DefaultBundleDir,
	}
}

// YAML renders the settings in the same form Load reads.
func (s *Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
