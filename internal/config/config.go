// Package config provides configuration types and defaults for numsign.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/zjrosen/numsign/internal/log"
	"github.com/zjrosen/numsign/sign"
)

// EnvPrefix is prepended to environment overrides, e.g. NUMSIGN_OUTPUT=json.
const EnvPrefix = "NUMSIGN"

// Config holds all configuration options for numsign.
type Config struct {
	Output      string     `mapstructure:"output" validate:"oneof=text json yaml"`
	ZeroLabel   string     `mapstructure:"zero_label" validate:"required"` // printed for values with no sign
	Width       string     `mapstructure:"width" validate:"oneof=int int8 int16 int32 int64 float32 float64"`
	DefaultSign sign.Sign  `mapstructure:"default_sign" validate:"sign"`
	Log         log.Config `mapstructure:"log"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Output:      "text",
		ZeroLabel:   "none",
		Width:       "float64",
		DefaultSign: sign.Positive,
		Log: log.Config{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}

// DefaultPath returns the user config file location (~/.config/numsign/config.yaml).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "numsign", "config.yaml")
}

// Load reads configuration from path, falling back to DefaultPath when path is
// empty. A missing default file is not an error; a missing explicit file is.
// The result is not validated: callers apply their overrides, then Validate.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
			log.Debug(log.CatConfig, "No config file, using defaults", "path", path)
		} else {
			log.Debug(log.CatConfig, "Loaded config", "path", v.ConfigFileUsed())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(DecodeHook())); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// DecodeHook keeps viper's default hooks and adds text unmarshalling so
// "+" and "-" decode into sign.Sign fields.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("output", d.Output)
	v.SetDefault("zero_label", d.ZeroLabel)
	v.SetDefault("width", d.Width)
	v.SetDefault("default_sign", d.DefaultSign.String())
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation("sign", func(fl validator.FieldLevel) bool {
		return sign.Sign(fl.Field().Int()).Valid()
	}); err != nil {
		panic(err)
	}
	return validate
}

// Validate checks configuration for errors.
func Validate(cfg Config) error {
	if err := newValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config %s: invalid value %v (%s)", fe.Namespace(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# numsign configuration

# Output format for command results: text, json or yaml
output: text

# Label printed when a value has no sign (integer zero, NaN)
zero_label: none

# Numeric width used by 'numsign classify':
#   int, int8, int16, int32, int64, float32, float64
width: float64

# Sign applied by 'numsign scale' when only a number is given.
# Quote it: a bare - is a YAML list item.
default_sign: "+"

log:
  level: warn      # debug, info, warn, error
  format: console  # console, logfmt, json
  output: stderr   # stderr, stdout or a file path
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
