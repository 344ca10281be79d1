package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/numsign/sign"
)

// writeConfig is a helper to write a YAML config into a temp dir.
func writeConfig(t *testing.T, yaml string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0644)
	require.NoError(t, err)
	return configPath
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "none", cfg.ZeroLabel)
	assert.Equal(t, "float64", cfg.Width)
	assert.Equal(t, sign.Positive, cfg.DefaultSign)
	assert.Equal(t, "warn", cfg.Log.Level)
	require.NoError(t, Validate(cfg))
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfig(t, `
output: json
zero_label: "0"
width: int16
default_sign: "-"
log:
  level: debug
  format: logfmt
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "0", cfg.ZeroLabel)
	assert.Equal(t, "int16", cfg.Width)
	assert.Equal(t, sign.Negative, cfg.DefaultSign)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output, "unset keys keep defaults")
}

func TestLoad_DefaultTemplateIsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "output: yaml\n")
	t.Setenv("NUMSIGN_OUTPUT", "json")
	t.Setenv("NUMSIGN_DEFAULT_SIGN", "-")
	t.Setenv("NUMSIGN_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, sign.Negative, cfg.DefaultSign)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad output", "output: xml\n", "Output"},
		{"bad width", "width: uint8\n", "Width"},
		{"bad log level", "log:\n  level: loud\n", "Level"},
		{"empty zero label", "zero_label: \"\"\n", "ZeroLabel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.yaml))
			require.NoError(t, err, "Load decodes without validating")

			err = Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_UndecodableSign(t *testing.T) {
	_, err := Load(writeConfig(t, "default_sign: \"+1\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding config")
}

func TestLoad_OverrideBeforeValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output: xml\n"))
	require.NoError(t, err)
	require.Error(t, Validate(cfg))

	cfg.Output = "json"
	require.NoError(t, Validate(cfg))
}

func TestValidate_InvalidSign(t *testing.T) {
	cfg := Defaults()
	cfg.DefaultSign = 0

	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "DefaultSign")
}

func TestDecodeHook_DecodesSign(t *testing.T) {
	var out struct {
		S sign.Sign `mapstructure:"s"`
	}
	err := decodeWithHook(map[string]any{"s": "-"}, &out)
	require.NoError(t, err)
	require.Equal(t, sign.Negative, out.S)
}

func decodeWithHook(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DecodeHook(),
		Result:     out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
