package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// BaseDir is the directory the input file and output directory are resolved against.
	BaseDir           string `mapstructure:"base_dir" yaml:"base_dir"`
	InputFile         string `mapstructure:"input_file" yaml:"input_file"`
	OutputDir         string `mapstructure:"output_dir" yaml:"output_dir"`
	FallbackDelimiter string `mapstructure:"fallback_delimiter" yaml:"fallback_delimiter"`

	// Report sizing
	HeadRows            int `mapstructure:"head_rows" yaml:"head_rows"`
	DuplicateSampleRows int `mapstructure:"duplicate_sample_rows" yaml:"duplicate_sample_rows"`
	TopValues           int `mapstructure:"top_values" yaml:"top_values"`
}

// Load builds the configuration from built-in defaults, anchored at baseDir.
// The program reads no environment variables and no config file.
func Load(baseDir string) (*Global, error) {
	v := viper.New()

	v.SetDefault("input_file", "datos_sinteticos.csv")
	v.SetDefault("output_dir", "output")
	v.SetDefault("fallback_delimiter", ";")
	v.SetDefault("head_rows", 5)
	v.SetDefault("duplicate_sample_rows", 5)
	v.SetDefault("top_values", 10)
	v.Set("base_dir", baseDir)

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.BaseDir == "" {
		return nil, fmt.Errorf("base dir is empty")
	}
	if len([]rune(c.FallbackDelimiter)) != 1 {
		return nil, fmt.Errorf("invalid fallback_delimiter: %q", c.FallbackDelimiter)
	}
	return &c, nil
}

// InputPath returns the absolute location of the dataset.
func (c *Global) InputPath() string {
	return filepath.Join(c.BaseDir, c.InputFile)
}

// OutputPath returns the directory plots are written to.
func (c *Global) OutputPath() string {
	return filepath.Join(c.BaseDir, c.OutputDir)
}

// Fallback returns the delimiter tried when the comma parse fails.
func (c *Global) Fallback() rune {
	return []rune(c.FallbackDelimiter)[0]
}

// YAML renders the effective configuration as a single flow-style line.
func (c *Global) YAML() (string, error) {
	var n yaml.Node
	if err := n.Encode(c); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	n.Style = yaml.FlowStyle
	b, err := yaml.Marshal(&n)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
