package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Rendering
	ExportPNG bool     `mapstructure:"export_png" yaml:"export_png"`
	PNGWidth  int      `mapstructure:"png_width" yaml:"png_width"`
	PNGHeight int      `mapstructure:"png_height" yaml:"png_height"`
	Languages []string `mapstructure:"languages" yaml:"languages"`

	// Headless browser
	BrowserBin        string `mapstructure:"browser_bin" yaml:"browser_bin"`
	BrowserTimeoutSec int    `mapstructure:"browser_timeout_sec" yaml:"browser_timeout_sec"`

	// Excerpt selection
	ExcerptMinLen int `mapstructure:"excerpt_min_len" yaml:"excerpt_min_len"`
	ExcerptMaxLen int `mapstructure:"excerpt_max_len" yaml:"excerpt_max_len"`
	ExcerptLimit  int `mapstructure:"excerpt_limit" yaml:"excerpt_limit"`

	// Actor aggregation
	MinActorMentions int `mapstructure:"min_actor_mentions" yaml:"min_actor_mentions"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.speechviz/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".speechviz")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SPEECHVIZ")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "figures")
	v.SetDefault("export_png", true)
	v.SetDefault("png_width", 1920)
	v.SetDefault("png_height", 1080)
	v.SetDefault("languages", []string{"fr", "en"})
	v.SetDefault("browser_bin", "")
	v.SetDefault("browser_timeout_sec", 60)
	v.SetDefault("excerpt_min_len", 160)
	v.SetDefault("excerpt_max_len", 360)
	v.SetDefault("excerpt_limit", 3)
	v.SetDefault("min_actor_mentions", 3)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".speechviz")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
