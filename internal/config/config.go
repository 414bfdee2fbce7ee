package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the site reads
const EnvPrefix = "PORTFOLIO"

// Config holds all application configuration
type Config struct {
	ServerAddr  string `mapstructure:"addr"`
	DataPath    string `mapstructure:"data"`
	StaticPath  string `mapstructure:"static"`
	AnalyticsID string `mapstructure:"analytics_id"`
	Watch       bool   `mapstructure:"watch"`
	Theme       Theme  `mapstructure:"theme"`
}

// Theme holds the color scheme exposed to stylesheets as CSS custom properties
type Theme struct {
	Mode          string `mapstructure:"mode"`
	Background    string `mapstructure:"background"`
	Surface       string `mapstructure:"surface"`
	Text          string `mapstructure:"text"`
	TextSecondary string `mapstructure:"text_secondary"`
	Accent        string `mapstructure:"accent"`
	Error         string `mapstructure:"error"`
}

// New returns a viper instance with defaults and environment binding applied
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("data", "data")
	v.SetDefault("static", "static")
	v.SetDefault("analytics_id", "")
	v.SetDefault("watch", false)
	v.SetDefault("theme.mode", "dark")
	v.SetDefault("theme.background", "#121212")
	v.SetDefault("theme.surface", "#1e1e1e")
	v.SetDefault("theme.text", "#ffffff")
	v.SetDefault("theme.text_secondary", "rgba(255, 255, 255, 0.7)")
	v.SetDefault("theme.accent", "#90caf9")
	v.SetDefault("theme.error", "#f44336")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and decodes everything into a Config.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
