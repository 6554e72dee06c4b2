package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	DatabaseDriver string        `mapstructure:"database_driver"`
	DatabaseURL    string        `mapstructure:"database_url"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	JWTExpiration  time.Duration `mapstructure:"jwt_expiration"`
	CookieSecure   bool          `mapstructure:"cookie_secure"`
	ServerPort     string        `mapstructure:"server_port"`
	Locale         string        `mapstructure:"locale"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFormat      string        `mapstructure:"log_format"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled"`
	MetricsPath    string        `mapstructure:"metrics_path"`
}

const envPrefix = "CLOCKING"

var validDrivers = map[string]bool{"postgres": true, "mysql": true, "sqlite": true}

// Load reads config.yaml from configPath, the working directory or
// ./config when present, then applies CLOCKING_* environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database_driver", "postgres")
	v.SetDefault("database_url", "postgresql://postgres@localhost:5432/clocking")
	v.SetDefault("jwt_secret", "your-super-secret-key-change-in-production")
	v.SetDefault("jwt_expiration", "24h")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("server_port", "8080")
	v.SetDefault("locale", "pt-BR")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_path", "/metrics")
}

func (c *Config) Validate() error {
	if !validDrivers[c.DatabaseDriver] {
		return fmt.Errorf("invalid database driver %q", c.DatabaseDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret must not be empty")
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("invalid jwt expiration %s", c.JWTExpiration)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return nil
}

// LocaleTag is the parsed Locale; Validate has already rejected bad tags.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.BrazilianPortuguese
	}
	return tag
}
