package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
	Birthdays BirthdaysConfig `yaml:"birthdays" mapstructure:"birthdays"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	UI        UIConfig        `yaml:"ui" mapstructure:"ui"`
}

type StorageConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
}

type BirthdaysConfig struct {
	WindowDays int `yaml:"window_days" mapstructure:"window_days"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

type UIConfig struct {
	Style string `yaml:"style" mapstructure:"style"`
	Color bool   `yaml:"color" mapstructure:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage:   StorageConfig{Path: "addressbook.cbor"},
		Birthdays: BirthdaysConfig{WindowDays: 7},
		Log:       LogConfig{Level: "warn"},
		UI:        UIConfig{Style: "auto", Color: true},
	}
}

// Dir is the per-user configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "addressbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "addressbook")
}

// Load reads config.yaml from the working directory or Dir, or the file at path
// when it is not empty. ADDRESSBOOK_* environment variables override file values,
// and a .env file in the working directory is read first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.format", cfg.Storage.Format)
	v.SetDefault("birthdays.window_days", cfg.Birthdays.WindowDays)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("ui.style", cfg.UI.Style)
	v.SetDefault("ui.color", cfg.UI.Color)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix("ADDRESSBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error produced
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is required")
	}
	switch strings.ToLower(c.Storage.Format) {
	case "", "cbor", "json", "yaml":
	default:
		return fmt.Errorf("config: storage.format %q is invalid (must be cbor, json, or yaml)", c.Storage.Format)
	}
	switch c.UI.Style {
	case "auto", "dark", "light", "notty", "ascii":
	default:
		return fmt.Errorf("config: ui.style %q is invalid (must be auto, dark, light, notty, or ascii)", c.UI.Style)
	}
	if c.Birthdays.WindowDays < 1 {
		return fmt.Errorf("config: birthdays.window_days must be at least 1")
	}
	return nil
}
