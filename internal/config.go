package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	BackendExifTool = "exiftool"
	BackendNative   = "native"
)

type Config struct {
	ExifToolPath    string        `mapstructure:"exiftool_path"`
	MetadataBackend string        `mapstructure:"metadata_backend"`
	ExifToolTimeout time.Duration `mapstructure:"exiftool_timeout"`
	Timezone        string        `mapstructure:"timezone"`
	SkipHidden      bool          `mapstructure:"skip_hidden"`
}

// LoadConfig reads filetidy.toml from the user config dir, or path when set.
// A missing default file is fine; a missing explicit file is not.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to find user config dir: %w", err)
		}
		v.SetConfigName("filetidy")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Join(configDir, "filetidy"))
	}

	// Set defaults:
	v.SetDefault("exiftool_path", "exiftool")
	v.SetDefault("metadata_backend", BackendExifTool)
	v.SetDefault("exiftool_timeout", "0s")
	v.SetDefault("timezone", "Local")
	v.SetDefault("skip_hidden", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.MetadataBackend {
	case BackendExifTool, BackendNative:
	default:
		return fmt.Errorf("invalid metadata_backend %q, use %q or %q", c.MetadataBackend, BackendExifTool, BackendNative)
	}
	if c.ExifToolTimeout < 0 {
		return fmt.Errorf("invalid exiftool_timeout %s", c.ExifToolTimeout)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location is where filename dates without a zone are placed.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
