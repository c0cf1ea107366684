package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mfe-labs/create-mfe/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPackageManager = "package_manager"
	KeyNoColor        = "no_color"
)

// DefaultPackageManager is used when no package manager is configured.
const DefaultPackageManager = "npm"

// Settings is the typed view of the configuration.
type Settings struct {
	PackageManager string `mapstructure:"package_manager"`
	NoColor        bool   `mapstructure:"no_color"`
}

// Dir returns the path to the config directory (~/.create-mfe/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-mfe/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	for _, key := range Keys() {
		_ = viper.BindEnv(key, branding.EnvVar(key))
	}

	viper.SetDefault(KeyPackageManager, DefaultPackageManager)
	viper.SetDefault(KeyNoColor, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the loaded settings. Load must be called first.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if s.PackageManager == "" {
		s.PackageManager = DefaultPackageManager
	}
	// NO_COLOR is honored regardless of prefix (https://no-color.org).
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		s.NoColor = true
	}
	return &s, nil
}

// Keys returns the recognized setting keys.
func Keys() []string {
	return []string{KeyPackageManager, KeyNoColor}
}

// IsKnownKey reports whether key is a recognized setting.
func IsKnownKey(key string) bool {
	return slices.Contains(Keys(), key)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
