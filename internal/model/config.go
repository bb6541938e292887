package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DataConfig locates the local database.
type DataConfig struct {
	// Path is the SQLite file holding the persisted state slices.
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Mode     string `mapstructure:"mode" yaml:"mode"`
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// LimitsConfig holds the free-tier quotas.
type LimitsConfig struct {
	FreeChecklistCount int `mapstructure:"free_checklist_count" yaml:"free_checklist_count"`
	FreeGroupCount     int `mapstructure:"free_group_count" yaml:"free_group_count"`
}

// ResetConfig controls the scheduled-reset polling loop.
type ResetConfig struct {
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`
}

// FeaturesConfig holds startup capability switches.
type FeaturesConfig struct {
	EnableIAP bool `mapstructure:"enable_iap" yaml:"enable_iap"`
}

// LocaleConfig selects the initial language.
type LocaleConfig struct {
	// Default is used when no language has been stored yet. Empty means
	// detect from the environment.
	Default string `mapstructure:"default" yaml:"default"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Data     DataConfig     `mapstructure:"data" yaml:"data"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Limits   LimitsConfig   `mapstructure:"limits" yaml:"limits"`
	Reset    ResetConfig    `mapstructure:"reset" yaml:"reset"`
	Features FeaturesConfig `mapstructure:"features" yaml:"features"`
	Locale   LocaleConfig   `mapstructure:"locale" yaml:"locale"`
}

// envPrefix namespaces environment overrides, e.g. CHECKMEOUT_DATA_PATH.
const envPrefix = "CHECKMEOUT"

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/checkmeout/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "checkmeout", "config.yaml")
}

// DefaultDataPath returns the default database location.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "checkmeout.db")
	}
	return filepath.Join(home, ".local", "share", "checkmeout", "checkmeout.db")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{Path: DefaultDataPath()},
		Logger: LoggerConfig{
			Level:    "warn",
			Mode:     "production",
			Encoding: "console",
		},
		Limits: LimitsConfig{
			FreeChecklistCount: 1,
			FreeGroupCount:     2,
		},
		Reset:    ResetConfig{PollIntervalSec: 60},
		Features: FeaturesConfig{EnableIAP: false},
		Locale:   LocaleConfig{Default: ""},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultAppConfig()
	v.SetDefault("data.path", d.Data.Path)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.mode", d.Logger.Mode)
	v.SetDefault("logger.encoding", d.Logger.Encoding)
	v.SetDefault("limits.free_checklist_count", d.Limits.FreeChecklistCount)
	v.SetDefault("limits.free_group_count", d.Limits.FreeGroupCount)
	v.SetDefault("reset.poll_interval_sec", d.Reset.PollIntervalSec)
	v.SetDefault("features.enable_iap", d.Features.EnableIAP)
	v.SetDefault("locale.default", d.Locale.Default)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, defaults (plus environment overrides) are used.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		_, isPathErr := err.(*os.PathError)
		_, isNotFound := err.(viper.ConfigFileNotFoundError)
		if !isPathErr && !isNotFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Reset.PollIntervalSec <= 0 {
		cfg.Reset.PollIntervalSec = 60
	}
	if cfg.Data.Path == "" {
		cfg.Data.Path = DefaultDataPath()
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("data", cfg.Data)
	v.Set("logger", cfg.Logger)
	v.Set("limits", cfg.Limits)
	v.Set("reset", cfg.Reset)
	v.Set("features", cfg.Features)
	v.Set("locale", cfg.Locale)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
