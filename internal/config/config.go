package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Support SupportConfig `mapstructure:"support"`
	Profile ProfileConfig `mapstructure:"profile"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig controls the simulated exercise catalog fetch
type CatalogConfig struct {
	DelayMS            int     `mapstructure:"delay_ms"`            // Simulated latency
	FailureProbability float64 `mapstructure:"failure_probability"` // Chance in [0,1] that a fetch fails
	Seed               uint64  `mapstructure:"seed"`                // Random seed (0 = time based)
}

// SupportConfig controls the support contact form
type SupportConfig struct {
	CooldownMS int `mapstructure:"cooldown_ms"` // Minimum time between two messages
}

// ProfileConfig holds progress goals
type ProfileConfig struct {
	Goal int `mapstructure:"goal"` // Target number of completed exercises
}

// UIConfig holds UI configuration
type UIConfig struct {
	ReadyPromptMS int  `mapstructure:"ready_prompt_ms"` // Delay before the exercise start prompt
	SkipWelcome   bool `mapstructure:"skip_welcome"`
}

// ReadyPrompt returns the start prompt delay as a duration
func (c UIConfig) ReadyPrompt() time.Duration {
	return time.Duration(c.ReadyPromptMS) * time.Millisecond
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Delay returns the catalog delay as a duration
func (c CatalogConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Cooldown returns the support cooldown as a duration
func (c SupportConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			DelayMS:            1500,
			FailureProbability: 0.2,
		},
		Support: SupportConfig{
			CooldownMS: 3000,
		},
		Profile: ProfileConfig{
			Goal: 15,
		},
		UI: UIConfig{
			ReadyPromptMS: 400,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "nefes", "nefes.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "nefes", "nefes.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "nefes")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "nefes")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load loads configuration from path (or the default locations when empty),
// applying NEFES_* environment overrides on top
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. NEFES_CATALOG_DELAY_MS
	v.SetEnvPrefix("NEFES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.delay_ms", cfg.Catalog.DelayMS)
	v.SetDefault("catalog.failure_probability", cfg.Catalog.FailureProbability)
	v.SetDefault("catalog.seed", cfg.Catalog.Seed)
	v.SetDefault("support.cooldown_ms", cfg.Support.CooldownMS)
	v.SetDefault("profile.goal", cfg.Profile.Goal)
	v.SetDefault("ui.ready_prompt_ms", cfg.UI.ReadyPromptMS)
	v.SetDefault("ui.skip_welcome", cfg.UI.SkipWelcome)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Catalog.DelayMS < 0 {
		return fmt.Errorf("catalog.delay_ms must not be negative, got %d", c.Catalog.DelayMS)
	}
	if c.Catalog.FailureProbability < 0 || c.Catalog.FailureProbability > 1 {
		return fmt.Errorf("catalog.failure_probability must be within [0, 1], got %v", c.Catalog.FailureProbability)
	}
	if c.Support.CooldownMS < 0 {
		return fmt.Errorf("support.cooldown_ms must not be negative, got %d", c.Support.CooldownMS)
	}
	if c.UI.ReadyPromptMS <= 0 {
		return fmt.Errorf("ui.ready_prompt_ms must be positive, got %d", c.UI.ReadyPromptMS)
	}
	if c.Profile.Goal <= 0 {
		return fmt.Errorf("profile.goal must be positive, got %d", c.Profile.Goal)
	}
	return nil
}

// SaveConfig writes cfg to the default config file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return SaveConfigAs(cfg, filepath.Join(configPath, "config.yaml"))
}

// SaveConfigAs writes cfg as YAML to the given file
func SaveConfigAs(cfg *Config, file string) error {
	v := viper.New()
	v.Set("catalog.delay_ms", cfg.Catalog.DelayMS)
	v.Set("catalog.failure_probability", cfg.Catalog.FailureProbability)
	v.Set("catalog.seed", cfg.Catalog.Seed)
	v.Set("support.cooldown_ms", cfg.Support.CooldownMS)
	v.Set("profile.goal", cfg.Profile.Goal)
	v.Set("ui.ready_prompt_ms", cfg.UI.ReadyPromptMS)
	v.Set("ui.skip_welcome", cfg.UI.SkipWelcome)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(file); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
