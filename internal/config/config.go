package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game GameConfig `mapstructure:"game"`
	Log  LogConfig  `mapstructure:"log"`
	UI   UIConfig   `mapstructure:"ui"`
	Demo DemoConfig `mapstructure:"demo"`
}

// GameConfig holds board presets and game defaults
type GameConfig struct {
	Presets           PresetsConfig `mapstructure:"presets"`
	DefaultDifficulty string        `mapstructure:"default_difficulty"`
	Seed              int64         `mapstructure:"seed"` // 0 means seed from the clock
}

// PresetsConfig holds the board size of each difficulty
type PresetsConfig struct {
	Easy   PresetConfig `mapstructure:"easy"`
	Medium PresetConfig `mapstructure:"medium"`
	Hard   PresetConfig `mapstructure:"hard"`
}

// PresetConfig describes one board size
type PresetConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Mines  int `mapstructure:"mines"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds console settings
type UIConfig struct {
	ClearScreen       bool `mapstructure:"clear_screen"`
	Color             bool `mapstructure:"color"`
	PauseBetweenMoves bool `mapstructure:"pause_between_moves"`
}

// DemoConfig holds autoplay settings
type DemoConfig struct {
	Difficulty string `mapstructure:"difficulty"`
	MaxMoves   int    `mapstructure:"max_moves"`
}

var (
	// Global config instance. cfg is replaced, never mutated, so readers
	// may keep the pointer Get returned.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Presets
	v.SetDefault("game.presets.easy.width", 8)
	v.SetDefault("game.presets.easy.height", 8)
	v.SetDefault("game.presets.easy.mines", 10)
	v.SetDefault("game.presets.medium.width", 16)
	v.SetDefault("game.presets.medium.height", 16)
	v.SetDefault("game.presets.medium.mines", 40)
	v.SetDefault("game.presets.hard.width", 24)
	v.SetDefault("game.presets.hard.height", 24)
	v.SetDefault("game.presets.hard.mines", 99)

	v.SetDefault("game.default_difficulty", "medium")
	v.SetDefault("game.seed", 0)

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Console
	v.SetDefault("ui.clear_screen", true)
	v.SetDefault("ui.color", true)
	v.SetDefault("ui.pause_between_moves", true)

	// Autoplay
	v.SetDefault("demo.difficulty", "easy")
	v.SetDefault("demo.max_moves", 200)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/proxx")
	}

	v.SetEnvPrefix("PROXX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file, searched for or explicit, means defaults
		if !isNotFound(err) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return apply(v)
}

// apply decodes and validates the current viper state, then swaps it in.
// An invalid configuration leaves the previous one in place.
func apply(src *viper.Viper) error {
	next := &Config{}
	if err := src.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = next
	mu.Unlock()
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	current := cfg
	mu.RUnlock()
	if current != nil {
		return current
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
// over the loaded configuration.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}
	Get()

	envFile := fmt.Sprintf("config.%s.yaml", env)
	baseFile := v.ConfigFileUsed()

	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	v.SetConfigFile(baseFile)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	return apply(v)
}

// Reload re-reads the config file and applies it if it validates
func Reload() error {
	src := GetViper()
	if err := src.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return apply(src)
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange gets nil
// when a new configuration was applied, or the reason it was rejected.
func WatchConfig(onChange func(err error)) {
	src := GetViper()
	src.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		err := apply(src)
		if onChange != nil {
			onChange(err)
		}
	})
	src.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	presets := []struct {
		name string
		p    PresetConfig
	}{
		{"easy", c.Game.Presets.Easy},
		{"medium", c.Game.Presets.Medium},
		{"hard", c.Game.Presets.Hard},
	}
	for _, preset := range presets {
		if preset.p.Width <= 0 || preset.p.Height <= 0 {
			return fmt.Errorf("game.presets.%s dimensions must be positive", preset.name)
		}
		if preset.p.Mines < 0 || preset.p.Mines >= preset.p.Width*preset.p.Height {
			return fmt.Errorf("game.presets.%s.mines must be between 0 and %d", preset.name, preset.p.Width*preset.p.Height-1)
		}
	}

	switch strings.ToLower(c.Game.DefaultDifficulty) {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("game.default_difficulty must be easy, medium or hard, got %q", c.Game.DefaultDifficulty)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}

	if c.Demo.MaxMoves <= 0 {
		return fmt.Errorf("demo.max_moves must be positive")
	}

	return nil
}
