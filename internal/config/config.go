package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/logging"
)

const (
	configDirName  = ".cli-carousel"
	configFileName = "config"
	configFileExt  = ".yaml"
	envPrefix      = "CLI_CAROUSEL"

	defaultFrameRate     = 60
	defaultCardWidth     = 36
	defaultWatchInterval = 2 * time.Second
)

var (
	// ErrNoDeck is returned when neither the command line nor the config
	// names a deck directory.
	ErrNoDeck = errors.New("no deck directory configured")
	// ErrConfigExists is returned when writing defaults over an existing file.
	ErrConfigExists = errors.New("config file already exists")
)

var log = logging.New("config")

// Config stores user-defined cli-carousel settings.
type Config struct {
	DeckDir   string           `mapstructure:"deck_dir"`
	StateDir  string           `mapstructure:"state_dir"`
	FrameRate int              `mapstructure:"frame_rate"`
	Style     string           `mapstructure:"style"`
	CardWidth int              `mapstructure:"card_width"`
	Carousel  carousel.Options `mapstructure:"carousel"`

	// WatchInterval is how often the deck directory is polled.
	WatchInterval time.Duration `mapstructure:"watch_interval"`
	// Keybindings maps action names to comma-separated keys.
	Keybindings map[string]string `mapstructure:"keybindings"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	return homedir.Expand("~/" + configDirName)
}

// DefaultPath returns where WriteDefault puts the config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+configFileExt), nil
}

// Load reads the configuration. An empty file searches the config
// directory and tolerates a missing file; an explicit file must exist.
// Environment variables prefixed with CLI_CAROUSEL override both, with
// dots in keys replaced by underscores (CLI_CAROUSEL_CAROUSEL_SPEED).
func Load(file string) (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v := newViper(dir)
	if file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return Config{}, err
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		log.Debug("no config file, using defaults", "dir", dir)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(carousel.DecodeHook())); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	stateDir, err := NormalizeDir(cfg.StateDir)
	if err != nil {
		return Config{}, fmt.Errorf("invalid state_dir: %w", err)
	}
	cfg.StateDir = stateDir
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = defaultFrameRate
	}
	if cfg.CardWidth <= 0 {
		cfg.CardWidth = defaultCardWidth
	}
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = defaultWatchInterval
	}

	log.Debug("loaded config", "file", cfg.File, "item_nav", cfg.Carousel.ItemNav)
	return cfg, nil
}

// WriteDefault writes the default configuration to DefaultPath and returns
// the path. It never overwrites an existing file.
func WriteDefault() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, configFileName+configFileExt)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Error("failed to create config dir", "dir", dir, "error", err)
		return "", fmt.Errorf("create config dir: %w", err)
	}

	v := newViper(dir)
	if err := v.SafeWriteConfigAs(path); err != nil {
		if _, ok := err.(viper.ConfigFileAlreadyExistsError); ok {
			return path, ErrConfigExists
		}
		log.Error("failed to write config", "path", path, "error", err)
		return "", fmt.Errorf("write config: %w", err)
	}

	log.Info("saved config", "path", path)
	return path, nil
}

// Deck resolves the deck directory: arg when given, the configured
// deck_dir otherwise.
func (c Config) Deck(arg string) (string, error) {
	dir := strings.TrimSpace(arg)
	if dir == "" {
		dir = strings.TrimSpace(c.DeckDir)
	}
	if dir == "" {
		return "", ErrNoDeck
	}
	return NormalizeDir(dir)
}

// NormalizeDir expands and normalizes a directory path.
func NormalizeDir(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	setDefaults(v, dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so environment overrides apply even when
// no file mentions them. Durations are in milliseconds.
func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("deck_dir", "")
	v.SetDefault("state_dir", filepath.Join(dir, "state"))
	v.SetDefault("frame_rate", defaultFrameRate)
	v.SetDefault("style", "notty")
	v.SetDefault("card_width", defaultCardWidth)
	v.SetDefault("watch_interval", defaultWatchInterval.Milliseconds())
	for key, value := range carouselDefaults() {
		v.SetDefault("carousel."+key, value)
	}
}

func carouselDefaults() map[string]any {
	d := carousel.DefaultOptions()
	return map[string]any{
		"itemNav":        carousel.NavBasic.String(),
		"visibleItems":   0,
		"smart":          d.Smart,
		"activateOn":     "click",
		"activateMiddle": false,
		"scrollBy":       1,
		"scrollHijack":   d.ScrollHijack.Milliseconds(),
		"scrollTrap":     false,
		"mouseDragging":  true,
		"touchDragging":  true,
		"releaseSwing":   true,
		"swingSpeed":     d.SwingSpeed,
		"elasticBounds":  true,
		"dragThreshold":  d.DragThreshold,
		"dragHandle":     true,
		"dynamicHandle":  true,
		"minHandleSize":  d.MinHandleSize,
		"clickBar":       true,
		"syncSpeed":      d.SyncSpeed,
		"activatePageOn": "click",
		"cycleBy":        "",
		"cycleInterval":  d.CycleInterval.Milliseconds(),
		"pauseOnHover":   true,
		"startPaused":    false,
		"moveBy":         60,
		"speed":          300,
		"keyboardNavBy":  carousel.ByItems,
	}
}
