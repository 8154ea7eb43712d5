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

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

const appName = "mablo"

var envReplacer = strings.NewReplacer(".", "_")

// Config holds all application configuration
type Config struct {
	Motion     MotionConfig     `mapstructure:"motion"`
	Typewriter TypewriterConfig `mapstructure:"typewriter"`
	Contact    ContactConfig    `mapstructure:"contact"`
	Storage    StorageConfig    `mapstructure:"storage"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// MotionConfig tunes the scroll-driven animation
type MotionConfig struct {
	FPS       int     `mapstructure:"fps"`
	Frequency float64 `mapstructure:"frequency"` // Spring angular frequency
	Reduced   bool    `mapstructure:"reduced"`   // Disable smoothing and bobbing
}

// TypewriterConfig holds the tagline reveal timings
type TypewriterConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Delay    time.Duration `mapstructure:"delay"`
}

// ContactConfig holds contact form settings
type ContactConfig struct {
	Email       string        `mapstructure:"email"`
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
	MailCommand string        `mapstructure:"mail_command"` // Mail client for mailto links, empty for auto-detect
	MailArgs    []string      `mapstructure:"mail_args"`
}

// StorageConfig holds where the inquiry outbox lives. An empty path keeps
// inquiries in memory only.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	NarrowWidth   int    `mapstructure:"narrow_width"`   // Below this many columns the narrow layout is used
	MarkdownStyle string `mapstructure:"markdown_style"` // glamour standard style
	StartSection  string `mapstructure:"start_section"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Motion: MotionConfig{
			FPS:       60,
			Frequency: 18,
		},
		Typewriter: TypewriterConfig{
			Interval: 80 * time.Millisecond,
			Delay:    400 * time.Millisecond,
		},
		Contact: ContactConfig{
			Email:       "hola@mablo.dev",
			SubmitDelay: 1500 * time.Millisecond,
		},
		Storage: StorageConfig{
			Path: defaultDataPath(),
		},
		UI: UIConfig{
			NarrowWidth:   100,
			MarkdownStyle: "dark",
			StartSection:  "hero",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), appName+".log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName)
	}
}

// DefaultConfigPath returns the default config directory for the current OS
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// SetDefaults registers every default with v so env overrides and
// WriteConfig see the full key set
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("motion.fps", d.Motion.FPS)
	v.SetDefault("motion.frequency", d.Motion.Frequency)
	v.SetDefault("motion.reduced", d.Motion.Reduced)
	v.SetDefault("typewriter.interval", d.Typewriter.Interval)
	v.SetDefault("typewriter.delay", d.Typewriter.Delay)
	v.SetDefault("contact.email", d.Contact.Email)
	v.SetDefault("contact.submit_delay", d.Contact.SubmitDelay)
	v.SetDefault("contact.mail_command", d.Contact.MailCommand)
	v.SetDefault("contact.mail_args", d.Contact.MailArgs)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("ui.narrow_width", d.UI.NarrowWidth)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.start_section", d.UI.StartSection)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
}

// LoadConfig loads configuration from file and environment into v.
// If v already has a config file set (--config), only that file is read.
func LoadConfig(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. MABLO_MOTION_REDUCED=true
	v.SetEnvPrefix("MABLO")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// clamp pulls typewriter timings back to zero instead of rejecting them
func (c *Config) clamp() {
	c.Typewriter.Interval = max(c.Typewriter.Interval, 0)
	c.Typewriter.Delay = max(c.Typewriter.Delay, 0)
}

// Validate rejects settings the application cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Motion.FPS <= 0:
		return fmt.Errorf("%w: motion.fps must be positive, got %d", ErrInvalidConfig, c.Motion.FPS)
	case c.Motion.Frequency <= 0:
		return fmt.Errorf("%w: motion.frequency must be positive, got %g", ErrInvalidConfig, c.Motion.Frequency)
	case c.Contact.SubmitDelay < 0:
		return fmt.Errorf("%w: contact.submit_delay must not be negative", ErrInvalidConfig)
	case c.UI.NarrowWidth < 0:
		return fmt.Errorf("%w: ui.narrow_width must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SaveConfig writes cfg as config.yaml into dir (DefaultConfigPath when empty)
func SaveConfig(v *viper.Viper, cfg *Config, dir string) error {
	if dir == "" {
		dir = DefaultConfigPath()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v.Set("motion.fps", cfg.Motion.FPS)
	v.Set("motion.frequency", cfg.Motion.Frequency)
	v.Set("motion.reduced", cfg.Motion.Reduced)

	v.Set("typewriter.interval", cfg.Typewriter.Interval.String())
	v.Set("typewriter.delay", cfg.Typewriter.Delay.String())

	v.Set("contact.email", cfg.Contact.Email)
	v.Set("contact.submit_delay", cfg.Contact.SubmitDelay.String())
	v.Set("contact.mail_command", cfg.Contact.MailCommand)
	v.Set("contact.mail_args", cfg.Contact.MailArgs)

	v.Set("storage.path", cfg.Storage.Path)

	v.Set("ui.narrow_width", cfg.UI.NarrowWidth)
	v.Set("ui.markdown_style", cfg.UI.MarkdownStyle)
	v.Set("ui.start_section", cfg.UI.StartSection)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
