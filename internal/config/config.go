package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all board configuration.
type Config struct {
	// Language of the board, "en" or "km".
	Language string `yaml:"language"`

	Campaign CampaignConfig `yaml:"campaign"`
	Messages MessagesConfig `yaml:"messages"`
	Gallery  GalleryConfig  `yaml:"gallery"`
	Carousel CarouselConfig `yaml:"carousel"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CampaignConfig configures where campaign figures come from.
type CampaignConfig struct {
	// YAML or JSON file with the campaign figures.
	File string `yaml:"file"`
	// How often the file is re-read even without change events.
	PollInterval string `yaml:"poll_interval"`
	// Milestone marker on the progress bar; 0 hides it.
	Milestone int `yaml:"milestone"`
}

// MessagesConfig configures the message board store.
type MessagesConfig struct {
	DatabasePath string `yaml:"database_path"`
	Limit        int    `yaml:"limit"`
	// Status filter for the board list; empty or "all" shows every message.
	Status string `yaml:"status"`
}

// GalleryConfig configures the activity pictures.
type GalleryConfig struct {
	// Directory scanned for pictures when Images is empty.
	Dir    string   `yaml:"dir"`
	Images []string `yaml:"images"`
	// Number of pictures decoded at once.
	Workers int `yaml:"workers"`
}

// CarouselConfig configures the activity carousel.
type CarouselConfig struct {
	SettleDelay    string `yaml:"settle_delay"`
	CenterWindow   string `yaml:"center_window"`
	ScrollDebounce string `yaml:"scroll_debounce"`
	Smooth         bool   `yaml:"smooth"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Language: "en",
		Campaign: CampaignConfig{
			File:         "campaign.yaml",
			PollInterval: "10s",
			Milestone:    1000,
		},
		Messages: MessagesConfig{
			DatabasePath: "smiles.db",
			Limit:        20,
		},
		Gallery: GalleryConfig{
			Dir:     "images/activities",
			Workers: 4,
		},
		Carousel: CarouselConfig{
			SettleDelay:    "520ms",
			CenterWindow:   "560ms",
			ScrollDebounce: "120ms",
			Smooth:         true,
		},
		Logging: LoggingConfig{
			File:  "smiles.log",
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("SMILES_LANG"); lang != "" {
		c.Language = lang
	}
	if path := os.Getenv("SMILES_DB"); path != "" {
		c.Messages.DatabasePath = path
	}
	if path := os.Getenv("SMILES_CAMPAIGN"); path != "" {
		c.Campaign.File = path
	}
}

// ValidLanguages lists the supported board languages.
var ValidLanguages = []string{"en", "km"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	valid := false
	for _, lang := range ValidLanguages {
		if c.Language == lang {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: language %q (valid: %v)", ErrInvalid, c.Language, ValidLanguages)
	}
	if c.Messages.DatabasePath == "" {
		return fmt.Errorf("%w: messages.database_path is empty", ErrInvalid)
	}
	if c.Messages.Limit < 0 {
		return fmt.Errorf("%w: messages.limit %d is negative", ErrInvalid, c.Messages.Limit)
	}
	for name, value := range map[string]string{
		"campaign.poll_interval":   c.Campaign.PollInterval,
		"carousel.settle_delay":    c.Carousel.SettleDelay,
		"carousel.center_window":   c.Carousel.CenterWindow,
		"carousel.scroll_debounce": c.Carousel.ScrollDebounce,
	} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			return fmt.Errorf("%w: %s %q", ErrInvalid, name, value)
		}
	}
	return nil
}

// GetPollInterval returns the campaign poll interval as a duration.
func (c *Config) GetPollInterval() time.Duration {
	return parseDuration(c.Campaign.PollInterval, 10*time.Second)
}

// GetSettleDelay returns the carousel settle delay as a duration.
func (c *Config) GetSettleDelay() time.Duration {
	return parseDuration(c.Carousel.SettleDelay, 520*time.Millisecond)
}

// GetCenterWindow returns how long the carousel keeps snapping off after
// centering.
func (c *Config) GetCenterWindow() time.Duration {
	return parseDuration(c.Carousel.CenterWindow, 560*time.Millisecond)
}

// GetScrollDebounce returns the carousel scroll debounce as a duration.
func (c *Config) GetScrollDebounce() time.Duration {
	return parseDuration(c.Carousel.ScrollDebounce, 120*time.Millisecond)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
