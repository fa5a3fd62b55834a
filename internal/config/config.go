// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
}

// CalendarConfig holds the business-hours display settings for the calendar.
// Weekday and weekend hours are configured separately; Saturday and Sunday
// count as weekend.
type CalendarConfig struct {
	WeekdayStart string `toml:"weekday_start"` // e.g., "09:00"
	WeekdayEnd   string `toml:"weekday_end"`   // e.g., "18:00"
	WeekendStart string `toml:"weekend_start"` // e.g., "10:00"
	WeekendEnd   string `toml:"weekend_end"`   // e.g., "16:00"
	SlotDuration int    `toml:"slot_duration"` // minutes per slot: 10, 15, 30 or 60
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// validSlotDurations are the slot sizes the calendar grid can render.
var validSlotDurations = map[int]bool{10: true, 15: true, 30: true, 60: true}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WeekdayStart: "09:00",
			WeekdayEnd:   "18:00",
			WeekendStart: "10:00",
			WeekendEnd:   "16:00",
			SlotDuration: 30,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tablero.db"
	}
	return filepath.Join(home, ".local", "share", "tablero", "tablero.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tablero", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TABLERO_WEEKDAY_START"); v != "" {
		cfg.Calendar.WeekdayStart = v
	}
	if v := os.Getenv("TABLERO_WEEKDAY_END"); v != "" {
		cfg.Calendar.WeekdayEnd = v
	}
	if v := os.Getenv("TABLERO_WEEKEND_START"); v != "" {
		cfg.Calendar.WeekendStart = v
	}
	if v := os.Getenv("TABLERO_WEEKEND_END"); v != "" {
		cfg.Calendar.WeekendEnd = v
	}
	if v := os.Getenv("TABLERO_SLOT_DURATION"); v != "" {
		var d int
		if _, err := fmt.Sscanf(v, "%d", &d); err == nil {
			cfg.Calendar.SlotDuration = d
		}
	}
	if v := os.Getenv("TABLERO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	pairs := []struct {
		start, end           string
		startField, endField string
	}{
		{c.Calendar.WeekdayStart, c.Calendar.WeekdayEnd, "weekday_start", "weekday_end"},
		{c.Calendar.WeekendStart, c.Calendar.WeekendEnd, "weekend_start", "weekend_end"},
	}
	for _, p := range pairs {
		if err := validateTime(p.start, p.startField); err != nil {
			return err
		}
		if err := validateTime(p.end, p.endField); err != nil {
			return err
		}
		if p.start >= p.end {
			return fmt.Errorf("%s must be before %s", p.startField, p.endField)
		}
	}

	if !validSlotDurations[c.Calendar.SlotDuration] {
		return fmt.Errorf("slot_duration must be 10, 15, 30 or 60, got %d", c.Calendar.SlotDuration)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
