package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/arijitsen/examdesk/internal/pay"
)

type Config struct {
	Rates  pay.Rates    `toml:"rates"`
	Venues VenuesConfig `toml:"venues"`
	Backup BackupConfig `toml:"backup"`
}

type VenuesConfig struct {
	// DefaultCapacity is how many people of one role a venue accepts
	// per date+shift unless the venue says otherwise.
	DefaultCapacity int `toml:"default_capacity"`
}

type BackupConfig struct {
	Dir    string `toml:"dir"`
	Notify bool   `toml:"notify"`
}

func DefaultConfig() Config {
	return Config{
		Rates: pay.Rates{
			Morning:     450,
			Evening:     450,
			FullDay:     750,
			Combined:    750,
			MockTest:    450,
			EYPersonnel: 5000,
		},
		Venues: VenuesConfig{
			DefaultCapacity: 1,
		},
	}
}

func DataDir() (string, error) {
	if v := os.Getenv("EXAMDESK_DATA_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "examdesk"), nil
}

func ConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// BackupDir resolves the backup directory, defaulting to backups/
// under the data directory.
func (c *Config) BackupDir() (string, error) {
	if c.Backup.Dir != "" {
		return c.Backup.Dir, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "backups"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EXAMDESK_BACKUP_DIR"); v != "" {
		cfg.Backup.Dir = v
	}
	if v := os.Getenv("EXAMDESK_COMBINED_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Rates.Combined = n
		}
	}
}

func EnsureDataDir() error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// WriteDefault creates the config file with default values if it does
// not exist, and returns its path.
func WriteDefault() (string, error) {
	if err := EnsureDataDir(); err != nil {
		return "", err
	}
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking config file: %w", err)
	}

	cfg := DefaultConfig()
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", fmt.Errorf("writing default config: %w", err)
	}
	return path, nil
}
