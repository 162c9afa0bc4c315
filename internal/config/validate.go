package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Storage.Driver == DriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}

	if c.Storage.Driver == DriverRedis && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required for the redis driver")
	}

	if err := c.Tracker.validate(); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !slices.Contains(Drivers, s.Driver) {
		return fmt.Errorf("driver must be one of %s (got %q)", strings.Join(Drivers, ", "), s.Driver)
	}
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	return nil
}

func (t *TrackerConfig) validate() error {
	loc, err := time.LoadLocation(strings.TrimSpace(t.Timezone))
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	t.Location = loc

	if t.ChartDays < 1 || t.ChartDays > 366 {
		return fmt.Errorf("chart_days must be between 1 and 366 (got %d)", t.ChartDays)
	}
	if t.RecentActivities < 1 {
		return fmt.Errorf("recent_activities must be >= 1 (got %d)", t.RecentActivities)
	}
	return nil
}

// DataDir returns the directory the file and sqlite drivers write to.
// An empty Dir resolves to "learning-tracker" under the user config dir.
func (s StorageConfig) DataDir() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "learning-tracker"), nil
}

// SQLiteFile returns the sqlite database path. Relative paths are placed
// inside DataDir.
func (s StorageConfig) SQLiteFile() (string, error) {
	if s.SQLitePath == ":memory:" || filepath.IsAbs(s.SQLitePath) {
		return s.SQLitePath, nil
	}
	dir, err := s.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, s.SQLitePath), nil
}
