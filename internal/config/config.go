package config

import (
	"time"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Drivers lists every supported storage driver.
var Drivers = []string{DriverFile, DriverMemory, DriverSQLite, DriverPostgres, DriverRedis}

// Config is the root application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Tracker  TrackerConfig  `yaml:"tracker"`
	Log      LogConfig      `yaml:"log"`
}

// StorageConfig selects where the tracker state slot lives.
type StorageConfig struct {
	Driver     string `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"file"`
	Key        string `yaml:"key"         env:"STORAGE_KEY"         env-default:"learning-tracker-storage"`
	Dir        string `yaml:"dir"         env:"STORAGE_DIR"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"tracker.db"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	KeyPrefix   string        `yaml:"key_prefix"   env:"REDIS_KEY_PREFIX"`
}

// TrackerConfig holds store behavior settings.
type TrackerConfig struct {
	Timezone         string `yaml:"timezone"          env:"TRACKER_TIMEZONE"          env-default:"UTC"`
	ChartDays        int    `yaml:"chart_days"        env:"TRACKER_CHART_DAYS"        env-default:"7"`
	RecentActivities int    `yaml:"recent_activities" env:"TRACKER_RECENT_ACTIVITIES" env-default:"3"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
