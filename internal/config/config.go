package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// conf holds the current configuration snapshot. Hot reload swaps the whole
// snapshot, so readers on request goroutines never observe a half-written
// Config.
var conf atomic.Pointer[Config]

// Get returns the current configuration snapshot.
func Get() *Config {
	return conf.Load()
}

// Set replaces the configuration snapshot.
func Set(c *Config) {
	conf.Store(c)
}

// Config struct is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
}

// ServerConfig holds server-related settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory          string        `mapstructure:"directory"`
	MaxSize            int           `mapstructure:"max_size"`
	MaxBackups         int           `mapstructure:"max_backups"`
	MaxAge             int           `mapstructure:"max_age"`
	Compress           bool          `mapstructure:"compress"`
	SlowQueryThreshold time.Duration `mapstructure:"slow_query_threshold"`
}

// IngestConfig bounds the batched sensor write path and the upload surface.
type IngestConfig struct {
	TxTimeout      time.Duration `mapstructure:"tx_timeout"`
	LockWait       time.Duration `mapstructure:"lock_wait"`
	BatchSize      int           `mapstructure:"batch_size"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
	RateLimit      uint          `mapstructure:"rate_limit"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "debug")

	// Database defaults
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.dbname", "neuroscan-db")

	// Logging defaults
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs
	v.SetDefault("logging.slow_query_threshold", "200ms")

	// Ingest defaults: submission transaction bounds and upload limits
	v.SetDefault("ingest.tx_timeout", "30s")
	v.SetDefault("ingest.lock_wait", "10s")
	v.SetDefault("ingest.batch_size", 1000)
	v.SetDefault("ingest.max_upload_bytes", 50*1024*1024) // 50 MB
	v.SetDefault("ingest.rate_limit", 60)                 // requests per minute
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("NEUROSCAN") // e.g., NEUROSCAN_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	Set(&c)

	// Set up a watch for configuration changes for hot-reloading. A reload
	// decodes into a fresh snapshot; the previous one stays in place when
	// decoding fails.
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		var next Config
		if err := v.Unmarshal(&next); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
			return
		}
		Set(&next)
	})

	log.Info("Configuration loaded successfully")
	return nil
}
