package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

type Config struct {
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	StoreBackend      string
	MongoURI          string
	DBName            string
	LayoutCollection  string
	SQLitePath        string
	TickInterval      time.Duration
	StopwatchInterval time.Duration
	LogLevel          string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		ReadTimeout:       getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:      getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnv("DB_NAME", "classboard"),
		LayoutCollection:  getEnv("COLLECTION_LAYOUT", "layout"),
		SQLitePath:        getEnv("SQLITE_PATH", "./data/classboard.db"),
		TickInterval:      getEnvDuration("TICK_INTERVAL", time.Second),
		StopwatchInterval: getEnvDuration("STOPWATCH_INTERVAL", 10*time.Millisecond),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory:
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo store")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.TickInterval <= 0 || c.StopwatchInterval <= 0 {
		return fmt.Errorf("tick intervals must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvDuration accepts whole seconds ("10") or a Go duration ("10ms").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
