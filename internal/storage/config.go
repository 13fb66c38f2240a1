package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// ConfigFile is the optional configuration file looked up in the working directory.
	ConfigFile = ".smsconfig.yaml"

	// Default configuration values
	DefaultBackend      = BackendFile
	DefaultDataFile     = "students.txt"
	DefaultDatabaseFile = "students.db"
	DefaultLogLevel     = "warn"
)

// Config selects and locates the record store.
// Values come from .smsconfig.yaml, then SMS_* environment variables,
// then defaults.
type Config struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend" env:"SMS_BACKEND" env-default:"file"`

	// DataFile is the flat file used by the file backend.
	DataFile string `yaml:"data_file" env:"SMS_DATA_FILE" env-default:"students.txt"`

	// DatabaseFile is the database used by the sqlite backend.
	DatabaseFile string `yaml:"database_file" env:"SMS_DATABASE_FILE" env-default:"students.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"SMS_LOG_LEVEL" env-default:"warn"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend:      DefaultBackend,
		DataFile:     DefaultDataFile,
		DatabaseFile: DefaultDatabaseFile,
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig reads ConfigFile from dir if present. A missing file is not
// an error: environment variables and defaults still apply.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)

	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to access %s: %w", ConfigFile, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	return &cfg, nil
}
