package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/roomstats/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Only keys that
// are present override the current values.
type JsonConfig struct {
	ListenAddr        *string         `json:"listen_addr"`
	DBHost            *string         `json:"db_host"`
	DBPort            *int            `json:"db_port"`
	DBUser            *string         `json:"db_user"`
	DBPassword        *string         `json:"db_password"`
	DBName            *string         `json:"db_name"`
	DBSSLMode         *string         `json:"db_sslmode"`
	PoolSize          *int            `json:"pool_size"`
	Migrate           *bool           `json:"migrate"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
	ReadHeaderTimeout *timex.Duration `json:"read_header_timeout"`
	ShutdownTimeout   *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the values from the JSON file at path onto config.
func parseJson(config *Config, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIf(&config.ListenAddr, c.ListenAddr)
	setIf(&config.DBHost, c.DBHost)
	setIf(&config.DBPort, c.DBPort)
	setIf(&config.DBUser, c.DBUser)
	setIf(&config.DBPassword, c.DBPassword)
	setIf(&config.DBName, c.DBName)
	setIf(&config.DBSSLMode, c.DBSSLMode)
	setIf(&config.PoolSize, c.PoolSize)
	setIf(&config.Migrate, c.Migrate)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.LogFormat, c.LogFormat)
	if c.ReadHeaderTimeout != nil {
		config.ReadHeaderTimeout = c.ReadHeaderTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
