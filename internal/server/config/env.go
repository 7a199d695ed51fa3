package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envListenAddr        = "LISTEN_ADDR"
	envDBHost            = "DB_HOST"
	envDBPort            = "DB_PORT"
	envDBUser            = "DB_USER"
	envDBPassword        = "DB_PASSWORD"
	envDBName            = "DB_NAME"
	envDBSSLMode         = "DB_SSLMODE"
	envPoolSize          = "DB_POOL_SIZE"
	envMigrate           = "DB_MIGRATE"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"
	envReadHeaderTimeout = "READ_HEADER_TIMEOUT"
	envShutdownTimeout   = "SHUTDOWN_TIMEOUT"
)

type lookupFunc func(key string) (string, bool)

var envLookup lookupFunc = os.LookupEnv

// loadDotEnv copies variables from path into the process environment without
// overriding variables that are already set. A missing file is fine.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

func parseEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str(envListenAddr, &cfg.ListenAddr)
	str(envDBHost, &cfg.DBHost)
	str(envDBUser, &cfg.DBUser)
	str(envDBPassword, &cfg.DBPassword)
	str(envDBName, &cfg.DBName)
	str(envDBSSLMode, &cfg.DBSSLMode)
	str(envLogLevel, &cfg.LogLevel)
	str(envLogFormat, &cfg.LogFormat)

	if err := envInt(lookup, envDBPort, &cfg.DBPort); err != nil {
		return err
	}
	if err := envInt(lookup, envPoolSize, &cfg.PoolSize); err != nil {
		return err
	}
	if v, ok := lookup(envMigrate); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envMigrate, err)
		}
		cfg.Migrate = b
	}
	if err := envDuration(lookup, envReadHeaderTimeout, &cfg.ReadHeaderTimeout); err != nil {
		return err
	}
	return envDuration(lookup, envShutdownTimeout, &cfg.ShutdownTimeout)
}

func envInt(lookup lookupFunc, key string, dst *int) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envDuration(lookup lookupFunc, key string, dst *time.Duration) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
