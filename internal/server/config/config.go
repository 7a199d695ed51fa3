// Package config handles configuration for the server component.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c / --config.
//  3. Environment variables, including a .env file in the working directory.
//  4. Command-line flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds runtime settings for the roomstats server.
type Config struct {
	ListenAddr string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// PoolSize caps the number of open database connections.
	PoolSize int
	// Migrate applies the embedded schema migrations on startup.
	Migrate bool

	LogLevel  string
	LogFormat string

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = "127.0.0.1:8080"
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBUser = "postgres"
	c.DBPassword = ""
	c.DBName = "room_stats"
	c.DBSSLMode = "disable"
	c.PoolSize = 10
	c.Migrate = false
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ReadHeaderTimeout = 5 * time.Second
	c.ShutdownTimeout = 5 * time.Second
}

// DatabaseDSN assembles a pgx connection URL from the DB* fields.
func (c *Config) DatabaseDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else if c.DBUser != "" {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}
	if c.DBHost == "" {
		errs = append(errs, errors.New("database host is empty"))
	}
	if c.DBPort < 1 || c.DBPort > 65535 {
		errs = append(errs, fmt.Errorf("database port %d out of range", c.DBPort))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("database name is empty"))
	}
	if c.PoolSize < 1 {
		errs = append(errs, fmt.Errorf("pool size must be positive, got %d", c.PoolSize))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then the JSON file, the
// environment and finally command-line flags. It panics on invalid input.
func LoadConfig(args []string) *Config {
	loadDotEnv(".env")

	cfg, err := load(args, envLookup)
	if err != nil {
		panic(err)
	}
	return cfg
}

func load(args []string, lookup lookupFunc) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fl, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	if fl.configFile != "" {
		if err := parseJson(cfg, fl.configFile); err != nil {
			return nil, err
		}
	}

	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}

	fl.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
