package config

import (
	"github.com/spf13/pflag"
)

// flagValues holds what was given on the command line. Only flags that were
// actually set override earlier sources.
type flagValues struct {
	fs         *pflag.FlagSet
	configFile string
	values     Config
}

// parseFlags parses args (without the program name).
//
// Supported flags:
//
//	-c, --config string               JSON config file
//	-a, --address string              HTTP listen address
//	    --db-host string              database host
//	    --db-port int                 database port
//	    --db-user string              database user
//	    --db-password string          database password
//	    --db-name string              database name
//	    --db-sslmode string           libpq sslmode
//	    --pool-size int               maximum pooled connections
//	    --migrate                     apply schema migrations on startup
//	    --log-level string            debug, info, warn or error
//	    --log-format string           json or console
//	    --read-header-timeout duration
//	    --shutdown-timeout duration
func parseFlags(args []string) (*flagValues, error) {
	fl := &flagValues{}
	fs := pflag.NewFlagSet("roomstats", pflag.ContinueOnError)
	v := &fl.values

	fs.StringVarP(&fl.configFile, "config", "c", "", "path to JSON config file")
	fs.StringVarP(&v.ListenAddr, "address", "a", "", "address and port to run server")
	fs.StringVar(&v.DBHost, "db-host", "", "database host")
	fs.IntVar(&v.DBPort, "db-port", 0, "database port")
	fs.StringVar(&v.DBUser, "db-user", "", "database user")
	fs.StringVar(&v.DBPassword, "db-password", "", "database password")
	fs.StringVar(&v.DBName, "db-name", "", "database name")
	fs.StringVar(&v.DBSSLMode, "db-sslmode", "", "database sslmode")
	fs.IntVar(&v.PoolSize, "pool-size", 0, "maximum number of pooled connections")
	fs.BoolVar(&v.Migrate, "migrate", false, "apply schema migrations on startup")
	fs.StringVar(&v.LogLevel, "log-level", "", "log level")
	fs.StringVar(&v.LogFormat, "log-format", "", "log format (json or console)")
	fs.DurationVar(&v.ReadHeaderTimeout, "read-header-timeout", 0, "time allowed to read request headers")
	fs.DurationVar(&v.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fl.fs = fs
	return fl, nil
}

func (fl *flagValues) apply(cfg *Config) {
	v := fl.values
	fl.fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "address":
			cfg.ListenAddr = v.ListenAddr
		case "db-host":
			cfg.DBHost = v.DBHost
		case "db-port":
			cfg.DBPort = v.DBPort
		case "db-user":
			cfg.DBUser = v.DBUser
		case "db-password":
			cfg.DBPassword = v.DBPassword
		case "db-name":
			cfg.DBName = v.DBName
		case "db-sslmode":
			cfg.DBSSLMode = v.DBSSLMode
		case "pool-size":
			cfg.PoolSize = v.PoolSize
		case "migrate":
			cfg.Migrate = v.Migrate
		case "log-level":
			cfg.LogLevel = v.LogLevel
		case "log-format":
			cfg.LogFormat = v.LogFormat
		case "read-header-timeout":
			cfg.ReadHeaderTimeout = v.ReadHeaderTimeout
		case "shutdown-timeout":
			cfg.ShutdownTimeout = v.ShutdownTimeout
		}
	})
}
