package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Roster store kinds
const (
	StoreMemory = "memory"
	StoreSQL    = "sql"
	StoreRedis  = "redis"
)

type Config struct {
	Port         int
	BackendURL   string
	RosterStore  string
	DatabaseURL  string
	DatabaseType string
	RedisAddr    string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("eventgate", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BackendURL, "b", "", "Backend base URL (empty runs the stub backend)")

	// Roster persistence
	fs.StringVar(&cfg.RosterStore, "s", "", "Roster store (memory, sql or redis)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sql store)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address (redis store)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv("BACKEND_URL")
	}

	if cfg.RosterStore == "" {
		cfg.RosterStore = os.Getenv("ROSTER_STORE")
		if cfg.RosterStore == "" {
			cfg.RosterStore = StoreMemory
		}
	}

	switch cfg.RosterStore {
	case StoreMemory:
		// Nothing further required
	case StoreSQL:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for sql roster store (use -d or DATABASE_URL env)")
		}
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
			if cfg.DatabaseType == "" {
				cfg.DatabaseType = "sqlite"
			}
		}
		if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
			return Config{}, errors.New("database type must be sqlite or postgres")
		}
	case StoreRedis:
		if cfg.RedisAddr == "" {
			cfg.RedisAddr = os.Getenv("REDIS_ADDR")
		}
		if cfg.RedisAddr == "" {
			return Config{}, errors.New("redis address required for redis roster store (use -redis-addr or REDIS_ADDR env)")
		}
	default:
		return Config{}, errors.New("roster store must be memory, sql or redis")
	}

	return cfg, nil
}
