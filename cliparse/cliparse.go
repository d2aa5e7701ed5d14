package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMemory   = "memory"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	CallerKeySalt string

	// Election rule switches, all off by default
	StrictReject      bool
	RecordVotedVoters bool
	SingleInit        bool

	// When set, print the caller key for this address and exit
	KeyFor string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is fine; real environment variables always win
	_ = godotenv.Load()

	fs := flag.NewFlagSet("voting-org", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or memory)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CallerKeySalt, "caller-salt", "", "Caller key salt (prefer env)")

	fs.BoolVar(&cfg.StrictReject, "strict-reject", false, "Reject sets status Rejected")
	fs.BoolVar(&cfg.RecordVotedVoters, "record-voted", false, "Persist the list of voters who voted")
	fs.BoolVar(&cfg.SingleInit, "single-init", false, "Refuse a second init")

	fs.StringVar(&cfg.KeyFor, "key-for", "", "Print the caller key for an address and exit")

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
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMemory:
	default:
		return Config{}, errors.New("DATABASE_TYPE must be sqlite, postgres or memory")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case DatabaseSQLite:
			cfg.DatabaseURL = "file:voting.db"
		case DatabasePostgres:
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	for name, dst := range map[string]*bool{
		"STRICT_REJECT":       &cfg.StrictReject,
		"RECORD_VOTED_VOTERS": &cfg.RecordVotedVoters,
		"SINGLE_INIT":         &cfg.SingleInit,
	} {
		if *dst {
			continue
		}
		if v := os.Getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid " + name + " env variable")
			}
			*dst = b
		}
	}

	// Secrets - MUST be provided
	if cfg.CallerKeySalt == "" {
		cfg.CallerKeySalt = os.Getenv("CALLER_KEY_SALT")
	}
	if cfg.CallerKeySalt == "" {
		return Config{}, errors.New("CALLER_KEY_SALT required")
	}

	return cfg, nil
}
