// Package config reads settings from the environment, an optional .env file
// and command line flags, in increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoreJSON  = "json"
	StoreRedis = "redis"
)

type Config struct {
	Store    string `env:"DEVBOOK_STORE" env-default:"json"`
	File     string `env:"DEVBOOK_FILE" env-default:"./devbook.json"`
	LogLevel string `env:"DEVBOOK_LOG_LEVEL" env-default:"info"`
	Redis    RedisConfig
}

type RedisConfig struct {
	Addr     string `env:"DEVBOOK_REDIS_ADDR" env-default:""`
	Password string `env:"DEVBOOK_REDIS_PASSWORD" env-default:""`
	DB       int    `env:"DEVBOOK_REDIS_DB" env-default:"0"`
	Key      string `env:"DEVBOOK_REDIS_KEY" env-default:"devbook:snapshot"`
}

// Load builds the config for a program called name. args are the command
// line arguments without the program name.
func Load(name string, args []string) (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.File, "file", cfg.File, "Path to the json file")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Storage backend, json or redis")
	fs.StringVar(&cfg.Redis.Addr, "redis", cfg.Redis.Addr, "Redis address, host:port")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreJSON:
		if c.File == "" {
			return fmt.Errorf("json store needs a file")
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis store needs DEVBOOK_REDIS_ADDR or -redis")
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}
