package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

const (
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Backend    string         `yaml:"backend" toml:"backend"`
	DBPath     string         `yaml:"db_path" toml:"db_path"`
	StorageKey string         `yaml:"storage_key" toml:"storage_key"`
	Redis      RedisConfig    `yaml:"redis" toml:"redis"`
	Postgres   PostgresConfig `yaml:"postgres" toml:"postgres"`
	Server     ServerConfig   `yaml:"server" toml:"server"`
	APIBaseURL string         `yaml:"api_base_url" toml:"api_base_url"`
	Log        LogConfig      `yaml:"log" toml:"log"`
	Nudge      NudgeConfig    `yaml:"nudge" toml:"nudge"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" toml:"addr"`
	Password string `yaml:"password" toml:"password"`
	DB       int    `yaml:"db" toml:"db"`
}

type PostgresConfig struct {
	DSN    string `yaml:"dsn" toml:"dsn"`
	Driver string `yaml:"driver" toml:"driver"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" toml:"listen_addr"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type NudgeConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" toml:"resend_api_key"`
	Email        string `yaml:"email" toml:"email"`
	From         string `yaml:"from" toml:"from"`
}

func Default() Config {
	return Config{
		Backend:    BackendBolt,
		StorageKey: "habit-tracker-data",
		Redis:      RedisConfig{Addr: "localhost:6379"},
		Postgres:   PostgresConfig{Driver: "pgx"},
		Server:     ServerConfig{ListenAddr: ":8080"},
		APIBaseURL: "http://localhost:8080",
		Log:        LogConfig{Level: "info", Format: "text"},
		Nudge:      NudgeConfig{From: "onboarding@resend.dev"},
	}
}

// Load reads .env, then the config file named by HABITS_CONFIG (or the XDG
// default when it is unset or empty), then applies HABITS_* environment
// overrides. A missing default config file is not an error; a missing
// HABITS_CONFIG file is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("HABITS_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := loadFile(path, &cfg); err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return nil, err
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath(cfg.Backend)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Backend, "HABITS_BACKEND")
	setString(&cfg.DBPath, "HABITS_DB_PATH")
	setString(&cfg.StorageKey, "HABITS_STORAGE_KEY")
	setString(&cfg.Redis.Addr, "HABITS_REDIS_ADDR")
	setString(&cfg.Redis.Password, "HABITS_REDIS_PASSWORD")
	setString(&cfg.Postgres.DSN, "HABITS_POSTGRES_DSN")
	setString(&cfg.Postgres.Driver, "HABITS_POSTGRES_DRIVER")
	setString(&cfg.Server.ListenAddr, "HABITS_LISTEN_ADDR")
	setString(&cfg.APIBaseURL, "HABITS_API_BASE")
	setString(&cfg.Log.Level, "HABITS_LOG_LEVEL")
	setString(&cfg.Log.Format, "HABITS_LOG_FORMAT")
	setString(&cfg.Nudge.ResendAPIKey, "HABITS_RESEND_API_KEY")
	setString(&cfg.Nudge.Email, "HABITS_NOTIFY_EMAIL")

	if v := os.Getenv("HABITS_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HABITS_REDIS_DB must be a valid integer: %v", err)
		}
		cfg.Redis.DB = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendBolt, BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis backend requires redis.addr")
		}
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres backend requires postgres.dsn")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}
