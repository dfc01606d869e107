package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ListenAddr     string        `mapstructure:"listen_addr"`
	DatabaseURL    string        `mapstructure:"database_url"`
	DBMaxConns     int32         `mapstructure:"db_max_conns"`
	RedisAddr      string        `mapstructure:"redis_addr"`
	RedisPassword  string        `mapstructure:"redis_password"`
	RedisDB        int           `mapstructure:"redis_db"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFormat      string        `mapstructure:"log_format"`
	MaxConnections int           `mapstructure:"max_connections"`
	LookupDelay    time.Duration `mapstructure:"lookup_delay"`
	LookupDebounce time.Duration `mapstructure:"lookup_debounce"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	SessionSweep   time.Duration `mapstructure:"session_sweep"`
	QuestionsFile  string        `mapstructure:"questions_file"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
}

var ErrDatabaseURLMissing = errors.New("DATABASE_URL not set")

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("db_max_conns", 10)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("max_connections", 256)
	v.SetDefault("lookup_delay", 1500*time.Millisecond)
	v.SetDefault("lookup_debounce", 800*time.Millisecond)
	v.SetDefault("session_ttl", 30*time.Minute)
	v.SetDefault("session_sweep", time.Minute)
	v.SetDefault("questions_file", "")
	v.SetDefault("api_base_url", "http://localhost:8080")
}

// Load reads .env (if present), an optional config.yaml from . or ./configs,
// then the process environment. Environment variables win.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}
	return LoadFrom(viper.New(), ".", "./configs")
}

// LoadFrom populates cfg through v, searching dirs for config.yaml.
func LoadFrom(v *viper.Viper, dirs ...string) (Config, error) {
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("LISTEN_ADDR must not be empty")
	}
	if c.MaxConnections < 1 {
		return fmt.Errorf("MAX_CONNECTIONS must be positive, got %d", c.MaxConnections)
	}
	if c.LookupDelay < 0 || c.LookupDebounce < 0 || c.SessionTTL < 0 || c.SessionSweep < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// RequireDatabase is checked by the server; the wizard client has no database.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}
