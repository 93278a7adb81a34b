package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/omerorhan/stay-pricing/internal/storage"
)

type Config struct {
	Port             int           `mapstructure:"PORT"`
	RateSource       string        `mapstructure:"RATE_SOURCE"`
	RateFile         string        `mapstructure:"RATE_FILE"`
	RateSheet        string        `mapstructure:"RATE_SHEET"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisSnapshotTTL time.Duration `mapstructure:"REDIS_SNAPSHOT_TTL"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	BaseCurrency     string        `mapstructure:"BASE_CURRENCY"`
	TargetCurrency   string        `mapstructure:"TARGET_CURRENCY"`
	AllowOrigins     string        `mapstructure:"ALLOW_ORIGINS"`
	EnableLogging    bool          `mapstructure:"ENABLE_LOGGING"`
}

var defaults = map[string]any{
	"PORT":               8080,
	"RATE_SOURCE":        storage.KindExcel,
	"RATE_FILE":          "",
	"RATE_SHEET":         storage.DefaultSheet,
	"REDIS_ADDR":         "tcp://localhost:6379",
	"REDIS_SNAPSHOT_TTL": time.Duration(0),
	"DATABASE_URL":       "",
	"BASE_CURRENCY":      "IDR",
	"TARGET_CURRENCY":    "USD",
	"ALLOW_ORIGINS":      "",
	"ENABLE_LOGGING":     true,
}

// LoadConfig reads .env, then config.env from dir, then the process
// environment. Later sources win. Both files are optional.
func LoadConfig(dir string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// SourceOptions maps the rate source settings onto storage.SourceOptions
func (c Config) SourceOptions() *storage.SourceOptions {
	opts := storage.DefaultSourceOptions()
	opts.File = c.RateFile
	if c.RateSheet != "" {
		opts.Sheet = c.RateSheet
	}
	if c.RedisAddr != "" {
		opts.RedisAddr = c.RedisAddr
	}
	opts.SnapshotTTL = c.RedisSnapshotTTL
	opts.DatabaseURL = c.DatabaseURL
	return opts
}

// Origins splits ALLOW_ORIGINS on commas
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
