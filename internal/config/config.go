// Package config loads server settings from flags, SCOUNDREL_* environment
// variables and an optional config file.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
)

// EnvPrefix prefixes every environment variable, e.g. SCOUNDREL_REDIS_ADDR
const EnvPrefix = "SCOUNDREL"

// Keys shared by flags, env and config files
const (
	KeyConfigFile   = "config"
	KeyPort         = "port"
	KeyRedisAddr    = "redis-addr"
	KeySessionTTL   = "session-ttl"
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"
	KeyOTLPEndpoint = "otlp-endpoint"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the server settings
type Config struct {
	Port int
	// RedisAddr selects the redis game store; empty keeps games in memory
	RedisAddr  string
	SessionTTL time.Duration
	LogLevel   string
	LogFormat  string
	// OTLPEndpoint enables tracing when set
	OTLPEndpoint string
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange(KeyPort, c.Port, 1, 65535, vb)
	if c.SessionTTL <= 0 {
		vb.Field(KeySessionTTL, "must be positive")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field(KeyLogLevel, "must be one of: debug, info, warn, error")
	}
	errors.ValidateEnum(KeyLogFormat, c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}

// SlogLevel returns the configured slog level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPort, 50051)
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeySessionTTL, 2*time.Hour)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, LogFormatText)
	v.SetDefault(KeyOTLPEndpoint, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags registers the server flags on fs and binds them to v. Flags win
// over env, env wins over the config file.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String(KeyConfigFile, "", "path to a config file (yaml, toml or json)")
	fs.Int(KeyPort, v.GetInt(KeyPort), "gRPC server port")
	fs.String(KeyRedisAddr, v.GetString(KeyRedisAddr), "redis address for the game store (empty keeps games in memory)")
	fs.Duration(KeySessionTTL, v.GetDuration(KeySessionTTL), "how long an idle game is kept")
	fs.String(KeyLogLevel, v.GetString(KeyLogLevel), "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, v.GetString(KeyLogFormat), "log format: text or json")
	fs.String(KeyOTLPEndpoint, v.GetString(KeyOTLPEndpoint), "OTLP/HTTP endpoint URL for traces (empty disables tracing)")

	if err := v.BindPFlags(fs); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}
	return nil
}

// Load reads the optional config file and returns the validated settings
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg := &Config{
		Port:         v.GetInt(KeyPort),
		RedisAddr:    v.GetString(KeyRedisAddr),
		SessionTTL:   v.GetDuration(KeySessionTTL),
		LogLevel:     strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:    strings.ToLower(v.GetString(KeyLogFormat)),
		OTLPEndpoint: v.GetString(KeyOTLPEndpoint),
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
