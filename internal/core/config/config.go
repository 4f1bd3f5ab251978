package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the gateway will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the commerce backend configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Auth holds the staff session and token policy configuration.
	Auth AuthConfig `mapstructure:",squash"`

	// Redis holds the cache configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Jobs holds the background job schedules.
	Jobs JobsConfig `mapstructure:",squash"`
}

// BackendConfig holds the connection details for the commerce backend.
type BackendConfig struct {
	// URL is the base URL of the commerce backend REST API.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// Timeout is the per-request timeout for backend calls.
	Timeout time.Duration `mapstructure:"BACKEND_TIMEOUT" default:"10s"`
}

// AuthConfig holds the staff credentials and the token TTL policy.
//
// An access token is kept for 30 days after sign-in but only 30 minutes
// after a refresh. Both windows are named values so the asymmetry can be
// collapsed without a code change. A JWT exp claim, when present on the
// token, overrides both.
type AuthConfig struct {
	// Username is the staff account the gateway signs in with.
	Username string `mapstructure:"AUTH_USERNAME" required:"true"`
	// Password is the staff account password.
	Password string `mapstructure:"AUTH_PASSWORD" required:"true"`
	// SignInTokenTTL is how long an access token obtained via sign-in is kept.
	SignInTokenTTL time.Duration `mapstructure:"AUTH_SIGNIN_TOKEN_TTL" default:"720h"`
	// RefreshTokenTTL is how long an access token obtained via refresh is kept.
	RefreshTokenTTL time.Duration `mapstructure:"AUTH_REFRESH_TOKEN_TTL" default:"30m"`
	// RefreshPairTTL is how long the refresh token itself is kept.
	RefreshPairTTL time.Duration `mapstructure:"AUTH_REFRESH_PAIR_TTL" default:"720h"`
}

// RedisConfig holds cache connection details.
type RedisConfig struct {
	// URL is the Redis connection URL, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// StatsTTL is how long revenue snapshots are cached.
	StatsTTL time.Duration `mapstructure:"STATS_CACHE_TTL" default:"5m"`
}

// JobsConfig holds cron schedules for background maintenance.
type JobsConfig struct {
	// GraphSyncSchedule is the cron spec for re-syncing the transition graph.
	GraphSyncSchedule string `mapstructure:"GRAPH_SYNC_SCHEDULE" default:"@every 15m"`
	// StatsWarmSchedule is the cron spec for warming the revenue cache.
	StatsWarmSchedule string `mapstructure:"STATS_WARM_SCHEDULE" default:"@every 5m"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
