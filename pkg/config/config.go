package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Airtable AirtableConfig `mapstructure:"airtable"`
	Team     TeamConfig     `mapstructure:"team"`
	Redis    RedisConfig    `mapstructure:"redis"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
}

type ServerConfig struct {
	Port    int           `mapstructure:"port" default:"8000"`
	Mode    string        `mapstructure:"mode"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AirtableConfig is the {apiKey, baseId} pair that selects live mode.
// When either value is empty the service runs entirely on the demo
// seed dataset and never attempts a network call.
type AirtableConfig struct {
	APIKey string `mapstructure:"api_key"`
	BaseID string `mapstructure:"base_id"`
}

// Enabled reports whether live mode is configured.
func (a AirtableConfig) Enabled() bool {
	return a.APIKey != "" && a.BaseID != ""
}

// TeamConfig carries identity defaults that the original app kept in a
// hand-edited source file.
type TeamConfig struct {
	DefaultUser string   `mapstructure:"default_user"`
	Channels    []string `mapstructure:"channels"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether the optional response cache is configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RefreshConfig controls the periodic remote snapshot refresh. The cron
// spec only matters in live mode.
type RefreshConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

func LoadConfig(configPath string) (*Config, error) {
	var config Config

	// If CONFIG_FILE environment variable is set, use it
	if envConfigFile := os.Getenv("CONFIG_FILE"); envConfigFile != "" {
		configPath = envConfigFile
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		dir := filepath.Dir(configPath)
		file := filepath.Base(configPath)
		ext := filepath.Ext(file)
		name := strings.TrimSuffix(file, ext)

		v.AddConfigPath(dir)
		v.SetConfigName(name)
	} else {
		// Fallback to default locations
		_, filename, _, _ := runtime.Caller(0)
		pkgConfigDir := filepath.Dir(filename)
		projectRoot := filepath.Join(pkgConfigDir, "..", "..")

		v.AddConfigPath(pkgConfigDir)
		v.AddConfigPath(projectRoot)
		v.AddConfigPath(filepath.Join(projectRoot, "pkg", "config"))
		v.SetConfigName("config")
	}

	setDefaults(v)

	// A missing config file is not an error: the defaults alone are a
	// valid demo-mode configuration.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Override with environment variables if they exist
	envVars := map[string]string{
		"server.port":       "SERVER_PORT",
		"server.mode":       "SERVER_MODE",
		"server.timeout":    "SERVER_TIMEOUT",
		"airtable.api_key":  "AIRTABLE_API_KEY",
		"airtable.base_id":  "AIRTABLE_BASE_ID",
		"team.default_user": "TEAMHUB_DEFAULT_USER",
		"redis.host":        "REDIS_HOST",
		"redis.port":        "REDIS_PORT",
		"redis.password":    "REDIS_PASSWORD",
		"redis.db":          "REDIS_DB",
		"refresh.enabled":   "REFRESH_ENABLED",
		"refresh.cron":      "REFRESH_CRON",
		"logging.level":     "LOG_LEVEL",
		"logging.format":    "LOG_FORMAT",
	}

	for configKey, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			switch envVar {
			case "SERVER_PORT", "REDIS_PORT", "REDIS_DB":
				if intVal, err := strconv.Atoi(value); err == nil {
					v.Set(configKey, intVal)
				}
			case "SERVER_TIMEOUT":
				if d, err := time.ParseDuration(value); err == nil {
					v.Set(configKey, d)
				}
			case "REFRESH_ENABLED":
				if value == "true" || value == "1" {
					v.Set(configKey, true)
				} else if value == "false" || value == "0" {
					v.Set(configKey, false)
				}
			default:
				v.Set(configKey, value)
			}
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.timeout", 10*time.Second)
	v.SetDefault("team.default_user", "Gökhan")
	v.SetDefault("team.channels", []string{"general", "marketing"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("refresh.enabled", true)
	v.SetDefault("refresh.cron", "@every 5m")
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Authorization", "X-TeamHub-User"})
}
