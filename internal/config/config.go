package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// HTTPConfig holds settings shared by all upstream API calls
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// ProvidersConfig holds the endpoints of the upstream APIs
type ProvidersConfig struct {
	IPAPI       EndpointConfig
	IPAPICo     EndpointConfig
	IATAGeo     EndpointConfig
	AirportInfo AirportInfoConfig
	OpenMeteo   EndpointConfig
}

type EndpointConfig struct {
	BaseURL string
}

// AirportInfoConfig holds the RapidAPI credentials for the backup airport provider
type AirportInfoConfig struct {
	BaseURL string
	Host    string
	APIKey  string
}

// Load reads configuration from .env, file and environment variables
func Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	return load(viper.New(), ".env", ".", "./config", home+"/.weatherwear")
}

func load(v *viper.Viper, envFile string, configPaths ...string) (*Config, error) {
	// .env only fills variables that are not already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("http.timeout", 3*time.Second)
	v.SetDefault("http.useragent", "WeatherWear/1.0")
	v.SetDefault("providers.ipapi.baseurl", "http://ip-api.com")
	v.SetDefault("providers.ipapico.baseurl", "https://ipapi.co")
	v.SetDefault("providers.iatageo.baseurl", "https://www.iatageo.com")
	v.SetDefault("providers.airportinfo.baseurl", "https://airport-info.p.rapidapi.com")
	v.SetDefault("providers.airportinfo.host", "airport-info.p.rapidapi.com")
	v.SetDefault("providers.airportinfo.apikey", "")
	v.SetDefault("providers.openmeteo.baseurl", "https://api.open-meteo.com/v1")

	v.SetEnvPrefix("WEATHERWEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The RapidAPI dashboard names the key after its header
	if err := v.BindEnv("providers.airportinfo.apikey", "WEATHERWEAR_PROVIDERS_AIRPORTINFO_APIKEY", "X-RapidAPI-Key"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
