package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weather/apis/openweather"
	"weather/apis/weatherapi"
	"weather/manager"
)

//go:embed config.yaml
var endpointsRaw []byte

const (
	envConfigPath     = "CONFIG_PATH"
	envOpenWeatherKey = "OPEN_WEATHER_API_KEY"
	envWeatherApiKey  = "WEATHER_API_API_KEY"
	envLogLevel       = "WEATHER_LOG_LEVEL"
	envEndpoints      = "WEATHER_ENDPOINTS"
)

type Endpoints struct {
	OpenWeather openweather.Endpoints `yaml:"openweather"`
	WeatherApi  weatherapi.Endpoints  `yaml:"weatherapi"`
}

type Config struct {
	// ConfigPath is where the selected provider is persisted.
	ConfigPath        string
	OpenWeatherAPIKey string
	WeatherApiAPIKey  string
	LogLevel          slog.Level
	Endpoints         Endpoints
}

// Load reads the environment, after merging a .env file from the working
// directory if there is one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		ConfigPath:        os.Getenv(envConfigPath),
		OpenWeatherAPIKey: os.Getenv(envOpenWeatherKey),
		WeatherApiAPIKey:  os.Getenv(envWeatherApiKey),
		LogLevel:          slog.LevelWarn,
	}

	if level := os.Getenv(envLogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envLogLevel, err)
		}
	}

	if err := yaml.Unmarshal(endpointsRaw, &cfg.Endpoints); err != nil {
		return nil, fmt.Errorf("parse embedded endpoints: %w", err)
	}

	if path := os.Getenv(envEndpoints); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", envEndpoints, err)
		}
		if err = yaml.Unmarshal(raw, &cfg.Endpoints); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Providers builds one provider per configured API key.
func (c *Config) Providers() ([]manager.Provider, error) {
	client := resty.New()

	var apis []manager.Provider
	if c.OpenWeatherAPIKey != "" {
		apis = append(apis, openweather.New(client, c.Endpoints.OpenWeather, c.OpenWeatherAPIKey))
	}
	if c.WeatherApiAPIKey != "" {
		apis = append(apis, weatherapi.New(client, c.Endpoints.WeatherApi, c.WeatherApiAPIKey))
	}

	if len(apis) == 0 {
		return nil, fmt.Errorf("%w: set %s or %s", manager.ErrNoAPIKey, envOpenWeatherKey, envWeatherApiKey)
	}

	return apis, nil
}
