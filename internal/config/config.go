package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Places    PlacesConfig    `mapstructure:"places"`
	Routing   RoutingConfig   `mapstructure:"routing"`
	Geocoding GeocodingConfig `mapstructure:"geocoding"`
}

// PlacesConfig holds the places and search endpoint configuration
type PlacesConfig struct {
	SearchURL            string   `mapstructure:"search_url"`
	PlacesURL            string   `mapstructure:"places_url"`
	Timeout              int      `mapstructure:"timeout"`
	MaxRetries           int      `mapstructure:"max_retries"`
	MaxWorkers           int      `mapstructure:"max_workers"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	Proxies              []string `mapstructure:"proxies"`
	Locale               string   `mapstructure:"locale"`
}

// RoutingConfig holds the routing endpoint configuration
type RoutingConfig struct {
	Host    string `mapstructure:"host"`
	Token   string `mapstructure:"token"`
	Referer string `mapstructure:"referer"`
}

// GeocodingConfig holds the geocoder endpoint configuration
type GeocodingConfig struct {
	Host    string `mapstructure:"host"`
	Token   string `mapstructure:"token"`
	Referer string `mapstructure:"referer"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("places.search_url", "http://where.desktop.mos.svc.ovi.com/NOSe/json")
	viper.SetDefault("places.places_url", "http://places.maps.ovi.com/rest/v1/places/")
	viper.SetDefault("places.timeout", 60)
	viper.SetDefault("places.max_retries", 3)
	viper.SetDefault("places.max_workers", 10)
	viper.SetDefault("places.max_requests_per_second", 10)
	viper.SetDefault("places.locale", "en_US")

	viper.SetDefault("routing.host", "prd.lbsp.navteq.com")
	viper.SetDefault("routing.token", "")
	viper.SetDefault("routing.referer", "localhost")

	viper.SetDefault("geocoding.host", "loc.desktop.maps.svc.ovi.com")
	viper.SetDefault("geocoding.token", "")
	viper.SetDefault("geocoding.referer", "localhost")
}
