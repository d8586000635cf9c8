package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAppPort   = 8080
	DefaultPlacesURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	DefaultLogLevel  = "info"

	apiKeyEnv = "GOOGLE_MAPS_API_KEY"
)

type AppConfig struct {
	AppPort         int
	LogLevel        string
	GoogleAPIKey    string
	PlacesURL       string
	UpstreamTimeout time.Duration
}

var (
	lock       = &sync.Mutex{}
	appConfig  *AppConfig
	configFile string
)

// SetConfigFile points the next GetConfig call at an explicit file instead of
// searching for app.config.json.
func SetConfigFile(path string) {
	lock.Lock()
	defer lock.Unlock()

	configFile = path
	appConfig = nil
}

func GetConfig() (*AppConfig, error) {
	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	cfg, err := Load(configFile)
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return appConfig, nil
}

// Load reads the configuration from path, or from app.config.json in the
// working directory or ./config when path is empty. Without a config file
// every value comes from the environment.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetConfigName("app.config")
		v.SetConfigType("json")
	}

	var finalConfig AppConfig

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", DefaultAppPort)
		finalConfig.LogLevel = getEnvOrDefault("LOG_LEVEL", DefaultLogLevel)
		finalConfig.GoogleAPIKey = getEnvOrDefault(apiKeyEnv, "")
		finalConfig.PlacesURL = getEnvOrDefault("GOOGLE_PLACES_URL", DefaultPlacesURL)
		finalConfig.UpstreamTimeout = getEnvDurationOrDefault("GOOGLE_TIMEOUT", 0)
		return &finalConfig, nil
	}

	v.SetDefault("server.port", DefaultAppPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("google.placesurl", DefaultPlacesURL)

	finalConfig.AppPort = v.GetInt("server.port")
	finalConfig.LogLevel = v.GetString("log.level")
	finalConfig.GoogleAPIKey = v.GetString("google.apikey")
	finalConfig.PlacesURL = v.GetString("google.placesurl")
	finalConfig.UpstreamTimeout = v.GetDuration("google.timeout")

	// the credential is usually injected by the deployment, not committed
	finalConfig.GoogleAPIKey = getEnvOrDefault(apiKeyEnv, finalConfig.GoogleAPIKey)

	fmt.Printf("Using config file: %s\n\n", v.ConfigFileUsed())

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
