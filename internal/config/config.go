package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/huelib/bridge"
	"github.com/wheelibin/huelib/internal/constants"
)

type Config struct {
	BridgeIP     string
	Username     string
	GeoLocation  string
	DBPath       string
	LogFile      string
	LogLevel     string
	Timeout      time.Duration
	DiscoveryURL string
}

var defaultPaths = []string{"/etc/huectl/", "$HOME/.config/huectl/", "."}

// InitialiseConfig reads the "config" file from the given directories, or
// from the default search paths when none are given. A missing file is not
// an error; values then come from the environment (HUECTL_*) and defaults.
func InitialiseConfig(paths ...string) error {
	viper.SetConfigName("config")
	viper.SetEnvPrefix("HUECTL")
	viper.AutomaticEnv()

	viper.SetDefault("dbPath", constants.DefaultDBPath)
	viper.SetDefault("logFile", constants.DefaultLogFile)
	viper.SetDefault("logLevel", constants.DefaultLogLevel)
	viper.SetDefault("timeout", constants.DefaultTimeout)
	viper.SetDefault("discoveryUrl", bridge.DiscoveryURL)

	if len(paths) == 0 {
		paths = defaultPaths
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load returns the current configuration.
func Load() Config {
	return Config{
		BridgeIP:     viper.GetString("bridgeIp"),
		Username:     viper.GetString("username"),
		GeoLocation:  viper.GetString("geoLocation"),
		DBPath:       viper.GetString("dbPath"),
		LogFile:      viper.GetString("logFile"),
		LogLevel:     viper.GetString("logLevel"),
		Timeout:      viper.GetDuration("timeout"),
		DiscoveryURL: viper.GetString("discoveryUrl"),
	}
}

// Coordinates parses GeoLocation ("lat,lng").
func (c Config) Coordinates() (float64, float64, error) {
	latLng := strings.Split(c.GeoLocation, ",")
	if len(latLng) != 2 {
		return 0, 0, fmt.Errorf("invalid geoLocation %q, expected \"lat,lng\"", c.GeoLocation)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latLng[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in geoLocation: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(latLng[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in geoLocation: %w", err)
	}
	return lat, lng, nil
}
