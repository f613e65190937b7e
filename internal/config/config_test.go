package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/config"
)

func Test_InitialiseConfig(t *testing.T) {

	t.Run("should read the config file", func(t *testing.T) {
		// arrange
		viper.Reset()
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{
			"bridgeIp": "192.168.1.2",
			"username": "newdeveloper",
			"geoLocation": "51.5,-0.12",
			"timeout": "3s"
		}`), 0o600)
		require.NoError(t, err)

		// act
		err = config.InitialiseConfig(dir)
		cfg := config.Load()

		// assert
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.2", cfg.BridgeIP)
		assert.Equal(t, "newdeveloper", cfg.Username)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, "huectl.db", cfg.DBPath)
	})

	t.Run("should fall back to defaults without a config file", func(t *testing.T) {
		// arrange
		viper.Reset()

		// act
		err := config.InitialiseConfig(t.TempDir())
		cfg := config.Load()

		// assert
		require.NoError(t, err)
		assert.Equal(t, "", cfg.BridgeIP)
		assert.Equal(t, "https://discovery.meethue.com", cfg.DiscoveryURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("should read values from the environment", func(t *testing.T) {
		// arrange
		viper.Reset()
		t.Setenv("HUECTL_USERNAME", "fromenv")

		// act
		err := config.InitialiseConfig(t.TempDir())
		cfg := config.Load()

		// assert
		require.NoError(t, err)
		assert.Equal(t, "fromenv", cfg.Username)
	})
}

func Test_Coordinates(t *testing.T) {
	tests := []struct {
		name        string
		geoLocation string
		lat         float64
		lng         float64
		wantErr     bool
	}{
		{name: "valid", geoLocation: "51.5,-0.12", lat: 51.5, lng: -0.12},
		{name: "spaces", geoLocation: " 10, 20 ", lat: 10, lng: 20},
		{name: "missing longitude", geoLocation: "51.5", wantErr: true},
		{name: "not a number", geoLocation: "north,west", wantErr: true},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			// act
			lat, lng, err := config.Config{GeoLocation: c.geoLocation}.Coordinates()

			// assert
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.lat, lat)
			assert.Equal(t, c.lng, lng)
		})
	}
}
