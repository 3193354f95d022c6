package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/matkrin/mvg-cli/pkg/mvg"
)

// apiURLEnv overrides the API base URL from the config file.
const apiURLEnv = "MVG_API_URL"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DefaultStation         string   `json:"default_station,omitempty"`
	AccentColor            string   `json:"accent_color,omitempty"`
	DisabledTransportTypes []string `json:"disabled_transport_types,omitempty"`
	APIURL                 string   `json:"api_url,omitempty"`
}

// RouteTransportTypes returns the products route queries may use. Every
// product is enabled unless listed in DisabledTransportTypes.
func (c *AppConfig) RouteTransportTypes() mvg.RouteTransportTypes {
	enabled := func(t mvg.TransportType) bool {
		return !slices.Contains(c.DisabledTransportTypes, string(t))
	}
	return mvg.RouteTransportTypes{
		Underground: enabled(mvg.Underground),
		Bus:         enabled(mvg.Bus),
		Tram:        enabled(mvg.Tram),
		Suburban:    enabled(mvg.Suburban),
		TaxiOnCall:  enabled(mvg.TaxiOnCall),
	}
}

// BaseURL returns the API base URL, preferring the environment over the file.
// An empty result means the client default.
func (c *AppConfig) BaseURL() string {
	if u := os.Getenv(apiURLEnv); u != "" {
		return u
	}
	return c.APIURL
}

// getConfigPath returns the absolute path to ~/.mvg-cli.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mvg-cli.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
