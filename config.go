package coinfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Preferences are user-tunable defaults.
type Preferences struct {
	// FetchPrices controls whether summaries fetch live prices by default.
	FetchPrices *bool `json:"fetch_prices,omitempty"`
	// DefaultPlatform pre-fills the platform of new records.
	DefaultPlatform string `json:"default_platform,omitempty"`
}

// Config is the application configuration document.
type Config struct {
	// TickerMappings maps coin symbols to CoinGecko ids, extending the
	// built-in table of the price service.
	TickerMappings map[string]string `json:"ticker_mappings"`
	Preferences    Preferences       `json:"preferences"`
}

// ConfigStore persists the configuration in its own JSON file, with the
// same whole-file read-modify-write discipline as the record store.
type ConfigStore struct {
	path string
}

// DefaultConfigPath returns the config file next to the given document.
func DefaultConfigPath(documentPath string) string {
	return filepath.Join(filepath.Dir(documentPath), "config.json")
}

// OpenConfigStore opens the config file at path, creating parent
// directories as needed. A missing file means defaults.
func OpenConfigStore(path string) (*ConfigStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	return &ConfigStore{path: path}, nil
}

// Load reads the configuration, returning defaults when no file exists.
func (cs *ConfigStore) Load() (Config, error) {
	data, err := os.ReadFile(cs.path)
	if os.IsNotExist(err) {
		return Config{TickerMappings: map[string]string{}}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", cs.path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", cs.path, err)
	}
	if cfg.TickerMappings == nil {
		cfg.TickerMappings = map[string]string{}
	}
	return cfg, nil
}

// Save writes the configuration back.
func (cs *ConfigStore) Save(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(cs.path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing config %q: %w", cs.path, err)
	}
	return nil
}

// SetTickerMapping stores a symbol to CoinGecko id mapping.
func (cs *ConfigStore) SetTickerMapping(symbol, geckoID string) error {
	if geckoID == "" {
		return fmt.Errorf("CoinGecko id cannot be empty")
	}
	cfg, err := cs.Load()
	if err != nil {
		return err
	}
	cfg.TickerMappings[normalizeCoin(symbol)] = geckoID
	return cs.Save(cfg)
}

// RemoveTickerMapping deletes a mapping, reporting whether it existed.
func (cs *ConfigStore) RemoveTickerMapping(symbol string) (bool, error) {
	cfg, err := cs.Load()
	if err != nil {
		return false, err
	}
	symbol = normalizeCoin(symbol)
	if _, ok := cfg.TickerMappings[symbol]; !ok {
		return false, nil
	}
	delete(cfg.TickerMappings, symbol)
	return true, cs.Save(cfg)
}

// SetDefaultPlatform stores the default platform preference. An empty
// value clears it.
func (cs *ConfigStore) SetDefaultPlatform(platform string) error {
	cfg, err := cs.Load()
	if err != nil {
		return err
	}
	cfg.Preferences.DefaultPlatform = platform
	return cs.Save(cfg)
}
