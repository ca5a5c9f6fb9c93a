package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration loaded from an optional YAML file.
// Credentials never live here; the API key comes from the environment.
type Config struct {
	// Model is the generative model name, e.g. "gemini-2.5-flash".
	// GEMINI_MODEL overrides it when set.
	Model string `yaml:"model"`
	// APIBaseURL is the generative language API base. Overridable for tests.
	APIBaseURL string `yaml:"api_base_url"`
	// RequestTimeout bounds a single model call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// OutputDir is where dataset artifacts and exports are written.
	OutputDir string `yaml:"output_dir"`
	// DBPath overrides the default database location next to the binary.
	DBPath string `yaml:"db_path"`
	// ListenAddr is the serve-mode bind address.
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gemini-2.5-flash",
		APIBaseURL:     "https://generativelanguage.googleapis.com",
		RequestTimeout: 120 * time.Second,
		OutputDir:      "webintel-results",
		ListenAddr:     ":8080",
	}
}

// LoadConfig reads the YAML config at path, falling back to defaults for
// any unset field. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	defaults := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaults.APIBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaults.ListenAddr
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Model = model
	}

	return cfg, nil
}
