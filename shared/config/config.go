package config

import (
	"fmt"
	"os"

	"github.com/learnsphere-dev/learnsphere/shared/validation"
	"gopkg.in/yaml.v2"
)

const DefaultBaseURL = "http://localhost:8000/api"

type Config struct {
	API      API      `yaml:"api"`
	Log      Log      `yaml:"log"`
	Frontend Frontend `yaml:"frontend"`
}

// API is the origin every client call is resolved against. Endpoints are
// appended to BaseURL verbatim.
type API struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// Frontend configures the static dev server that hosts the wasm bundle.
type Frontend struct {
	Addr           string   `yaml:"addr" validate:"required"`
	StaticDir      string   `yaml:"static_dir" validate:"required"`
	SecureCookies  bool     `yaml:"secure_cookies"`
	// HSTS pins browsers to HTTPS; enable only where the page is always served over it.
	HSTS           bool     `yaml:"hsts"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,url"`
}

func Default() *Config {
	return &Config{
		API: API{BaseURL: DefaultBaseURL},
		Log: Log{Level: "info"},
		Frontend: Frontend{
			Addr:           ":8081",
			StaticDir:      "static",
			AllowedOrigins: []string{"http://localhost:8000"},
		},
	}
}

// Load reads the YAML file at configPath over the defaults and validates the
// result. An empty path yields the defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("can't read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
			return nil, fmt.Errorf("can't unmarshal config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
