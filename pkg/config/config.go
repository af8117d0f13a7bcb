package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"BayPortal/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Backend struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"backend"`
	Views struct {
		DefaultCuisine  string `yaml:"default_cuisine"`
		RestaurantLimit int    `yaml:"restaurant_limit"`
		DealLimit       int    `yaml:"deal_limit"`
		GossipLimit     int    `yaml:"gossip_limit"`
		VideoLimit      int    `yaml:"video_limit"`
	} `yaml:"views"`
	Cache struct {
		Enabled    bool          `yaml:"enabled"`
		ActionsTTL time.Duration `yaml:"actions_ttl"`
		Redis      struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
		Memory struct {
			MaxSize int `yaml:"max_size"`
		} `yaml:"memory"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and applies environment overrides.
// PORTAL_BACKEND_URL repoints the service at a different content backend and
// PORTAL_PORT moves the listen port, both without touching the config file.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORTAL_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	c.Server.Port = util.ParseIntDefault(os.Getenv("PORTAL_PORT"), c.Server.Port)

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 10 * time.Second
	}
	if c.Backend.UserAgent == "" {
		c.Backend.UserAgent = "bayportal-views/1.0"
	}
	if c.Views.DefaultCuisine == "" {
		c.Views.DefaultCuisine = "asian"
	}
	if c.Views.RestaurantLimit == 0 {
		c.Views.RestaurantLimit = 5
	}
	if c.Views.DealLimit == 0 {
		c.Views.DealLimit = 5
	}
	if c.Views.GossipLimit == 0 {
		c.Views.GossipLimit = 5
	}
	if c.Views.VideoLimit == 0 {
		c.Views.VideoLimit = 6
	}
	if c.Cache.ActionsTTL == 0 {
		c.Cache.ActionsTTL = 5 * time.Minute
	}
	if c.Cache.Memory.MaxSize == 0 {
		c.Cache.Memory.MaxSize = 1000
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "bayportal"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an absolute URL, got '%s'", c.Backend.BaseURL)
	}
	return nil
}
