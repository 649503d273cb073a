package config

import (
	"fmt"
	"math"
	"net"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// WebConfig holds the web server settings. They live in an optional TOML
// file so the panel can run without touching the database first.
type WebConfig struct {
	Listen        string `toml:"listen" json:"listen"`
	Domain        string `toml:"domain" json:"domain"`
	Port          int    `toml:"port" json:"port"`
	BasePath      string `toml:"basePath" json:"basePath"`
	CertFile      string `toml:"certFile" json:"certFile"`
	KeyFile       string `toml:"keyFile" json:"keyFile"`
	SessionMaxAge int    `toml:"sessionMaxAge" json:"sessionMaxAge"` // minutes
	SessionSecret string `toml:"sessionSecret" json:"sessionSecret"`
}

// GetDefaultWebConfig returns the settings used when no config file exists.
func GetDefaultWebConfig() *WebConfig {
	return &WebConfig{
		Listen:        "",
		Port:          8000,
		BasePath:      "/",
		SessionMaxAge: 60,
	}
}

// LoadWebConfig reads the TOML settings file at path. A missing file is not
// an error; defaults are returned instead.
func LoadWebConfig(path string) (*WebConfig, error) {
	c := GetDefaultWebConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse web config %s: %w", path, err)
	}
	if err := c.CheckValid(); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckValid validates the listen address, port and base path.
func (c *WebConfig) CheckValid() error {
	if c.Listen != "" {
		if ip := net.ParseIP(c.Listen); ip == nil {
			return fmt.Errorf("web listen is not a valid ip: %s", c.Listen)
		}
	}
	if c.Port <= 0 || c.Port > math.MaxUint16 {
		return fmt.Errorf("web port is not a valid port: %d", c.Port)
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base path must start with '/': %s", c.BasePath)
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be positive: %d", c.SessionMaxAge)
	}
	return nil
}

// NormalizedBasePath always ends with a single trailing slash.
func (c *WebConfig) NormalizedBasePath() string {
	p := c.BasePath
	if p == "" {
		return "/"
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
