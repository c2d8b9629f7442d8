// Package config holds user-level preferences stored in ~/.rulebook.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PreviewConfig holds defaults for the preview server.
type PreviewConfig struct {
	Host string `json:"host,omitempty"` // default 127.0.0.1
	Port int    `json:"port,omitempty"` // default 8473
	MDNS bool   `json:"mdns,omitempty"` // advertise on the LAN by default
}

// GlobalConfig holds user-level preferences stored in ~/.rulebook/config.json.
type GlobalConfig struct {
	DefaultLanguage   string        `json:"default_language,omitempty"`   // pre-selected language option
	DefaultDeployment string        `json:"default_deployment,omitempty"` // pre-selected deployment option
	SkipPreviewQR     bool          `json:"skip_preview_qr,omitempty"`    // suppress the QR code print
	Preview           PreviewConfig `json:"preview,omitempty"`
}

const configFile = "config.json"

// Dir returns the global rulebook config directory (~/.rulebook), creating it
// if needed.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	dir := filepath.Join(home, ".rulebook")
	_ = os.MkdirAll(dir, 0755)
	return dir
}

// Path returns the global config file path.
func Path() string {
	return filepath.Join(Dir(), configFile)
}

// Load reads the global config. A missing file yields the zero config.
func Load() (*GlobalConfig, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}
	return &cfg, nil
}

// Save writes the global config.
func Save(cfg *GlobalConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(Path(), data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}
	return nil
}

// WizardDefaults converts configured preferences into wizard override
// entries. Detection results take precedence over these when both exist.
func (c *GlobalConfig) WizardDefaults() map[string]string {
	m := make(map[string]string)
	if c.DefaultLanguage != "" {
		m["language"] = c.DefaultLanguage
	}
	if c.DefaultDeployment != "" {
		m["deployment"] = c.DefaultDeployment
	}
	return m
}

// PreviewHost returns the configured preview host or the loopback default.
func (c *GlobalConfig) PreviewHost() string {
	if c.Preview.Host != "" {
		return c.Preview.Host
	}
	return "127.0.0.1"
}

// PreviewPort returns the configured preview port or the default.
func (c *GlobalConfig) PreviewPort() int {
	if c.Preview.Port > 0 {
		return c.Preview.Port
	}
	return 8473
}
