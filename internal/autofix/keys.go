package autofix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// apiKeyConfig describes one configurable API-key-backed service.
type apiKeyConfig struct {
	EnvVar      string
	Description string
	URL         string
}

var apiKeys = map[string]apiKeyConfig{
	"shodan":           {EnvVar: "SHODAN_API_KEY", URL: "https://account.shodan.io/", Description: "Shodan search engine API"},
	"censys":           {EnvVar: "CENSYS_API_ID", URL: "https://censys.io/account/api", Description: "Censys search engine API"},
	"virustotal":       {EnvVar: "VT_API_KEY", URL: "https://www.virustotal.com/gui/user/apikey", Description: "VirusTotal API"},
	"wpscan":           {EnvVar: "WPSCAN_API_TOKEN", URL: "https://wpscan.com/api", Description: "WPScan WordPress vulnerability database"},
	"projectdiscovery": {EnvVar: "PDCP_API_KEY", URL: "https://cloud.projectdiscovery.io/", Description: "ProjectDiscovery cloud platform"},
	"securitytrails":   {EnvVar: "ST_API_KEY", URL: "https://securitytrails.com/", Description: "SecurityTrails domain data"},
	"hunter":           {EnvVar: "HUNTER_API_KEY", URL: "https://hunter.io/api", Description: "Hunter.io email finder"},
}

// KeysHandler implements AUTO-KEYS: persist and look up per-service API
// keys, checking the process environment first, then a per-service file
// under a 0700-permissioned keys directory.
type KeysHandler struct {
	Service string
	KeysDir string

	config apiKeyConfig
	known  bool
}

func NewKeysHandler(service, keysDir string) *KeysHandler {
	cfg, known := apiKeys[service]
	return &KeysHandler{Service: service, KeysDir: keysDir, config: cfg, known: known}
}

func (h *KeysHandler) CanFix(ctx context.Context) bool {
	return h.known
}

// Fix always returns false: storing the key itself requires the caller to
// supply it via SaveKey — actual key entry happens through caller-side
// interaction, matching the original implementation's contract.
func (h *KeysHandler) Fix(ctx context.Context) bool {
	return false
}

func (h *KeysHandler) PromptText(ctx context.Context) string {
	if h.known {
		return fmt.Sprintf("Configure %s API key (%s)?", h.Service, h.config.Description)
	}
	return fmt.Sprintf("Configure %s API key?", h.Service)
}

func (h *KeysHandler) keyPath() string {
	return filepath.Join(h.KeysDir, h.Service+".key")
}

// IsConfigured reports whether the key is available via environment or
// stored file.
func (h *KeysHandler) IsConfigured() bool {
	if !h.known {
		return false
	}
	if h.config.EnvVar != "" && os.Getenv(h.config.EnvVar) != "" {
		return true
	}
	_, err := os.Stat(h.keyPath())
	return err == nil
}

// GetKey returns the configured key, checking environment first.
func (h *KeysHandler) GetKey() (string, bool) {
	if !h.known {
		return "", false
	}
	if h.config.EnvVar != "" {
		if v := os.Getenv(h.config.EnvVar); v != "" {
			return v, true
		}
	}
	data, err := os.ReadFile(h.keyPath())
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// SaveKey persists key to the 0700/0600-permissioned per-service file.
func (h *KeysHandler) SaveKey(key string) error {
	if err := os.MkdirAll(h.KeysDir, 0o700); err != nil {
		return err
	}
	if err := os.Chmod(h.KeysDir, 0o700); err != nil {
		return err
	}
	path := h.keyPath()
	if err := os.WriteFile(path, []byte(key), 0o600); err != nil {
		return err
	}
	return os.Chmod(path, 0o600)
}

func (h *KeysHandler) GetRegistrationURL() string {
	return h.config.URL
}

// ServiceStatus describes one configurable API service's availability.
type ServiceStatus struct {
	Name        string
	Description string
	URL         string
	Configured  bool
}

// ListServices enumerates every configurable API service.
func ListServices(keysDir string) []ServiceStatus {
	out := make([]ServiceStatus, 0, len(apiKeys))
	for name, cfg := range apiKeys {
		h := NewKeysHandler(name, keysDir)
		out = append(out, ServiceStatus{
			Name:        name,
			Description: cfg.Description,
			URL:         cfg.URL,
			Configured:  h.IsConfigured(),
		})
	}
	return out
}
