package config

import "fmt"

// GateLimits enforces the concurrency gate's per-category semaphore sizes,
// mirroring core/constants.py's CONCURRENCY_LIMITS. password_cracker
// defaults to 1 for GPU exclusivity; other categories are tunable.
type GateLimits struct {
	NetworkScanner int `yaml:"network_scanner" json:"network_scanner"`
	WebScanner     int `yaml:"web_scanner" json:"web_scanner"`
	PasswordCracker int `yaml:"password_cracker" json:"password_cracker"`
	TrafficCapture int `yaml:"traffic_capture" json:"traffic_capture"`
	Default        int `yaml:"default" json:"default"`
}

// DefaultGateLimits returns the standard category limit table.
func DefaultGateLimits() GateLimits {
	return GateLimits{
		NetworkScanner:  10,
		WebScanner:      25,
		PasswordCracker: 1, // GPU exclusivity
		TrafficCapture:  5,
		Default:         10,
	}
}

// AsMap exposes the limit table as category name -> limit, the shape
// internal/gate.Gate initializes its semaphore map from.
func (g GateLimits) AsMap() map[string]int {
	return map[string]int{
		"network_scanner":  g.NetworkScanner,
		"web_scanner":       g.WebScanner,
		"password_cracker":  g.PasswordCracker,
		"traffic_capture":   g.TrafficCapture,
		"default":           g.Default,
	}
}

// ValidateGateLimits checks that limits are positive.
func ValidateGateLimits(g GateLimits) error {
	for name, v := range g.AsMap() {
		if v < 1 {
			return fmt.Errorf("gate limit %q must be >= 1, got %d", name, v)
		}
	}
	return nil
}
