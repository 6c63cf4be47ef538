package autofix

import (
	"context"
	"fmt"
)

// fallbackChains lists, per primary tool, the tools to try in order when the
// primary is unavailable.
var fallbackChains = map[string][]string{
	"nmap":        {"rustscan", "masscan"},
	"aircrack-ng": {"cowpatty", "hashcat"},
	"reaver":      {"bully"},
	"hashcat":     {"john"},
	"wireshark":   {"tshark", "tcpdump"},
	"dnsenum":     {"dnsrecon", "dig"},
	"sslscan":     {"sslyze", "openssl"},
	"gobuster":    {"ffuf", "dirsearch"},
	"subfinder":   {"amass", "sublist3r"},
	"nikto":       {"whatweb"},
	"wpscan":      {"nuclei"},
}

// AvailableTool returns the first available tool in primary's fallback
// chain (primary itself if present), or "" if nothing in the chain exists.
func AvailableTool(primary string) string {
	if which(primary) {
		return primary
	}
	for _, fb := range fallbackChains[primary] {
		if which(fb) {
			return fb
		}
	}
	return ""
}

// FallbackChain returns the configured fallback chain for primary.
func FallbackChain(primary string) []string {
	return fallbackChains[primary]
}

// FallbackHandler implements AUTO-FALLBACK: resolve the first available
// substitute tool from primary's fallback chain.
type FallbackHandler struct {
	Primary  string
	Fallback string

	selectedTool string
}

func NewFallbackHandler(primary string) *FallbackHandler {
	return &FallbackHandler{Primary: primary}
}

func (h *FallbackHandler) CanFix(ctx context.Context) bool {
	if h.Primary == "" {
		return false
	}
	for _, tool := range fallbackChains[h.Primary] {
		if which(tool) {
			h.Fallback = tool
			return true
		}
	}
	return false
}

func (h *FallbackHandler) Fix(ctx context.Context) bool {
	if h.Fallback != "" && which(h.Fallback) {
		h.selectedTool = h.Fallback
		return true
	}
	return false
}

func (h *FallbackHandler) SelectedTool() string {
	return h.selectedTool
}

func (h *FallbackHandler) PromptText(ctx context.Context) string {
	if h.Fallback != "" {
		return fmt.Sprintf("'%s' not found. Use '%s' instead?", h.Primary, h.Fallback)
	}
	return fmt.Sprintf("'%s' not found. Check for alternatives?", h.Primary)
}

// AvailableAlternatives returns every tool in the fallback chain that is
// currently present on PATH.
func (h *FallbackHandler) AvailableAlternatives() []string {
	if h.Primary == "" {
		return nil
	}
	var out []string
	for _, tool := range fallbackChains[h.Primary] {
		if which(tool) {
			out = append(out, tool)
		}
	}
	return out
}
