package autofix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InterfaceInfo describes one discovered network interface.
type InterfaceInfo struct {
	Name   string
	Type   string // wireless, wired, monitor
	Driver string
	MAC    string
	State  string // up, down, unknown
}

// IfaceHandler implements AUTO-IFACE: enumerate interfaces by kind and
// auto-select when exactly one candidate exists. Per spec §4.4 this is
// stricter than simply taking the first candidate — when more than one
// interface qualifies, Fix reports failure and Candidates() exposes the
// list for the caller to choose from, rather than silently picking index 0.
type IfaceHandler struct {
	RequiredType string // wireless, wired, monitor, all

	selected   string
	candidates []InterfaceInfo
}

func NewIfaceHandler(requiredType string) *IfaceHandler {
	if requiredType == "" {
		requiredType = "wireless"
	}
	return &IfaceHandler{RequiredType: requiredType}
}

// Candidates returns the interfaces matching RequiredType as of the last
// CanFix/Fix/PromptText call.
func (h *IfaceHandler) Candidates() []InterfaceInfo {
	return h.candidates
}

// Selected returns the auto-selected interface name, or "" if Fix has not
// resolved a single candidate.
func (h *IfaceHandler) Selected() string {
	return h.selected
}

func (h *IfaceHandler) CanFix(ctx context.Context) bool {
	h.candidates = h.interfaces()
	return len(h.candidates) > 0
}

func (h *IfaceHandler) Fix(ctx context.Context) bool {
	h.candidates = h.interfaces()
	if len(h.candidates) != 1 {
		return false
	}
	h.selected = h.candidates[0].Name
	return true
}

func (h *IfaceHandler) PromptText(ctx context.Context) string {
	h.candidates = h.interfaces()
	switch len(h.candidates) {
	case 0:
		return fmt.Sprintf("No %s interfaces found.", h.RequiredType)
	case 1:
		return fmt.Sprintf("Use %s for this operation?", h.candidates[0].Name)
	default:
		names := make([]string, len(h.candidates))
		for i, c := range h.candidates {
			names[i] = c.Name
		}
		return "Select interface: " + strings.Join(names, ", ")
	}
}

func (h *IfaceHandler) interfaces() []InterfaceInfo {
	entries, err := os.ReadDir("/sys/class/net")
	if err != nil {
		return nil
	}
	var out []InterfaceInfo
	for _, e := range entries {
		name := e.Name()
		if name == "lo" {
			continue
		}
		base := filepath.Join("/sys/class/net", name)
		isWireless := pathExists(filepath.Join(base, "wireless"))
		isMonitor := isMonitorMode(name)

		ifaceType := "wired"
		switch {
		case isMonitor:
			ifaceType = "monitor"
		case isWireless:
			ifaceType = "wireless"
		}

		if h.RequiredType != "all" && ifaceType != h.RequiredType {
			if !(h.RequiredType == "wireless" && ifaceType == "monitor") {
				continue
			}
		}

		out = append(out, InterfaceInfo{
			Name:   name,
			Type:   ifaceType,
			Driver: ifaceDriver(base),
			MAC:    ifaceMAC(base),
			State:  ifaceState(base),
		})
	}
	return out
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func isMonitorMode(iface string) bool {
	return runShellQuiet(fmt.Sprintf("iw dev %s info 2>/dev/null | grep -q 'type monitor'", iface))
}

func ifaceDriver(base string) string {
	link := filepath.Join(base, "device", "driver")
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		return "unknown"
	}
	return filepath.Base(resolved)
}

func ifaceMAC(base string) string {
	data, err := os.ReadFile(filepath.Join(base, "address"))
	if err != nil {
		return "00:00:00:00:00:00"
	}
	return strings.TrimSpace(string(data))
}

func ifaceState(base string) string {
	data, err := os.ReadFile(filepath.Join(base, "operstate"))
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(data))
}
