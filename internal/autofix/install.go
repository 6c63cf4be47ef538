package autofix

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// packageMap maps a tool's canonical binary name to its package name on
// each supported distribution family. Most tools share one name across
// distros; a handful (wireshark's CLI, dns lookup tools, WPS tools) diverge.
var packageMap = map[string]map[string]string{
	"reaver":      {"debian": "reaver", "arch": "reaver", "fedora": "reaver"},
	"bully":       {"debian": "bully", "arch": "bully", "fedora": "bully"},
	"pixiewps":    {"debian": "pixiewps", "arch": "pixiewps", "fedora": "pixiewps"},
	"wash":        {"debian": "reaver", "arch": "reaver", "fedora": "reaver"},
	"hcxdumptool": {"debian": "hcxdumptool", "arch": "hcxdumptool", "fedora": "hcxdumptool"},
	"hcxtools":    {"debian": "hcxtools", "arch": "hcxtools", "fedora": "hcxtools"},
	"aircrack-ng": {"debian": "aircrack-ng", "arch": "aircrack-ng", "fedora": "aircrack-ng"},
	"airodump-ng": {"debian": "aircrack-ng", "arch": "aircrack-ng", "fedora": "aircrack-ng"},
	"aireplay-ng": {"debian": "aircrack-ng", "arch": "aircrack-ng", "fedora": "aircrack-ng"},
	"hashcat":     {"debian": "hashcat", "arch": "hashcat", "fedora": "hashcat"},
	"john":        {"debian": "john", "arch": "john", "fedora": "john"},
	"hydra":       {"debian": "hydra", "arch": "hydra", "fedora": "hydra"},
	"nmap":        {"debian": "nmap", "arch": "nmap", "fedora": "nmap"},
	"masscan":     {"debian": "masscan", "arch": "masscan", "fedora": "masscan"},
	"tcpdump":     {"debian": "tcpdump", "arch": "tcpdump", "fedora": "tcpdump"},
	"wireshark":   {"debian": "wireshark", "arch": "wireshark-qt", "fedora": "wireshark"},
	"tshark":      {"debian": "tshark", "arch": "wireshark-cli", "fedora": "wireshark-cli"},
	"mdk4":        {"debian": "mdk4", "arch": "mdk4", "fedora": "mdk4"},
	"hostapd":     {"debian": "hostapd", "arch": "hostapd", "fedora": "hostapd"},
	"dnsmasq":     {"debian": "dnsmasq", "arch": "dnsmasq", "fedora": "dnsmasq"},
	"lighttpd":    {"debian": "lighttpd", "arch": "lighttpd", "fedora": "lighttpd"},
	"msfconsole":  {"debian": "metasploit-framework", "arch": "metasploit", "fedora": "metasploit-framework"},
	"sqlmap":      {"debian": "sqlmap", "arch": "sqlmap", "fedora": "sqlmap"},
	"nikto":       {"debian": "nikto", "arch": "nikto", "fedora": "nikto"},
	"gobuster":    {"debian": "gobuster", "arch": "gobuster", "fedora": "gobuster"},
	"ffuf":        {"debian": "ffuf", "arch": "ffuf", "fedora": "ffuf"},
	"subfinder":   {"debian": "subfinder", "arch": "subfinder", "fedora": "subfinder"},
	"amass":       {"debian": "amass", "arch": "amass", "fedora": "amass"},
	"whatweb":     {"debian": "whatweb", "arch": "whatweb", "fedora": "whatweb"},
	"whois":       {"debian": "whois", "arch": "whois", "fedora": "whois"},
	"dig":         {"debian": "dnsutils", "arch": "bind-tools", "fedora": "bind-utils"},
	"curl":        {"debian": "curl", "arch": "curl", "fedora": "curl"},
	"searchsploit": {"debian": "exploitdb", "arch": "exploitdb", "fedora": "exploitdb"},
}

var installCommands = map[string]string{
	"apt":    "sudo apt-get install -y %s",
	"dnf":    "sudo dnf install -y %s",
	"pacman": "sudo pacman -S --noconfirm %s",
	"zypper": "sudo zypper install -y %s",
	"apk":    "sudo apk add %s",
}

var packageManagers = []string{"apt", "dnf", "pacman", "zypper", "apk"}

// detectDistro inspects /etc/os-release for the distribution family, falling
// back to "debian" when unknown or unreadable.
func detectDistro() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "debian"
	}
	lower := strings.ToLower(string(data))
	switch {
	case strings.Contains(lower, "arch") || strings.Contains(lower, "manjaro"):
		return "arch"
	case strings.Contains(lower, "fedora") || strings.Contains(lower, "rhel") || strings.Contains(lower, "centos"):
		return "fedora"
	default:
		return "debian"
	}
}

func detectPackageManager() string {
	for _, pm := range packageManagers {
		if which(pm) {
			return pm
		}
	}
	return ""
}

// InstallHandler implements AUTO-INSTALL: detect distro and package manager,
// map tool name to package name, run the manager non-interactively, verify
// the binary lands on PATH.
type InstallHandler struct {
	ToolName string

	distro         string
	packageManager string
}

// NewInstallHandler constructs a handler for toolName, snapshotting distro
// and package-manager detection at construction time.
func NewInstallHandler(toolName string) *InstallHandler {
	return &InstallHandler{
		ToolName:       toolName,
		distro:         detectDistro(),
		packageManager: detectPackageManager(),
	}
}

func (h *InstallHandler) CanFix(ctx context.Context) bool {
	return h.packageManager != ""
}

func (h *InstallHandler) packageName() string {
	if m, ok := packageMap[h.ToolName]; ok {
		if pkg, ok := m[h.distro]; ok {
			return pkg
		}
	}
	return h.ToolName
}

func (h *InstallHandler) Fix(ctx context.Context) bool {
	if h.ToolName == "" || h.packageManager == "" {
		return false
	}
	tmpl, ok := installCommands[h.packageManager]
	if !ok {
		return false
	}
	cmd := fmt.Sprintf(tmpl, h.packageName())
	runShell(ctx, cmd)
	return which(h.ToolName)
}

func (h *InstallHandler) PromptText(ctx context.Context) string {
	return fmt.Sprintf("Install %s (%s)?", h.ToolName, h.packageName())
}
