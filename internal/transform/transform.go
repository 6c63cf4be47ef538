// Package transform provides the named registry of pure reshaping functions
// that chain bindings apply to path-resolved data before assigning it to a
// downstream step's option or target (spec §4.2).
package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Func is a pure transform over one value, returning the reshaped value.
type Func func(any) any

var registry = map[string]Func{}

func register(name string, fn Func) {
	registry[name] = fn
}

// Get looks up a transform by name from the registry.
func Get(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Apply looks up name in the registry and applies it to data. An unknown
// name returns data unchanged and false.
func Apply(name string, data any) (any, bool) {
	fn, ok := registry[name]
	if !ok {
		return data, false
	}
	return fn(data), true
}

func init() {
	register("first", first)
	register("last", last)
	register("join", func(v any) any { return join(v, ",") })
	register("join_newline", func(v any) any { return join(v, "\n") })
	register("unique", unique)
	register("count", count)

	register("flatten_ips", flattenIPs)
	register("filter_open", filterOpenPorts)
	register("filter_up", func(v any) any { return filterByState(v, "up") })
	register("hosts_to_ips", hostsToCommaIPs)
	register("ports_csv", portsToCommaList)
	register("to_port_list", portsToCommaList)
	register("extract_ports", extractPorts)
	register("numbers_csv", numbersToCommaList)
	register("to_cidr", toCIDR)

	register("ssh_hosts", func(v any) any { return extractServices(v, "ssh") })
	register("http_hosts", func(v any) any { return extractServices(v, "http") })
	register("https_hosts", func(v any) any { return extractServices(v, "https") })
	register("ftp_hosts", func(v any) any { return extractServices(v, "ftp") })
	register("smb_hosts", func(v any) any { return extractServices(v, "smb") })
	register("rdp_hosts", func(v any) any { return extractServices(v, "ms-wbt-server") })
	register("first_ssh", func(v any) any { return firstService(v, "ssh") })
	register("first_http", func(v any) any { return firstService(v, "http") })
	register("first_ftp", func(v any) any { return firstService(v, "ftp") })
	register("ssh_hosts_csv", func(v any) any { return servicesToCommaList(v, "ssh") })
	register("smb_hosts_csv", func(v any) any { return servicesToCommaList(v, "smb") })

	register("networks_bssids", networksToBSSIDs)
	register("first_bssid", firstNetworkBSSID)
	register("first_channel", firstNetworkChannel)
	register("wpa_networks", func(v any) any { return networksByEncryption(v, "WPA") })
	register("wep_networks", func(v any) any { return networksByEncryption(v, "WEP") })
	register("open_networks", func(v any) any { return networksByEncryption(v, "OPN") })

	register("creds_targets", credentialsToTargets)
	register("creds_userpass", credentialsToUserpass)

	register("hosts_to_urls", func(v any) any { return hostsToURLs(v, "http") })
	register("first_http_url", firstHTTPURL)

	register("extract_subdomains", extractSubdomains)
	register("subdomains_targets", subdomainsToTargets)
	register("first_subdomain", firstSubdomain)

	register("critical_vulns", func(v any) any { return extractVulnsBySeverity(v, "critical") })
	register("high_vulns", func(v any) any { return extractVulnsBySeverity(v, "high") })
	register("medium_vulns", func(v any) any { return extractVulnsBySeverity(v, "medium") })

	register("extract_technologies", extractTechnologies)
	register("detect_cms", detectCMS)
}

func asSlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out
	}
	return nil
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// first returns the first element, or nil on empty input.
func first(v any) any {
	s := asSlice(v)
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

// last returns the last element, or nil on empty input.
func last(v any) any {
	s := asSlice(v)
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func join(v any, sep string) string {
	s := asSlice(v)
	parts := make([]string, 0, len(s))
	for _, item := range s {
		if item == nil {
			continue
		}
		parts = append(parts, str(item))
	}
	return strings.Join(parts, sep)
}

// unique removes duplicates, preserving first-seen order.
func unique(v any) any {
	s := asSlice(v)
	seen := make(map[string]bool, len(s))
	out := make([]any, 0, len(s))
	for _, item := range s {
		key := str(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func count(v any) any {
	return len(asSlice(v))
}

func flattenIPs(v any) any {
	var out []any
	for _, h := range asSlice(v) {
		m := asMap(h)
		if ip, ok := m["ip"]; ok && ip != "" {
			out = append(out, ip)
		}
	}
	return out
}

func filterOpenPorts(v any) any {
	var out []any
	for _, h := range asSlice(v) {
		m := asMap(h)
		for _, p := range asSlice(m["ports"]) {
			if asMap(p)["state"] == "open" {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

func filterByState(v any, state string) any {
	var out []any
	for _, h := range asSlice(v) {
		if asMap(h)["state"] == state {
			out = append(out, h)
		}
	}
	return out
}

func extractServices(v any, service string) any {
	var out []any
	for _, h := range asSlice(v) {
		m := asMap(h)
		ip := str(m["ip"])
		for _, p := range asSlice(m["ports"]) {
			pm := asMap(p)
			if pm["service"] == service && pm["state"] == "open" {
				out = append(out, fmt.Sprintf("%s:%s", ip, str(pm["port"])))
			}
		}
	}
	return out
}

func firstService(v any, service string) any {
	services := extractServices(v, service)
	return first(services)
}

func servicesToCommaList(v any, service string) any {
	hosts := asSlice(extractServices(v, service))
	if len(hosts) == 0 {
		return nil
	}
	parts := make([]string, len(hosts))
	for i, h := range hosts {
		parts[i] = str(h)
	}
	return strings.Join(parts, ",")
}

// portNumber coerces a port value to float64 regardless of whether the
// producing tool spec stored it as int (internal/toolspec/nmap.go parses
// via strconv.Atoi) or float64 (a value that passed through encoding/json,
// which always decodes numbers as float64).
func portNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func extractPorts(v any) any {
	seen := make(map[float64]bool)
	for _, h := range asSlice(v) {
		for _, p := range asSlice(asMap(h)["ports"]) {
			pm := asMap(p)
			if pm["state"] != "open" {
				continue
			}
			if port, ok := portNumber(pm["port"]); ok {
				seen[port] = true
			}
		}
	}
	ports := make([]float64, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Float64s(ports)
	out := make([]any, len(ports))
	for i, p := range ports {
		out[i] = p
	}
	return out
}

// numbersToCommaList dedupes and comma-joins a flat list of numbers already
// extracted by a binding's source path (e.g. "hosts[*].ports[*].port"),
// mirroring the builtin chains' own `",".join(str(p) for p in set(ports))`
// lambda without needing the host-object shape extractPorts expects.
func numbersToCommaList(v any) any {
	seen := make(map[float64]bool)
	for _, item := range asSlice(v) {
		if n, ok := portNumber(item); ok {
			seen[n] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	nums := make([]float64, 0, len(seen))
	for n := range seen {
		nums = append(nums, n)
	}
	sort.Float64s(nums)
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = str(n)
	}
	return strings.Join(parts, ",")
}

func toCIDR(v any) any {
	ips := asSlice(flattenIPs(v))
	uniqueIPs := asSlice(unique(ips))
	parts := make([]string, len(uniqueIPs))
	for i, ip := range uniqueIPs {
		parts[i] = str(ip)
	}
	return strings.Join(parts, ",")
}

func hostsToCommaIPs(v any) any {
	ips := asSlice(flattenIPs(v))
	if len(ips) == 0 {
		return nil
	}
	parts := make([]string, len(ips))
	for i, ip := range ips {
		parts[i] = str(ip)
	}
	return strings.Join(parts, ",")
}

func portsToCommaList(v any) any {
	ports := asSlice(extractPorts(v))
	if len(ports) == 0 {
		return nil
	}
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = str(p)
	}
	return strings.Join(parts, ",")
}

func networksToBSSIDs(v any) any {
	var out []any
	for _, n := range asSlice(v) {
		if bssid, ok := asMap(n)["bssid"]; ok && bssid != "" {
			out = append(out, bssid)
		}
	}
	return out
}

func firstNetworkBSSID(v any) any {
	return first(networksToBSSIDs(v))
}

func firstNetworkChannel(v any) any {
	s := asSlice(v)
	if len(s) == 0 {
		return nil
	}
	return asMap(s[0])["channel"]
}

func networksByEncryption(v any, encryption string) any {
	var out []any
	for _, n := range asSlice(v) {
		enc := strings.ToUpper(str(asMap(n)["encryption"]))
		if strings.Contains(enc, encryption) {
			out = append(out, n)
		}
	}
	return out
}

func credentialsToTargets(v any) any {
	var out []any
	for _, c := range asSlice(v) {
		m := asMap(c)
		host, hok := m["host"]
		port, pok := m["port"]
		if hok && pok && host != "" {
			out = append(out, fmt.Sprintf("%s:%s", str(host), str(port)))
		}
	}
	return out
}

func credentialsToUserpass(v any) any {
	var out []any
	for _, c := range asSlice(v) {
		m := asMap(c)
		if pw, ok := m["password"]; ok && pw != "" {
			out = append(out, fmt.Sprintf("%s:%s", str(m["username"]), str(pw)))
		}
	}
	return out
}

func hostsToURLs(v any, scheme string) any {
	var out []any
	for _, h := range asSlice(v) {
		m := asMap(h)
		ip := str(m["ip"])
		for _, p := range asSlice(m["ports"]) {
			pm := asMap(p)
			if pm["state"] != "open" {
				continue
			}
			svc := str(pm["service"])
			sch := scheme
			if strings.Contains(svc, "ssl") || svc == "https" {
				sch = "https"
			}
			out = append(out, fmt.Sprintf("%s://%s:%s", sch, ip, str(pm["port"])))
		}
	}
	return out
}

func firstHTTPURL(v any) any {
	return first(hostsToURLs(v, "http"))
}

func extractSubdomains(v any) any {
	m := asMap(v)
	var out []any
	for _, s := range asSlice(m["subdomains"]) {
		switch t := s.(type) {
		case string:
			out = append(out, t)
		case map[string]any:
			if sd, ok := t["subdomain"]; ok {
				out = append(out, sd)
			} else if host, ok := t["host"]; ok {
				out = append(out, host)
			}
		}
	}
	return out
}

func subdomainsToTargets(v any) any {
	subs := asSlice(extractSubdomains(v))
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = str(s)
	}
	return strings.Join(parts, ",")
}

func firstSubdomain(v any) any {
	return first(extractSubdomains(v))
}

func extractVulnsBySeverity(v any, severity string) any {
	m := asMap(v)
	var out []any
	for _, f := range asSlice(m["findings"]) {
		fm := asMap(f)
		if strings.EqualFold(str(fm["severity"]), severity) {
			out = append(out, f)
		}
	}
	return out
}

func extractTechnologies(v any) any {
	m := asMap(v)
	if techs, ok := m["technologies"]; ok {
		return techs
	}
	return nil
}

var cmsSignatures = map[string]string{
	"wordpress":   "WordPress",
	"joomla":      "Joomla",
	"drupal":      "Drupal",
	"magento":     "Magento",
	"shopify":     "Shopify",
	"woocommerce": "WooCommerce",
	"prestashop":  "PrestaShop",
}

func detectCMS(v any) any {
	for _, tech := range asSlice(extractTechnologies(v)) {
		lower := strings.ToLower(str(tech))
		for needle, cms := range cmsSignatures {
			if strings.Contains(lower, needle) {
				return cms
			}
		}
	}
	return nil
}
