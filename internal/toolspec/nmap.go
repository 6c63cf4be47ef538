package toolspec

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"voidwave/internal/logging"
)

// Nmap wraps the nmap network/port scanner. Grounded on
// _examples/original_source/src/voidwave/tools/nmap.py.
type Nmap struct {
	outputFile string
}

func NewNmap() *Nmap { return &Nmap{} }

func (n *Nmap) Name() string { return "nmap" }

// OptionSchema bounds scan_type to the known presets and timing to nmap's
// own -T0..-T5 range, catching a malformed chain step before a subprocess
// ever spawns.
func (n *Nmap) OptionSchema() string {
	return `{
		"type": "object",
		"properties": {
			"scan_type": {"type": "string", "enum": ["quick", "standard", "full", "stealth", "udp", "vuln"]},
			"timing": {"type": "integer", "minimum": 0, "maximum": 5},
			"ports": {"type": "string"},
			"service_detection": {"type": "boolean"},
			"os_detection": {"type": "boolean"},
			"scripts": {"type": "array", "items": {"type": "string"}}
		}
	}`
}

var nmapScanTypes = map[string][]string{
	"quick":    {"-T4", "-F"},
	"standard": {"-T3", "-sV"},
	"full":     {"-T4", "-A", "-p-"},
	"stealth":  {"-T2", "-sS", "-Pn"},
	"udp":      {"-sU", "--top-ports", "100"},
	"vuln":     {"--script", "vuln"},
}

func (n *Nmap) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string

	scanType := optString(options, "scan_type", "standard")
	if preset, ok := nmapScanTypes[scanType]; ok {
		cmd = append(cmd, preset...)
	}

	timing := optInt(options, "timing", 3)
	timingFlag := fmt.Sprintf("-T%d", timing)
	if !contains(cmd, timingFlag) {
		cmd = append(cmd, timingFlag)
	}

	ports := optString(options, "ports", "1-1000")
	if ports != "" && !strings.Contains(strings.Join(cmd, " "), "-p") {
		cmd = append(cmd, "-p", ports)
	}

	if optBool(options, "service_detection", true) && !contains(cmd, "-sV") && !contains(cmd, "-A") {
		cmd = append(cmd, "-sV")
	}
	if optBool(options, "os_detection", false) && !contains(cmd, "-O") && !contains(cmd, "-A") {
		cmd = append(cmd, "-O")
	}
	if scripts := optStringSlice(options, "scripts", nil); len(scripts) > 0 {
		cmd = append(cmd, "--script", strings.Join(scripts, ","))
	}

	out, err := os.CreateTemp("", "nmap-*.xml")
	if err != nil {
		return nil, fmt.Errorf("allocate nmap output file: %w", err)
	}
	out.Close()
	n.outputFile = out.Name()
	cmd = append(cmd, "-oX", n.outputFile, target)

	return cmd, nil
}

func (n *Nmap) ParseOutput(raw string) Output {
	defer func() {
		if n.outputFile != "" {
			os.Remove(n.outputFile)
		}
	}()

	if n.outputFile != "" {
		if data, err := os.ReadFile(n.outputFile); err == nil && len(data) > 0 {
			if parsed, err := parseNmapXML(data); err == nil {
				return parsed
			} else {
				logging.ToolSpecDebug("nmap XML parse failed, falling back to text: %v", err)
			}
		}
	}
	return parseNmapText(raw)
}

type nmapXMLRun struct {
	XMLName xml.Name      `xml:"nmaprun"`
	Hosts   []nmapXMLHost `xml:"host"`
}

type nmapXMLHost struct {
	Status  nmapXMLStatus    `xml:"status"`
	Address []nmapXMLAddress `xml:"address"`
	Ports   nmapXMLPorts     `xml:"ports"`
}

type nmapXMLStatus struct {
	State string `xml:"state,attr"`
}

type nmapXMLAddress struct {
	Addr string `xml:"addr,attr"`
	Type string `xml:"addrtype,attr"`
}

type nmapXMLPorts struct {
	Port []nmapXMLPort `xml:"port"`
}

type nmapXMLPort struct {
	PortID   string         `xml:"portid,attr"`
	Protocol string         `xml:"protocol,attr"`
	State    nmapXMLState   `xml:"state"`
	Service  nmapXMLService `xml:"service"`
}

type nmapXMLState struct {
	State string `xml:"state,attr"`
}

type nmapXMLService struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
	Product string `xml:"product,attr"`
}

func parseNmapXML(data []byte) (Output, error) {
	var run nmapXMLRun
	if err := xml.Unmarshal(data, &run); err != nil {
		return nil, err
	}

	hosts := make([]map[string]any, 0, len(run.Hosts))
	upCount := 0
	openPorts := 0
	for _, h := range run.Hosts {
		ip := ""
		for _, a := range h.Address {
			if a.Type == "ipv4" {
				ip = a.Addr
			}
		}
		if h.Status.State == "up" {
			upCount++
		}
		ports := make([]map[string]any, 0, len(h.Ports.Port))
		for _, p := range h.Ports.Port {
			portNum, _ := strconv.Atoi(p.PortID)
			if p.State.State == "open" {
				openPorts++
			}
			ports = append(ports, map[string]any{
				"port":     portNum,
				"protocol": p.Protocol,
				"state":    p.State.State,
				"service":  p.Service.Name,
				"version":  p.Service.Version,
				"product":  p.Service.Product,
			})
		}
		hosts = append(hosts, map[string]any{
			"ip":    ip,
			"state": h.Status.State,
			"ports": ports,
		})
	}

	return Output{
		"hosts": hosts,
		"summary": map[string]any{
			"total_hosts": len(hosts),
			"up_hosts":    upCount,
			"open_ports":  openPorts,
		},
	}, nil
}

var (
	nmapHostLineRe = regexp.MustCompile(`Nmap scan report for (\S+)`)
	nmapPortLineRe = regexp.MustCompile(`(\d+)/(tcp|udp)\s+(\w+)\s+(\S+)`)
)

func parseNmapText(output string) Output {
	var hosts []map[string]any
	var current map[string]any

	for _, line := range strings.Split(output, "\n") {
		if m := nmapHostLineRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				hosts = append(hosts, current)
			}
			current = map[string]any{"ip": m[1], "ports": []map[string]any{}}
			continue
		}
		if m := nmapPortLineRe.FindStringSubmatch(line); m != nil && current != nil {
			portNum, _ := strconv.Atoi(m[1])
			ports := current["ports"].([]map[string]any)
			current["ports"] = append(ports, map[string]any{
				"port": portNum, "protocol": m[2], "state": m[3], "service": m[4],
			})
		}
	}
	if current != nil {
		hosts = append(hosts, current)
	}
	return Output{"hosts": hosts}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
