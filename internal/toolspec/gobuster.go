package toolspec

import (
	"regexp"
	"strconv"
	"strings"
)

// Gobuster wraps the gobuster directory/DNS/vhost brute-forcer. Grounded on
// _examples/original_source/src/voidwave/tools/gobuster.py.
type Gobuster struct{}

func NewGobuster() *Gobuster { return &Gobuster{} }

func (g *Gobuster) Name() string { return "gobuster" }

func (g *Gobuster) BuildCommand(target string, options Options) ([]string, error) {
	mode := optString(options, "mode", "dir")
	cmd := []string{mode}

	switch mode {
	case "dir", "vhost", "fuzz":
		cmd = append(cmd, "-u", target)
	case "dns":
		cmd = append(cmd, "-d", target)
	}

	cmd = append(cmd, "-w", optString(options, "wordlist", "/usr/share/seclists/Discovery/Web-Content/common.txt"))
	cmd = append(cmd, "-t", strconv.Itoa(optInt(options, "threads", 10)))

	if mode == "dir" {
		if ext := optString(options, "extensions", ""); ext != "" {
			cmd = append(cmd, "-x", ext)
		}
	}
	if codes := optString(options, "status_codes", ""); codes != "" {
		cmd = append(cmd, "-s", codes)
	}

	return cmd, nil
}

var gobusterHitRe = regexp.MustCompile(`^(\S+)\s+\(Status:\s*(\d+)\)`)

// ParseOutput scrapes gobuster's default "<path> (Status: NNN)" line format.
func (g *Gobuster) ParseOutput(raw string) Output {
	var hits []map[string]any
	for _, line := range strings.Split(raw, "\n") {
		if m := gobusterHitRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			status, _ := strconv.Atoi(m[2])
			hits = append(hits, map[string]any{"path": m[1], "status": status})
		}
	}
	return Output{"hits": hits, "count": len(hits)}
}
