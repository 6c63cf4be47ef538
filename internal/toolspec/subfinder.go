package toolspec

import (
	"bufio"
	"encoding/json"
	"strconv"
	"strings"
)

// Subfinder wraps passive subdomain enumeration. Grounded on
// _examples/original_source/src/voidwave/tools/subfinder.py.
type Subfinder struct{}

func NewSubfinder() *Subfinder { return &Subfinder{} }

func (s *Subfinder) Name() string { return "subfinder" }

func (s *Subfinder) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{"-d", target, "-json"}
	cmd = append(cmd, "-t", strconv.Itoa(optInt(options, "threads", 10)))
	cmd = append(cmd, "-timeout", strconv.Itoa(optInt(options, "timeout", 30)))
	if sources := optStringSlice(options, "sources", nil); len(sources) > 0 {
		cmd = append(cmd, "-sources", strings.Join(sources, ","))
	}
	if optBool(options, "recursive", false) {
		cmd = append(cmd, "-recursive")
	}
	if optBool(options, "all_sources", false) {
		cmd = append(cmd, "-all")
	}
	return cmd, nil
}

type subfinderLine struct {
	Host   string `json:"host"`
	Input  string `json:"input"`
	Source string `json:"source"`
}

func (s *Subfinder) ParseOutput(raw string) Output {
	var subdomains []string
	seen := map[string]bool{}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry subfinderLine
		if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Host != "" {
			if !seen[entry.Host] {
				seen[entry.Host] = true
				subdomains = append(subdomains, entry.Host)
			}
			continue
		}
		if !seen[line] {
			seen[line] = true
			subdomains = append(subdomains, line)
		}
	}

	return Output{"subdomains": subdomains, "count": len(subdomains)}
}
