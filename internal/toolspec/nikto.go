package toolspec

import (
	"regexp"
	"strconv"
	"strings"
)

// Nikto wraps the nikto web server vulnerability scanner. Grounded on
// _examples/original_source/src/voidwave/tools/nikto.py.
type Nikto struct{}

func NewNikto() *Nikto { return &Nikto{} }

func (n *Nikto) Name() string { return "nikto" }

func (n *Nikto) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{"-h", target}
	if port := optInt(options, "port", 0); port > 0 {
		cmd = append(cmd, "-p", strconv.Itoa(port))
	}
	if optBool(options, "ssl", false) {
		cmd = append(cmd, "-ssl")
	}
	if tuning := optString(options, "tuning", ""); tuning != "" {
		cmd = append(cmd, "-Tuning", tuning)
	}
	cmd = append(cmd, "-Display", "1234EP")
	return cmd, nil
}

var niktoFindingRe = regexp.MustCompile(`^\+\s+(.+)$`)

// ParseOutput collects "+ " finding lines, mirroring the original's line
// scrape, into a findings list plus its count.
func (n *Nikto) ParseOutput(raw string) Output {
	var findings []string
	for _, line := range strings.Split(raw, "\n") {
		if m := niktoFindingRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			findings = append(findings, m[1])
		}
	}
	return Output{"findings": findings, "count": len(findings)}
}
