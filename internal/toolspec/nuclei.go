package toolspec

import (
	"bufio"
	"encoding/json"
	"strconv"
	"strings"
)

// Nuclei wraps the template-based vulnerability scanner. Grounded on
// _examples/original_source/src/voidwave/tools/nuclei.py.
type Nuclei struct{}

func NewNuclei() *Nuclei { return &Nuclei{} }

func (n *Nuclei) Name() string { return "nuclei" }

func (n *Nuclei) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{"-target", target, "-jsonl"}

	severity := optStringSlice(options, "severity", []string{"critical", "high", "medium"})
	if len(severity) > 0 {
		cmd = append(cmd, "-severity", strings.Join(severity, ","))
	}
	if tags := optStringSlice(options, "tags", nil); len(tags) > 0 {
		cmd = append(cmd, "-tags", strings.Join(tags, ","))
	}
	if exclude := optStringSlice(options, "exclude_tags", nil); len(exclude) > 0 {
		cmd = append(cmd, "-etags", strings.Join(exclude, ","))
	}
	cmd = append(cmd, "-rate-limit", strconv.Itoa(optInt(options, "rate_limit", 150)))
	cmd = append(cmd, "-c", strconv.Itoa(optInt(options, "concurrency", 25)))
	cmd = append(cmd, "-timeout", strconv.Itoa(optInt(options, "timeout", 5)))
	cmd = append(cmd, "-retries", strconv.Itoa(optInt(options, "retries", 1)))
	if dir := optString(options, "templates_dir", ""); dir != "" {
		cmd = append(cmd, "-t", dir)
	}

	return cmd, nil
}

type nucleiFinding struct {
	TemplateID string `json:"template-id"`
	Info       struct {
		Name     string `json:"name"`
		Severity string `json:"severity"`
	} `json:"info"`
	Host    string `json:"host"`
	Matched string `json:"matched-at"`
}

func (n *Nuclei) ParseOutput(raw string) Output {
	var findings []map[string]any
	severityCounts := map[string]int{}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var f nucleiFinding
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			continue
		}
		severityCounts[f.Info.Severity]++
		findings = append(findings, map[string]any{
			"template_id": f.TemplateID,
			"name":        f.Info.Name,
			"severity":    f.Info.Severity,
			"host":        f.Host,
			"matched_at":  f.Matched,
		})
	}

	return Output{"findings": findings, "count": len(findings), "by_severity": severityCounts}
}
