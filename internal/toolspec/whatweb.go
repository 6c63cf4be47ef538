package toolspec

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Whatweb wraps the whatweb technology fingerprinter. Grounded on
// _examples/original_source/src/voidwave/tools/whatweb.py.
type Whatweb struct{}

func NewWhatweb() *Whatweb { return &Whatweb{} }

func (w *Whatweb) Name() string { return "whatweb" }

func (w *Whatweb) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{"-a", strconv.Itoa(optInt(options, "aggression", 1))}
	cmd = append(cmd, "--log-json=-", "--color", "never")
	if ua := optString(options, "user_agent", ""); ua != "" {
		cmd = append(cmd, "-U", ua)
	}
	if plugins := optStringSlice(options, "plugins", nil); len(plugins) > 0 {
		cmd = append(cmd, "-p", strings.Join(plugins, ","))
	}
	cmd = append(cmd, target)
	return cmd, nil
}

type whatwebLine struct {
	Target     string                     `json:"target"`
	HTTPStatus int                        `json:"http_status"`
	Plugins    map[string]json.RawMessage `json:"plugins"`
}

func (w *Whatweb) ParseOutput(raw string) Output {
	var technologies []string
	var httpStatus int
	target := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var parsed whatwebLine
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			continue
		}
		target = parsed.Target
		httpStatus = parsed.HTTPStatus
		for name := range parsed.Plugins {
			technologies = append(technologies, name)
		}
	}

	if target == "" {
		return Output{"raw_output": raw, "technologies": []string{}}
	}
	return Output{"target": target, "http_status": httpStatus, "technologies": technologies}
}
