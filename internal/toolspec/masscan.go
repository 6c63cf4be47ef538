package toolspec

import "strconv"

// Masscan wraps the masscan fast port scanner. Grounded on
// _examples/original_source/src/voidwave/tools/masscan.py.
type Masscan struct{}

func NewMasscan() *Masscan { return &Masscan{} }

func (m *Masscan) Name() string { return "masscan" }

func (m *Masscan) BuildCommand(target string, options Options) ([]string, error) {
	ports := optString(options, "ports", "1-1000")
	rate := optInt(options, "rate", 1000)
	return []string{"-p", ports, "--rate", strconv.Itoa(rate), target}, nil
}

func (m *Masscan) ParseOutput(raw string) Output {
	return Output{"raw_output": raw, "hosts": []map[string]any{}}
}
