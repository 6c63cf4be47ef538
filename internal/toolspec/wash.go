package toolspec

import "strconv"

// Wash wraps the wash WPS-enabled network scanner. Grounded on
// _examples/original_source/src/voidwave/tools/wash.py.
type Wash struct{}

func NewWash() *Wash { return &Wash{} }

func (w *Wash) Name() string { return "wash" }

func (w *Wash) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{"-i", target}
	if channel := optInt(options, "channel", 0); channel > 0 {
		cmd = append(cmd, "-c", strconv.Itoa(channel))
	}
	return cmd, nil
}

// ParseOutput is a stub, mirroring the original's own stub.
func (w *Wash) ParseOutput(raw string) Output {
	return Output{"raw_output": raw, "networks": []map[string]any{}}
}
