package toolspec

import "strconv"

// Reaver wraps the reaver WPS PIN recovery tool. Grounded on
// _examples/original_source/src/voidwave/tools/reaver.py.
type Reaver struct{}

func NewReaver() *Reaver { return &Reaver{} }

func (r *Reaver) Name() string { return "reaver" }

func (r *Reaver) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{}
	if iface := optString(options, "interface", ""); iface != "" {
		cmd = append(cmd, "-i", iface)
	}
	cmd = append(cmd, "-b", target)
	if channel := optInt(options, "channel", 0); channel > 0 {
		cmd = append(cmd, "-c", strconv.Itoa(channel))
	}
	if optBool(options, "pixie_dust", false) {
		cmd = append(cmd, "-K")
	}
	cmd = append(cmd, "-vv")
	return cmd, nil
}

// ParseOutput is a stub, mirroring the original: a recovered PIN/PSK would
// need a dedicated regex over reaver's verbose stdout, which this tree
// doesn't implement; downstream bindings read "pin" via pathresolve and get
// nil until that parsing exists.
func (r *Reaver) ParseOutput(raw string) Output {
	return Output{"raw_output": raw, "pin": nil, "psk": nil}
}
