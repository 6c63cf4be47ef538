package toolspec

// Airodump wraps airodump-ng wireless packet capture. Grounded on
// _examples/original_source/src/voidwave/tools/airodump.py.
type Airodump struct{}

func NewAirodump() *Airodump { return &Airodump{} }

func (a *Airodump) Name() string { return "airodump-ng" }

func (a *Airodump) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string
	if channel := optString(options, "channel", ""); channel != "" {
		cmd = append(cmd, "--channel", channel)
	}
	if bssid := optString(options, "bssid", ""); bssid != "" {
		cmd = append(cmd, "--bssid", bssid)
	}
	if output := optString(options, "output", ""); output != "" {
		cmd = append(cmd, "--write", output)
	}
	cmd = append(cmd, target)
	return cmd, nil
}

// ParseOutput is a stub, mirroring the original's own stub: airodump-ng's
// primary output is its CSV capture file (consumed separately), not stdout.
func (a *Airodump) ParseOutput(raw string) Output {
	return Output{"raw_output": raw, "networks": []map[string]any{}, "clients": []map[string]any{}}
}
