package toolspec

import "strconv"

// Aireplay wraps aireplay-ng wireless packet injection (deauth attacks in
// the wireless chains). Grounded on
// _examples/original_source/src/voidwave/tools/aireplay.py.
type Aireplay struct{}

func NewAireplay() *Aireplay { return &Aireplay{} }

func (a *Aireplay) Name() string { return "aireplay-ng" }

func (a *Aireplay) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string

	if optString(options, "attack", "deauth") == "deauth" {
		cmd = append(cmd, "--deauth", strconv.Itoa(optInt(options, "count", 10)))
	}
	if bssid := optString(options, "bssid", ""); bssid != "" {
		cmd = append(cmd, "-a", bssid)
	}
	if client := optString(options, "client", ""); client != "" {
		cmd = append(cmd, "-c", client)
	}
	cmd = append(cmd, target)

	return cmd, nil
}

// ParseOutput is a stub: aireplay-ng's effect is observed on the wire
// (deauth frames sent), not in structured stdout.
func (a *Aireplay) ParseOutput(raw string) Output {
	return Output{"raw_output": raw}
}
