package toolspec

// Aircrack wraps aircrack-ng WPA/WEP key recovery from a capture file. The
// original tree has no dedicated tools/aircrack.py wrapper (its builtin
// wireless chains invoke "aircrack-ng" directly against the wordlist/bssid
// options the step itself declares); BuildCommand is grounded on that option
// contract from _examples/original_source/src/voidwave/chaining/builtin/wireless.py
// rather than on a wrapper module.
type Aircrack struct{}

func NewAircrack() *Aircrack { return &Aircrack{} }

func (a *Aircrack) Name() string { return "aircrack-ng" }

func (a *Aircrack) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string

	if bssid := optString(options, "bssid", ""); bssid != "" {
		cmd = append(cmd, "-b", bssid)
	}
	if wordlist := optString(options, "wordlist", ""); wordlist != "" {
		cmd = append(cmd, "-w", wordlist)
	}
	cmd = append(cmd, target)

	return cmd, nil
}

func (a *Aircrack) ParseOutput(raw string) Output {
	return Output{"raw_output": raw, "cracked": false, "key": nil}
}
