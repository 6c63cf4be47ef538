package toolspec

import "strings"

// John wraps John the Ripper, wired as hashcat's fallback tool in the
// hash_crack chain. Grounded on
// _examples/original_source/src/voidwave/tools/john.py.
type John struct{}

func NewJohn() *John { return &John{} }

func (j *John) Name() string { return "john" }

func (j *John) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string

	if wordlist := optString(options, "wordlist", ""); wordlist != "" {
		cmd = append(cmd, "--wordlist="+wordlist)
	}
	if format := optString(options, "format", ""); format != "" {
		cmd = append(cmd, "--format="+format)
	}
	if rules := optString(options, "rules", ""); rules != "" {
		cmd = append(cmd, "--rules="+rules)
	}
	cmd = append(cmd, target)

	return cmd, nil
}

// ParseOutput uses the same loose "line containing a colon is a cracked
// hash:password pair" heuristic as Hashcat.ParseOutput, under the "cracked"
// key, so a hash_crack chain step can read either tool's output the same way
// after a fallback.
func (j *John) ParseOutput(raw string) Output {
	var cracked []map[string]any
	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, ":") && !strings.HasPrefix(line, "[") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 && parts[0] != "" {
				cracked = append(cracked, map[string]any{"hash": parts[0], "password": parts[1]})
			}
		}
	}
	return Output{"raw_output": raw, "cracked": cracked}
}
