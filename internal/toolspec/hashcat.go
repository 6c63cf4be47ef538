package toolspec

import (
	"regexp"
	"strconv"
	"strings"
)

// Hashcat wraps the hashcat GPU-accelerated password recovery tool. Grounded
// on _examples/original_source/src/voidwave/tools/hashcat.py.
type Hashcat struct{}

func NewHashcat() *Hashcat { return &Hashcat{} }

func (h *Hashcat) Name() string { return "hashcat" }

var hashcatModes = map[string]int{
	"md5": 0, "sha1": 100, "sha256": 1400, "sha512": 1700,
	"ntlm": 1000, "netlmv2": 5600, "wpa": 22000, "wpa2": 22000,
	"bcrypt": 3200, "mysql": 300, "mssql": 1731,
}

var hashcatAttackModes = map[string]int{
	"dictionary": 0, "combinator": 1, "bruteforce": 3,
	"hybrid_dict_mask": 6, "hybrid_mask_dict": 7,
}

func (h *Hashcat) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string

	hashType := optString(options, "hash_type", "md5")
	if mode, ok := hashcatModes[hashType]; ok {
		cmd = append(cmd, "-m", strconv.Itoa(mode))
	} else if n, err := strconv.Atoi(hashType); err == nil {
		cmd = append(cmd, "-m", strconv.Itoa(n))
	}

	attackMode := optString(options, "attack_mode", "dictionary")
	if mode, ok := hashcatAttackModes[attackMode]; ok {
		cmd = append(cmd, "-a", strconv.Itoa(mode))
	}

	cmd = append(cmd, "-w", strconv.Itoa(optInt(options, "workload", 3)))
	cmd = append(cmd, "-D", optString(options, "device_types", "1,2"))
	if optBool(options, "optimized_kernels", true) {
		cmd = append(cmd, "-O")
	}
	cmd = append(cmd, "--session", optString(options, "session", "voidwave"))

	if outFile := optString(options, "output_file", ""); outFile != "" {
		cmd = append(cmd, "-o", outFile)
	}
	cmd = append(cmd, "--status", "--status-timer", "10")
	cmd = append(cmd, target)

	wordlist := optString(options, "wordlist", "")
	mask := optString(options, "mask", "")
	switch attackMode {
	case "dictionary", "combinator", "hybrid_dict_mask":
		if wordlist != "" {
			cmd = append(cmd, wordlist)
		}
	}
	switch attackMode {
	case "bruteforce", "hybrid_mask_dict":
		if mask != "" {
			cmd = append(cmd, mask)
		}
	}

	for _, rule := range optStringSlice(options, "rules", nil) {
		cmd = append(cmd, "-r", rule)
	}

	return cmd, nil
}

var (
	hashcatStatusRe   = regexp.MustCompile(`Status\.+:\s*(\w+)`)
	hashcatProgressRe = regexp.MustCompile(`Progress\.+:\s*\d+/\d+\s*\((\d+\.\d+)%\)`)
	hashcatSpeedRe    = regexp.MustCompile(`Speed\.#\*\.+:\s*(.+)`)
	hashcatEstRe      = regexp.MustCompile(`Time\.Estimated\.+:\s*(.+)`)
)

func (h *Hashcat) ParseOutput(raw string) Output {
	var cracked []map[string]any
	status := "unknown"
	var progress float64
	var speed, estimated string

	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, ":") && !strings.HasPrefix(line, "[") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 && parts[0] != "" {
				cracked = append(cracked, map[string]any{"hash": parts[0], "password": parts[1]})
			}
		}
		if m := hashcatStatusRe.FindStringSubmatch(line); m != nil {
			status = strings.ToLower(m[1])
		}
		if m := hashcatProgressRe.FindStringSubmatch(line); m != nil {
			progress, _ = strconv.ParseFloat(m[1], 64)
		}
		if m := hashcatSpeedRe.FindStringSubmatch(line); m != nil {
			speed = strings.TrimSpace(m[1])
		}
		if m := hashcatEstRe.FindStringSubmatch(line); m != nil {
			estimated = strings.TrimSpace(m[1])
		}
	}

	return Output{
		"cracked":         cracked,
		"status":          status,
		"progress":        progress,
		"speed":           speed,
		"time_estimated":  estimated,
	}
}
