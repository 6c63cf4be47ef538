package toolspec

import "strconv"

// Hydra wraps the hydra network authentication cracker, the credential
// bruteforce chains' workhorse tool. Grounded on
// _examples/original_source/src/voidwave/tools/hydra.py.
type Hydra struct{}

func NewHydra() *Hydra { return &Hydra{} }

func (h *Hydra) Name() string { return "hydra" }

func (h *Hydra) BuildCommand(target string, options Options) ([]string, error) {
	var cmd []string

	if user := optString(options, "username", ""); user != "" {
		cmd = append(cmd, "-l", user)
	}
	if userList := optString(options, "user_list", ""); userList != "" {
		cmd = append(cmd, "-L", userList)
	}
	if pass := optString(options, "password", ""); pass != "" {
		cmd = append(cmd, "-p", pass)
	}
	if passList := optString(options, "pass_list", ""); passList != "" {
		cmd = append(cmd, "-P", passList)
	}
	cmd = append(cmd, "-t", strconv.Itoa(optInt(options, "threads", 16)))
	cmd = append(cmd, target, optString(options, "service", "ssh"))

	return cmd, nil
}

// ParseOutput is a stub, mirroring the original's own stub.
func (h *Hydra) ParseOutput(raw string) Output {
	return Output{"raw_output": raw, "credentials": []map[string]any{}}
}
