package autofix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// updateSource describes one refreshable data source managed by AUTO-UPDATE.
type updateSource struct {
	Command        string
	CheckCmd       string
	FrequencyDays  int
	LastUpdateFile string
	Description    string
}

func updateSources(dataDir string) map[string]updateSource {
	return map[string]updateSource{
		"nuclei-templates": {
			Command: "nuclei -update-templates", CheckCmd: "nuclei -version",
			FrequencyDays: 7, LastUpdateFile: filepath.Join(dataDir, ".nuclei_updated"),
			Description: "Nuclei vulnerability templates",
		},
		"exploitdb": {
			Command: "searchsploit -u", CheckCmd: "searchsploit -v",
			FrequencyDays: 7, LastUpdateFile: filepath.Join(dataDir, ".exploitdb_updated"),
			Description: "Exploit database",
		},
		"nmap-scripts": {
			Command: "nmap --script-updatedb", CheckCmd: "nmap --version",
			FrequencyDays: 30, LastUpdateFile: filepath.Join(dataDir, ".nmap_scripts_updated"),
			Description: "Nmap NSE scripts database",
		},
		"wpscan-db": {
			Command: "wpscan --update", CheckCmd: "wpscan --version",
			FrequencyDays: 1, LastUpdateFile: filepath.Join(dataDir, ".wpscan_updated"),
			Description: "WPScan vulnerability database",
		},
	}
}

// UpdateHandler implements AUTO-UPDATE: run a per-source refresh command on
// a days-based schedule, recording the Unix-epoch timestamp of the last
// successful run to a sentinel file (spec §6, "Persistent sentinel files").
type UpdateHandler struct {
	Source  string
	DataDir string

	config updateSource
	known  bool
}

func NewUpdateHandler(source, dataDir string) *UpdateHandler {
	cfg, known := updateSources(dataDir)[source]
	return &UpdateHandler{Source: source, DataDir: dataDir, config: cfg, known: known}
}

func (h *UpdateHandler) CanFix(ctx context.Context) bool {
	if !h.known {
		return false
	}
	fields := strings.Fields(h.config.CheckCmd)
	if len(fields) == 0 {
		return false
	}
	return which(fields[0])
}

func (h *UpdateHandler) Fix(ctx context.Context) bool {
	if !h.known || h.config.Command == "" {
		return false
	}
	if !runShell(ctx, h.config.Command) {
		return false
	}
	h.recordUpdate()
	return true
}

func (h *UpdateHandler) PromptText(ctx context.Context) string {
	if !h.known {
		return fmt.Sprintf("Update %s?", h.Source)
	}
	return fmt.Sprintf("Update %s? (%s)", h.config.Description, h.ageString())
}

// NeedsUpdate reports whether this source is past its refresh frequency.
func (h *UpdateHandler) NeedsUpdate() bool {
	if !h.known {
		return false
	}
	last, ok := h.lastUpdate()
	if !ok {
		return true
	}
	threshold := time.Now().AddDate(0, 0, -h.config.FrequencyDays)
	return last.Before(threshold)
}

func (h *UpdateHandler) lastUpdate() (time.Time, bool) {
	if h.config.LastUpdateFile == "" {
		return time.Time{}, false
	}
	data, err := os.ReadFile(h.config.LastUpdateFile)
	if err != nil {
		return time.Time{}, false
	}
	epoch, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(int64(epoch), 0), true
}

func (h *UpdateHandler) recordUpdate() {
	if h.config.LastUpdateFile == "" {
		return
	}
	os.MkdirAll(filepath.Dir(h.config.LastUpdateFile), 0o755)
	stamp := strconv.FormatFloat(float64(time.Now().Unix()), 'f', -1, 64)
	os.WriteFile(h.config.LastUpdateFile, []byte(stamp), 0o644)
}

func (h *UpdateHandler) ageString() string {
	last, ok := h.lastUpdate()
	if !ok {
		return "never updated"
	}
	age := time.Since(last)
	switch {
	case age >= 24*time.Hour:
		return fmt.Sprintf("%d days old", int(age.Hours()/24))
	case age >= time.Hour:
		return fmt.Sprintf("%d hours old", int(age.Hours()))
	default:
		return "recent"
	}
}

// UpdateSourceStatus describes one refreshable source's status.
type UpdateSourceStatus struct {
	Name          string
	Description   string
	FrequencyDays int
	NeedsUpdate   bool
	Age           string
}

// ListUpdateSources enumerates every known update source and its status.
func ListUpdateSources(dataDir string) []UpdateSourceStatus {
	sources := updateSources(dataDir)
	out := make([]UpdateSourceStatus, 0, len(sources))
	for name, cfg := range sources {
		h := NewUpdateHandler(name, dataDir)
		out = append(out, UpdateSourceStatus{
			Name:          name,
			Description:   cfg.Description,
			FrequencyDays: cfg.FrequencyDays,
			NeedsUpdate:   h.NeedsUpdate(),
			Age:           h.ageString(),
		})
	}
	return out
}

// UpdateAllStale refreshes every source that needs it and can be fixed,
// returning a per-source success map.
func UpdateAllStale(ctx context.Context, dataDir string) map[string]bool {
	results := make(map[string]bool)
	for name := range updateSources(dataDir) {
		h := NewUpdateHandler(name, dataDir)
		if h.NeedsUpdate() && h.CanFix(ctx) {
			results[name] = h.Fix(ctx)
		}
	}
	return results
}
