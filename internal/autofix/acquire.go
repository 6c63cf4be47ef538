package autofix

import "context"

// SubflowType is the closed enum of interactive acquisition flows a caller
// (the TUI, in the original system) can run to supply a missing input.
type SubflowType string

const (
	SubflowScanNetworks     SubflowType = "scan_networks"
	SubflowEnterTarget      SubflowType = "enter_target"
	SubflowScanClients      SubflowType = "scan_clients"
	SubflowCaptureHandshake SubflowType = "capture_handshake"
	SubflowCapturePMKID     SubflowType = "capture_pmkid"
	SubflowDownloadWordlist SubflowType = "download_wordlist"
	SubflowGeneratePortal   SubflowType = "generate_portal"
	SubflowGenerateCerts    SubflowType = "generate_certs"
)

var acquirePrompts = map[string]string{
	"target":       "No target selected. Scan for networks?",
	"target_wifi":  "No WiFi target selected. Scan for networks?",
	"target_host":  "No host target specified. Enter target IP/hostname?",
	"client":       "No client selected. Scan for clients?",
	"handshake":    "No handshake captured. Capture now?",
	"pmkid":        "No PMKID captured. Capture now?",
	"wordlist":     "No wordlist selected. Download default?",
	"portal":       "No portal assets. Generate defaults?",
	"certs":        "No certificates found. Generate self-signed?",
	"capture_file": "No capture file selected. Browse for file?",
	"hash_file":    "No hash file selected. Browse for file?",
}

var acquireSubflows = map[string]SubflowType{
	"target":      SubflowScanNetworks,
	"target_wifi": SubflowScanNetworks,
	"target_host": SubflowEnterTarget,
	"client":      SubflowScanClients,
	"handshake":   SubflowCaptureHandshake,
	"pmkid":       SubflowCapturePMKID,
	"wordlist":    SubflowDownloadWordlist,
	"portal":      SubflowGeneratePortal,
	"certs":       SubflowGenerateCerts,
}

// AcquireHandler implements AUTO-ACQUIRE: it never produces the missing
// value itself. Per the spec's resolved Open Question on the subflow model,
// Fix always reports "not done; caller must supply the value and resume" —
// what a caller does with GetSubflowType() between those calls is outside
// this package's contract.
type AcquireHandler struct {
	InputType string
}

func NewAcquireHandler(inputType string) *AcquireHandler {
	return &AcquireHandler{InputType: inputType}
}

// CanFix is always true: acquisition subflows are always nominally available,
// it is the caller's job to actually run one.
func (h *AcquireHandler) CanFix(ctx context.Context) bool {
	return true
}

// Fix always returns false — acquiring the value requires caller interaction.
func (h *AcquireHandler) Fix(ctx context.Context) bool {
	return false
}

func (h *AcquireHandler) PromptText(ctx context.Context) string {
	if p, ok := acquirePrompts[h.InputType]; ok {
		return p
	}
	return "Acquire " + h.InputType + "?"
}

// GetSubflowType returns the subflow a caller should run to satisfy this
// input kind, defaulting to SubflowEnterTarget for unrecognized kinds.
func (h *AcquireHandler) GetSubflowType() SubflowType {
	if s, ok := acquireSubflows[h.InputType]; ok {
		return s
	}
	return SubflowEnterTarget
}
