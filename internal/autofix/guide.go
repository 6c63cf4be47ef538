package autofix

import "context"

// GuideLink is a title/URL pair pointing to further documentation.
type GuideLink struct {
	Title string
	URL   string
}

type guide struct {
	Title string
	Steps []string
	Links []GuideLink
}

var guides = map[string]guide{
	"wireless_adapter": {
		Title: "Wireless Adapter Required",
		Steps: []string{
			"Connect a monitor-mode capable USB WiFi adapter",
			"Recommended: Alfa AWUS036ACH (dual-band)",
			"Alternative: Alfa AWUS036AXML (WiFi 6E)",
			"Install drivers if required (rtl8812au, rtl8814au)",
			"Click Rescan to detect the adapter",
		},
		Links: []GuideLink{
			{Title: "Driver installation guide", URL: "https://github.com/aircrack-ng/rtl8812au"},
			{Title: "Recommended adapters", URL: "https://www.aircrack-ng.org/doku.php?id=compatible_cards"},
		},
	},
	"gpu_hashcat": {
		Title: "GPU Required for Hashcat",
		Steps: []string{
			"Install GPU drivers (NVIDIA: CUDA, AMD: ROCm)",
			"For NVIDIA: sudo apt install nvidia-cuda-toolkit",
			"For AMD: Follow ROCm installation guide",
			"Verify with: hashcat -I",
		},
		Links: []GuideLink{
			{Title: "NVIDIA CUDA installation", URL: "https://developer.nvidia.com/cuda-downloads"},
			{Title: "AMD ROCm installation", URL: "https://rocm.docs.amd.com/"},
		},
	},
	"metasploit_db": {
		Title: "Metasploit Database Setup",
		Steps: []string{
			"Initialize database: msfdb init",
			"Start PostgreSQL: sudo systemctl start postgresql",
			"Connect in msfconsole: db_connect",
		},
	},
	"gui_tool": {
		Title: "GUI Tool Required",
		Steps: []string{
			"This tool requires a graphical interface",
			"Connect via VNC or X11 forwarding if remote",
			"Or use the CLI alternative if available",
		},
	},
	"hostapd_wpe": {
		Title: "hostapd-wpe Installation",
		Steps: []string{
			"Clone the repository: git clone https://github.com/aircrack-ng/hostapd-wpe",
			"Install dependencies: sudo apt install libssl-dev libnl-3-dev",
			"Build: cd hostapd-wpe && make",
			"Install: sudo make install",
		},
		Links: []GuideLink{
			{Title: "hostapd-wpe GitHub", URL: "https://github.com/aircrack-ng/hostapd-wpe"},
		},
	},
}

// GuideHandler implements AUTO-GUIDE: never fixes anything; returns a
// titled step list and links for a human to follow.
type GuideHandler struct {
	GuideType    string
	CustomSteps  []string

	entry guide
	known bool
}

func NewGuideHandler(guideType string, customSteps []string) *GuideHandler {
	g, known := guides[guideType]
	return &GuideHandler{GuideType: guideType, CustomSteps: customSteps, entry: g, known: known}
}

// CanFix is always false: guidance requires manual, out-of-band action.
func (h *GuideHandler) CanFix(ctx context.Context) bool {
	return false
}

// Fix is always false: the user must complete the steps themselves.
func (h *GuideHandler) Fix(ctx context.Context) bool {
	return false
}

func (h *GuideHandler) PromptText(ctx context.Context) string {
	return h.Title()
}

func (h *GuideHandler) Title() string {
	if h.known {
		return h.entry.Title
	}
	return "Manual Configuration"
}

func (h *GuideHandler) Steps() []string {
	if len(h.CustomSteps) > 0 {
		return h.CustomSteps
	}
	return h.entry.Steps
}

func (h *GuideHandler) Links() []GuideLink {
	return h.entry.Links
}

// ListGuides returns every registered guide type.
func ListGuides() []string {
	names := make([]string, 0, len(guides))
	for name := range guides {
		names = append(names, name)
	}
	return names
}
