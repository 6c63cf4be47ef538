package requirement

import (
	"os"
	"os/exec"
)

func toolPresent(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func isRoot() bool {
	return os.Geteuid() == 0
}

func wordlistPresent() bool {
	candidates := []string{
		"/usr/share/wordlists/rockyou.txt",
		"/usr/share/wordlists/rockyou.txt.gz",
		"/opt/wordlists/rockyou.txt",
		"/usr/share/dict/words",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return true
		}
	}
	return false
}

// rootReq is the reusable "running as root" requirement (ROOT_REQ).
func rootReq() Requirement {
	return Requirement{
		Kind:        KindPrivilege,
		Name:        "root_privileges",
		Description: "Root privileges required for raw socket / interface access",
		Check:       isRoot,
		AutoLabel:   "AUTO-PRIV",
	}
}

// interfaceReq is the reusable "a network interface is selected" requirement.
func interfaceReq(sess Session) Requirement {
	return Requirement{
		Kind:        KindInterface,
		Name:        "interface_selected",
		Description: "A wireless interface must be selected",
		Check:       func() bool { return sess != nil && sess.Interface() != "" },
		AutoLabel:   "AUTO-IFACE",
	}
}

// monitorReq is the reusable "interface is in monitor mode" requirement.
func monitorReq(sess Session) Requirement {
	return Requirement{
		Kind:        KindInterface,
		Name:        "monitor_mode",
		Description: "Interface must be in monitor mode",
		Check:       func() bool { return sess != nil && sess.MonitorInterface() != "" },
		AutoLabel:   "AUTO-MON",
	}
}

// targetReq is the reusable "a target is selected" requirement.
func targetReq(sess Session) Requirement {
	return Requirement{
		Kind:        KindInput,
		Name:        "target_selected",
		Description: "A target (BSSID/host/domain) must be selected",
		Check:       func() bool { return sess != nil && sess.Target() != "" },
		AutoLabel:   "AUTO-ACQUIRE",
	}
}

// wordlistReq is the reusable "a wordlist is available" requirement.
func wordlistReq() Requirement {
	return Requirement{
		Kind:        KindData,
		Name:        "wordlist_available",
		Description: "A password wordlist must be present",
		Check:       wordlistPresent,
		AutoLabel:   "AUTO-DATA",
	}
}

// toolReq builds a tool-presence requirement, mirroring requirements.py's
// tool_req(name, description, alternatives) factory.
func toolReq(name, description string, alternatives ...string) Requirement {
	return Requirement{
		Kind:         KindTool,
		Name:         name,
		Description:  description,
		Check:        func() bool { return toolPresent(name) },
		Alternatives: alternatives,
		AutoLabel:    "AUTO-INSTALL",
	}
}

func captureFileReq(sess Session) Requirement {
	return Requirement{
		Kind:        KindInput,
		Name:        "capture_file",
		Description: "A packet capture file must exist",
		Check:       func() bool { return sess != nil && sess.CaptureFile() != "" },
		AutoLabel:   "AUTO-ACQUIRE",
	}
}

func hashFileReq(sess Session) Requirement {
	return Requirement{
		Kind:        KindInput,
		Name:        "hash_file",
		Description: "An extracted hash file must exist",
		Check:       func() bool { return sess != nil && sess.HashFile() != "" },
		AutoLabel:   "AUTO-ACQUIRE",
	}
}

func handshakeReq(sess Session) Requirement {
	return Requirement{
		Kind:        KindInput,
		Name:        "handshake_captured",
		Description: "A WPA handshake must be captured",
		Check:       func() bool { return sess != nil && sess.HandshakeFile() != "" },
		AutoLabel:   "AUTO-ACQUIRE",
	}
}

func apiKeyReq(service, envVar string) Requirement {
	return Requirement{
		Kind:        KindAPIKey,
		Name:        service + "_api_key",
		Description: service + " API key must be configured",
		Check:       func() bool { return os.Getenv(envVar) != "" },
		AutoLabel:   "AUTO-KEYS",
	}
}

// Requirements returns the ordered requirement list for the named action,
// and whether the action is recognized at all, mirroring
// requirements.py's get_requirements / ATTACK_REQUIREMENTS table.
func Requirements(action string, sess Session) ([]Requirement, bool) {
	table := attackRequirements(sess)
	reqs, ok := table[action]
	return reqs, ok
}

// ListActions returns every recognized action name, for discovery/help text.
func ListActions(sess Session) []string {
	table := attackRequirements(sess)
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	return out
}

func attackRequirements(sess Session) map[string][]Requirement {
	root := rootReq()
	iface := interfaceReq(sess)
	mon := monitorReq(sess)
	target := targetReq(sess)
	wordlist := wordlistReq()

	return map[string][]Requirement{
		// --- Wireless: WPS / WPA / handshake ---
		"wps_pixie": {root, iface, mon, target,
			toolReq("reaver", "WPS PIN/pixie-dust attack tool", "bully")},
		"wps_bruteforce": {root, iface, mon, target,
			toolReq("bully", "WPS brute-force attack tool", "reaver")},
		"pmkid": {root, iface, mon, target,
			toolReq("hcxdumptool", "PMKID capture tool"),
			toolReq("hcxpcapngtool", "PMKID-to-hashcat converter")},
		"handshake": {root, iface, mon, target,
			toolReq("airodump-ng", "packet capture tool", "tshark")},
		"crack_aircrack": {handshakeReq(sess), wordlist,
			toolReq("aircrack-ng", "WPA handshake cracker", "hashcat")},
		"crack_hashcat": {handshakeReq(sess), wordlist,
			toolReq("hashcat", "GPU-accelerated password cracker", "john")},
		"wep": {root, iface, mon, target,
			toolReq("aireplay-ng", "WEP packet injection tool"),
			toolReq("aircrack-ng", "WEP key cracker")},
		"enterprise": {root, iface, mon, target,
			toolReq("hostapd-wpe", "enterprise rogue AP / credential capture tool")},

		// --- Wireless: disruptive / rogue AP ---
		"eviltwin": {root, iface, mon, target,
			toolReq("hostapd", "rogue access point daemon"),
			toolReq("dnsmasq", "DHCP/DNS server for the rogue AP")},
		"eviltwin_full": {root, iface, mon, target,
			toolReq("hostapd", "rogue access point daemon"),
			toolReq("dnsmasq", "DHCP/DNS server for the rogue AP"),
			{Kind: KindData, Name: "captive_portal", Description: "Captive portal assets must be staged",
				Check: func() bool { return true }, AutoLabel: "AUTO-SETUP"}},
		"deauth": {root, iface, mon, target,
			toolReq("aireplay-ng", "deauthentication frame injection tool", "mdk4")},
		"amok": {root, iface, mon,
			toolReq("mdk4", "wireless denial-of-service tool")},
		"beacon_flood": {root, iface, mon,
			toolReq("mdk4", "beacon flood tool")},

		// --- Recon ---
		"recon_dns": {target, toolReq("dig", "DNS lookup tool", "host", "nslookup")},
		"recon_subdomain": {target, wordlistReq(),
			toolReq("subfinder", "passive subdomain enumeration tool", "amass")},
		"recon_whois": {target, toolReq("whois", "WHOIS lookup tool")},
		"recon_email": {target, toolReq("theharvester", "email/subdomain harvesting tool")},
		"recon_tech":  {target, toolReq("whatweb", "web technology fingerprinting tool", "wappalyzer")},
		"recon_full": {target,
			toolReq("subfinder", "subdomain enumeration tool"),
			toolReq("theharvester", "OSINT harvesting tool"),
			toolReq("whatweb", "technology fingerprinting tool")},

		// --- Scanning ---
		"scan":           {root, target, toolReq("nmap", "network port scanner", "masscan", "rustscan")},
		"scan_quick":     {target, toolReq("nmap", "network port scanner", "masscan", "rustscan")},
		"scan_full":      {root, target, toolReq("nmap", "network port scanner")},
		"scan_version":   {target, toolReq("nmap", "network port scanner")},
		"scan_os":        {root, target, toolReq("nmap", "network port scanner")},
		"scan_vuln":      {target, toolReq("nmap", "network port scanner"), toolReq("nuclei", "vulnerability scanner")},
		"scan_stealth":   {root, target, toolReq("nmap", "network port scanner")},
		"scan_udp":       {root, target, toolReq("nmap", "network port scanner")},
		"scan_custom":    {target, toolReq("nmap", "network port scanner")},

		// --- Credentials ---
		"creds_hydra": {target, wordlist, toolReq("hydra", "online credential brute-forcer", "medusa")},
		"creds_hashcat": {hashFileReq(sess), wordlist,
			toolReq("hashcat", "GPU-accelerated password cracker", "john")},
		"creds_john": {hashFileReq(sess), wordlist, toolReq("john", "password cracker", "hashcat")},
		"creds_identify": {hashFileReq(sess), toolReq("hashid", "hash format identifier", "hash-identifier")},
		"creds_wordlist": {wordlist},
		"creds_extract":  {target, toolReq("responder", "credential capture/relay tool")},

		// --- OSINT ---
		"osint_harvester": {target, toolReq("theharvester", "OSINT harvesting tool")},
		"osint_shodan":    {target, apiKeyReq("shodan", "SHODAN_API_KEY")},
		"osint_dorks":     {target},
		"osint_social":    {target, toolReq("sherlock", "username enumeration tool")},
		"osint_reputation": {target, apiKeyReq("virustotal", "VIRUSTOTAL_API_KEY")},
		"osint_domain":    {target, toolReq("whois", "WHOIS lookup tool")},
		"osint_full": {target,
			toolReq("theharvester", "OSINT harvesting tool"),
			apiKeyReq("shodan", "SHODAN_API_KEY")},

		// --- Traffic ---
		"traffic_tcpdump":  {root, iface, toolReq("tcpdump", "packet capture tool", "tshark")},
		"traffic_wireshark": {root, iface, toolReq("tshark", "packet capture/analysis tool", "tcpdump")},
		"traffic_arpspoof": {root, iface, target, toolReq("arpspoof", "ARP spoofing tool", "ettercap")},
		"traffic_dnsspoof": {root, iface, toolReq("dnsspoof", "DNS spoofing tool")},
		"traffic_sniff":    {root, iface, toolReq("tcpdump", "packet capture tool")},
		"traffic_pcap":     {captureFileReq(sess), toolReq("tshark", "pcap analysis tool", "wireshark")},

		// --- Exploit ---
		"exploit_msf": {target, toolReq("msfconsole", "exploitation framework")},
		"exploit_searchsploit": {target, toolReq("searchsploit", "exploit database search tool")},
		"exploit_sqlmap":      {target, toolReq("sqlmap", "SQL injection exploitation tool")},
		"exploit_revshell":    {target, toolReq("nc", "reverse shell listener", "ncat", "socat")},
		"exploit_payload":     {toolReq("msfvenom", "payload generation tool")},
		"exploit_nikto":       {target, toolReq("nikto", "web server vulnerability scanner")},

		// --- Stress / load testing ---
		"stress_http":      {root, target, toolReq("hping3", "packet crafting/stress tool", "siege")},
		"stress_syn":        {root, target, toolReq("hping3", "SYN flood stress tool")},
		"stress_udp":        {root, target, toolReq("hping3", "UDP flood stress tool")},
		"stress_icmp":       {root, target, toolReq("hping3", "ICMP flood stress tool")},
		"stress_conn":        {target, toolReq("hping3", "connection stress tool")},
		"stress_bandwidth": {target, toolReq("iperf3", "bandwidth measurement tool")},
	}
}
