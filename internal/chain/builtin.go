package chain

import "time"

// Builtin returns a registry pre-populated with every declarative chain this
// tree ships, mirroring the original's
// _examples/original_source/src/voidwave/chaining/builtin/{scanning,wireless,
// credentials,web,recon}.py modules and their register_*_chains() functions.
// Each Definition below is grounded directly on its corresponding Python
// ChainDefinition literal, field-for-field except for the path and check
// reconciliations recorded in DESIGN.md's internal/chain section.
func Builtin() *Registry {
	r := NewRegistry()
	for _, def := range scanningChains() {
		r.Register(def)
	}
	for _, def := range wirelessChains() {
		r.Register(def)
	}
	for _, def := range credentialChains() {
		r.Register(def)
	}
	for _, def := range webChains() {
		r.Register(def)
	}
	for _, def := range reconChains() {
		r.Register(def)
	}
	return r
}

// scanningChains ports builtin/scanning.py.
func scanningChains() []Definition {
	return []Definition{
		{
			ID:          "fast_to_detailed",
			Name:        "Fast Scan → Detailed Scan",
			Description: "Fast port discovery with masscan, then detailed service enumeration with nmap",
			TargetType:  "cidr",
			Tags:        []string{"scanning", "network", "recon"},
			Steps: []Step{
				{
					ID:           "fast_scan",
					Tool:         "masscan",
					Description:  "Fast TCP port discovery",
					Options:      map[string]any{"ports": "1-65535", "rate": 10000},
					OnError:      OnErrorFallback,
					FallbackTool: "nmap",
					Timeout:      300 * time.Second,
				},
				{
					ID:          "detailed_scan",
					Tool:        "nmap",
					Description: "Detailed service enumeration",
					TargetBinding: &DataBinding{
						SourceStep: "fast_scan", SourcePath: "hosts[*].ip",
						TargetOption: "target", TransformName: "join",
					},
					OptionBindings: []DataBinding{
						{
							SourceStep: "fast_scan", SourcePath: "hosts[*].ports[*].port",
							TargetOption: "ports", TransformName: "numbers_csv",
							Required: false, Default: "1-1000",
						},
					},
					Options:    map[string]any{"service_detection": true, "os_detection": true},
					DependsOn:  []string{"fast_scan"},
					Condition:  &Condition{SourceStep: "fast_scan", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:    OnErrorStop,
					Timeout:    600 * time.Second,
				},
			},
		},
		{
			ID:          "vuln_scan",
			Name:        "Vulnerability Scan Pipeline",
			Description: "Port scan → Service detection → Vulnerability scan",
			TargetType:  "ip",
			Tags:        []string{"scanning", "vulnerability", "security"},
			Steps: []Step{
				{
					ID:          "port_scan",
					Tool:        "nmap",
					Description: "Initial port scan",
					Options:     map[string]any{"scan_type": "standard", "top_ports": 1000},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "service_scan",
					Tool:        "nmap",
					Description: "Service version detection",
					TargetBinding: &DataBinding{
						SourceStep: "port_scan", SourcePath: "hosts[?state==up].ip",
						TargetOption: "target", TransformName: "join",
					},
					OptionBindings: []DataBinding{
						{
							SourceStep: "port_scan", SourcePath: "hosts[*].ports[?state==open].port",
							TargetOption: "ports", TransformName: "numbers_csv",
						},
					},
					Options:   map[string]any{"service_detection": true},
					DependsOn: []string{"port_scan"},
					Condition: &Condition{SourceStep: "port_scan", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
				{
					ID:          "vuln_check",
					Tool:        "nmap",
					Description: "Vulnerability scanning",
					TargetBinding: &DataBinding{
						SourceStep: "service_scan", SourcePath: "hosts[*].ip",
						TargetOption: "target", TransformName: "join",
					},
					Options:   map[string]any{"scan_type": "vuln", "scripts": []string{"vuln"}},
					DependsOn: []string{"service_scan"},
					Condition: &Condition{SourceStep: "service_scan", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   900 * time.Second,
				},
			},
		},
		{
			ID:          "quick_recon",
			Name:        "Quick Reconnaissance",
			Description: "Fast reconnaissance with top ports and basic service detection",
			TargetType:  "ip",
			Tags:        []string{"scanning", "recon", "quick"},
			Steps: []Step{
				{
					ID:          "quick_scan",
					Tool:        "nmap",
					Description: "Quick top-ports scan",
					Options:     map[string]any{"scan_type": "quick", "top_ports": 100},
					OnError:     OnErrorStop,
					Timeout:     120 * time.Second,
				},
				{
					ID:          "service_detect",
					Tool:        "nmap",
					Description: "Service detection on open ports",
					TargetBinding: &DataBinding{
						SourceStep: "quick_scan", SourcePath: "hosts[*].ip",
						TargetOption: "target", TransformName: "join",
					},
					OptionBindings: []DataBinding{
						{
							SourceStep: "quick_scan", SourcePath: "hosts[*].ports[?state==open].port",
							TargetOption: "ports", TransformName: "numbers_csv",
						},
					},
					Options:   map[string]any{"service_detection": true},
					DependsOn: []string{"quick_scan"},
					Condition: &Condition{SourceStep: "quick_scan", Check: CheckCountGT, Path: "hosts[*].ports", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   300 * time.Second,
				},
			},
		},
		{
			ID:          "stealth_scan",
			Name:        "Stealth Scan Pipeline",
			Description: "Low and slow scanning to avoid detection",
			TargetType:  "ip",
			Tags:        []string{"scanning", "stealth", "evasion"},
			Steps: []Step{
				{
					ID:          "stealth_discovery",
					Tool:        "nmap",
					Description: "Stealthy host discovery",
					Options:     map[string]any{"scan_type": "stealth", "timing": 2, "top_ports": 100},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
				{
					ID:          "stealth_service",
					Tool:        "nmap",
					Description: "Stealthy service detection",
					TargetBinding: &DataBinding{
						SourceStep: "stealth_discovery", SourcePath: "hosts[?state==up].ip",
						TargetOption: "target", TransformName: "join",
					},
					Options:   map[string]any{"scan_type": "stealth", "service_detection": true, "timing": 2},
					DependsOn: []string{"stealth_discovery"},
					Condition: &Condition{SourceStep: "stealth_discovery", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   900 * time.Second,
				},
			},
		},
	}
}

// wirelessChains ports builtin/wireless.py.
func wirelessChains() []Definition {
	return []Definition{
		{
			ID:              "wpa_capture",
			Name:            "WPA Handshake Capture",
			Description:     "Scan for networks, then capture a WPA handshake while deauthenticating clients",
			TargetType:      "interface",
			PreflightAction: "wireless_capture",
			Tags:            []string{"wireless", "wpa", "handshake"},
			Steps: []Step{
				{
					ID:          "scan_networks",
					Tool:        "airodump-ng",
					Description: "Scan for nearby networks",
					Options:     map[string]any{"band": "abg", "write_interval": 1, "output_format": "csv"},
					OnError:     OnErrorStop,
					Timeout:     30 * time.Second,
				},
				{
					ID:          "target_capture",
					Tool:        "airodump-ng",
					Description: "Capture handshake on the target network",
					OptionBindings: []DataBinding{
						{SourceStep: "scan_networks", SourcePath: "networks[0].bssid", TargetOption: "bssid"},
						{SourceStep: "scan_networks", SourcePath: "networks[0].channel", TargetOption: "channel"},
					},
					Options:      map[string]any{"output_format": "pcap"},
					DependsOn:    []string{"scan_networks"},
					ParallelWith: []string{"deauth_attack"},
					Condition:    &Condition{SourceStep: "scan_networks", Check: CheckCountGT, Path: "networks", Value: float64(0)},
					OnError:      OnErrorStop,
					Timeout:      120 * time.Second,
				},
				{
					ID:          "deauth_attack",
					Tool:        "aireplay-ng",
					Description: "Deauthenticate clients to force a handshake",
					OptionBindings: []DataBinding{
						{SourceStep: "scan_networks", SourcePath: "networks[0].bssid", TargetOption: "bssid"},
					},
					Options:   map[string]any{"attack": "deauth", "count": 10},
					DependsOn: []string{"scan_networks"},
					Condition: &Condition{SourceStep: "scan_networks", Check: CheckCountGT, Path: "networks", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   60 * time.Second,
				},
			},
		},
		{
			ID:          "wpa_crack",
			Name:        "WPA Handshake Crack",
			Description: "Crack a captured WPA handshake against a wordlist",
			TargetType:  "file",
			Tags:        []string{"wireless", "wpa", "cracking"},
			Steps: []Step{
				{
					ID:           "aircrack_attack",
					Tool:         "aircrack-ng",
					Description:  "Crack the handshake",
					Options:      map[string]any{"wordlist": "rockyou"},
					OnError:      OnErrorFallback,
					FallbackTool: "hashcat",
					Timeout:      3600 * time.Second,
				},
			},
		},
		{
			ID:              "wpa_full_attack",
			Name:            "Full WPA Attack",
			Description:     "Discover, capture, deauth and crack in one pipeline",
			TargetType:      "interface",
			PreflightAction: "wireless_attack",
			Tags:            []string{"wireless", "wpa", "attack", "full"},
			Steps: []Step{
				{
					ID:          "discover",
					Tool:        "airodump-ng",
					Description: "Discover nearby networks",
					Options:     map[string]any{"band": "abg"},
					OnError:     OnErrorStop,
					Timeout:     30 * time.Second,
				},
				{
					ID:          "capture",
					Tool:        "airodump-ng",
					Description: "Capture the handshake",
					OptionBindings: []DataBinding{
						{SourceStep: "discover", SourcePath: "networks[0].bssid", TargetOption: "bssid"},
						{SourceStep: "discover", SourcePath: "networks[0].channel", TargetOption: "channel"},
					},
					DependsOn:    []string{"discover"},
					ParallelWith: []string{"deauth"},
					OnError:      OnErrorStop,
					Timeout:      180 * time.Second,
				},
				{
					ID:          "deauth",
					Tool:        "aireplay-ng",
					Description: "Deauthenticate clients",
					OptionBindings: []DataBinding{
						{SourceStep: "discover", SourcePath: "networks[0].bssid", TargetOption: "bssid"},
					},
					Options:   map[string]any{"attack": "deauth", "count": 20},
					DependsOn: []string{"discover"},
					OnError:   OnErrorStop,
					Timeout:   60 * time.Second,
				},
				{
					ID:          "crack",
					Tool:        "aircrack-ng",
					Description: "Crack the captured handshake",
					OptionBindings: []DataBinding{
						{SourceStep: "capture", SourcePath: "capture_file", TargetOption: "capture_file"},
					},
					Options:   map[string]any{"wordlist": "rockyou"},
					DependsOn: []string{"capture", "deauth"},
					Condition: &Condition{SourceStep: "capture", Check: CheckExists, Path: "handshake_captured"},
					OnError:   OnErrorStop,
					Timeout:   3600 * time.Second,
				},
			},
		},
		{
			ID:              "wps_attack",
			Name:            "WPS PIN Attack",
			Description:     "Scan for WPS-enabled networks, try pixie-dust, fall back to brute force",
			TargetType:      "interface",
			PreflightAction: "wireless_wps",
			Tags:            []string{"wireless", "wps", "reaver"},
			Steps: []Step{
				{
					ID:          "wps_scan",
					Tool:        "wash",
					Description: "Scan for WPS-enabled networks",
					Options:     map[string]any{"scan_time": 30},
					OnError:     OnErrorStop,
					Timeout:     45 * time.Second,
				},
				{
					ID:          "pixie_attack",
					Tool:        "reaver",
					Description: "Attempt pixie-dust WPS attack",
					OptionBindings: []DataBinding{
						{SourceStep: "wps_scan", SourcePath: "networks[0].bssid", TargetOption: "bssid"},
						{SourceStep: "wps_scan", SourcePath: "networks[0].channel", TargetOption: "channel"},
					},
					Options:   map[string]any{"pixie_dust": true},
					DependsOn: []string{"wps_scan"},
					Condition: &Condition{SourceStep: "wps_scan", Check: CheckCountGT, Path: "networks", Value: float64(0)},
					OnError:   OnErrorSkip,
					Timeout:   300 * time.Second,
				},
				{
					// Only runs if the pixie-dust attempt failed to recover a PIN.
					ID:          "bruteforce_attack",
					Tool:        "reaver",
					Description: "Brute-force the WPS PIN",
					OptionBindings: []DataBinding{
						{SourceStep: "wps_scan", SourcePath: "networks[0].bssid", TargetOption: "bssid"},
						{SourceStep: "wps_scan", SourcePath: "networks[0].channel", TargetOption: "channel"},
					},
					Options:   map[string]any{"pixie_dust": false},
					DependsOn: []string{"pixie_attack"},
					Condition: &Condition{SourceStep: "pixie_attack", Check: CheckExists, Path: "pin", Negate: true},
					OnError:   OnErrorStop,
					Timeout:   7200 * time.Second,
				},
			},
		},
	}
}

// credentialChains ports builtin/credentials.py.
func credentialChains() []Definition {
	return []Definition{
		{
			ID:          "ssh_bruteforce",
			Name:        "SSH Brute Force",
			Description: "Find SSH services, then brute force credentials",
			TargetType:  "cidr",
			Tags:        []string{"credentials", "ssh", "bruteforce"},
			Steps: []Step{
				{
					ID:          "find_ssh",
					Tool:        "nmap",
					Description: "Locate SSH services",
					Options:     map[string]any{"ports": "22,2222", "service_detection": true},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "bruteforce_ssh",
					Tool:        "hydra",
					Description: "Brute force SSH credentials",
					TargetBinding: &DataBinding{
						SourceStep: "find_ssh", SourcePath: "hosts", TargetOption: "target", TransformName: "first_ssh",
					},
					Options:   map[string]any{"service": "ssh", "threads": 4},
					DependsOn: []string{"find_ssh"},
					Condition: &Condition{SourceStep: "find_ssh", Check: CheckCountGT, Path: "hosts[*].ports[?service==ssh]", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   3600 * time.Second,
				},
			},
		},
		{
			ID:          "web_bruteforce",
			Name:        "Web Login Brute Force",
			Description: "Find web services, then brute force HTTP login forms",
			TargetType:  "ip",
			Tags:        []string{"credentials", "web", "bruteforce"},
			Steps: []Step{
				{
					ID:          "find_web",
					Tool:        "nmap",
					Description: "Locate web services",
					Options:     map[string]any{"ports": "80,443,8080,8443", "service_detection": true},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "bruteforce_http",
					Tool:        "hydra",
					Description: "Brute force HTTP login",
					TargetBinding: &DataBinding{
						SourceStep: "find_web", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http",
					},
					Options:   map[string]any{"service": "http-get"},
					DependsOn: []string{"find_web"},
					Condition: &Condition{SourceStep: "find_web", Check: CheckCountGT, Path: "hosts[*].ports[?service==http]", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   1800 * time.Second,
				},
			},
		},
		{
			ID:          "hash_crack",
			Name:        "Hash Crack",
			Description: "Crack a password hash dictionary-style, falling back to John on exhaustion",
			TargetType:  "file",
			Tags:        []string{"credentials", "cracking", "hash"},
			Steps: []Step{
				{
					ID:           "hashcat_crack",
					Tool:         "hashcat",
					Description:  "Dictionary attack against the hash",
					Options:      map[string]any{"attack_mode": "dictionary", "wordlist": "rockyou"},
					OnError:      OnErrorFallback,
					FallbackTool: "john",
					Timeout:      7200 * time.Second,
				},
			},
		},
		{
			ID:          "credential_spray",
			Name:        "Credential Spray",
			Description: "Discover common auth services, then spray SSH and SMB in parallel",
			TargetType:  "cidr",
			Tags:        []string{"credentials", "spray", "bruteforce"},
			Steps: []Step{
				{
					ID:          "discover_services",
					Tool:        "nmap",
					Description: "Discover common authentication services",
					Options:     map[string]any{"ports": "22,23,21,445,3389,5985,5986", "service_detection": true},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
				{
					ID:          "spray_ssh",
					Tool:        "hydra",
					Description: "Spray SSH credentials",
					TargetBinding: &DataBinding{
						SourceStep: "discover_services", SourcePath: "hosts", TargetOption: "target", TransformName: "ssh_hosts_csv",
					},
					Options:   map[string]any{"service": "ssh", "threads": 2},
					DependsOn: []string{"discover_services"},
					Condition: &Condition{SourceStep: "discover_services", Check: CheckCountGT, Path: "hosts[*].ports[?service==ssh]", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   1800 * time.Second,
				},
				{
					ID:          "spray_smb",
					Tool:        "hydra",
					Description: "Spray SMB credentials",
					TargetBinding: &DataBinding{
						SourceStep: "discover_services", SourcePath: "hosts", TargetOption: "target", TransformName: "smb_hosts_csv",
					},
					Options:      map[string]any{"service": "smb", "threads": 2},
					DependsOn:    []string{"discover_services"},
					ParallelWith: []string{"spray_ssh"},
					Condition:    &Condition{SourceStep: "discover_services", Check: CheckCountGT, Path: "hosts[*].ports[?service==microsoft-ds]", Value: float64(0)},
					OnError:      OnErrorStop,
					Timeout:      1800 * time.Second,
				},
			},
		},
		{
			ID:          "ftp_bruteforce",
			Name:        "FTP Brute Force",
			Description: "Find anonymous-checked FTP services, then brute force credentials",
			TargetType:  "cidr",
			Tags:        []string{"credentials", "ftp", "bruteforce"},
			Steps: []Step{
				{
					ID:          "find_ftp",
					Tool:        "nmap",
					Description: "Locate FTP services",
					Options:     map[string]any{"ports": "21", "service_detection": true, "scripts": []string{"ftp-anon"}},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "bruteforce_ftp",
					Tool:        "hydra",
					Description: "Brute force FTP credentials",
					TargetBinding: &DataBinding{
						SourceStep: "find_ftp", SourcePath: "hosts", TargetOption: "target", TransformName: "first_ftp",
					},
					Options:   map[string]any{"service": "ftp"},
					DependsOn: []string{"find_ftp"},
					Condition: &Condition{SourceStep: "find_ftp", Check: CheckCountGT, Path: "hosts[*].ports[?service==ftp]", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   1800 * time.Second,
				},
			},
		},
	}
}

// webChains ports builtin/web.py.
func webChains() []Definition {
	return []Definition{
		{
			ID:          "sqli_attack",
			Name:        "SQL Injection Pipeline",
			Description: "Automated SQL injection testing and exploitation",
			TargetType:  "url",
			Tags:        []string{"web", "sqli", "injection", "exploitation"},
			Steps: []Step{
				{
					ID:          "sqli_test",
					Tool:        "sqlmap",
					Description: "Test for SQL injection vulnerabilities",
					Options:     map[string]any{"level": 2, "risk": 2, "batch": true, "threads": 4},
					OnError:     OnErrorStop,
					Timeout:     1800 * time.Second,
				},
				{
					ID:          "enum_dbs",
					Tool:        "sqlmap",
					Description: "Enumerate databases",
					Options:     map[string]any{"dbs": true, "batch": true},
					DependsOn:   []string{"sqli_test"},
					Condition:   &Condition{SourceStep: "sqli_test", Check: CheckValueEQ, Path: "vulnerable", Value: true},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
				{
					ID:          "enum_tables",
					Tool:        "sqlmap",
					Description: "Enumerate tables",
					Options:     map[string]any{"tables": true, "batch": true},
					DependsOn:   []string{"enum_dbs"},
					Condition:   &Condition{SourceStep: "enum_dbs", Check: CheckCountGT, Path: "databases", Value: float64(0)},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
			},
		},
		{
			ID:          "web_fuzz",
			Name:        "Web Fuzzing Pipeline",
			Description: "Comprehensive web fuzzing for directories, parameters, and vulnerabilities",
			TargetType:  "url",
			Tags:        []string{"web", "fuzz", "discovery", "bruteforce"},
			Steps: []Step{
				{
					ID:          "dir_fuzz",
					Tool:        "ffuf",
					Description: "Directory fuzzing",
					Options: map[string]any{
						"wordlist": "/usr/share/seclists/Discovery/Web-Content/common.txt",
						"threads":  40, "match_status": "200,204,301,302,307,401,403,405", "auto_calibrate": true,
					},
					OnError: OnErrorStop,
					Timeout: 600 * time.Second,
				},
				{
					ID:          "extension_fuzz",
					Tool:        "ffuf",
					Description: "File extension fuzzing",
					Options: map[string]any{
						"wordlist": "/usr/share/seclists/Discovery/Web-Content/web-extensions.txt",
						"threads":  40, "extensions": "php,asp,aspx,jsp,html,js,txt,bak",
					},
					DependsOn: []string{"dir_fuzz"},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
				{
					ID:           "vuln_scan",
					Tool:         "nuclei",
					Description:  "Vulnerability scanning on discovered paths",
					Options:      map[string]any{"severity": []string{"low", "medium", "high", "critical"}, "tags": []string{"xss", "sqli", "lfi", "rce", "ssrf"}},
					DependsOn:    []string{"dir_fuzz"},
					ParallelWith: []string{"extension_fuzz"},
					OnError:      OnErrorStop,
					Timeout:      900 * time.Second,
				},
			},
		},
		{
			ID:          "vuln_exploit",
			Name:        "Vulnerability Discovery to Exploit",
			Description: "Find vulnerabilities and map to potential exploits",
			TargetType:  "ip",
			Tags:        []string{"web", "vuln", "exploit", "cve"},
			Steps: []Step{
				{
					ID:          "port_scan",
					Tool:        "nmap",
					Description: "Service version detection",
					Options:     map[string]any{"ports": "80,443,8080,8443", "service_detection": true, "scripts": []string{"vuln", "http-enum"}},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
				{
					ID:          "nuclei_cve",
					Tool:        "nuclei",
					Description: "CVE vulnerability scan",
					TargetBinding: &DataBinding{
						SourceStep: "port_scan", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					Options:   map[string]any{"tags": []string{"cve"}, "severity": []string{"high", "critical"}},
					DependsOn: []string{"port_scan"},
					Condition: &Condition{SourceStep: "port_scan", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   900 * time.Second,
				},
				{
					ID:          "nikto_vuln",
					Tool:        "nikto",
					Description: "Web server vulnerability scan",
					TargetBinding: &DataBinding{
						SourceStep: "port_scan", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					Options:      map[string]any{"tuning": "49"},
					DependsOn:    []string{"port_scan"},
					ParallelWith: []string{"nuclei_cve"},
					OnError:      OnErrorStop,
					Timeout:      600 * time.Second,
				},
			},
		},
		{
			ID:          "xss_test",
			Name:        "XSS Testing Pipeline",
			Description: "Cross-site scripting vulnerability detection",
			TargetType:  "url",
			Tags:        []string{"web", "xss", "injection"},
			Steps: []Step{
				{
					ID:          "param_discovery",
					Tool:        "ffuf",
					Description: "Discover URL parameters",
					Options: map[string]any{
						"wordlist": "/usr/share/seclists/Discovery/Web-Content/burp-parameter-names.txt",
						"threads":  40, "auto_calibrate": true,
					},
					OnError: OnErrorStop,
					Timeout: 600 * time.Second,
				},
				{
					ID:          "xss_scan",
					Tool:        "nuclei",
					Description: "XSS vulnerability scan",
					Options:     map[string]any{"tags": []string{"xss"}, "severity": []string{"low", "medium", "high", "critical"}},
					DependsOn:   []string{"param_discovery"},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
			},
		},
		{
			ID:          "api_recon",
			Name:        "API Reconnaissance Pipeline",
			Description: "Discover and enumerate API endpoints",
			TargetType:  "url",
			Tags:        []string{"web", "api", "recon", "discovery"},
			Steps: []Step{
				{
					ID:          "api_discovery",
					Tool:        "ffuf",
					Description: "API endpoint discovery",
					Options: map[string]any{
						"wordlist": "/usr/share/seclists/Discovery/Web-Content/api/api-endpoints.txt",
						"threads":  40, "match_status": "200,201,204,301,302,307,400,401,403,405", "auto_calibrate": true,
					},
					OnError: OnErrorStop,
					Timeout: 900 * time.Second,
				},
				{
					ID:          "api_version",
					Tool:        "ffuf",
					Description: "API version fuzzing",
					Options: map[string]any{
						"wordlist": "/usr/share/seclists/Discovery/Web-Content/api/api-seen-in-wild.txt",
						"threads":  20,
					},
					DependsOn: []string{"api_discovery"},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
				{
					ID:           "api_vuln",
					Tool:         "nuclei",
					Description:  "API vulnerability scan",
					Options:      map[string]any{"tags": []string{"api", "exposure"}, "severity": []string{"medium", "high", "critical"}},
					DependsOn:    []string{"api_discovery"},
					ParallelWith: []string{"api_version"},
					OnError:      OnErrorStop,
					Timeout:      600 * time.Second,
				},
			},
		},
		{
			ID:          "full_web_attack",
			Name:        "Full Web Attack Pipeline",
			Description: "Comprehensive web application attack chain",
			TargetType:  "url",
			Tags:        []string{"web", "comprehensive", "attack"},
			Steps: []Step{
				{
					ID:          "fingerprint",
					Tool:        "whatweb",
					Description: "Technology fingerprinting",
					Options:     map[string]any{"aggression": 3},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "dir_enum",
					Tool:        "gobuster",
					Description: "Directory enumeration",
					Options: map[string]any{
						"mode": "dir", "wordlist": "/usr/share/seclists/Discovery/Web-Content/directory-list-2.3-small.txt",
						"threads": 20, "extensions": "php,asp,aspx,jsp,html",
					},
					DependsOn: []string{"fingerprint"},
					OnError:   OnErrorStop,
					Timeout:   900 * time.Second,
				},
				{
					ID:           "vuln_scan",
					Tool:         "nikto",
					Description:  "Vulnerability scan",
					Options:      map[string]any{"tuning": "123489"},
					DependsOn:    []string{"fingerprint"},
					ParallelWith: []string{"dir_enum"},
					OnError:      OnErrorStop,
					Timeout:      900 * time.Second,
				},
				{
					ID:          "nuclei_scan",
					Tool:        "nuclei",
					Description: "Template-based vulnerability scan",
					Options:     map[string]any{"severity": []string{"medium", "high", "critical"}},
					DependsOn:   []string{"vuln_scan", "dir_enum"},
					OnError:     OnErrorStop,
					Timeout:     1200 * time.Second,
				},
				{
					ID:          "sqli_test",
					Tool:        "sqlmap",
					Description: "SQL injection testing",
					Options:     map[string]any{"level": 2, "risk": 2, "batch": true, "forms": true, "crawl": 2},
					DependsOn:   []string{"nuclei_scan"},
					Condition:   &Condition{SourceStep: "nuclei_scan", Check: CheckCountGT, Path: "findings", Value: float64(0)},
					OnError:     OnErrorStop,
					Timeout:     1800 * time.Second,
				},
			},
		},
	}
}

// reconChains ports builtin/recon.py.
func reconChains() []Definition {
	return []Definition{
		{
			ID:          "web_recon",
			Name:        "Web Reconnaissance Pipeline",
			Description: "Full web server reconnaissance with fingerprinting and directory discovery",
			TargetType:  "ip",
			Tags:        []string{"recon", "web", "fingerprinting", "discovery"},
			Steps: []Step{
				{
					ID:          "port_scan",
					Tool:        "nmap",
					Description: "Find web ports",
					Options:     map[string]any{"ports": "80,443,8080,8443,8000,8888,9000", "service_detection": true},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "fingerprint",
					Tool:        "whatweb",
					Description: "Technology fingerprinting",
					TargetBinding: &DataBinding{
						SourceStep: "port_scan", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					DependsOn: []string{"port_scan"},
					Condition: &Condition{SourceStep: "port_scan", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   300 * time.Second,
				},
				{
					ID:          "vuln_scan",
					Tool:        "nikto",
					Description: "Web vulnerability scan",
					TargetBinding: &DataBinding{
						SourceStep: "port_scan", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					Options:   map[string]any{"tuning": "12b"},
					DependsOn: []string{"fingerprint"},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
				{
					ID:          "dir_enum",
					Tool:        "gobuster",
					Description: "Directory enumeration",
					TargetBinding: &DataBinding{
						SourceStep: "port_scan", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					Options:      map[string]any{"mode": "dir", "wordlist": "/usr/share/seclists/Discovery/Web-Content/common.txt", "threads": 10},
					DependsOn:    []string{"fingerprint"},
					ParallelWith: []string{"vuln_scan"},
					OnError:      OnErrorStop,
					Timeout:      900 * time.Second,
				},
			},
		},
		{
			ID:          "subdomain_enum",
			Name:        "Subdomain Enumeration Pipeline",
			Description: "Discover subdomains and map attack surface",
			TargetType:  "domain",
			Tags:        []string{"recon", "subdomain", "osint", "discovery"},
			Steps: []Step{
				{
					ID:          "passive_enum",
					Tool:        "subfinder",
					Description: "Passive subdomain discovery",
					Options:     map[string]any{"threads": 10, "timeout": 30},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
				{
					ID:          "resolve_dns",
					Tool:        "nmap",
					Description: "Resolve and scan discovered subdomains",
					TargetBinding: &DataBinding{
						SourceStep: "passive_enum", SourcePath: "", TargetOption: "target", TransformName: "subdomains_targets",
					},
					Options:   map[string]any{"ports": "80,443", "service_detection": true, "skip_discovery": true},
					DependsOn: []string{"passive_enum"},
					Condition: &Condition{SourceStep: "passive_enum", Check: CheckCountGT, Path: "subdomains", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
				{
					ID:          "web_fingerprint",
					Tool:        "whatweb",
					Description: "Fingerprint discovered web services",
					TargetBinding: &DataBinding{
						SourceStep: "resolve_dns", SourcePath: "hosts", TargetOption: "target", TransformName: "hosts_to_urls",
					},
					DependsOn: []string{"resolve_dns"},
					Condition: &Condition{SourceStep: "resolve_dns", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
			},
		},
		{
			ID:          "cms_detect",
			Name:        "CMS Detection & Scanning",
			Description: "Detect CMS installations and run specialized scans",
			TargetType:  "url",
			Tags:        []string{"recon", "cms", "wordpress", "fingerprinting"},
			Steps: []Step{
				{
					ID:          "fingerprint",
					Tool:        "whatweb",
					Description: "Technology fingerprinting",
					Options:     map[string]any{"aggression": 3},
					OnError:     OnErrorStop,
					Timeout:     300 * time.Second,
				},
				{
					ID:          "nuclei_tech",
					Tool:        "nuclei",
					Description: "Technology-based vulnerability scan",
					Options:     map[string]any{"tags": []string{"tech", "panel", "config"}, "severity": []string{"info", "low", "medium", "high", "critical"}},
					DependsOn:   []string{"fingerprint"},
					OnError:     OnErrorStop,
					Timeout:     600 * time.Second,
				},
				{
					ID:           "dir_enum",
					Tool:         "gobuster",
					Description:  "CMS directory enumeration",
					Options:      map[string]any{"mode": "dir", "wordlist": "/usr/share/seclists/Discovery/Web-Content/CMS/wordpress.fuzz.txt", "extensions": "php,txt,html,bak", "threads": 10},
					DependsOn:    []string{"fingerprint"},
					ParallelWith: []string{"nuclei_tech"},
					OnError:      OnErrorStop,
					Timeout:      600 * time.Second,
				},
			},
		},
		{
			ID:          "full_recon",
			Name:        "Full Reconnaissance Pipeline",
			Description: "Comprehensive target reconnaissance combining all techniques",
			TargetType:  "ip",
			Tags:        []string{"recon", "comprehensive", "full"},
			Steps: []Step{
				{
					ID:           "port_discovery",
					Tool:         "masscan",
					Description:  "Fast port discovery",
					Options:      map[string]any{"ports": "1-65535", "rate": 10000},
					OnError:      OnErrorFallback,
					FallbackTool: "nmap",
					Timeout:      300 * time.Second,
				},
				{
					ID:          "service_enum",
					Tool:        "nmap",
					Description: "Service enumeration on open ports",
					TargetBinding: &DataBinding{
						SourceStep: "port_discovery", SourcePath: "hosts", TargetOption: "target", TransformName: "hosts_to_ips",
					},
					OptionBindings: []DataBinding{
						{
							SourceStep: "port_discovery", SourcePath: "hosts", TargetOption: "ports",
							TransformName: "ports_csv", Required: false, Default: "1-1000",
						},
					},
					Options:   map[string]any{"service_detection": true, "os_detection": true},
					DependsOn: []string{"port_discovery"},
					Condition: &Condition{SourceStep: "port_discovery", Check: CheckCountGT, Path: "hosts", Value: float64(0)},
					OnError:   OnErrorStop,
					Timeout:   600 * time.Second,
				},
				{
					ID:          "web_fingerprint",
					Tool:        "whatweb",
					Description: "Web technology fingerprinting",
					TargetBinding: &DataBinding{
						SourceStep: "service_enum", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					DependsOn: []string{"service_enum"},
					Condition: &Condition{SourceStep: "service_enum", Check: CheckExists, Path: "hosts[*].ports[?service==http]"},
					OnError:   OnErrorStop,
					Timeout:   300 * time.Second,
				},
				{
					ID:          "vuln_scan",
					Tool:        "nuclei",
					Description: "Vulnerability scanning",
					TargetBinding: &DataBinding{
						SourceStep: "service_enum", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					Options:   map[string]any{"severity": []string{"medium", "high", "critical"}, "tags": []string{"cve", "vuln"}},
					DependsOn: []string{"web_fingerprint"},
					OnError:   OnErrorStop,
					Timeout:   900 * time.Second,
				},
				{
					ID:          "dir_enum",
					Tool:        "gobuster",
					Description: "Directory enumeration",
					TargetBinding: &DataBinding{
						SourceStep: "service_enum", SourcePath: "hosts", TargetOption: "target", TransformName: "first_http_url",
					},
					Options:      map[string]any{"mode": "dir", "wordlist": "/usr/share/seclists/Discovery/Web-Content/directory-list-2.3-medium.txt", "threads": 20},
					DependsOn:    []string{"web_fingerprint"},
					ParallelWith: []string{"vuln_scan"},
					OnError:      OnErrorStop,
					Timeout:      1200 * time.Second,
				},
			},
		},
	}
}
