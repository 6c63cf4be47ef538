package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstLastOnEmpty(t *testing.T) {
	fn, ok := Get("first")
	require.True(t, ok)
	assert.Nil(t, fn([]any{}))

	fn, ok = Get("last")
	require.True(t, ok)
	assert.Nil(t, fn(nil))
}

func TestUniquePreservesOrder(t *testing.T) {
	fn, ok := Get("unique")
	require.True(t, ok)
	got := fn([]any{"a", "b", "a", "c", "b"})
	assert.Equal(t, []any{"a", "b", "c"}, got)
}

func TestJoinDefaultSeparator(t *testing.T) {
	got, ok := Apply("join", []any{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, "a,b,c", got)
}

func TestUnknownTransformReturnsFalse(t *testing.T) {
	got, ok := Apply("does_not_exist", []any{"x"})
	assert.False(t, ok)
	assert.Equal(t, []any{"x"}, got)
}

func TestExtractPortsUniqueSorted(t *testing.T) {
	hosts := []any{
		map[string]any{"ports": []any{
			map[string]any{"port": float64(80), "state": "open"},
			map[string]any{"port": float64(22), "state": "open"},
		}},
		map[string]any{"ports": []any{
			map[string]any{"port": float64(80), "state": "open"},
		}},
	}
	got, ok := Apply("extract_ports", hosts)
	require.True(t, ok)
	assert.Equal(t, []any{float64(22), float64(80)}, got)
}

func TestExtractPortsAcceptsIntPorts(t *testing.T) {
	// internal/toolspec/nmap.go stores ports as int (strconv.Atoi), not
	// float64 — extract_ports must not silently drop them.
	hosts := []any{
		map[string]any{"ports": []any{
			map[string]any{"port": 443, "state": "open"},
			map[string]any{"port": 22, "state": "open"},
		}},
	}
	got, ok := Apply("extract_ports", hosts)
	require.True(t, ok)
	assert.Equal(t, []any{float64(22), float64(443)}, got)
}

func TestPortsCSVAcceptsIntPorts(t *testing.T) {
	hosts := []any{
		map[string]any{"ports": []any{
			map[string]any{"port": 80, "state": "open"},
			map[string]any{"port": 443, "state": "open"},
		}},
	}
	got, ok := Apply("ports_csv", hosts)
	require.True(t, ok)
	assert.Equal(t, "80,443", got)
}

func TestNumbersCSVDedupesAndSorts(t *testing.T) {
	got, ok := Apply("numbers_csv", []any{443, 22, 443, float64(80)})
	require.True(t, ok)
	assert.Equal(t, "22,80,443", got)
}

func TestNumbersCSVNilOnEmpty(t *testing.T) {
	got, ok := Apply("numbers_csv", []any{})
	require.True(t, ok)
	assert.Nil(t, got)
}

func TestHostsToIPsJoinsComma(t *testing.T) {
	hosts := []any{
		map[string]any{"ip": "10.0.0.1"},
		map[string]any{"ip": "10.0.0.2"},
	}
	got, ok := Apply("hosts_to_ips", hosts)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1,10.0.0.2", got)
}

func TestCriticalVulns(t *testing.T) {
	data := map[string]any{
		"findings": []any{
			map[string]any{"severity": "critical", "template_id": "cve-1"},
			map[string]any{"severity": "low", "template_id": "cve-2"},
		},
	}
	got, ok := Apply("critical_vulns", data)
	require.True(t, ok)
	assert.Len(t, got, 1)
}

func TestWPANetworks(t *testing.T) {
	networks := []any{
		map[string]any{"bssid": "AA:BB", "encryption": "WPA2"},
		map[string]any{"bssid": "CC:DD", "encryption": "OPN"},
	}
	got, ok := Apply("wpa_networks", networks)
	require.True(t, ok)
	assert.Len(t, got, 1)
}

func TestToPortListIsCSVFormOfExtractPorts(t *testing.T) {
	hosts := []any{
		map[string]any{"ports": []any{
			map[string]any{"port": 22, "state": "open"},
			map[string]any{"port": 80, "state": "open"},
		}},
	}
	got, ok := Apply("to_port_list", hosts)
	require.True(t, ok)
	assert.Equal(t, "22,80", got)
}

func TestSSHHostsCSVJoinsMatchedServices(t *testing.T) {
	hosts := []any{
		map[string]any{"ip": "10.0.0.1", "ports": []any{
			map[string]any{"port": 22, "service": "ssh", "state": "open"},
		}},
		map[string]any{"ip": "10.0.0.2", "ports": []any{
			map[string]any{"port": 22, "service": "ssh", "state": "open"},
		}},
	}
	got, ok := Apply("ssh_hosts_csv", hosts)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1:22,10.0.0.2:22", got)
}

func TestSMBHostsCSVEmptyWhenNoMatches(t *testing.T) {
	hosts := []any{
		map[string]any{"ip": "10.0.0.1", "ports": []any{
			map[string]any{"port": 22, "service": "ssh", "state": "open"},
		}},
	}
	got, ok := Apply("smb_hosts_csv", hosts)
	require.True(t, ok)
	assert.Nil(t, got)
}
