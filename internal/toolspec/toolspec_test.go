package toolspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistryHasAllSpecs(t *testing.T) {
	r := Builtin()
	for _, name := range []string{"nmap", "masscan", "hashcat", "ffuf", "subfinder", "nuclei", "airodump-ng"} {
		assert.True(t, r.Has(name), "expected %s registered", name)
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewNmap()))
	err := r.Register(NewNmap())
	assert.ErrorIs(t, err, ErrSpecAlreadyRegistered)
}

func TestNmapBuildCommandQuickScan(t *testing.T) {
	n := NewNmap()
	cmd, err := n.BuildCommand("10.0.0.1", Options{"scan_type": "quick"})
	require.NoError(t, err)
	assert.Contains(t, cmd, "-F")
	assert.Contains(t, cmd, "10.0.0.1")
}

func TestNmapParseTextFallback(t *testing.T) {
	n := NewNmap()
	out := n.ParseOutput("Nmap scan report for 10.0.0.1\n80/tcp   open  http\n")
	hosts := out["hosts"].([]map[string]any)
	require.Len(t, hosts, 1)
	assert.Equal(t, "10.0.0.1", hosts[0]["ip"])
}

func TestMasscanBuildCommand(t *testing.T) {
	m := NewMasscan()
	cmd, err := m.BuildCommand("10.0.0.0/24", Options{"rate": 5000})
	require.NoError(t, err)
	assert.Contains(t, cmd, "5000")
	assert.Contains(t, cmd, "10.0.0.0/24")
}

func TestHashcatBuildCommandDictionaryAttack(t *testing.T) {
	h := NewHashcat()
	cmd, err := h.BuildCommand("hash.txt", Options{
		"hash_type": "wpa2", "attack_mode": "dictionary", "wordlist": "rockyou.txt",
	})
	require.NoError(t, err)
	assert.Contains(t, cmd, "22000")
	assert.Contains(t, cmd, "rockyou.txt")
}

func TestHashcatParseOutputExtractsStatus(t *testing.T) {
	h := NewHashcat()
	out := h.ParseOutput("Status...........: Running\nProgress.........: 10/100 (10.00%)\n")
	assert.Equal(t, "running", out["status"])
	assert.Equal(t, 10.0, out["progress"])
}

func TestFfufAppendsFuzzKeyword(t *testing.T) {
	f := NewFfuf()
	cmd, err := f.BuildCommand("http://example.com", Options{})
	require.NoError(t, err)
	assert.Contains(t, cmd, "http://example.com/FUZZ")
}

func TestSubfinderParseOutputDedupes(t *testing.T) {
	s := NewSubfinder()
	out := s.ParseOutput(`{"host":"www.example.com","source":"crtsh"}` + "\n" +
		`{"host":"www.example.com","source":"dnsdumpster"}` + "\n")
	assert.Equal(t, 1, out["count"])
}

func TestNucleiParseOutputCountsBySeverity(t *testing.T) {
	n := NewNuclei()
	out := n.ParseOutput(`{"template-id":"cve-x","info":{"name":"X","severity":"high"},"host":"h","matched-at":"h/x"}` + "\n")
	assert.Equal(t, 1, out["count"])
	bySev := out["by_severity"].(map[string]int)
	assert.Equal(t, 1, bySev["high"])
}
