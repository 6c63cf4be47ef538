package pathresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKey(t *testing.T) {
	data := map[string]any{"k": "v"}
	assert.Equal(t, "v", Resolve(data, "k"))
}

func TestResolveWildcard(t *testing.T) {
	data := []any{"a", "b", "c"}
	assert.Equal(t, []any{"a", "b", "c"}, Resolve(data, "[*]"))
}

func TestResolveFilter(t *testing.T) {
	data := []any{
		map[string]any{"s": "up"},
		map[string]any{"s": "down"},
	}
	got := Resolve(data, "[?s==up]")
	assert.Equal(t, []any{map[string]any{"s": "up"}}, got)
}

func TestResolveNilPath(t *testing.T) {
	assert.Nil(t, Resolve(nil, "anything"))
}

func TestResolveEmptyPath(t *testing.T) {
	data := map[string]any{"k": "v"}
	assert.Equal(t, data, Resolve(data, ""))
}

func TestResolveIndexNegative(t *testing.T) {
	data := []any{"a", "b", "c"}
	assert.Equal(t, "c", Resolve(data, "[-1]"))
}

func TestResolveIndexOutOfRange(t *testing.T) {
	data := []any{"a"}
	assert.Nil(t, Resolve(data, "[5]"))
}

func TestResolveKeyOnNonMapping(t *testing.T) {
	assert.Nil(t, Resolve("a string", "k"))
}

func TestResolveNestedWildcard(t *testing.T) {
	data := map[string]any{
		"hosts": []any{
			map[string]any{"ip": "10.0.0.1", "ports": []any{map[string]any{"port": float64(22)}}},
			map[string]any{"ip": "10.0.0.2", "ports": []any{map[string]any{"port": float64(80)}}},
		},
	}
	assert.Equal(t, []any{"10.0.0.1", "10.0.0.2"}, Resolve(data, "hosts[*].ip"))
	assert.Equal(t, []any{float64(22), float64(80)}, Resolve(data, "hosts[*].ports[*].port"))
}

func TestResolveFilterNumericCoercion(t *testing.T) {
	// "80" (string literal in path) vs 80 (float64 field value) must compare equal.
	data := []any{
		map[string]any{"port": float64(80)},
		map[string]any{"port": float64(443)},
	}
	got := Resolve(data, "[?port==80]")
	assert.Equal(t, []any{map[string]any{"port": float64(80)}}, got)
}

func TestFormat(t *testing.T) {
	data := map[string]any{
		"hosts": []any{
			map[string]any{"ip": "192.168.1.1", "ports": []any{map[string]any{"port": float64(22)}}},
		},
	}
	got := Format("{hosts[0].ip}:{hosts[0].ports[0].port}", data)
	assert.Equal(t, "192.168.1.1:22", got)
}

func TestFormatListJoinsWithComma(t *testing.T) {
	data := map[string]any{"ips": []any{"a", "b", "c"}}
	assert.Equal(t, "a,b,c", Format("{ips}", data))
}
