package toolspec

import "fmt"

func optString(opts Options, key, def string) string {
	if v, ok := opts[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

func optInt(opts Options, key string, def int) int {
	if v, ok := opts[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return def
}

func optBool(opts Options, key string, def bool) bool {
	if v, ok := opts[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func optStringSlice(opts Options, key string, def []string) []string {
	if v, ok := opts[key]; ok {
		switch s := v.(type) {
		case []string:
			return s
		case []any:
			out := make([]string, 0, len(s))
			for _, e := range s {
				out = append(out, fmt.Sprint(e))
			}
			return out
		}
	}
	return def
}
