// Package pathresolve implements the JSON-path-like accessor used to thread
// structured tool output between chain steps: keys, indices, wildcards and
// filter predicates over arbitrary map/slice data (typically the result of
// json.Unmarshal into interface{}).
package pathresolve

import (
	"regexp"
	"strconv"
	"strings"
)

type segmentKind int

const (
	segKey segmentKind = iota
	segIndex
	segWildcard
	segFilter
)

type segment struct {
	kind  segmentKind
	key   string
	index int
	expr  string
}

var (
	arrayAccessorRe = regexp.MustCompile(`^\[(-?\d+|\*|\?[^\]]+)\]\.?`)
	keyAccessorRe   = regexp.MustCompile(`^([^.\[\]]+)\.?`)
	placeholderRe   = regexp.MustCompile(`\{([^}]+)\}`)
)

// Resolve evaluates path against data, returning nil when any segment
// cannot be applied (missing key, out-of-range index, non-mapping access).
// An empty path returns data unchanged; resolving against nil always yields nil.
func Resolve(data any, path string) any {
	if path == "" || data == nil {
		return data
	}
	segs := parsePath(path)
	return resolveSegments(data, segs)
}

func parsePath(path string) []segment {
	var segs []segment
	remaining := path

	for remaining != "" {
		if m := arrayAccessorRe.FindStringSubmatch(remaining); m != nil {
			accessor := m[1]
			switch {
			case accessor == "*":
				segs = append(segs, segment{kind: segWildcard})
			case strings.HasPrefix(accessor, "?"):
				segs = append(segs, segment{kind: segFilter, expr: accessor[1:]})
			default:
				n, _ := strconv.Atoi(accessor)
				segs = append(segs, segment{kind: segIndex, index: n})
			}
			remaining = remaining[len(m[0]):]
			continue
		}

		if m := keyAccessorRe.FindStringSubmatch(remaining); m != nil {
			segs = append(segs, segment{kind: segKey, key: m[1]})
			remaining = remaining[len(m[0]):]
			continue
		}

		if strings.HasPrefix(remaining, ".") {
			remaining = remaining[1:]
			continue
		}
		break
	}
	return segs
}

func resolveSegments(data any, segs []segment) any {
	if len(segs) == 0 {
		return data
	}
	seg := segs[0]
	rest := segs[1:]

	switch seg.kind {
	case segKey:
		m, ok := data.(map[string]any)
		if !ok {
			return nil
		}
		return resolveSegments(m[seg.key], rest)

	case segIndex:
		items, ok := asSlice(data)
		if !ok {
			return nil
		}
		idx := seg.index
		if idx < 0 {
			idx = len(items) + idx
		}
		if idx < 0 || idx >= len(items) {
			return nil
		}
		return resolveSegments(items[idx], rest)

	case segWildcard:
		items, ok := asSlice(data)
		if !ok {
			return nil
		}
		var results []any
		for _, item := range items {
			result := resolveSegments(item, rest)
			if result == nil {
				continue
			}
			if sub, ok := asSlice(result); ok && len(rest) > 0 {
				results = append(results, sub...)
			} else {
				results = append(results, result)
			}
		}
		if len(results) == 0 {
			return nil
		}
		return results

	case segFilter:
		items, ok := asSlice(data)
		if !ok {
			return nil
		}
		filtered := applyFilter(items, seg.expr)
		if len(rest) > 0 {
			return resolveSegments(filtered, rest)
		}
		return filtered
	}
	return nil
}

func asSlice(data any) ([]any, bool) {
	items, ok := data.([]any)
	return items, ok
}

var filterOps = []string{"==", "!=", ">=", "<=", ">", "<"}

func applyFilter(items []any, expr string) any {
	for _, op := range filterOps {
		idx := strings.Index(expr, op)
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(expr[:idx])
		rawValue := strings.TrimSpace(expr[idx+len(op):])
		value := coerceLiteral(rawValue)

		var out []any
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if compare(m[key], op, value) {
				out = append(out, item)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return items
}

// coerceLiteral converts a filter's right-hand-side literal to float64 when
// it parses as a number, matching the loose-typed comparison semantics of
// the original implementation. Resolves the spec's "Open question — overlapping
// filter semantics": numerically-equal-but-different-form literals ("80" vs 80)
// DO compare equal.
func coerceLiteral(raw string) any {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func compare(left any, op string, right any) bool {
	if left == nil {
		return false
	}
	switch op {
	case "==":
		return stringOf(left) == stringOf(right)
	case "!=":
		return stringOf(left) != stringOf(right)
	case ">", "<", ">=", "<=":
		lf, lok := numericOf(left)
		rf, rok := numericOf(right)
		if !lok || !rok {
			return false
		}
		switch op {
		case ">":
			return lf > rf
		case "<":
			return lf < rf
		case ">=":
			return lf >= rf
		case "<=":
			return lf <= rf
		}
	}
	return false
}

// stringOf renders a value for == / != comparison. When both sides are
// numeric (possibly in different forms, e.g. "80" vs float64(80)), this still
// must compare equal per the resolved filter-literal semantics, so numeric
// values are normalized before falling back to string form.
func stringOf(v any) string {
	if f, ok := numericOf(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func numericOf(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Format substitutes {path} placeholders in template with values resolved
// against data. List results are joined with ",".
func Format(template string, data any) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		path := match[1 : len(match)-1]
		value := Resolve(data, path)
		if value == nil {
			return match
		}
		if items, ok := asSlice(value); ok {
			parts := make([]string, len(items))
			for i, it := range items {
				parts[i] = renderScalar(it)
			}
			return strings.Join(parts, ",")
		}
		return renderScalar(value)
	})
}

func renderScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
