// Package normalize canonicalizes request payloads at the HTTP boundary.
// Clients send either UI-facing camelCase or the database's snake_case, and
// list-valued fields arrive as a JSON-encoded string, a bare string or a
// real array.  Each entity declares its field schema once and Apply produces
// a map with snake_case keys, true list values and documented defaults.  No
// validation happens here; malformed but parseable input passes through.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Field describes one recognized payload field.
type Field struct {
	Name    string // canonical snake_case key
	List    bool   // list-valued field (coerced via CoerceList)
	Default any    // value used when both variants are absent (nil = omit)
}

// Apply canonicalizes raw against the given schema.  For every field the
// snake_case variant wins, then the camelCase variant, then the default.
// Unrecognized keys are dropped.  Applying the result again returns an equal
// map, so normalization is idempotent.
func Apply(fields []Field, raw map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v, ok := raw[f.Name]
		if !ok {
			v, ok = raw[camelOf(f.Name)]
		}
		if f.List {
			if !ok {
				out[f.Name] = []string{}
			} else {
				out[f.Name] = CoerceList(v)
			}
			continue
		}
		if !ok {
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		out[f.Name] = v
	}
	return out
}

// CoerceList turns any of the accepted list encodings into a []string.
//   - arrays pass through with elements stringified
//   - a string is first tried as a JSON array
//   - a string that fails to parse as a JSON array becomes a one-element list
//   - empty or nil input yields an empty list
func CoerceList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []string:
		if t == nil {
			return []string{}
		}
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, stringify(e))
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return []string{}
		}
		var arr []any
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			out := make([]string, 0, len(arr))
			for _, e := range arr {
				out = append(out, stringify(e))
			}
			return out
		}
		// Not a JSON array: keep the raw string as a single element.
		return []string{t}
	default:
		return []string{stringify(v)}
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// camelOf converts a snake_case name to its camelCase alias
// (max_capacity -> maxCapacity).
func camelOf(snake string) string {
	parts := strings.Split(snake, "_")
	if len(parts) == 1 {
		return snake
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// Has reports whether the raw payload carried either variant of the field.
// Partial updates use it to tell "sent as zero" apart from "not sent".
func Has(raw map[string]any, snake string) bool {
	if _, ok := raw[snake]; ok {
		return true
	}
	_, ok := raw[camelOf(snake)]
	return ok
}

// ----- typed getters over a canonical map -----
//
// JSON numbers decode as float64 and legacy clients send numerics as
// strings, so the getters coerce both.

// Str returns the field as a trimmed string.
func Str(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return stringify(v)
}

// Float returns the field as a float64, accepting numeric strings.
func Float(m map[string]any, key string) float64 {
	switch t := m[key].(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}

// Int returns the field as an int, accepting numeric strings.
func Int(m map[string]any, key string) int {
	return int(Float(m, key))
}

// Uint returns the field as a uint64 identifier; zero when absent or
// negative.
func Uint(m map[string]any, key string) uint64 {
	f := Float(m, key)
	if f < 0 {
		return 0
	}
	return uint64(f)
}

// Bool returns the field as a bool, accepting "true"/"1" strings.
func Bool(m map[string]any, key string) bool {
	switch t := m[key].(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1"
	case float64:
		return t != 0
	}
	return false
}

// List returns the field as a []string; it is safe on non-list fields.
func List(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return []string{}
	}
	return CoerceList(v)
}
